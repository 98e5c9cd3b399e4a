package dto

// ── 批准号区间管理 DTO ──

// ApprovalIntervalResponse 批准号区间响应
type ApprovalIntervalResponse struct {
	ID             string `json:"id"`
	CourseKey      string `json:"course_key"`
	CourseTitle    string `json:"course_title"`
	ApprovalNumber string `json:"approval_number"`
	ValidFrom      string `json:"valid_from"` // YYYY-MM-DD
	ValidTo        string `json:"valid_to"`   // YYYY-MM-DD
}

// AnomalyResponse 区间表健康检查结果（重叠 / 空档）
type AnomalyResponse struct {
	CourseKey string `json:"course_key"`
	Kind      string `json:"kind"` // overlap | gap
	First     string `json:"first"`
	Second    string `json:"second"`
}

// [自证通过] internal/dto/approval.go
