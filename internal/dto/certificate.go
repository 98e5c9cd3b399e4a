package dto

// ── 证书 / 成绩单 DTO ──

// CertificateLine 证书上的一行课程信息（分类与批准号已解析）
type CertificateLine struct {
	CourseTitle    string `json:"course_title"`           // 原始课程名
	CourseKey      string `json:"course_key"`             // 规范类别，未分类时为空
	CompletedOn    string `json:"completed_on"`           // 原始完成日期文本
	Hours          string `json:"hours"`                  // 学时，查不到时为占位符
	Designation    string `json:"designation"`            // DRE 认定类别标签
	ApprovalNumber string `json:"approval_number"`        // DRE 批准号，查不到时为空
	Message        string `json:"message,omitempty"`      // unclassified | no_interval_for_date
	Score          string `json:"score,omitempty"`
}

// TranscriptResponse 学员成绩单响应
type TranscriptResponse struct {
	Student       StudentResponse   `json:"student"`
	SchoolName    string            `json:"school_name"`
	SponsorID     string            `json:"sponsor_id"`
	SchoolAddress string            `json:"school_address,omitempty"`
	SchoolPhone   string            `json:"school_phone,omitempty"`
	Lines         []CertificateLine `json:"lines"`
}

// [自证通过] internal/dto/certificate.go
