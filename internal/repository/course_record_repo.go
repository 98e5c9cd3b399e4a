package repository

import (
	"context"

	"gorm.io/gorm"

	pkgerrors "relstone/backend/pkg/errors"

	"relstone/backend/internal/model"
)

// CourseRecordRepository 课程完成记录数据访问接口
type CourseRecordRepository interface {
	Create(ctx context.Context, record *model.CourseRecord) error
	GetByID(ctx context.Context, id string) (*model.CourseRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.CourseRecord, error)
	Update(ctx context.Context, record *model.CourseRecord) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type courseRecordRepo struct {
	db *gorm.DB
}

// NewCourseRecordRepo 创建 CourseRecordRepository 实例
func NewCourseRecordRepo(db *gorm.DB) CourseRecordRepository {
	return &courseRecordRepo{db: db}
}

func (r *courseRecordRepo) Create(ctx context.Context, record *model.CourseRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *courseRecordRepo) GetByID(ctx context.Context, id string) (*model.CourseRecord, error) {
	var record model.CourseRecord
	err := r.db.WithContext(ctx).
		Where("course_record_id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *courseRecordRepo) ListByStudent(ctx context.Context, studentID string) ([]model.CourseRecord, error) {
	var records []model.CourseRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("completed_on ASC, created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *courseRecordRepo) Update(ctx context.Context, record *model.CourseRecord) error {
	oldVersion := record.Version
	result := r.db.WithContext(ctx).
		Model(record).
		Where("course_record_id = ? AND version = ?", record.CourseRecordID, oldVersion).
		Updates(map[string]interface{}{
			"course_title": record.CourseTitle,
			"completed_on": record.CompletedOn,
			"score":        record.Score,
			"updated_by":   record.UpdatedBy,
			"version":      oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	record.Version = oldVersion + 1
	return nil
}

func (r *courseRecordRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.CourseRecord{}).
		Where("course_record_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
