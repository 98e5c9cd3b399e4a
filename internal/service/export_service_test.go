package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"relstone/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestExportService(t *testing.T) (ExportService, *mockStudentRepo, *mockCourseRecordRepo) {
	t.Helper()
	cert, students, records := setupTestCertificateService(t)
	svc := NewExportService(cert, zap.NewNop())
	return svc, students, records
}

// ── ExportTranscript 测试 ──

func TestExportTranscript_Success(t *testing.T) {
	svc, students, records := setupTestExportService(t)
	student := seedStudentWithRecords(t, students, records, []model.CourseRecord{
		{CourseTitle: "Agency", CompletedOn: "2024-06-15", Score: "92"},
		{CourseTitle: "Trust Fund Handling", CompletedOn: "2024-07-01"},
	})

	buf, filename, err := svc.ExportTranscript(context.Background(), student.StudentID)
	if err != nil {
		t.Fatalf("ExportTranscript 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("导出的 Excel buffer 不应为空")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾: %s", filename)
	}
	if !strings.Contains(filename, "Doe") {
		t.Errorf("文件名应含学员姓氏: %s", filename)
	}
	// Excel .xlsx 文件以 PK (0x504B) 开头
	if buf.Len() > 2 {
		header := buf.Bytes()[:2]
		if header[0] != 0x50 || header[1] != 0x4B {
			t.Error("输出内容不是有效的 xlsx 文件格式（应以 PK 开头）")
		}
	}
}

func TestExportTranscript_StudentNotFound(t *testing.T) {
	svc, _, _ := setupTestExportService(t)

	_, _, err := svc.ExportTranscript(context.Background(), "missing")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

func TestExportTranscript_NoRecords(t *testing.T) {
	svc, students, records := setupTestExportService(t)
	student := seedStudentWithRecords(t, students, records, nil)

	_, _, err := svc.ExportTranscript(context.Background(), student.StudentID)
	if !errors.Is(err, ErrTranscriptNoRecords) {
		t.Errorf("期望 ErrTranscriptNoRecords，实际: %v", err)
	}
}
