package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	pkgerrors "relstone/backend/pkg/errors"

	"relstone/backend/internal/dto"
)

// ── 测试辅助 ──

func setupTestStudentService() (StudentService, *mockStudentRepo, *mockCourseRecordRepo) {
	repo, _, students, records, _ := newTestRepo()
	svc := NewStudentService(repo, zap.NewNop())
	return svc, students, records
}

func createStudentViaService(t *testing.T, svc StudentService) *dto.StudentResponse {
	t.Helper()
	created, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		LicenseNo: "01234567",
	}, "admin-1")
	if err != nil {
		t.Fatalf("创建学员失败: %v", err)
	}
	return created
}

// ── 学员 CRUD 测试 ──

func TestStudentCreate_Success(t *testing.T) {
	svc, _, _ := setupTestStudentService()

	created := createStudentViaService(t, svc)
	if created.ID == "" {
		t.Error("创建后应分配 ID")
	}
	if created.Version != 1 {
		t.Errorf("初始 version 应为 1，实际=%d", created.Version)
	}
}

func TestStudentGetByID_NotFound(t *testing.T) {
	svc, _, _ := setupTestStudentService()

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

func TestStudentSearch_ByKeyword(t *testing.T) {
	svc, _, _ := setupTestStudentService()
	createStudentViaService(t, svc)

	results, total, err := svc.Search(context.Background(), &dto.SearchStudentRequest{Keyword: "doe"})
	if err != nil {
		t.Fatalf("Search 失败: %v", err)
	}
	if total != 1 || len(results) != 1 {
		t.Fatalf("期望命中1条，total=%d len=%d", total, len(results))
	}

	_, total, err = svc.Search(context.Background(), &dto.SearchStudentRequest{Keyword: "nomatch"})
	if err != nil {
		t.Fatalf("Search 失败: %v", err)
	}
	if total != 0 {
		t.Errorf("无匹配时 total 应为 0，实际=%d", total)
	}
}

func TestStudentUpdate_OptimisticLockConflict(t *testing.T) {
	svc, _, _ := setupTestStudentService()
	created := createStudentViaService(t, svc)

	// 第一次更新成功，version 1 → 2
	req := &dto.UpdateStudentRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0101",
		Version:   1,
	}
	updated, err := svc.Update(context.Background(), created.ID, req, "admin-1")
	if err != nil {
		t.Fatalf("第一次更新应成功: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("更新后 version 应为 2，实际=%d", updated.Version)
	}

	// 携带过期 version 的更新应冲突
	stale := &dto.UpdateStudentRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0202",
		Version:   1,
	}
	_, err = svc.Update(context.Background(), created.ID, stale, "admin-2")
	if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Errorf("期望 ErrOptimisticLock，实际: %v", err)
	}
}

func TestStudentDelete_Success(t *testing.T) {
	svc, _, _ := setupTestStudentService()
	created := createStudentViaService(t, svc)

	if err := svc.Delete(context.Background(), created.ID, "admin-1"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("删除后应查不到学员，实际: %v", err)
	}
}

// ── 课程记录测试 ──

func TestAddCourseRecord_Success(t *testing.T) {
	svc, _, _ := setupTestStudentService()
	student := createStudentViaService(t, svc)

	record, err := svc.AddCourseRecord(context.Background(), student.ID, &dto.CreateCourseRecordRequest{
		CourseTitle: "Agency",
		CompletedOn: "2024-06-15",
		Score:       "92",
	}, "admin-1")
	if err != nil {
		t.Fatalf("登记课程记录应成功: %v", err)
	}
	if record.CourseTitle != "Agency" || record.CompletedOn != "2024-06-15" {
		t.Errorf("记录内容不匹配: %+v", record)
	}
}

func TestAddCourseRecord_PlaceholderDateAccepted(t *testing.T) {
	svc, _, _ := setupTestStudentService()
	student := createStudentViaService(t, svc)

	// 历史导入数据带占位符日期，入库不做清洗
	record, err := svc.AddCourseRecord(context.Background(), student.ID, &dto.CreateCourseRecordRequest{
		CourseTitle: "Ethics",
		CompletedOn: "--",
	}, "admin-1")
	if err != nil {
		t.Fatalf("占位符日期应被接受: %v", err)
	}
	if record.CompletedOn != "--" {
		t.Errorf("占位符应原样保存，实际=%s", record.CompletedOn)
	}
}

func TestAddCourseRecord_StudentNotFound(t *testing.T) {
	svc, _, _ := setupTestStudentService()

	_, err := svc.AddCourseRecord(context.Background(), "missing", &dto.CreateCourseRecordRequest{
		CourseTitle: "Agency",
	}, "admin-1")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

func TestListCourseRecords_SortedByCompletedOn(t *testing.T) {
	svc, _, _ := setupTestStudentService()
	student := createStudentViaService(t, svc)

	for _, rec := range []dto.CreateCourseRecordRequest{
		{CourseTitle: "Ethics", CompletedOn: "2024-02-01"},
		{CourseTitle: "Agency", CompletedOn: "2024-01-15"},
	} {
		r := rec
		if _, err := svc.AddCourseRecord(context.Background(), student.ID, &r, "admin-1"); err != nil {
			t.Fatalf("登记失败: %v", err)
		}
	}

	records, err := svc.ListCourseRecords(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("ListCourseRecords 失败: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("期望2条记录，实际=%d", len(records))
	}
	if records[0].CourseTitle != "Agency" {
		t.Errorf("应按完成日期升序，首条=%s", records[0].CourseTitle)
	}
}

func TestUpdateCourseRecord_NotFound(t *testing.T) {
	svc, _, _ := setupTestStudentService()

	_, err := svc.UpdateCourseRecord(context.Background(), "missing", &dto.UpdateCourseRecordRequest{
		CourseTitle: "Agency",
		Version:     1,
	}, "admin-1")
	if !errors.Is(err, ErrCourseRecordNotFound) {
		t.Errorf("期望 ErrCourseRecordNotFound，实际: %v", err)
	}
}

func TestDeleteCourseRecord_Success(t *testing.T) {
	svc, _, _ := setupTestStudentService()
	student := createStudentViaService(t, svc)

	record, err := svc.AddCourseRecord(context.Background(), student.ID, &dto.CreateCourseRecordRequest{
		CourseTitle: "Agency",
		CompletedOn: "2024-06-15",
	}, "admin-1")
	if err != nil {
		t.Fatalf("登记失败: %v", err)
	}

	if err := svc.DeleteCourseRecord(context.Background(), record.ID, "admin-1"); err != nil {
		t.Fatalf("删除应成功: %v", err)
	}

	records, _ := svc.ListCourseRecords(context.Background(), student.ID)
	if len(records) != 0 {
		t.Errorf("删除后记录列表应为空，实际=%d", len(records))
	}
}
