package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	pkgerrors "relstone/backend/pkg/errors"

	"relstone/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	if user.Version == 0 {
		user.Version = 1
	}
	m.users[user.UserID] = user
	return nil
}

// 读取一律返回副本：调用方对返回值的修改不得穿透到"库"里，
// 否则乐观锁的版本检查会被原地改写绕过（真实 GORM 查询同样互不共享）
func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	existing, ok := m.users[user.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != user.Version {
		return pkgerrors.ErrOptimisticLock
	}
	user.Version++
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	records  *mockCourseRecordRepo // GetWithRecords 联动
}

func newMockStudentRepo(records *mockCourseRecordRepo) *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student), records: records}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		student.StudentID = fmt.Sprintf("stu-%d", len(m.students)+1)
	}
	if student.Version == 0 {
		student.Version = 1
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetWithRecords(ctx context.Context, id string) (*model.Student, error) {
	s, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	clone := *s
	if m.records != nil {
		clone.CourseRecords, _ = m.records.ListByStudent(ctx, id)
	}
	return &clone, nil
}

func (m *mockStudentRepo) Search(_ context.Context, keyword string, offset, limit int) ([]model.Student, int64, error) {
	var all []model.Student
	kw := strings.ToLower(keyword)
	for _, s := range m.students {
		if kw == "" ||
			strings.Contains(strings.ToLower(s.FirstName), kw) ||
			strings.Contains(strings.ToLower(s.LastName), kw) ||
			strings.Contains(strings.ToLower(s.Email), kw) ||
			strings.Contains(strings.ToLower(s.LicenseNo), kw) {
			all = append(all, *s)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StudentID < all[j].StudentID })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	existing, ok := m.students[student.StudentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != student.Version {
		return pkgerrors.ErrOptimisticLock
	}
	student.Version++
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.students, id)
	return nil
}

// ── Mock CourseRecordRepository ──

type mockCourseRecordRepo struct {
	records map[string]*model.CourseRecord
}

func newMockCourseRecordRepo() *mockCourseRecordRepo {
	return &mockCourseRecordRepo{records: make(map[string]*model.CourseRecord)}
}

func (m *mockCourseRecordRepo) Create(_ context.Context, record *model.CourseRecord) error {
	if record.CourseRecordID == "" {
		record.CourseRecordID = fmt.Sprintf("rec-%d", len(m.records)+1)
	}
	if record.Version == 0 {
		record.Version = 1
	}
	m.records[record.CourseRecordID] = record
	return nil
}

func (m *mockCourseRecordRepo) GetByID(_ context.Context, id string) (*model.CourseRecord, error) {
	if r, ok := m.records[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRecordRepo) ListByStudent(_ context.Context, studentID string) ([]model.CourseRecord, error) {
	var result []model.CourseRecord
	for _, r := range m.records {
		if r.StudentID == studentID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CompletedOn != result[j].CompletedOn {
			return result[i].CompletedOn < result[j].CompletedOn
		}
		return result[i].CourseRecordID < result[j].CourseRecordID
	})
	return result, nil
}

func (m *mockCourseRecordRepo) Update(_ context.Context, record *model.CourseRecord) error {
	existing, ok := m.records[record.CourseRecordID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing.Version != record.Version {
		return pkgerrors.ErrOptimisticLock
	}
	record.Version++
	m.records[record.CourseRecordID] = record
	return nil
}

func (m *mockCourseRecordRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.records, id)
	return nil
}

// ── Mock ApprovalIntervalRepository ──

type mockApprovalIntervalRepo struct {
	intervals []model.ApprovalInterval
	listErr   error // 模拟查询失败
}

func newMockApprovalIntervalRepo() *mockApprovalIntervalRepo {
	return &mockApprovalIntervalRepo{}
}

func (m *mockApprovalIntervalRepo) ListAll(_ context.Context) ([]model.ApprovalInterval, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.ApprovalInterval, len(m.intervals))
	copy(result, m.intervals)
	return result, nil
}

func (m *mockApprovalIntervalRepo) ListByKey(_ context.Context, courseKey string) ([]model.ApprovalInterval, error) {
	var result []model.ApprovalInterval
	for _, iv := range m.intervals {
		if iv.CourseKey == courseKey {
			result = append(result, iv)
		}
	}
	return result, nil
}

func (m *mockApprovalIntervalRepo) ReplaceAll(_ context.Context, intervals []model.ApprovalInterval) error {
	m.intervals = make([]model.ApprovalInterval, len(intervals))
	copy(m.intervals, intervals)
	return nil
}
