package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/wharflog-dev/wharflog/backend/internal/config"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
	"github.com/wharflog-dev/wharflog/backend/internal/engine"
	"github.com/wharflog-dev/wharflog/backend/internal/repository"
	"github.com/wharflog-dev/wharflog/backend/internal/seed"
	"github.com/wharflog-dev/wharflog/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var userID int64
	var year int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机用户, 2: 为指定用户插入随机班次, 3: 插入法定假日, 4: 导入固定时数表)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&userID, "user-id", 0, "随机插入班次的用户 ID")
	flag.IntVar(&year, "year", time.Now().Year(), "插入法定假日的年份")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的用户数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("无法生成随机用户", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("无法插入用户", slog.String("error", err.Error()))
					continue
				}

				ledger := &domain.UserLedger{
					UserID:                 user.ID,
					SickDaysAvailable:      cfg.Benefits.SickDaysAvailable,
					PersonalLeaveAvailable: cfg.Benefits.PersonalLeaveAvailable,
				}
				if err := repo.CreateUserLedger(ledger); err != nil {
					slog.Error("无法插入用户账本", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入用户成功", slog.Int("count", n-cnt))
		}
	case 2:
		if userID <= 0 {
			slog.Error("请输入合法的用户 ID")
			return
		}
		if n <= 0 {
			slog.Error("请输入合法的班次数量")
			return
		}

		// 走 engine 创建班次，使得薪酬、积分和请假计数一并结算
		eng := engine.New(repo, logger)

		// 在过去一年内随机挑不重复的日期
		days := rand.Perm(365)[:min(n, 365)]

		cnt := 0
		for _, d := range days {
			date := time.Now().AddDate(0, 0, -d)
			entry := utils.GenerateRandomShift(userID, date)
			if _, err := eng.CreateShift(entry); err != nil {
				slog.Error("无法插入班次", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("插入班次成功", slog.Int("count", cnt))
	case 3:
		seed.SeedHolidays(repo, year)
	case 4:
		seed.SeedPayOverrides(repo)
	default:
		slog.Error("指定的操作非法")
	}
}
