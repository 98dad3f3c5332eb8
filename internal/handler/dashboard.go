package handler

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wharflog-dev/wharflog/backend/internal/gamification"
	"github.com/wharflog-dev/wharflog/backend/internal/holiday"
)

// GetGamificationSummary 汇总当前用户的经验、徽章、升级进度、连击和排行榜名次
func (h *Handler) GetGamificationSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	ledger, err := h.repository.GetUserLedger(userID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "账本不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	workedDates, err := h.repository.GetWorkedDates(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	summary := map[string]any{
		"xp":       ledger.XP,
		"points":   ledger.Points,
		"badge":    gamification.GetBadgeLevel(ledger.XP),
		"progress": gamification.ProgressToNextLevel(ledger.XP),
		"streak":   gamification.ComputeStreak(workedDates, time.Now()),
		"levels":   gamification.BadgeLevels(),
	}

	// 排行榜名次从 redis 读取，拿不到时不影响其余数据
	if rank, score, ok := h.leaderboardRank(userID); ok {
		summary["leaderboard"] = map[string]any{
			"rank":   rank,
			"points": score,
		}
	}

	h.successResponse(w, r, "获取游戏化数据成功", summary)
}

// GetHolidayQualifications 对所有法定假日重新计算当前用户的合资格情况
func (h *Handler) GetHolidayQualifications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	workedDates, err := h.repository.GetWorkedDates(userID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	results := make([]holiday.QualificationResult, 0, len(holidays))
	for _, hd := range holidays {
		results = append(results, holiday.Evaluate(hd, workedDates))
	}

	h.successResponse(w, r, "获取假日合资格情况成功", results)
}

// leaderboardRank 返回用户在积分排行榜中的名次（从 1 开始）和积分
func (h *Handler) leaderboardRank(userID int64) (int64, int64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	member := strconv.FormatInt(userID, 10)

	rank, err := h.redisClient.ZRevRank(ctx, pointsLeaderboardKey, member).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("读取排行榜名次失败", "userID", userID, "error", err)
		}
		return 0, 0, false
	}

	score, err := h.redisClient.ZScore(ctx, pointsLeaderboardKey, member).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("读取排行榜积分失败", "userID", userID, "error", err)
		}
		return 0, 0, false
	}

	return rank + 1, int64(score), true
}
