// Package engine 实现班次核算的编排逻辑：每一次班次的创建、修改和删除
// 都由本包调用薪酬计算、游戏化计算和请假计数核算，并把结果写回存储。
// 班次记录本身是事实来源，账本更新是尽力而为的，失败只记录日志不回滚班次
package engine

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
	"github.com/wharflog-dev/wharflog/backend/internal/gamification"
	"github.com/wharflog-dev/wharflog/backend/internal/ledger"
	"github.com/wharflog-dev/wharflog/backend/internal/pay"
)

// Store 是引擎依赖的记录存储，所有方法都要求在单条记录层面是原子的
type Store interface {
	GetShift(userID int64, id uuid.UUID) (*domain.ShiftEntry, error)
	InsertShift(s *domain.ShiftEntry) error
	UpdateShift(s *domain.ShiftEntry) error
	DeleteShift(userID int64, id uuid.UUID) error
	GetHolidayByID(id uuid.UUID) (*domain.Holiday, error)
	ApplyLeaveDelta(userID int64, delta ledger.Delta) (*domain.LeaveCounters, error)
	AddXPAndPoints(userID int64, xp int64, points int64) error
}

type Engine struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger,
	}
}

// ExhaustedLeave 表示本次修改把某类假期的额度用光了
type ExhaustedLeave struct {
	LeaveType domain.LeaveType
	Used      int32
	Available int32
}

// MutationEffects 汇总一次班次修改对账本产生的影响，供调用方做后续通知
type MutationEffects struct {
	XPEarned       int64
	PointsEarned   int64
	LeaveDelta     ledger.Delta
	ExhaustedLeave *ExhaustedLeave
}

// 删除班次时是否回收经验和积分。参考实现从不回收（先创建再删除可以刷经验），
// 行为是否合理存疑，集中放在这里方便将来只改一处
func reverseGamificationOnDelete() bool {
	return false
}

func classify(s *domain.ShiftEntry) *ledger.Classification {
	c := &ledger.Classification{EntryType: s.EntryType}
	if s.Leave != nil {
		c.LeaveType = s.Leave.LeaveType
	}
	return c
}

// CreateShift 校验并持久化一个新班次。worked 类型且没有提供总薪酬时自动计算薪酬，
// 积分按最终薪酬在此刻一次性结算。校验失败时不会有任何写入
func (e *Engine) CreateShift(entry *domain.ShiftEntry) (*MutationEffects, error) {
	if err := entry.Validate(); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	e.fillComputedPay(entry)
	entry.PointsEarned = int32(gamification.PointsForPay(entry.TotalPay))

	if err := e.store.InsertShift(entry); err != nil {
		return nil, err
	}

	effects := &MutationEffects{
		XPEarned:     gamification.XPForEntry(entry.EntryType),
		PointsEarned: int64(entry.PointsEarned),
		LeaveDelta:   ledger.Reconcile(nil, classify(entry)),
	}

	e.applyLeaveDelta(entry.UserID, effects)

	if err := e.store.AddXPAndPoints(entry.UserID, effects.XPEarned, effects.PointsEarned); err != nil {
		// 经验和积分更新失败不影响班次创建
		e.logger.Warn("经验和积分更新失败", "userID", entry.UserID, "shiftID", entry.ID, "error", err)
	}

	return effects, nil
}

// UpdateShift 加载已存班次，套用修改后重新校验并持久化，
// 再根据修改前后的分类核算请假计数器。经验和积分在修改时不重新结算
func (e *Engine) UpdateShift(userID int64, id uuid.UUID, upd *ShiftUpdate) (*domain.ShiftEntry, *MutationEffects, error) {
	prior, err := e.store.GetShift(userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrShiftNotFound
		}
		return nil, nil, err
	}

	next, err := e.applyUpdate(prior, upd)
	if err != nil {
		return nil, nil, err
	}

	if err := next.Validate(); err != nil {
		return nil, nil, &ValidationError{Reason: err.Error()}
	}

	e.fillComputedPay(next)

	if err := e.store.UpdateShift(next); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrShiftNotFound
		}
		return nil, nil, err
	}

	effects := &MutationEffects{
		LeaveDelta: ledger.Reconcile(classify(prior), classify(next)),
	}

	e.applyLeaveDelta(userID, effects)

	return next, effects, nil
}

// DeleteShift 删除班次并按它最后的已存状态反向核算请假计数器。
// 经验和积分不随删除回收
func (e *Engine) DeleteShift(userID int64, id uuid.UUID) (*MutationEffects, error) {
	prior, err := e.store.GetShift(userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}

	if err := e.store.DeleteShift(userID, id); err != nil {
		return nil, err
	}

	effects := &MutationEffects{
		LeaveDelta: ledger.Reconcile(classify(prior), nil),
	}

	e.applyLeaveDelta(userID, effects)

	if reverseGamificationOnDelete() {
		xp := -gamification.XPForEntry(prior.EntryType)
		points := -int64(prior.PointsEarned)
		if err := e.store.AddXPAndPoints(userID, xp, points); err != nil {
			e.logger.Warn("经验和积分回收失败", "userID", userID, "shiftID", id, "error", err)
		}
	}

	return effects, nil
}

// fillComputedPay 为缺少总薪酬的 worked 班次计算薪酬，并补上派生的费率
func (e *Engine) fillComputedPay(entry *domain.ShiftEntry) {
	if entry.EntryType != domain.EntryWorked || entry.Worked == nil || entry.TotalPay != nil {
		return
	}

	if _, ok := pay.DifferentialForJob(entry.Worked.Job); !ok {
		e.logger.Warn("未知工种，按基础差额计算薪酬", "job", entry.Worked.Job)
	}

	result := pay.CalculateShiftPay(pay.ShiftPayInput{
		Job:           entry.Worked.Job,
		Hours:         entry.Worked.Hours,
		OvertimeHours: entry.Worked.OvertimeHours,
		TravelHours:   entry.Worked.TravelHours,
		IncludeMeal:   entry.Worked.IncludeMeal,
	})

	entry.TotalPay = &result.TotalPay
	if entry.Worked.Rate == nil {
		entry.Worked.Rate = &result.RegularRate
	}
	if entry.Worked.OvertimeRate == nil {
		entry.Worked.OvertimeRate = &result.OvertimeRate
	}
}

// applyLeaveDelta 把请假计数器增减量写入账本。存储层保证计数器不会为负，
// 这里负责观察钳制和额度耗尽，更新失败只记录日志
func (e *Engine) applyLeaveDelta(userID int64, effects *MutationEffects) {
	delta := effects.LeaveDelta
	if delta.IsZero() {
		return
	}

	counters, err := e.store.ApplyLeaveDelta(userID, delta)
	if err != nil {
		e.logger.Warn("请假计数器更新失败", "userID", userID, "sickDelta", delta.Sick, "personalDelta", delta.Personal, "error", err)
		return
	}

	if counters.PrevSickDaysUsed+delta.Sick < 0 {
		e.logger.Warn("病假计数器下调被钳制为 0", "userID", userID, "prev", counters.PrevSickDaysUsed, "delta", delta.Sick)
	}
	if counters.PrevPersonalLeaveUsed+delta.Personal < 0 {
		e.logger.Warn("事假计数器下调被钳制为 0", "userID", userID, "prev", counters.PrevPersonalLeaveUsed, "delta", delta.Personal)
	}

	if delta.Sick > 0 && counters.SickDaysUsed >= counters.SickDaysAvailable {
		effects.ExhaustedLeave = &ExhaustedLeave{
			LeaveType: domain.LeaveSick,
			Used:      counters.SickDaysUsed,
			Available: counters.SickDaysAvailable,
		}
	}
	if delta.Personal > 0 && counters.PersonalLeaveUsed >= counters.PersonalLeaveAvailable {
		effects.ExhaustedLeave = &ExhaustedLeave{
			LeaveType: domain.LeavePersonal,
			Used:      counters.PersonalLeaveUsed,
			Available: counters.PersonalLeaveAvailable,
		}
	}
}
