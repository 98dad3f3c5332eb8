package repository

import (
	"context"
	"time"

	"github.com/wharflog-dev/wharflog/backend/internal/domain"
	"github.com/wharflog-dev/wharflog/backend/internal/ledger"
)

func (r *Repository) CreateUserLedger(l *domain.UserLedger) error {
	query := `
		INSERT INTO user_ledgers (user_id, sick_days_available, personal_leave_available)
		VALUES ($1, $2, $3)
		RETURNING xp, points, sick_days_used, personal_leave_used, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{l.UserID, l.SickDaysAvailable, l.PersonalLeaveAvailable}
	dst := []any{&l.XP, &l.Points, &l.SickDaysUsed, &l.PersonalLeaveUsed, &l.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetUserLedger(userID int64) (*domain.UserLedger, error) {
	query := `
		SELECT
			xp, points,
			sick_days_used, sick_days_available,
			personal_leave_used, personal_leave_available,
			sick_leave_start, sick_leave_end,
			personal_leave_start, personal_leave_end,
			created_at
		FROM user_ledgers WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	l := &domain.UserLedger{
		UserID: userID,
	}

	dst := []any{
		&l.XP, &l.Points,
		&l.SickDaysUsed, &l.SickDaysAvailable,
		&l.PersonalLeaveUsed, &l.PersonalLeaveAvailable,
		&l.SickLeaveStart, &l.SickLeaveEnd,
		&l.PersonalLeaveStart, &l.PersonalLeaveEnd,
		&l.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return l, nil
}

// ApplyLeaveDelta 用单条语句原子地更新请假计数器，下调不会低于 0。
// 返回更新前后的计数值，调用方据此观察钳制和额度耗尽。
// 同一个用户的并发更新会在这条语句的行锁上串行化，不会丢失更新
func (r *Repository) ApplyLeaveDelta(userID int64, delta ledger.Delta) (*domain.LeaveCounters, error) {
	query := `
		WITH prev AS (
			SELECT sick_days_used, personal_leave_used
			FROM user_ledgers WHERE user_id = $1
			FOR UPDATE
		)
		UPDATE user_ledgers l
		SET
			sick_days_used = GREATEST(0, l.sick_days_used + $2),
			personal_leave_used = GREATEST(0, l.personal_leave_used + $3)
		FROM prev
		WHERE l.user_id = $1
		RETURNING
			prev.sick_days_used, prev.personal_leave_used,
			l.sick_days_used, l.personal_leave_used,
			l.sick_days_available, l.personal_leave_available
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	c := &domain.LeaveCounters{}
	dst := []any{
		&c.PrevSickDaysUsed, &c.PrevPersonalLeaveUsed,
		&c.SickDaysUsed, &c.PersonalLeaveUsed,
		&c.SickDaysAvailable, &c.PersonalLeaveAvailable,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, userID, delta.Sick, delta.Personal).Scan(dst...); err != nil {
		return nil, err
	}

	return c, nil
}

// AddXPAndPoints 原子地累加经验和积分
func (r *Repository) AddXPAndPoints(userID int64, xp int64, points int64) error {
	query := `
		UPDATE user_ledgers SET xp = xp + $2, points = points + $3 WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, userID, xp, points)
	if err != nil {
		return err
	}

	return nil
}

// UpdateLedgerBenefits 更新配置的假期额度和适用区间，不触碰使用量和经验积分
func (r *Repository) UpdateLedgerBenefits(l *domain.UserLedger) error {
	query := `
		UPDATE user_ledgers
		SET
			sick_days_available = $1,
			personal_leave_available = $2,
			sick_leave_start = $3,
			sick_leave_end = $4,
			personal_leave_start = $5,
			personal_leave_end = $6
		WHERE user_id = $7
		RETURNING xp, points, sick_days_used, personal_leave_used
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		l.SickDaysAvailable, l.PersonalLeaveAvailable,
		l.SickLeaveStart, l.SickLeaveEnd,
		l.PersonalLeaveStart, l.PersonalLeaveEnd,
		l.UserID,
	}
	dst := []any{&l.XP, &l.Points, &l.SickDaysUsed, &l.PersonalLeaveUsed}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}
