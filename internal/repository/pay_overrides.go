package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

func (r *Repository) GetAllPayOverrides() ([]*domain.PayOverride, error) {
	query := `
		SELECT id, job, subjob, location, shift_type, hours, overtime_hours
		FROM pay_overrides
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make([]*domain.PayOverride, 0)
	for rows.Next() {
		o := &domain.PayOverride{}
		var subjob sql.NullString
		dst := []any{&o.ID, &o.Job, &subjob, &o.Location, &o.ShiftType, &o.Hours, &o.OvertimeHours}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		o.Subjob = subjob.String
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

// UpsertPayOverride 按 (job, subjob, location, shift_type) 去重插入固定时数
func (r *Repository) UpsertPayOverride(o *domain.PayOverride) error {
	query := `
		INSERT INTO pay_overrides (job, subjob, location, shift_type, hours, overtime_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (job, subjob, location, shift_type)
		DO UPDATE SET hours = EXCLUDED.hours, overtime_hours = EXCLUDED.overtime_hours
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	subjob := sql.NullString{String: o.Subjob, Valid: o.Subjob != ""}
	args := []any{o.Job, subjob, o.Location, o.ShiftType, o.Hours, o.OvertimeHours}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&o.ID); err != nil {
		return err
	}

	return nil
}
