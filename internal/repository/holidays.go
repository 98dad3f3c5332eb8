package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

func (r *Repository) GetAllHolidays() ([]*domain.Holiday, error) {
	query := `
		SELECT id, name, date, qualifying_start, qualifying_end, created_at
		FROM holidays ORDER BY date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		h := &domain.Holiday{}
		dst := []any{&h.ID, &h.Name, &h.Date, &h.QualifyingStart, &h.QualifyingEnd, &h.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *Repository) GetHolidayByID(id uuid.UUID) (*domain.Holiday, error) {
	query := `
		SELECT name, date, qualifying_start, qualifying_end, created_at
		FROM holidays WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	h := &domain.Holiday{
		ID: id,
	}

	dst := []any{&h.Name, &h.Date, &h.QualifyingStart, &h.QualifyingEnd, &h.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return h, nil
}

func (r *Repository) CreateHoliday(h *domain.Holiday) error {
	query := `
		INSERT INTO holidays (id, name, date, qualifying_start, qualifying_end)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}

	args := []any{h.ID, h.Name, h.Date, h.QualifyingStart, h.QualifyingEnd}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&h.CreatedAt); err != nil {
		return err
	}

	return nil
}
