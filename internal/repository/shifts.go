package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

// 班次在数据库中按平铺列存储，读取时根据 entry_type 还原成带负载的记录
type shiftRow struct {
	job                sql.NullString
	subjob             sql.NullString
	location           sql.NullString
	shiftType          sql.NullString
	hours              sql.NullFloat64
	overtimeHours      sql.NullFloat64
	travelHours        sql.NullFloat64
	rate               sql.NullFloat64
	overtimeRate       sql.NullFloat64
	includeMeal        sql.NullBool
	foreman            sql.NullString
	vessel             sql.NullString
	willReceivePaystub sql.NullBool
	leaveType          sql.NullString
	holidayName        sql.NullString
	qualifyingDays     sql.NullInt32
	totalPay           sql.NullFloat64
	notes              sql.NullString
}

func (row *shiftRow) dst(s *domain.ShiftEntry) []any {
	return []any{
		&s.ID, &s.UserID, &s.Date, &s.EntryType,
		&row.job, &row.subjob, &row.location, &row.shiftType,
		&row.hours, &row.overtimeHours, &row.travelHours,
		&row.rate, &row.overtimeRate, &row.includeMeal,
		&row.foreman, &row.vessel, &row.willReceivePaystub,
		&row.leaveType, &row.holidayName, &row.qualifyingDays,
		&row.totalPay, &s.PointsEarned, &row.notes,
		&s.CreatedAt, &s.Version,
	}
}

func (row *shiftRow) restore(s *domain.ShiftEntry) {
	switch s.EntryType {
	case domain.EntryWorked:
		s.Worked = &domain.WorkedDetails{
			Job:                row.job.String,
			Subjob:             row.subjob.String,
			Location:           row.location.String,
			ShiftType:          domain.ShiftType(row.shiftType.String),
			Hours:              row.hours.Float64,
			OvertimeHours:      row.overtimeHours.Float64,
			TravelHours:        row.travelHours.Float64,
			IncludeMeal:        row.includeMeal.Bool,
			Foreman:            row.foreman.String,
			Vessel:             row.vessel.String,
			WillReceivePaystub: row.willReceivePaystub.Bool,
		}
		if row.rate.Valid {
			s.Worked.Rate = &row.rate.Float64
		}
		if row.overtimeRate.Valid {
			s.Worked.OvertimeRate = &row.overtimeRate.Float64
		}
	case domain.EntryLeave:
		s.Leave = &domain.LeaveDetails{LeaveType: domain.LeaveType(row.leaveType.String)}
	case domain.EntryStatHoliday:
		s.StatHoliday = &domain.StatHolidayDetails{
			HolidayName:    row.holidayName.String,
			QualifyingDays: row.qualifyingDays.Int32,
		}
	}

	if row.totalPay.Valid {
		s.TotalPay = &row.totalPay.Float64
	}
	s.Notes = row.notes.String
}

func shiftArgs(s *domain.ShiftEntry) []any {
	var (
		job, subjob, location, shiftType                      sql.NullString
		hours, overtimeHours, travelHours, rate, overtimeRate sql.NullFloat64
		includeMeal, willReceivePaystub                       sql.NullBool
		foreman, vessel                                       sql.NullString
		leaveType, holidayName                                sql.NullString
		qualifyingDays                                        sql.NullInt32
		totalPay                                              sql.NullFloat64
	)

	if s.Worked != nil {
		job = sql.NullString{String: s.Worked.Job, Valid: true}
		subjob = sql.NullString{String: s.Worked.Subjob, Valid: s.Worked.Subjob != ""}
		location = sql.NullString{String: s.Worked.Location, Valid: true}
		shiftType = sql.NullString{String: string(s.Worked.ShiftType), Valid: true}
		hours = sql.NullFloat64{Float64: s.Worked.Hours, Valid: true}
		overtimeHours = sql.NullFloat64{Float64: s.Worked.OvertimeHours, Valid: true}
		travelHours = sql.NullFloat64{Float64: s.Worked.TravelHours, Valid: true}
		if s.Worked.Rate != nil {
			rate = sql.NullFloat64{Float64: *s.Worked.Rate, Valid: true}
		}
		if s.Worked.OvertimeRate != nil {
			overtimeRate = sql.NullFloat64{Float64: *s.Worked.OvertimeRate, Valid: true}
		}
		includeMeal = sql.NullBool{Bool: s.Worked.IncludeMeal, Valid: true}
		foreman = sql.NullString{String: s.Worked.Foreman, Valid: s.Worked.Foreman != ""}
		vessel = sql.NullString{String: s.Worked.Vessel, Valid: s.Worked.Vessel != ""}
		willReceivePaystub = sql.NullBool{Bool: s.Worked.WillReceivePaystub, Valid: true}
	}
	if s.Leave != nil {
		leaveType = sql.NullString{String: string(s.Leave.LeaveType), Valid: true}
	}
	if s.StatHoliday != nil {
		holidayName = sql.NullString{String: s.StatHoliday.HolidayName, Valid: s.StatHoliday.HolidayName != ""}
		qualifyingDays = sql.NullInt32{Int32: s.StatHoliday.QualifyingDays, Valid: s.StatHoliday.QualifyingDays != 0}
	}
	if s.TotalPay != nil {
		totalPay = sql.NullFloat64{Float64: *s.TotalPay, Valid: true}
	}

	return []any{
		job, subjob, location, shiftType,
		hours, overtimeHours, travelHours, rate, overtimeRate, includeMeal,
		foreman, vessel, willReceivePaystub,
		leaveType, holidayName, qualifyingDays,
		totalPay, s.PointsEarned, sql.NullString{String: s.Notes, Valid: s.Notes != ""},
	}
}

const shiftColumns = `
	id, user_id, date, entry_type,
	job, subjob, location, shift_type,
	hours, overtime_hours, travel_hours,
	rate, overtime_rate, include_meal,
	foreman, vessel, will_receive_paystub,
	leave_type, holiday, qualifying_days,
	total_pay, points_earned, notes,
	created_at, version
`

func (r *Repository) InsertShift(s *domain.ShiftEntry) error {
	query := `
		INSERT INTO shifts (
			id, user_id, date, entry_type,
			job, subjob, location, shift_type,
			hours, overtime_hours, travel_hours, rate, overtime_rate, include_meal,
			foreman, vessel, will_receive_paystub,
			leave_type, holiday, qualifying_days,
			total_pay, points_earned, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := append([]any{s.ID, s.UserID, s.Date, s.EntryType}, shiftArgs(s)...)
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt, &s.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShift(userID int64, id uuid.UUID) (*domain.ShiftEntry, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts WHERE id = $1 AND user_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	s := &domain.ShiftEntry{}
	row := &shiftRow{}
	if err := r.dbpool.QueryRowContext(ctx, query, id, userID).Scan(row.dst(s)...); err != nil {
		return nil, err
	}
	row.restore(s)

	return s, nil
}

func (r *Repository) UpdateShift(s *domain.ShiftEntry) error {
	query := `
		UPDATE shifts
		SET
			date = $1,
			entry_type = $2,
			job = $3,
			subjob = $4,
			location = $5,
			shift_type = $6,
			hours = $7,
			overtime_hours = $8,
			travel_hours = $9,
			rate = $10,
			overtime_rate = $11,
			include_meal = $12,
			foreman = $13,
			vessel = $14,
			will_receive_paystub = $15,
			leave_type = $16,
			holiday = $17,
			qualifying_days = $18,
			total_pay = $19,
			points_earned = $20,
			notes = $21,
			version = version + 1
		WHERE id = $22 AND user_id = $23 AND version = $24
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := append([]any{s.Date, s.EntryType}, shiftArgs(s)...)
	args = append(args, s.ID, s.UserID, s.Version)
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&s.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShift(userID int64, id uuid.UUID) error {
	query := `
		DELETE FROM shifts WHERE id = $1 AND user_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *Repository) GetShiftsByUser(userID int64, start, end *time.Time) ([]*domain.ShiftEntry, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			AND ($3::date IS NULL OR date <= $3)
		ORDER BY date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.ShiftEntry, 0)
	for rows.Next() {
		s := &domain.ShiftEntry{}
		row := &shiftRow{}
		if err := rows.Scan(row.dst(s)...); err != nil {
			return nil, err
		}
		row.restore(s)
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// GetWorkedDates 返回用户所有 worked 班次的日期，用于连击和法定假日合资格计算
func (r *Repository) GetWorkedDates(userID int64) ([]time.Time, error) {
	query := `
		SELECT date FROM shifts WHERE user_id = $1 AND entry_type = 'worked' ORDER BY date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}
