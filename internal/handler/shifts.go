package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
	"github.com/wharflog-dev/wharflog/backend/internal/engine"
)

const pointsLeaderboardKey = "leaderboard:points"

type workedPayload struct {
	Job                string   `json:"job" validate:"required"`
	Subjob             string   `json:"subjob"`
	Location           string   `json:"location" validate:"required"`
	ShiftType          string   `json:"shiftType" validate:"required,oneof=day night graveyard"`
	Hours              float64  `json:"hours" validate:"min=0,max=24"`
	OvertimeHours      float64  `json:"overtimeHours" validate:"min=0,max=24"`
	TravelHours        float64  `json:"travelHours" validate:"min=0,max=24"`
	Rate               *float64 `json:"rate" validate:"omitempty,min=0"`
	OvertimeRate       *float64 `json:"overtimeRate" validate:"omitempty,min=0"`
	IncludeMeal        bool     `json:"includeMeal"`
	Foreman            string   `json:"foreman"`
	Vessel             string   `json:"vessel"`
	WillReceivePaystub bool     `json:"willReceivePaystub"`
}

func (p *workedPayload) toDomain() *domain.WorkedDetails {
	return &domain.WorkedDetails{
		Job:                p.Job,
		Subjob:             p.Subjob,
		Location:           p.Location,
		ShiftType:          domain.ShiftType(p.ShiftType),
		Hours:              p.Hours,
		OvertimeHours:      p.OvertimeHours,
		TravelHours:        p.TravelHours,
		Rate:               p.Rate,
		OvertimeRate:       p.OvertimeRate,
		IncludeMeal:        p.IncludeMeal,
		Foreman:            p.Foreman,
		Vessel:             p.Vessel,
		WillReceivePaystub: p.WillReceivePaystub,
	}
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	var req struct {
		Date           string         `json:"date" validate:"required,datetime=2006-01-02"`
		EntryType      string         `json:"entryType" validate:"required,oneof=worked leave vacation standby stat_holiday day_off"`
		Worked         *workedPayload `json:"worked"`
		LeaveType      *string        `json:"leaveType" validate:"omitempty,oneof=sick_leave personal_leave parental_leave"`
		HolidayID      *string        `json:"holidayID" validate:"omitempty,uuid"`
		HolidayName    *string        `json:"holidayName"`
		QualifyingDays *string        `json:"qualifyingDays"`
		TotalPay       *float64       `json:"totalPay" validate:"omitempty,min=0"`
		Notes          string         `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.errorResponse(w, r, "日期格式无效")
		return
	}

	entry := &domain.ShiftEntry{
		UserID:    userID,
		Date:      date,
		EntryType: domain.EntryType(req.EntryType),
		TotalPay:  req.TotalPay,
		Notes:     req.Notes,
	}

	switch entry.EntryType {
	case domain.EntryWorked:
		if req.Worked != nil {
			entry.Worked = req.Worked.toDomain()
		}
	case domain.EntryLeave:
		if req.LeaveType != nil {
			entry.Leave = &domain.LeaveDetails{LeaveType: domain.LeaveType(*req.LeaveType)}
		}
	case domain.EntryStatHoliday:
		entry.StatHoliday = &domain.StatHolidayDetails{}
		if req.HolidayName != nil {
			entry.StatHoliday.HolidayName = *req.HolidayName
		}
		if req.HolidayID != nil {
			holidayID, err := uuid.Parse(*req.HolidayID)
			if err != nil {
				h.errorResponse(w, r, "假日ID无效")
				return
			}
			holiday, err := h.repository.GetHolidayByID(holidayID)
			if err != nil {
				switch {
				case errors.Is(err, sql.ErrNoRows):
					h.errorResponse(w, r, "假日不存在")
				default:
					h.internalServerError(w, r, err)
				}
				return
			}
			entry.StatHoliday.HolidayName = holiday.Name
		}
		if req.QualifyingDays != nil {
			entry.StatHoliday.QualifyingDays = engine.NormalizeQualifyingDays(*req.QualifyingDays)
		}
	}

	effects, err := h.engine.CreateShift(entry)
	if err != nil {
		validationErr := &engine.ValidationError{}
		switch {
		case errors.As(err, &validationErr):
			h.errorResponse(w, r, validationErr.Reason)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.updateLeaderboard(userID, effects.PointsEarned)
	h.notifyLeaveExhausted(userID, effects)

	h.successResponse(w, r, "记录创建成功", entry)
}

func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	var start, end *time.Time
	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.errorResponse(w, r, "起始日期格式无效")
			return
		}
		start = &t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.errorResponse(w, r, "结束日期格式无效")
			return
		}
		end = &t
	}

	shifts, err := h.repository.GetShiftsByUser(userID, start, end)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取记录成功", shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtxKey).(*domain.ShiftEntry)
	h.successResponse(w, r, "获取记录成功", shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)
	shift := r.Context().Value(ShiftCtxKey).(*domain.ShiftEntry)

	var req struct {
		Date           *string        `json:"date" validate:"omitempty,datetime=2006-01-02"`
		EntryType      *string        `json:"entryType" validate:"omitempty,oneof=worked leave vacation standby stat_holiday day_off"`
		Worked         *workedPayload `json:"worked"`
		LeaveType      *string        `json:"leaveType" validate:"omitempty,oneof=sick_leave personal_leave parental_leave"`
		HolidayID      *string        `json:"holidayID" validate:"omitempty,uuid"`
		HolidayName    *string        `json:"holidayName"`
		QualifyingDays *string        `json:"qualifyingDays"`
		TotalPay       *float64       `json:"totalPay" validate:"omitempty,min=0"`
		Notes          *string        `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	upd := &engine.ShiftUpdate{
		QualifyingDays: req.QualifyingDays,
		HolidayName:    req.HolidayName,
		TotalPay:       req.TotalPay,
		Notes:          req.Notes,
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
		upd.Date = &date
	}
	if req.EntryType != nil {
		entryType := domain.EntryType(*req.EntryType)
		upd.EntryType = &entryType
	}
	if req.Worked != nil {
		upd.Worked = req.Worked.toDomain()
	}
	if req.LeaveType != nil {
		leaveType := domain.LeaveType(*req.LeaveType)
		upd.LeaveType = &leaveType
	}
	if req.HolidayID != nil {
		holidayID, err := uuid.Parse(*req.HolidayID)
		if err != nil {
			h.errorResponse(w, r, "假日ID无效")
			return
		}
		upd.HolidayID = &holidayID
	}

	next, effects, err := h.engine.UpdateShift(userID, shift.ID, upd)
	if err != nil {
		validationErr := &engine.ValidationError{}
		switch {
		case errors.Is(err, engine.ErrShiftNotFound):
			h.errorResponse(w, r, "班次不存在，请刷新后重试")
		case errors.Is(err, engine.ErrHolidayNotFound):
			h.errorResponse(w, r, "假日不存在")
		case errors.As(err, &validationErr):
			h.errorResponse(w, r, validationErr.Reason)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyLeaveExhausted(userID, effects)

	h.successResponse(w, r, "记录更新成功", next)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)
	shift := r.Context().Value(ShiftCtxKey).(*domain.ShiftEntry)

	_, err := h.engine.DeleteShift(userID, shift.ID)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrShiftNotFound):
			h.errorResponse(w, r, "班次不存在，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "记录删除成功", nil)
}

// updateLeaderboard 把新获得的积分同步到 redis 排行榜，失败只记录日志
func (h *Handler) updateLeaderboard(userID int64, points int64) {
	if points <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	member := strconv.FormatInt(userID, 10)
	if err := h.redisClient.ZIncrBy(ctx, pointsLeaderboardKey, float64(points), member).Err(); err != nil {
		slog.Warn("排行榜更新失败", "userID", userID, "points", points, "error", err)
	}
}

// notifyLeaveExhausted 在假期额度用尽时向用户发送提醒邮件，失败只记录日志
func (h *Handler) notifyLeaveExhausted(userID int64, effects *engine.MutationEffects) {
	if effects == nil || effects.ExhaustedLeave == nil {
		return
	}

	user, err := h.repository.GetUserByID(userID)
	if err != nil {
		slog.Warn("获取用户信息失败，无法发送假期提醒邮件", "userID", userID, "error", err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "leave_exhausted",
		To:   user.Email,
		Data: domain.LeaveExhaustedMailData{
			FullName:  user.FullName,
			LeaveType: string(effects.ExhaustedLeave.LeaveType),
			Used:      effects.ExhaustedLeave.Used,
			Available: effects.ExhaustedLeave.Available,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Warn("序列化假期提醒邮件失败", "userID", userID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Warn("发送假期提醒邮件失败", "userID", userID, "error", err)
	}
}
