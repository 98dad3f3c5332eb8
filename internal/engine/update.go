package engine

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

// ShiftUpdate 描述一次班次修改，为 nil 的字段表示保持不变
type ShiftUpdate struct {
	Date           *time.Time
	EntryType      *domain.EntryType
	Worked         *domain.WorkedDetails
	LeaveType      *domain.LeaveType
	HolidayID      *uuid.UUID
	HolidayName    *string
	QualifyingDays *string
	TotalPay       *float64
	Notes          *string
}

func cloneShift(s *domain.ShiftEntry) *domain.ShiftEntry {
	c := *s
	if s.Worked != nil {
		w := *s.Worked
		c.Worked = &w
	}
	if s.Leave != nil {
		l := *s.Leave
		c.Leave = &l
	}
	if s.StatHoliday != nil {
		h := *s.StatHoliday
		c.StatHoliday = &h
	}
	if s.TotalPay != nil {
		p := *s.TotalPay
		c.TotalPay = &p
	}
	return &c
}

// NormalizeQualifyingDays 把合资格天数档位归一化为 14 或 15
func NormalizeQualifyingDays(bucket string) int32 {
	switch {
	case bucket == "15+" || strings.HasPrefix(bucket, "15"):
		return 15
	case bucket == "1-14" || strings.Contains(bucket, "14"):
		return 14
	}

	n, err := strconv.Atoi(bucket)
	if err != nil {
		return 0
	}
	return int32(n)
}

// applyUpdate 在已存班次的副本上套用修改。记录类型发生变化时，
// 不再匹配的负载会被清空，留给 Validate 检查新负载是否齐全
func (e *Engine) applyUpdate(prior *domain.ShiftEntry, upd *ShiftUpdate) (*domain.ShiftEntry, error) {
	next := cloneShift(prior)

	if upd.Date != nil {
		next.Date = *upd.Date
	}
	if upd.EntryType != nil {
		next.EntryType = *upd.EntryType
	}
	if upd.TotalPay != nil {
		next.TotalPay = upd.TotalPay
	}
	if upd.Notes != nil {
		next.Notes = *upd.Notes
	}

	switch next.EntryType {
	case domain.EntryWorked:
		next.Leave, next.StatHoliday = nil, nil
		if upd.Worked != nil {
			w := *upd.Worked
			next.Worked = &w
		}
	case domain.EntryLeave:
		next.Worked, next.StatHoliday = nil, nil
		if upd.LeaveType != nil {
			next.Leave = &domain.LeaveDetails{LeaveType: *upd.LeaveType}
		}
	case domain.EntryStatHoliday:
		next.Worked, next.Leave = nil, nil
		if next.StatHoliday == nil {
			next.StatHoliday = &domain.StatHolidayDetails{}
		}
		if upd.HolidayName != nil {
			next.StatHoliday.HolidayName = *upd.HolidayName
		}
		if upd.HolidayID != nil {
			// 把假日 ID 解析成假日名称后再持久化
			h, err := e.store.GetHolidayByID(*upd.HolidayID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return nil, ErrHolidayNotFound
				}
				return nil, err
			}
			next.StatHoliday.HolidayName = h.Name
		}
		if upd.QualifyingDays != nil {
			next.StatHoliday.QualifyingDays = NormalizeQualifyingDays(*upd.QualifyingDays)
		}
	default:
		next.Worked, next.Leave, next.StatHoliday = nil, nil, nil
	}

	return next, nil
}
