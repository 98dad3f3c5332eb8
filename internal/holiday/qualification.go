package holiday

import (
	"time"

	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

// DaysRequired 合资格所需的最低工作天数
const DaysRequired = 15

// DefaultWindowDays 合资格窗口未设置时默认取假日前的天数
const DefaultWindowDays = 28

type QualificationResult struct {
	HolidayID       string    `json:"holidayID"`
	Name            string    `json:"name"`
	Date            time.Time `json:"date"`
	QualifyingStart time.Time `json:"qualifyingStart"`
	QualifyingEnd   time.Time `json:"qualifyingEnd"`
	DaysWorked      int       `json:"daysWorked"`
	DaysRequired    int       `json:"daysRequired"`
	IsQualified     bool      `json:"isQualified"`
}

func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Evaluate 统计合资格窗口内不重复的工作天数并判定是否达标。
// 结果不落库，每次读取时重新计算，相同输入一定得到相同输出
func Evaluate(h *domain.Holiday, workedDates []time.Time) QualificationResult {
	end := normalizeDay(h.Date)
	if h.QualifyingEnd != nil {
		end = normalizeDay(*h.QualifyingEnd)
	}

	start := normalizeDay(h.Date).AddDate(0, 0, -DefaultWindowDays)
	if h.QualifyingStart != nil {
		start = normalizeDay(*h.QualifyingStart)
	}

	counted := make(map[time.Time]bool)
	for _, d := range workedDates {
		day := normalizeDay(d)
		if day.Before(start) || day.After(end) {
			continue
		}
		counted[day] = true
	}

	daysWorked := len(counted)

	return QualificationResult{
		HolidayID:       h.ID.String(),
		Name:            h.Name,
		Date:            h.Date,
		QualifyingStart: start,
		QualifyingEnd:   end,
		DaysWorked:      daysWorked,
		DaysRequired:    DaysRequired,
		IsQualified:     daysWorked >= DaysRequired,
	}
}
