package holiday

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func workedRange(start time.Time, n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

func TestEvaluate(t *testing.T) {
	holidayDate := date(2025, 7, 1)

	t.Run("刚好达到十五天", func(t *testing.T) {
		h := &domain.Holiday{ID: uuid.New(), Name: "Canada Day", Date: holidayDate}
		result := Evaluate(h, workedRange(date(2025, 6, 10), 15))

		assert.Equal(t, 15, result.DaysWorked)
		assert.True(t, result.IsQualified)
	})

	t.Run("十四天不合资格", func(t *testing.T) {
		h := &domain.Holiday{ID: uuid.New(), Name: "Canada Day", Date: holidayDate}
		result := Evaluate(h, workedRange(date(2025, 6, 10), 14))

		assert.Equal(t, 14, result.DaysWorked)
		assert.False(t, result.IsQualified)
	})

	t.Run("默认窗口为假日前二十八天", func(t *testing.T) {
		h := &domain.Holiday{ID: uuid.New(), Name: "Canada Day", Date: holidayDate}
		result := Evaluate(h, nil)

		assert.Equal(t, date(2025, 6, 3), result.QualifyingStart)
		assert.Equal(t, holidayDate, result.QualifyingEnd)
	})

	t.Run("窗口外的工作日不计入", func(t *testing.T) {
		h := &domain.Holiday{ID: uuid.New(), Name: "Canada Day", Date: holidayDate}
		dates := []time.Time{
			date(2025, 6, 2), // 早于窗口起点一天
			date(2025, 6, 3),
			date(2025, 7, 1),
			date(2025, 7, 2), // 晚于假日当天
		}
		result := Evaluate(h, dates)

		assert.Equal(t, 2, result.DaysWorked)
	})

	t.Run("同一天多条记录只算一天", func(t *testing.T) {
		h := &domain.Holiday{ID: uuid.New(), Name: "Canada Day", Date: holidayDate}
		workDay := date(2025, 6, 20)
		result := Evaluate(h, []time.Time{workDay, workDay.Add(10 * time.Hour)})

		assert.Equal(t, 1, result.DaysWorked)
	})

	t.Run("显式窗口覆盖默认值", func(t *testing.T) {
		start := date(2025, 5, 1)
		end := date(2025, 6, 30)
		h := &domain.Holiday{
			ID:              uuid.New(),
			Name:            "Canada Day",
			Date:            holidayDate,
			QualifyingStart: &start,
			QualifyingEnd:   &end,
		}
		result := Evaluate(h, []time.Time{date(2025, 5, 2), date(2025, 7, 1)})

		assert.Equal(t, start, result.QualifyingStart)
		assert.Equal(t, end, result.QualifyingEnd)
		assert.Equal(t, 1, result.DaysWorked)
	})
}
