package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStreak(t *testing.T) {
	today := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	tests := []struct {
		name     string
		dates    []time.Time
		expected StreakResult
	}{
		{
			name:     "没有任何记录",
			dates:    nil,
			expected: StreakResult{},
		},
		{
			name:     "连续三天到今天",
			dates:    []time.Time{day(0), day(-1), day(-2)},
			expected: StreakResult{CurrentStreak: 3, LongestStreak: 3, IsActive: true},
		},
		{
			name:     "最近一天是昨天仍然有效",
			dates:    []time.Time{day(-1), day(-2)},
			expected: StreakResult{CurrentStreak: 2, LongestStreak: 2, IsActive: true},
		},
		{
			name:     "最近一天是前天则连击中断",
			dates:    []time.Time{day(-3)},
			expected: StreakResult{CurrentStreak: 0, LongestStreak: 1, IsActive: false},
		},
		{
			name:     "最长连击取历史最大值",
			dates:    []time.Time{day(0), day(-5), day(-6), day(-7), day(-8)},
			expected: StreakResult{CurrentStreak: 1, LongestStreak: 4, IsActive: true},
		},
		{
			name:     "同一天多条记录只算一天",
			dates:    []time.Time{day(0), day(0).Add(8 * time.Hour), day(-1)},
			expected: StreakResult{CurrentStreak: 2, LongestStreak: 2, IsActive: true},
		},
		{
			name:     "输入顺序不影响结果",
			dates:    []time.Time{day(-2), day(0), day(-1)},
			expected: StreakResult{CurrentStreak: 3, LongestStreak: 3, IsActive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeStreak(tt.dates, today))
		})
	}
}
