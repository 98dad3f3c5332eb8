package pay

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

func jobOverrides() []*domain.PayOverride {
	return []*domain.PayOverride{
		{Job: "Lift Truck", Location: "Centerm", ShiftType: "day", Hours: 6.5, OvertimeHours: 1.5},
		{Job: "Labour", Subjob: "Lashing", Location: "Centerm", ShiftType: "day", Hours: 8},
	}
}

func TestDifferentialForJob(t *testing.T) {
	tests := []struct {
		job      string
		expected float64
		known    bool
	}{
		{"Labour", DiffBase, true},
		{"Hd Mechanic", DiffClass1, true},
		{"Ship Gantry", DiffClass2, true},
		{"Tractor Trailer", DiffClass3, true},
		{"Winch Driver", DiffClass4, true},
		{"Underwater Basket Weaver", DiffBase, false},
		{"", DiffBase, false},
		{"labour", DiffBase, false}, // 工种名区分大小写
	}

	for _, tt := range tests {
		diff, known := DifferentialForJob(tt.job)
		assert.Equal(t, tt.expected, diff, "job=%s", tt.job)
		assert.Equal(t, tt.known, known, "job=%s", tt.job)
	}
}

func TestHoursOverrideMatching(t *testing.T) {
	overrides := jobOverrides()

	t.Run("忽略大小写匹配", func(t *testing.T) {
		o := FindHoursOverride(overrides, "lift truck", "", "centerm", "DAY")
		require.NotNil(t, o)
		assert.Equal(t, 6.5, o.Hours)
		assert.Equal(t, 1.5, o.OvertimeHours)
	})

	t.Run("subjob 为空时不匹配有 subjob 的记录", func(t *testing.T) {
		o := FindHoursOverride(overrides, "Labour", "", "Centerm", "day")
		assert.Nil(t, o)
	})

	t.Run("指定 subjob 时精确匹配", func(t *testing.T) {
		o := FindHoursOverride(overrides, "Labour", "Lashing", "Centerm", "day")
		require.NotNil(t, o)
		assert.Equal(t, 8.0, o.Hours)
	})

	t.Run("没有匹配时返回 nil", func(t *testing.T) {
		assert.Nil(t, FindHoursOverride(overrides, "Labour", "Lashing", "Vanterm", "day"))
	})
}

func TestJobsSortedAndComplete(t *testing.T) {
	jobs := Jobs()
	require.NotEmpty(t, jobs)

	assert.True(t, sort.SliceIsSorted(jobs, func(i, j int) bool { return jobs[i].Job < jobs[j].Job }))

	for _, j := range jobs {
		assert.Equal(t, RegularRate(j.Differential), j.RegularRate)
		assert.Equal(t, OvertimeRate(j.Differential), j.OvertimeRate)
	}
}
