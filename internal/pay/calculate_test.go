package pay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateShiftPay(t *testing.T) {
	tests := []struct {
		name     string
		input    ShiftPayInput
		expected ShiftPayResult
	}{
		{
			name:  "基础工种八小时",
			input: ShiftPayInput{Job: "Labour", Hours: 8},
			expected: ShiftPayResult{
				RegularRate:  55.30,
				OvertimeRate: 82.95,
				RegularPay:   442.40,
				TotalPay:     442.40,
			},
		},
		{
			name:  "三级差额工种带加班",
			input: ShiftPayInput{Job: "Tractor Trailer", Hours: 8, OvertimeHours: 2},
			expected: ShiftPayResult{
				RegularRate:  55.95,
				OvertimeRate: 83.60,
				RegularPay:   447.60,
				OvertimePay:  167.20,
				TotalPay:     614.80,
			},
		},
		{
			name:  "通勤时数按固定费率",
			input: ShiftPayInput{Job: "Labour", Hours: 8, TravelHours: 1},
			expected: ShiftPayResult{
				RegularRate:  55.30,
				OvertimeRate: 82.95,
				RegularPay:   442.40,
				TravelPay:    53.17,
				TotalPay:     495.57,
			},
		},
		{
			name:  "没有加班时餐补仍按加班费率",
			input: ShiftPayInput{Job: "Labour", Hours: 8, IncludeMeal: true},
			expected: ShiftPayResult{
				RegularRate:  55.30,
				OvertimeRate: 82.95,
				RegularPay:   442.40,
				MealPay:      41.48,
				TotalPay:     483.88,
			},
		},
		{
			name:  "一级差额工种全项",
			input: ShiftPayInput{Job: "Electrician", Hours: 8, OvertimeHours: 1.5, TravelHours: 0.5, IncludeMeal: true},
			expected: ShiftPayResult{
				RegularRate:  57.80,
				OvertimeRate: 85.45,
				RegularPay:   462.40,
				OvertimePay:  128.18,
				TravelPay:    26.59,
				MealPay:      42.73,
				TotalPay:     659.90,
			},
		},
		{
			name:  "未知工种回退到基础差额",
			input: ShiftPayInput{Job: "Underwater Basket Weaver", Hours: 8},
			expected: ShiftPayResult{
				RegularRate:  55.30,
				OvertimeRate: 82.95,
				RegularPay:   442.40,
				TotalPay:     442.40,
			},
		},
		{
			name:     "零时数",
			input:    ShiftPayInput{Job: "Labour"},
			expected: ShiftPayResult{RegularRate: 55.30, OvertimeRate: 82.95},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateShiftPay(tt.input))
		})
	}
}

func TestCalculateShiftPayRoundsEveryStep(t *testing.T) {
	// 0.1 小时 * 55.95 = 5.595，先取整到 5.60 再参与累加
	result := CalculateShiftPay(ShiftPayInput{Job: "Tractor Trailer", Hours: 0.1})
	assert.Equal(t, 5.60, result.RegularPay)
	assert.Equal(t, 5.60, result.TotalPay)
}
