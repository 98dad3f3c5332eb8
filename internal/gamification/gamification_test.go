package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

func TestXPForEntry(t *testing.T) {
	entryTypes := []domain.EntryType{
		domain.EntryWorked,
		domain.EntryLeave,
		domain.EntryVacation,
		domain.EntryStandby,
		domain.EntryStatHoliday,
		domain.EntryDayOff,
	}

	for _, et := range entryTypes {
		assert.Equal(t, int64(XPPerShift), XPForEntry(et), "entryType=%s", et)
	}
}

func TestPointsForPay(t *testing.T) {
	pay := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		totalPay *float64
		expected int64
	}{
		{"没有薪酬", nil, 0},
		{"零薪酬", pay(0), 0},
		{"负薪酬", pay(-10), 0},
		{"向下取整", pay(608.30), 60},
		{"不足十元", pay(9.99), 0},
		{"整十元", pay(100), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointsForPay(tt.totalPay))
		})
	}
}

func TestGetBadgeLevel(t *testing.T) {
	tests := []struct {
		totalXP  int64
		expected string
	}{
		{0, "New Guy"},
		{199, "New Guy"},
		{200, "Casual"},
		{499, "Casual"},
		{500, "Member"},
		{999, "Member"},
		{1000, "Real Longshore"},
		{99999, "Real Longshore"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetBadgeLevel(tt.totalXP).Name, "totalXP=%d", tt.totalXP)
	}
}

func TestProgressToNextLevel(t *testing.T) {
	tests := []struct {
		name     string
		totalXP  int64
		expected LevelProgress
	}{
		{"刚起步", 0, LevelProgress{Current: 0, Required: 200, Percent: 0}},
		{"一级过半", 150, LevelProgress{Current: 150, Required: 200, Percent: 75}},
		{"刚升二级", 200, LevelProgress{Current: 0, Required: 300, Percent: 0}},
		{"二级中段", 350, LevelProgress{Current: 150, Required: 300, Percent: 50}},
		{"三级接近满级", 999, LevelProgress{Current: 499, Required: 500, Percent: 99}},
		{"满级恒为百分之百", 1000, LevelProgress{Current: 1000, Required: 1000, Percent: 100}},
		{"满级之后继续累计", 2500, LevelProgress{Current: 2500, Required: 2500, Percent: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressToNextLevel(tt.totalXP))
		})
	}
}
