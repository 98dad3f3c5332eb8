package gamification

import (
	"math"

	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

// XPPerShift 每记录一天获得的经验值，与记录类型无关
const XPPerShift = 10

type BadgeLevel struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	MinXP int64  `json:"minXP"`
	MaxXP int64  `json:"maxXP"` // 最高等级没有上限，用 -1 表示
}

var badgeLevels = []BadgeLevel{
	{Level: 1, Name: "New Guy", MinXP: 0, MaxXP: 199},
	{Level: 2, Name: "Casual", MinXP: 200, MaxXP: 499},
	{Level: 3, Name: "Member", MinXP: 500, MaxXP: 999},
	{Level: 4, Name: "Real Longshore", MinXP: 1000, MaxXP: -1},
}

// BadgeLevels 返回所有徽章等级
func BadgeLevels() []BadgeLevel {
	levels := make([]BadgeLevel, len(badgeLevels))
	copy(levels, badgeLevels)
	return levels
}

// XPForEntry 返回记录一个班次获得的经验值，所有记录类型统一为 10
func XPForEntry(_ domain.EntryType) int64 {
	return XPPerShift
}

// PointsForPay 按每 10 元 1 分向下取整计算积分，没有薪酬时为 0。
// 积分只在创建班次时结算一次，之后不再重新计算
func PointsForPay(totalPay *float64) int64 {
	if totalPay == nil || *totalPay <= 0 {
		return 0
	}
	return int64(math.Floor(*totalPay / 10))
}

// GetBadgeLevel 返回累计经验值所处的最高徽章等级
func GetBadgeLevel(totalXP int64) BadgeLevel {
	for i := len(badgeLevels) - 1; i >= 0; i-- {
		if totalXP >= badgeLevels[i].MinXP {
			return badgeLevels[i]
		}
	}
	return badgeLevels[0]
}

type LevelProgress struct {
	Current  int64 `json:"current"`
	Required int64 `json:"required"`
	Percent  int   `json:"percent"`
}

// ProgressToNextLevel 返回当前等级内的升级进度，百分比向下取整且不超过 100。
// 处于最高等级时进度恒为 100%，current 和 required 都等于累计经验值
func ProgressToNextLevel(totalXP int64) LevelProgress {
	level := GetBadgeLevel(totalXP)

	if level.Level == badgeLevels[len(badgeLevels)-1].Level {
		return LevelProgress{Current: totalXP, Required: totalXP, Percent: 100}
	}

	next := badgeLevels[level.Level] // Level 从 1 开始，正好是下一级的下标
	current := totalXP - level.MinXP
	required := next.MinXP - level.MinXP

	percent := int(100 * current / required)
	if percent > 100 {
		percent = 100
	}

	return LevelProgress{Current: current, Required: required, Percent: percent}
}
