package gamification

import (
	"sort"
	"time"
)

type StreakResult struct {
	CurrentStreak int  `json:"currentStreak"`
	LongestStreak int  `json:"longestStreak"`
	IsActive      bool `json:"isActive"`
}

func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStreak 根据工作日期计算连续出勤情况。
// 只有最近一次工作在今天或昨天时连击才算有效，此时当前连击为从最近一天往回数的连续天数，
// 否则当前连击为 0。最长连击取日期列表中任意一段连续天数的最大值，包括已经中断的
func ComputeStreak(workedDates []time.Time, today time.Time) StreakResult {
	if len(workedDates) == 0 {
		return StreakResult{}
	}

	// 归一化到整天并去重
	seen := make(map[time.Time]bool, len(workedDates))
	days := make([]time.Time, 0, len(workedDates))
	for _, d := range workedDates {
		day := normalizeDay(d)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	// 按日期从近到远排序
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	todayDay := normalizeDay(today)
	yesterday := todayDay.AddDate(0, 0, -1)
	active := days[0].Equal(todayDay) || days[0].Equal(yesterday)

	firstRun := 0
	longest := 0
	run := 1
	for i := 1; i <= len(days); i++ {
		if i < len(days) && days[i-1].Sub(days[i]) == 24*time.Hour {
			run++
			continue
		}

		if firstRun == 0 {
			firstRun = run
		}
		if run > longest {
			longest = run
		}
		run = 1
	}

	current := 0
	if active {
		current = firstRun
	}

	return StreakResult{CurrentStreak: current, LongestStreak: longest, IsActive: active}
}
