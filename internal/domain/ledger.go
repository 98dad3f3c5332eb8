package domain

import "time"

// UserLedger 是每个用户的聚合账本，记录请假天数的使用情况以及游戏化的经验和积分，
// 只能由班次的增删改操作驱动更新
type UserLedger struct {
	UserID                 int64      `json:"userID"`
	XP                     int64      `json:"xp"`     // 终身累计，删除班次时不回退
	Points                 int64      `json:"points"` // 同上
	SickDaysUsed           int32      `json:"sickDaysUsed"`
	SickDaysAvailable      int32      `json:"sickDaysAvailable"`
	PersonalLeaveUsed      int32      `json:"personalLeaveUsed"`
	PersonalLeaveAvailable int32      `json:"personalLeaveAvailable"`
	SickLeaveStart         *time.Time `json:"sickLeaveStart,omitempty"`
	SickLeaveEnd           *time.Time `json:"sickLeaveEnd,omitempty"`
	PersonalLeaveStart     *time.Time `json:"personalLeaveStart,omitempty"`
	PersonalLeaveEnd       *time.Time `json:"personalLeaveEnd,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
}

// LeaveCounters 是一次请假计数器更新的前后快照，用于检测下调被钳制到 0 的情况
type LeaveCounters struct {
	PrevSickDaysUsed       int32
	PrevPersonalLeaveUsed  int32
	SickDaysUsed           int32
	PersonalLeaveUsed      int32
	SickDaysAvailable      int32
	PersonalLeaveAvailable int32
}
