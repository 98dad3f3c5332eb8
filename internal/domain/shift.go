package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EntryType string

const (
	EntryWorked      EntryType = "worked"
	EntryLeave       EntryType = "leave"
	EntryVacation    EntryType = "vacation"
	EntryStandby     EntryType = "standby"
	EntryStatHoliday EntryType = "stat_holiday"
	EntryDayOff      EntryType = "day_off"
)

type ShiftType string

const (
	ShiftDay       ShiftType = "day"
	ShiftNight     ShiftType = "night"
	ShiftGraveyard ShiftType = "graveyard"
)

type LeaveType string

const (
	LeaveSick     LeaveType = "sick_leave"
	LeavePersonal LeaveType = "personal_leave"
	LeaveParental LeaveType = "parental_leave"
)

// WorkedDetails 只在 entryType 为 worked 时存在
type WorkedDetails struct {
	Job                string    `json:"job"`
	Subjob             string    `json:"subjob,omitempty"`
	Location           string    `json:"location"`
	ShiftType          ShiftType `json:"shiftType"`
	Hours              float64   `json:"hours"`
	OvertimeHours      float64   `json:"overtimeHours"`
	TravelHours        float64   `json:"travelHours"`
	Rate               *float64  `json:"rate,omitempty"`
	OvertimeRate       *float64  `json:"overtimeRate,omitempty"`
	IncludeMeal        bool      `json:"includeMeal"`
	Foreman            string    `json:"foreman,omitempty"`
	Vessel             string    `json:"vessel,omitempty"`
	WillReceivePaystub bool      `json:"willReceivePaystub"`
}

// LeaveDetails 只在 entryType 为 leave 时存在
type LeaveDetails struct {
	LeaveType LeaveType `json:"leaveType"`
}

// StatHolidayDetails 只在 entryType 为 stat_holiday 时存在
type StatHolidayDetails struct {
	HolidayName string `json:"holidayName"`
	// 合资格天数档位，只会被归一化为 14（1-14 天）或 15（15 天及以上）
	QualifyingDays int32 `json:"qualifyingDays"`
}

// ShiftEntry 表示用户记录的某一天，根据 entryType 的不同携带不同的负载，
// 三个负载字段中最多只能有一个非空且必须与 entryType 匹配
type ShiftEntry struct {
	ID           uuid.UUID           `json:"id"`
	UserID       int64               `json:"userID"`
	Date         time.Time           `json:"date"`
	EntryType    EntryType           `json:"entryType"`
	Worked       *WorkedDetails      `json:"worked,omitempty"`
	Leave        *LeaveDetails       `json:"leave,omitempty"`
	StatHoliday  *StatHolidayDetails `json:"statHoliday,omitempty"`
	TotalPay     *float64            `json:"totalPay,omitempty"`
	PointsEarned int32               `json:"pointsEarned"` // 创建时确定，之后不再重新计算
	Notes        string              `json:"notes,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	Version      int32               `json:"-"`
}

var validLeaveTypes = map[LeaveType]bool{
	LeaveSick:     true,
	LeavePersonal: true,
	LeaveParental: true,
}

var validShiftTypes = map[ShiftType]bool{
	ShiftDay:       true,
	ShiftNight:     true,
	ShiftGraveyard: true,
}

func validateHourField(name string, hours float64) error {
	if hours < 0 || hours > 24 {
		return fmt.Errorf("%s 必须在 0 到 24 之间", name)
	}
	return nil
}

// Validate 检查记录是否满足 entryType 对应的字段要求
func (s *ShiftEntry) Validate() error {
	if s.Date.IsZero() {
		return errors.New("日期不能为空")
	}

	variants := 0
	if s.Worked != nil {
		variants++
	}
	if s.Leave != nil {
		variants++
	}
	if s.StatHoliday != nil {
		variants++
	}
	if variants > 1 {
		return errors.New("记录只能携带一种类型的负载")
	}

	switch s.EntryType {
	case EntryWorked:
		if s.Worked == nil {
			return errors.New("工作记录缺少班次信息")
		}
		if s.Worked.Job == "" {
			return errors.New("工作记录缺少工种")
		}
		if s.Worked.Location == "" {
			return errors.New("工作记录缺少地点")
		}
		if !validShiftTypes[s.Worked.ShiftType] {
			return errors.New("无效的班次类型")
		}
		if err := validateHourField("工作时数", s.Worked.Hours); err != nil {
			return err
		}
		if err := validateHourField("加班时数", s.Worked.OvertimeHours); err != nil {
			return err
		}
		if err := validateHourField("通勤时数", s.Worked.TravelHours); err != nil {
			return err
		}
	case EntryLeave:
		if s.Leave == nil {
			return errors.New("请假记录缺少请假类型")
		}
		if !validLeaveTypes[s.Leave.LeaveType] {
			return errors.New("无效的请假类型")
		}
	case EntryStatHoliday:
		if s.StatHoliday == nil {
			return errors.New("法定假日记录缺少假日信息")
		}
	case EntryVacation, EntryStandby, EntryDayOff:
		if variants != 0 {
			return fmt.Errorf("%s 记录不应携带额外负载", s.EntryType)
		}
	default:
		return errors.New("无效的记录类型")
	}

	if s.TotalPay != nil && *s.TotalPay < 0 {
		return errors.New("总薪酬不能为负数")
	}

	return nil
}
