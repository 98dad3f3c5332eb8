package domain

// PayOverride 表示某个地点、工种、班次类型组合下的固定时数，
// 存在时会在计算薪酬前替换掉调用方提供的时数
type PayOverride struct {
	ID            int64   `json:"id"`
	Job           string  `json:"job"`
	Subjob        string  `json:"subjob,omitempty"`
	Location      string  `json:"location"`
	ShiftType     string  `json:"shiftType"`
	Hours         float64 `json:"hours"`
	OvertimeHours float64 `json:"overtimeHours"`
}
