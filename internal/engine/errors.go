package engine

import "errors"

var (
	ErrShiftNotFound   = errors.New("班次不存在")
	ErrHolidayNotFound = errors.New("法定假日不存在")
)

// ValidationError 表示班次字段不合法，校验失败的修改在任何写入发生之前就会被拒绝
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
