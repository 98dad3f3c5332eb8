// Package ledger 实现请假计数器的状态迁移逻辑：给定一个班次修改前后的分类，
// 计算应该施加到用户账本上的增减量。本包只做纯计算，钳制和持久化在仓储层完成
package ledger

import "github.com/wharflog-dev/wharflog/backend/internal/domain"

// Classification 是参与计数器核算的班次分类，LeaveType 只在 EntryType 为 leave 时有意义
type Classification struct {
	EntryType domain.EntryType
	LeaveType domain.LeaveType
}

// Delta 表示病假和事假计数器的增减量
type Delta struct {
	Sick     int32
	Personal int32
}

func (d Delta) IsZero() bool {
	return d.Sick == 0 && d.Personal == 0
}

func (d Delta) add(leaveType domain.LeaveType, n int32) Delta {
	switch leaveType {
	case domain.LeaveSick:
		d.Sick += n
	case domain.LeavePersonal:
		d.Personal += n
	}
	// 育婴假不占用任何计数器
	return d
}

// Reconcile 根据班次修改前后的分类计算计数器增减量。
// 创建时 prior 为 nil，删除时 next 为 nil。
// 前后都是请假且类型相同，或者前后都不是请假时，没有任何变化
func Reconcile(prior *Classification, next *Classification) Delta {
	var delta Delta

	wasLeave := prior != nil && prior.EntryType == domain.EntryLeave
	isLeave := next != nil && next.EntryType == domain.EntryLeave

	switch {
	case !wasLeave && isLeave:
		delta = delta.add(next.LeaveType, 1)
	case wasLeave && !isLeave:
		delta = delta.add(prior.LeaveType, -1)
	case wasLeave && isLeave && prior.LeaveType != next.LeaveType:
		delta = delta.add(prior.LeaveType, -1)
		delta = delta.add(next.LeaveType, 1)
	}

	return delta
}
