package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

func worked() *Classification {
	return &Classification{EntryType: domain.EntryWorked}
}

func leave(lt domain.LeaveType) *Classification {
	return &Classification{EntryType: domain.EntryLeave, LeaveType: lt}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		prior    *Classification
		next     *Classification
		expected Delta
	}{
		{"创建工作记录", nil, worked(), Delta{}},
		{"创建病假", nil, leave(domain.LeaveSick), Delta{Sick: 1}},
		{"创建事假", nil, leave(domain.LeavePersonal), Delta{Personal: 1}},
		{"创建育婴假不占用计数器", nil, leave(domain.LeaveParental), Delta{}},
		{"删除病假", leave(domain.LeaveSick), nil, Delta{Sick: -1}},
		{"删除事假", leave(domain.LeavePersonal), nil, Delta{Personal: -1}},
		{"删除工作记录", worked(), nil, Delta{}},
		{"病假改成事假", leave(domain.LeaveSick), leave(domain.LeavePersonal), Delta{Sick: -1, Personal: 1}},
		{"事假改成病假", leave(domain.LeavePersonal), leave(domain.LeaveSick), Delta{Sick: 1, Personal: -1}},
		{"病假改成育婴假", leave(domain.LeaveSick), leave(domain.LeaveParental), Delta{Sick: -1}},
		{"请假类型不变", leave(domain.LeaveSick), leave(domain.LeaveSick), Delta{}},
		{"工作改成病假", worked(), leave(domain.LeaveSick), Delta{Sick: 1}},
		{"病假改成工作", leave(domain.LeaveSick), worked(), Delta{Sick: -1}},
		{"前后都不是请假", worked(), &Classification{EntryType: domain.EntryDayOff}, Delta{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reconcile(tt.prior, tt.next))
		})
	}
}

// 创建后立即删除应该回到零增减
func TestReconcileCreateDeleteSymmetry(t *testing.T) {
	classifications := []*Classification{
		worked(),
		leave(domain.LeaveSick),
		leave(domain.LeavePersonal),
		leave(domain.LeaveParental),
		{EntryType: domain.EntryStatHoliday},
	}

	for _, c := range classifications {
		created := Reconcile(nil, c)
		deleted := Reconcile(c, nil)
		assert.Equal(t, Delta{}, Delta{Sick: created.Sick + deleted.Sick, Personal: created.Personal + deleted.Personal})
	}
}
