package pay

import (
	"strings"

	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

type HoursOverride struct {
	Hours         float64
	OvertimeHours float64
}

// FindHoursOverride 在固定时数表中查找匹配的记录，匹配时忽略大小写。
// subjob 为空时只匹配没有 subjob 的记录。没有匹配时返回 nil
func FindHoursOverride(overrides []*domain.PayOverride, job, subjob, location, shiftType string) *HoursOverride {
	job = strings.ToUpper(job)
	subjob = strings.ToUpper(subjob)
	location = strings.ToUpper(location)
	shiftType = strings.ToUpper(shiftType)

	for _, o := range overrides {
		if strings.ToUpper(o.Job) != job {
			continue
		}
		if strings.ToUpper(o.Location) != location {
			continue
		}
		if strings.ToUpper(o.ShiftType) != shiftType {
			continue
		}

		if subjob != "" {
			if strings.ToUpper(o.Subjob) != subjob {
				continue
			}
		} else if o.Subjob != "" {
			continue
		}

		return &HoursOverride{Hours: o.Hours, OvertimeHours: o.OvertimeHours}
	}

	return nil
}
