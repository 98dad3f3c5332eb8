package handler

import (
	"net/http"
	"strconv"

	"github.com/wharflog-dev/wharflog/backend/internal/pay"
)

func parseHoursParam(r *http.Request, name string) (float64, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, true
	}

	hours, err := strconv.ParseFloat(v, 64)
	if err != nil || hours < 0 || hours > 24 {
		return 0, false
	}
	return hours, true
}

// CalculatePay 按查询参数试算一个班次的薪酬明细，不产生任何写入。
// 如果固定时数表中有匹配的记录，会先用表中的时数覆盖传入的时数
func (h *Handler) CalculatePay(w http.ResponseWriter, r *http.Request) {
	job := r.URL.Query().Get("job")
	if job == "" {
		h.errorResponse(w, r, "缺少工种参数")
		return
	}

	hours, ok := parseHoursParam(r, "hours")
	if !ok {
		h.errorResponse(w, r, "工作时数必须在 0 到 24 之间")
		return
	}
	overtimeHours, ok := parseHoursParam(r, "overtimeHours")
	if !ok {
		h.errorResponse(w, r, "加班时数必须在 0 到 24 之间")
		return
	}
	travelHours, ok := parseHoursParam(r, "travelHours")
	if !ok {
		h.errorResponse(w, r, "通勤时数必须在 0 到 24 之间")
		return
	}
	includeMeal := r.URL.Query().Get("includeMeal") == "true"

	subjob := r.URL.Query().Get("subjob")
	location := r.URL.Query().Get("location")
	shiftType := r.URL.Query().Get("shiftType")

	overrides, err := h.repository.GetAllPayOverrides()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	override := pay.FindHoursOverride(overrides, job, subjob, location, shiftType)
	if override != nil {
		hours = override.Hours
		overtimeHours = override.OvertimeHours
	}

	result := pay.CalculateShiftPay(pay.ShiftPayInput{
		Job:           job,
		Hours:         hours,
		OvertimeHours: overtimeHours,
		TravelHours:   travelHours,
		IncludeMeal:   includeMeal,
	})

	differential, known := pay.DifferentialForJob(job)

	h.successResponse(w, r, "试算成功", map[string]any{
		"result":          result,
		"differential":    differential,
		"knownJob":        known,
		"hours":           hours,
		"overtimeHours":   overtimeHours,
		"overrideApplied": override != nil,
	})
}
