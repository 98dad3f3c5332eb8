package handler

import (
	"net/http"

	"github.com/wharflog-dev/wharflog/backend/internal/pay"
)

func (h *Handler) GetJobs(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取费率表成功", pay.Jobs())
}

func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取法定假日成功", holidays)
}
