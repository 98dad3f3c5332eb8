package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/wharflog-dev/wharflog/backend/internal/domain"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	ledger, err := h.repository.GetUserLedger(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "账本不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取个人信息成功", map[string]any{
		"user":   myInfo,
		"ledger": ledger,
	})
}

// UpdateMyBenefits 更新假期额度和适用区间，使用量和经验积分不在此处修改
func (h *Handler) UpdateMyBenefits(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		SickDaysAvailable      *int32  `json:"sickDaysAvailable" validate:"omitempty,min=0"`
		PersonalLeaveAvailable *int32  `json:"personalLeaveAvailable" validate:"omitempty,min=0"`
		SickLeaveStart         *string `json:"sickLeaveStart" validate:"omitempty,datetime=2006-01-02"`
		SickLeaveEnd           *string `json:"sickLeaveEnd" validate:"omitempty,datetime=2006-01-02"`
		PersonalLeaveStart     *string `json:"personalLeaveStart" validate:"omitempty,datetime=2006-01-02"`
		PersonalLeaveEnd       *string `json:"personalLeaveEnd" validate:"omitempty,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ledger, err := h.repository.GetUserLedger(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "账本不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.SickDaysAvailable != nil {
		ledger.SickDaysAvailable = *req.SickDaysAvailable
	}
	if req.PersonalLeaveAvailable != nil {
		ledger.PersonalLeaveAvailable = *req.PersonalLeaveAvailable
	}

	parseDate := func(v *string) (*time.Time, error) {
		if v == nil {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", *v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	if req.SickLeaveStart != nil {
		if ledger.SickLeaveStart, err = parseDate(req.SickLeaveStart); err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
	}
	if req.SickLeaveEnd != nil {
		if ledger.SickLeaveEnd, err = parseDate(req.SickLeaveEnd); err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
	}
	if req.PersonalLeaveStart != nil {
		if ledger.PersonalLeaveStart, err = parseDate(req.PersonalLeaveStart); err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
	}
	if req.PersonalLeaveEnd != nil {
		if ledger.PersonalLeaveEnd, err = parseDate(req.PersonalLeaveEnd); err != nil {
			h.errorResponse(w, r, "日期格式无效")
			return
		}
	}

	if err := h.repository.UpdateLedgerBenefits(ledger); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "账本不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新假期配置成功", ledger)
}
