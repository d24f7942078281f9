// Package handler 提供HTTP请求处理器
package handler

import (
	"net/http"

	"github.com/lunban/lunban/internal/metrics"
	"github.com/lunban/lunban/pkg/eligibility"
	"github.com/lunban/lunban/pkg/errors"
)

// AvailabilityHandler 可用性查询处理器
type AvailabilityHandler struct {
	validator *eligibility.Validator
}

// NewAvailabilityHandler 创建可用性查询处理器
func NewAvailabilityHandler(v *eligibility.Validator) *AvailabilityHandler {
	return &AvailabilityHandler{validator: v}
}

// Available 返回某日期时刻可承接任务的员工集合
// 该月无排班表时返回全部可排班员工（放行回退，结果仅供参考）
func (h *AvailabilityHandler) Available(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET方法"))
		return
	}

	date, appErr := queryString(r, "date")
	if appErr != nil {
		respondError(w, appErr)
		return
	}
	hhmm, appErr := queryString(r, "time")
	if appErr != nil {
		respondError(w, appErr)
		return
	}

	result, err := h.validator.AvailableEmployees(r.Context(), date, hhmm)
	if err != nil {
		respondError(w, err)
		return
	}
	if result.Advisory {
		metrics.RecordAvailabilityFallback()
	}

	respondJSON(w, http.StatusOK, result)
}
