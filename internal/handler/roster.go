// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lunban/lunban/internal/metrics"
	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/model"
	"github.com/lunban/lunban/pkg/roster"
	"github.com/lunban/lunban/pkg/stats"
)

// RosterHandler 排班表处理器
type RosterHandler struct {
	svc *roster.Service
}

// NewRosterHandler 创建排班表处理器
func NewRosterHandler(svc *roster.Service) *RosterHandler {
	return &RosterHandler{svc: svc}
}

// Handle 按方法分派：GET读取（首次访问生成）、POST合并保存
func (h *RosterHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPost:
		h.save(w, r)
	default:
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET/POST方法"))
	}
}

// get 读取某月排班表，不存在时生成并持久化后返回
func (h *RosterHandler) get(w http.ResponseWriter, r *http.Request) {
	year, appErr := queryInt(r, "year")
	if appErr != nil {
		respondError(w, appErr)
		return
	}
	month, appErr := queryInt(r, "month")
	if appErr != nil {
		respondError(w, appErr)
		return
	}

	result, generated, err := h.svc.Month(r.Context(), year, month)
	if err != nil {
		respondError(w, err)
		return
	}
	if generated {
		metrics.RecordRosterGeneration(model.MonthKey(year, month))
	}

	respondJSON(w, http.StatusOK, result)
}

// SaveResponse 保存确认响应
type SaveResponse struct {
	Success      bool   `json:"success"`
	Month        string `json:"month"`
	TouchedDates int    `json:"touched_dates"`
}

// save 合并部分编辑并持久化
func (h *RosterHandler) save(w http.ResponseWriter, r *http.Request) {
	year, appErr := queryInt(r, "year")
	if appErr != nil {
		respondError(w, appErr)
		return
	}
	month, appErr := queryInt(r, "month")
	if appErr != nil {
		respondError(w, appErr)
		return
	}

	var partial model.Roster
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	if _, err := h.svc.SaveMonth(r.Context(), year, month, partial); err != nil {
		respondError(w, err)
		return
	}
	metrics.RecordRosterMerge(model.MonthKey(year, month))

	respondJSON(w, http.StatusOK, SaveResponse{
		Success:      true,
		Month:        model.MonthKey(year, month),
		TouchedDates: len(partial),
	})
}

// WorkloadResponse 月度工作量响应
type WorkloadResponse struct {
	Month    string                   `json:"month"`
	Workload []stats.EmployeeWorkload `json:"workload"`
	Coverage []stats.DayCoverage      `json:"coverage"`
}

// Workload 返回某月每员工工作量与每日覆盖统计
func (h *RosterHandler) Workload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET方法"))
		return
	}

	year, appErr := queryInt(r, "year")
	if appErr != nil {
		respondError(w, appErr)
		return
	}
	month, appErr := queryInt(r, "month")
	if appErr != nil {
		respondError(w, appErr)
		return
	}

	result, _, err := h.svc.Month(r.Context(), year, month)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, WorkloadResponse{
		Month:    model.MonthKey(year, month),
		Workload: stats.Workload(result),
		Coverage: stats.Coverage(result),
	})
}
