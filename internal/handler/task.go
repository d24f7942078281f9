// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lunban/lunban/internal/metrics"
	"github.com/lunban/lunban/pkg/eligibility"
	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/model"
)

// TaskHandler 任务资格校验处理器
// 任务本体由外部任务模块持久化，这里只做(日期,时刻,受派人)的班次资格门禁
type TaskHandler struct {
	validator *eligibility.Validator
}

// NewTaskHandler 创建任务资格校验处理器
func NewTaskHandler(v *eligibility.Validator) *TaskHandler {
	return &TaskHandler{validator: v}
}

// ValidateTaskRequest 任务校验请求
type ValidateTaskRequest struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	AssignedTo string `json:"assigned_to"`
	Status     string `json:"status,omitempty"`
}

// ValidateTaskResponse 任务校验响应
type ValidateTaskResponse struct {
	Eligible bool   `json:"eligible"`
	Skipped  bool   `json:"skipped,omitempty"` // 占位状态任务跳过了校验
	Message  string `json:"message,omitempty"`
}

// Validate 校验任务创建/改派
func (h *TaskHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req ValidateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	task := &model.Task{
		Date:       req.Date,
		Time:       req.Time,
		AssignedTo: req.AssignedTo,
		Status:     req.Status,
	}

	if task.IsUnscheduled() {
		respondJSON(w, http.StatusOK, ValidateTaskResponse{Eligible: true, Skipped: true})
		return
	}

	if err := h.validator.ValidateTask(r.Context(), task); err != nil {
		if errors.Is(err, errors.CodeNotEligible) {
			metrics.RecordEligibilityCheck(false)
		}
		respondError(w, err)
		return
	}

	metrics.RecordEligibilityCheck(true)
	respondJSON(w, http.StatusOK, ValidateTaskResponse{Eligible: true})
}
