// Package handler 提供HTTP请求处理器
package handler

import (
	"net/http"

	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/roster"
)

// EmployeeHandler 员工目录处理器（只读）
type EmployeeHandler struct {
	directory roster.Directory
}

// NewEmployeeHandler 创建员工目录处理器
func NewEmployeeHandler(directory roster.Directory) *EmployeeHandler {
	return &EmployeeHandler{directory: directory}
}

// EmployeeView 员工列表条目
type EmployeeView struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	Schedulable bool   `json:"schedulable"`
}

// List 返回排班展示集合中的员工
// 展示集合比可排班集合更宽：在职的employee/admin/manager都出现，
// 条目上标注其是否参与排班
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET方法"))
		return
	}

	employees, err := h.directory.ListEmployees(r.Context())
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInternal, "读取员工目录失败"))
		return
	}

	views := make([]EmployeeView, 0, len(employees))
	for _, e := range employees {
		if !e.IsRosterVisible() {
			continue
		}
		views = append(views, EmployeeView{
			Name:        e.Name,
			Role:        e.Role,
			Department:  e.Department,
			Schedulable: e.IsSchedulable(),
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"employees": views,
		"count":     len(views),
	})
}
