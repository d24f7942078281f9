// Package model 定义轮班引擎的核心数据模型
package model

import "github.com/google/uuid"

// 员工角色
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
	RoleManager  = "manager"
)

// DepartmentOperations 运维部门，只有该部门的员工参与排班
const DepartmentOperations = "Operations"

// Employee 员工目录视图
// 员工数据由外部员工目录拥有，本引擎只读
type Employee struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
}

// IsSchedulable 检查员工是否参与排班
// 只有在职、角色为employee且属于运维部门的员工可被排班
func (e *Employee) IsSchedulable() bool {
	return e.Active && e.Role == RoleEmployee && e.Department == DepartmentOperations
}

// IsRosterVisible 检查员工是否出现在排班展示集合中
// 展示集合比排班集合更宽：包含在职的employee/admin/manager
func (e *Employee) IsRosterVisible() bool {
	if !e.Active {
		return false
	}
	switch e.Role {
	case RoleEmployee, RoleAdmin, RoleManager:
		return true
	}
	return false
}

// SchedulableNames 过滤出可排班员工的姓名列表（保持输入顺序）
func SchedulableNames(employees []*Employee) []string {
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		if e.IsSchedulable() {
			names = append(names, e.Name)
		}
	}
	return names
}
