// Package repository 提供数据访问层
package repository

import (
	"context"
	"fmt"

	"github.com/lunban/lunban/pkg/model"
)

// EmployeeRepository 员工目录仓储（Postgres实现）
// 员工数据由外部员工目录系统写入，本引擎只读
type EmployeeRepository struct {
	db DB
}

// NewEmployeeRepository 创建员工仓储
func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// ListEmployees 返回全部员工（按姓名排序）
func (r *EmployeeRepository) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	query := `
		SELECT id, name, active, role, department
		FROM employees
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("查询员工目录失败: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		emp := &model.Employee{}
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Active, &emp.Role, &emp.Department); err != nil {
			return nil, fmt.Errorf("扫描员工记录失败: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历员工记录失败: %w", err)
	}

	return employees, nil
}
