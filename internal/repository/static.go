// Package repository 提供数据访问层
package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lunban/lunban/pkg/model"
)

// StaticDirectory 基于YAML文件的静态员工目录
// 适用于没有Postgres的小规模部署与测试
type StaticDirectory struct {
	employees []*model.Employee
}

// staticEmployee YAML中的员工条目
type staticEmployee struct {
	ID         string `yaml:"id"` // 可省略，省略时自动生成
	Name       string `yaml:"name"`
	Active     bool   `yaml:"active"`
	Role       string `yaml:"role"`
	Department string `yaml:"department"`
}

// staticFile YAML文件结构
type staticFile struct {
	Employees []staticEmployee `yaml:"employees"`
}

// NewStaticDirectory 用给定员工列表创建目录
func NewStaticDirectory(employees []*model.Employee) *StaticDirectory {
	return &StaticDirectory{employees: employees}
}

// LoadStaticDirectory 从YAML文件加载员工目录
func LoadStaticDirectory(path string) (*StaticDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取员工目录文件失败: %w", err)
	}

	var f staticFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("解析员工目录文件失败: %w", err)
	}

	employees := make([]*model.Employee, 0, len(f.Employees))
	for _, e := range f.Employees {
		if e.Name == "" {
			return nil, fmt.Errorf("员工目录存在空姓名条目")
		}

		id := uuid.New()
		if e.ID != "" {
			parsed, err := uuid.Parse(e.ID)
			if err != nil {
				return nil, fmt.Errorf("员工 %q 的ID无效: %w", e.Name, err)
			}
			id = parsed
		}

		employees = append(employees, &model.Employee{
			ID:         id,
			Name:       e.Name,
			Active:     e.Active,
			Role:       e.Role,
			Department: e.Department,
		})
	}

	return &StaticDirectory{employees: employees}, nil
}

// ListEmployees 返回全部员工
func (d *StaticDirectory) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	out := make([]*model.Employee, len(d.employees))
	copy(out, d.employees)
	return out, nil
}
