// Package eligibility 实现任务时刻到所需班次的映射与资格校验
package eligibility

import (
	"context"
	"time"

	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/logger"
	"github.com/lunban/lunban/pkg/model"
	"github.com/lunban/lunban/pkg/roster"
)

// Validator 任务资格校验器
// 在外部任务模块持久化(日期,时刻,受派人)之前做班次资格门禁，
// 同时支撑可用性查询。无内部状态，每次请求独立判定，失败即终态不重试
type Validator struct {
	store     roster.Store
	directory roster.Directory
	log       *logger.RosterLogger
}

// NewValidator 创建资格校验器
func NewValidator(store roster.Store, directory roster.Directory) *Validator {
	return &Validator{
		store:     store,
		directory: directory,
		log:       logger.NewRosterLogger(),
	}
}

// Availability 可用性查询结果
type Availability struct {
	AvailableEmployees []string        `json:"available_employees"`
	RequiredShift      model.ShiftCode `json:"required_shift"`
	// Advisory 为true表示该月尚无排班表，结果是放行回退值，仅供参考
	Advisory bool `json:"advisory,omitempty"`
}

// ValidateTask 校验任务操作（创建/改派）
// 状态为占位值"da definire"的任务没有真实日期/时刻，整体跳过校验
func (v *Validator) ValidateTask(ctx context.Context, task *model.Task) error {
	if task.IsUnscheduled() {
		return nil
	}
	return v.ValidateAssignment(ctx, task.Date, task.Time, task.AssignedTo)
}

// ValidateAssignment 校验(日期,时刻,受派人)三元组
//
// 受派人必须在可排班集合中（否则为输入校验错误）；
// 该日期的排班单元缺失或代码不覆盖所需班次时返回资格错误。
// 资格错误是该次任务操作的终态拒绝，由调用方呈现给用户
func (v *Validator) ValidateAssignment(ctx context.Context, date, hhmm, employee string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return errors.InvalidInput("date", "日期格式无效，应为YYYY-MM-DD")
	}

	required, appErr := RequiredShift(hhmm)
	if appErr != nil {
		return appErr
	}

	if err := v.requireSchedulable(ctx, employee); err != nil {
		return err
	}

	year, month, _ := model.MonthOf(date)
	r, exists, err := v.store.Load(ctx, year, month)
	if err != nil {
		return errors.StorageError("load", err)
	}

	assigned := model.ShiftUnassigned
	if exists {
		if a, ok := r.Get(date, employee); ok {
			assigned = a.Shift
		}
	}

	if !assigned.Satisfies(required) {
		v.log.EligibilityRejected(employee, date, string(required), string(assigned))
		return errors.NotEligible(employee, date, string(required), string(assigned))
	}
	return nil
}

// AvailableEmployees 返回某日期时刻可承接任务的员工集合
//
// 该月尚无排班表时放行回退：返回全部可排班员工并标记为参考值，
// 前提假设是该时段的排班尚未开始规划
func (v *Validator) AvailableEmployees(ctx context.Context, date, hhmm string) (*Availability, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, errors.InvalidInput("date", "日期格式无效，应为YYYY-MM-DD")
	}

	required, appErr := RequiredShift(hhmm)
	if appErr != nil {
		return nil, appErr
	}

	employees, err := v.directory.ListEmployees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "读取员工目录失败")
	}
	schedulable := model.SchedulableNames(employees)

	year, month, _ := model.MonthOf(date)
	r, exists, err := v.store.Load(ctx, year, month)
	if err != nil {
		return nil, errors.StorageError("load", err)
	}

	if !exists {
		v.log.AvailabilityFallback(year, month)
		return &Availability{
			AvailableEmployees: schedulable,
			RequiredShift:      required,
			Advisory:           true,
		}, nil
	}

	available := make([]string, 0, len(schedulable))
	for _, name := range schedulable {
		if a, ok := r.Get(date, name); ok && a.Shift.Satisfies(required) {
			available = append(available, name)
		}
	}

	return &Availability{
		AvailableEmployees: available,
		RequiredShift:      required,
	}, nil
}

// requireSchedulable 检查员工在可排班集合中
func (v *Validator) requireSchedulable(ctx context.Context, name string) error {
	employees, err := v.directory.ListEmployees(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "读取员工目录失败")
	}
	for _, e := range employees {
		if e.Name == name && e.IsSchedulable() {
			return nil
		}
	}
	return errors.InvalidInput("assigned_to", "员工不在可排班集合中: "+name)
}
