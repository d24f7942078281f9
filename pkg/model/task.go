// Package model 定义轮班引擎的核心数据模型
package model

import "github.com/google/uuid"

// TaskStatusUnscheduled 未排期任务的占位状态（历史遗留值，来自意大利语"待定"）
// 该状态的任务尚无真实日期/时刻，跳过资格校验
const TaskStatusUnscheduled = "da definire"

// Task 任务视图（只含资格校验相关字段）
// 任务存储由外部任务模块拥有，本引擎只在持久化前校验(日期,时刻,受派人)三元组
type Task struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Time       string    `json:"time"` // HH:MM
	AssignedTo string    `json:"assigned_to"`
	Status     string    `json:"status"`
}

// IsUnscheduled 检查任务是否为未排期占位
func (t *Task) IsUnscheduled() bool {
	return t.Status == TaskStatusUnscheduled
}
