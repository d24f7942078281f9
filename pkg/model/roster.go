// Package model 定义轮班引擎的核心数据模型
package model

import (
	"fmt"
	"time"
)

// DateLayout 日期格式 YYYY-MM-DD
const DateLayout = "2006-01-02"

// TimeLayout 时刻格式 HH:MM（24小时制）
const TimeLayout = "15:04"

// DayAssignment 某员工某天的班次分配
type DayAssignment struct {
	Shift ShiftCode `json:"shift"`
	Note  string    `json:"note"`
}

// Roster 单月排班表：日期(YYYY-MM-DD) -> 员工姓名 -> 班次分配
// 每个(年,月)对应一份Roster，键的插入顺序无意义
type Roster map[string]map[string]DayAssignment

// Set 设置某日期某员工的分配（按需创建日期层）
func (r Roster) Set(date, employee string, a DayAssignment) {
	day, ok := r[date]
	if !ok {
		day = make(map[string]DayAssignment)
		r[date] = day
	}
	day[employee] = a
}

// Get 查询某日期某员工的分配
func (r Roster) Get(date, employee string) (DayAssignment, bool) {
	day, ok := r[date]
	if !ok {
		return DayAssignment{}, false
	}
	a, ok := day[employee]
	return a, ok
}

// Clone 深拷贝（两层map）
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for date, day := range r {
		cp := make(map[string]DayAssignment, len(day))
		for emp, a := range day {
			cp[emp] = a
		}
		out[date] = cp
	}
	return out
}

// Merge 将部分编辑合并进已持久化的排班表，返回合并结果
//
// 两层浅合并：incoming中出现的(日期,员工)单元覆盖persisted中的对应单元，
// 其余单元原样保留；只在incoming中出现的日期被追加。
// 绝不做整表替换，保证不同操作员并发编辑同月不同单元时互不丢失
func Merge(persisted, incoming Roster) Roster {
	out := persisted.Clone()
	for date, day := range incoming {
		for emp, a := range day {
			out.Set(date, emp, a)
		}
	}
	return out
}

// MonthKey 返回(年,月)的规范键，如 2025-06
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// DaysInMonth 返回某月的天数
func DaysInMonth(year, month int) int {
	// 下月第0天即本月最后一天
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthOf 解析日期字符串所属的(年,月)
func MonthOf(date string) (int, int, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, 0, fmt.Errorf("日期格式无效: %q", date)
	}
	return d.Year(), int(d.Month()), nil
}
