// Package stats 提供排班统计分析功能
package stats

import (
	"sort"

	"github.com/lunban/lunban/pkg/model"
)

// EmployeeWorkload 单员工的月度工作量
type EmployeeWorkload struct {
	Employee    string         `json:"employee"`
	Counts      map[string]int `json:"counts"`       // 班次代码 -> 出现次数
	WorkingDays int            `json:"working_days"` // 工作班次总天数
	RestDays    int            `json:"rest_days"`    // 休息+节假日天数
	Unassigned  int            `json:"unassigned"`   // 未分配天数
}

// DayCoverage 单日的班次覆盖情况
type DayCoverage struct {
	Date      string `json:"date"`
	Morning   int    `json:"morning"`   // O或D
	Afternoon int    `json:"afternoon"` // OP或D
	Night     int    `json:"night"`     // ON或N
}

// Workload 统计每位员工的月度工作量（按姓名排序）
func Workload(r model.Roster) []EmployeeWorkload {
	byName := make(map[string]*EmployeeWorkload)

	for _, day := range r {
		for emp, a := range day {
			w, ok := byName[emp]
			if !ok {
				w = &EmployeeWorkload{Employee: emp, Counts: make(map[string]int)}
				byName[emp] = w
			}

			switch {
			case a.Shift.IsWorking():
				w.Counts[string(a.Shift)]++
				w.WorkingDays++
			case a.Shift == model.ShiftRest || a.Shift == model.ShiftHoliday:
				w.Counts[string(a.Shift)]++
				w.RestDays++
			default:
				w.Unassigned++
			}
		}
	}

	out := make([]EmployeeWorkload, 0, len(byName))
	for _, w := range byName {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Employee < out[j].Employee })
	return out
}

// Coverage 统计每个日期各时段的在岗人数（按日期排序）
// 泛化代码按其覆盖范围计入：D计入早午两个时段，N计入夜间
func Coverage(r model.Roster) []DayCoverage {
	out := make([]DayCoverage, 0, len(r))

	for date, day := range r {
		c := DayCoverage{Date: date}
		for _, a := range day {
			if a.Shift.Satisfies(model.ShiftMorning) {
				c.Morning++
			}
			if a.Shift.Satisfies(model.ShiftAfternoon) {
				c.Afternoon++
			}
			if a.Shift.Satisfies(model.ShiftNight) {
				c.Night++
			}
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
