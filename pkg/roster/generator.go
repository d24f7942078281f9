// Package roster 提供整月默认排班的生成、合并与读写服务
package roster

import (
	"time"

	"github.com/lunban/lunban/pkg/model"
)

// HolidayNote 节假日分配附带的说明
const HolidayNote = "national holiday"

// Generate 生成某月的完整默认排班表
//
// 逐日规则（优先级从高到低）：
//  1. 日期的MM-DD命中节假日表：全员 F，说明为 HolidayNote
//  2. 周六/周日：全员 R
//  3. 工作日：按 weekIndex = (日期-锚点)/7 取各员工轮换模式中的代码
//
// 锚点之前的日期统一给未分配空代码，不做负数取模
// （负数取模在不同语言间行为不一致，显式守卫让结果确定）
//
// 纯函数：总是产出覆盖整月、全员无空洞的排班表，持久化由调用方负责
func Generate(year, month int, employees []string, catalog *Catalog) model.Roster {
	out := make(model.Roster)
	anchor := catalog.AnchorTime()
	days := model.DaysInMonth(year, month)

	for day := 1; day <= days; day++ {
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		date := d.Format(model.DateLayout)
		mmdd := d.Format("01-02")

		switch {
		case catalog.IsHoliday(mmdd):
			for _, emp := range employees {
				out.Set(date, emp, model.DayAssignment{Shift: model.ShiftHoliday, Note: HolidayNote})
			}

		case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
			for _, emp := range employees {
				out.Set(date, emp, model.DayAssignment{Shift: model.ShiftRest})
			}

		default:
			daysPassed := int(d.Sub(anchor).Hours() / 24)
			for _, emp := range employees {
				code := model.ShiftUnassigned
				if daysPassed >= 0 {
					pattern := catalog.PatternFor(emp)
					weekIndex := daysPassed / 7
					code = pattern[weekIndex%len(pattern)]
				}
				out.Set(date, emp, model.DayAssignment{Shift: code})
			}
		}
	}

	return out
}
