// Package model 定义轮班引擎的核心数据模型
package model

// ShiftCode 班次代码（封闭枚举）
type ShiftCode string

const (
	ShiftMorning   ShiftCode = "O"  // 早班 07:00-12:00
	ShiftAfternoon ShiftCode = "OP" // 午班 12:00-19:00
	ShiftNight     ShiftCode = "ON" // 夜班 19:00-07:00
	ShiftRest      ShiftCode = "R"  // 休息日
	ShiftHoliday   ShiftCode = "F"  // 法定节假日

	// 泛化代码：只作为已分配代码出现，不会作为任务所需代码出现
	ShiftDay      ShiftCode = "D" // 白班（覆盖 O 和 OP）
	ShiftNightAny ShiftCode = "N" // 夜班泛化（覆盖 ON）

	// 未分配（锚点日期之前的日期）
	ShiftUnassigned ShiftCode = ""
)

// allCodes 合法代码集合
var allCodes = map[ShiftCode]bool{
	ShiftMorning:    true,
	ShiftAfternoon:  true,
	ShiftNight:      true,
	ShiftRest:       true,
	ShiftHoliday:    true,
	ShiftDay:        true,
	ShiftNightAny:   true,
	ShiftUnassigned: true,
}

// compatibility 泛化代码兼容表：已分配代码 -> 额外满足的所需代码
// 精确匹配之外的兼容关系全部由此表驱动
var compatibility = map[ShiftCode][]ShiftCode{
	ShiftDay:      {ShiftMorning, ShiftAfternoon},
	ShiftNightAny: {ShiftNight},
}

// IsValid 检查是否为合法的班次代码
func (c ShiftCode) IsValid() bool {
	return allCodes[c]
}

// IsWorking 检查是否为工作班次（非休息/节假日/未分配）
func (c ShiftCode) IsWorking() bool {
	switch c {
	case ShiftMorning, ShiftAfternoon, ShiftNight, ShiftDay, ShiftNightAny:
		return true
	}
	return false
}

// Satisfies 检查已分配代码是否覆盖所需代码
func (c ShiftCode) Satisfies(required ShiftCode) bool {
	if c == required && c != ShiftUnassigned {
		return true
	}
	for _, r := range compatibility[c] {
		if r == required {
			return true
		}
	}
	return false
}
