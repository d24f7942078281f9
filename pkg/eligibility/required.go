// Package eligibility 实现任务时刻到所需班次的映射与资格校验
package eligibility

import (
	"time"

	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/model"
)

// RequiredShift 把任务时刻(HH:MM, 24小时制)映射为所需班次代码
//
// 规则：07:00-11:59 -> O；12:00-18:59 -> OP；其余(19:00-23:59与00:00-06:59) -> ON。
// 对语法合法的时刻是全函数，任何合法输入都有确定结果
func RequiredShift(hhmm string) (model.ShiftCode, *errors.AppError) {
	t, err := time.Parse(model.TimeLayout, hhmm)
	if err != nil {
		return model.ShiftUnassigned, errors.InvalidInput("time", "时刻格式无效，应为HH:MM")
	}

	switch hour := t.Hour(); {
	case hour >= 7 && hour < 12:
		return model.ShiftMorning, nil
	case hour >= 12 && hour < 19:
		return model.ShiftAfternoon, nil
	default:
		return model.ShiftNight, nil
	}
}
