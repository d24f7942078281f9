package roster

import (
	"testing"

	"github.com/lunban/lunban/pkg/model"
)

// testCatalog 返回带固定模式的测试目录
func testCatalog(t *testing.T, patterns map[string][]model.ShiftCode) *Catalog {
	t.Helper()
	c := DefaultCatalog()
	for name, p := range patterns {
		c.Patterns[name] = p
	}
	return c
}

func TestGenerate_AnchorMonday(t *testing.T) {
	// 锚点2025-05-05是周一：weekIndex 0，取模式第0个代码
	catalog := testCatalog(t, map[string][]model.ShiftCode{
		"Rossi": {model.ShiftNight, model.ShiftAfternoon, model.ShiftMorning},
	})

	r := Generate(2025, 5, []string{"Rossi"}, catalog)

	a, ok := r.Get("2025-05-05", "Rossi")
	if !ok {
		t.Fatal("锚点日期缺少分配")
	}
	if a.Shift != model.ShiftNight {
		t.Errorf("锚点日期代码 = %q, expected %q", a.Shift, model.ShiftNight)
	}
}

func TestGenerate_WeeklyRotation(t *testing.T) {
	catalog := testCatalog(t, map[string][]model.ShiftCode{
		"Rossi": {model.ShiftNight, model.ShiftAfternoon, model.ShiftMorning},
	})

	r := Generate(2025, 5, []string{"Rossi"}, catalog)

	tests := []struct {
		date     string
		expected model.ShiftCode
	}{
		{"2025-05-05", model.ShiftNight},     // weekIndex 0
		{"2025-05-12", model.ShiftAfternoon}, // weekIndex 1
		{"2025-05-19", model.ShiftMorning},   // weekIndex 2
		{"2025-05-26", model.ShiftNight},     // weekIndex 3 -> 模式回绕
	}

	for _, tt := range tests {
		a, _ := r.Get(tt.date, "Rossi")
		if a.Shift != tt.expected {
			t.Errorf("%s 的代码 = %q, expected %q", tt.date, a.Shift, tt.expected)
		}
	}
}

func TestGenerate_WeekendAlwaysRest(t *testing.T) {
	catalog := testCatalog(t, nil)
	employees := []string{"Rossi", "Bianchi"}

	r := Generate(2025, 6, employees, catalog)

	// 2025-06-07周六、2025-06-08周日，且不在节假日表中
	for _, date := range []string{"2025-06-07", "2025-06-08"} {
		for _, emp := range employees {
			a, ok := r.Get(date, emp)
			if !ok {
				t.Fatalf("%s/%s 缺少分配", date, emp)
			}
			if a.Shift != model.ShiftRest {
				t.Errorf("%s/%s = %q, expected R", date, emp, a.Shift)
			}
			if a.Note != "" {
				t.Errorf("周末说明应为空, got %q", a.Note)
			}
		}
	}
}

func TestGenerate_HolidayBeatsWeekdayPattern(t *testing.T) {
	catalog := testCatalog(t, nil)

	r := Generate(2025, 6, []string{"Rossi"}, catalog)

	// 2025-06-02是周一也是共和国日，节假日优先于模式
	a, _ := r.Get("2025-06-02", "Rossi")
	if a.Shift != model.ShiftHoliday {
		t.Errorf("节假日代码 = %q, expected F", a.Shift)
	}
	if a.Note != HolidayNote {
		t.Errorf("节假日说明 = %q, expected %q", a.Note, HolidayNote)
	}
}

func TestGenerate_HolidayBeatsWeekend(t *testing.T) {
	catalog := testCatalog(t, nil)

	// 2026-04-25解放日是周六，节假日优先于周末
	r := Generate(2026, 4, []string{"Rossi"}, catalog)

	a, _ := r.Get("2026-04-25", "Rossi")
	if a.Shift != model.ShiftHoliday {
		t.Errorf("周六节假日代码 = %q, expected F", a.Shift)
	}
}

func TestGenerate_BeforeAnchorUnassigned(t *testing.T) {
	catalog := testCatalog(t, nil)

	// 2025年4月全部早于锚点2025-05-05
	r := Generate(2025, 4, []string{"Rossi"}, catalog)

	// 2025-04-02是周三工作日
	a, ok := r.Get("2025-04-02", "Rossi")
	if !ok {
		t.Fatal("锚点前日期缺少分配")
	}
	if a.Shift != model.ShiftUnassigned {
		t.Errorf("锚点前工作日代码 = %q, expected 空", a.Shift)
	}

	// 周末与节假日覆盖仍然生效
	if a, _ := r.Get("2025-04-05", "Rossi"); a.Shift != model.ShiftRest {
		t.Errorf("锚点前周六代码 = %q, expected R", a.Shift)
	}
	if a, _ := r.Get("2025-04-25", "Rossi"); a.Shift != model.ShiftHoliday {
		t.Errorf("锚点前节假日代码 = %q, expected F", a.Shift)
	}
}

func TestGenerate_CompleteMonth(t *testing.T) {
	catalog := testCatalog(t, nil)
	employees := []string{"Rossi", "Bianchi", "Verdi"}

	r := Generate(2025, 6, employees, catalog)

	if len(r) != 30 {
		t.Fatalf("2025年6月应有30个日期, got %d", len(r))
	}
	for date, day := range r {
		if len(day) != len(employees) {
			t.Errorf("%s 应覆盖全员, got %d", date, len(day))
		}
		for emp, a := range day {
			if !a.Shift.IsValid() {
				t.Errorf("%s/%s 代码非法: %q", date, emp, a.Shift)
			}
		}
	}
}

func TestGenerate_DefaultPatternFallback(t *testing.T) {
	catalog := testCatalog(t, map[string][]model.ShiftCode{
		"Rossi": {model.ShiftMorning},
	})

	r := Generate(2025, 5, []string{"Rossi", "Bianchi"}, catalog)

	// Rossi用自己的模式
	if a, _ := r.Get("2025-05-05", "Rossi"); a.Shift != model.ShiftMorning {
		t.Errorf("Rossi代码 = %q, expected O", a.Shift)
	}
	// Bianchi未配置，回退默认模式（第0个是ON）
	if a, _ := r.Get("2025-05-05", "Bianchi"); a.Shift != model.ShiftNight {
		t.Errorf("Bianchi代码 = %q, expected ON", a.Shift)
	}
}
