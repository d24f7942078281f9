package model

import "testing"

func TestMerge_NonDestructive(t *testing.T) {
	persisted := Roster{
		"2025-06-02": {
			"Rossi":   {Shift: ShiftMorning},
			"Bianchi": {Shift: ShiftNight},
		},
		"2025-06-03": {
			"Rossi": {Shift: ShiftAfternoon},
		},
	}

	incoming := Roster{
		"2025-06-02": {
			"Rossi": {Shift: ShiftRest, Note: "ferie"},
		},
		"2025-06-04": {
			"Bianchi": {Shift: ShiftMorning},
		},
	}

	merged := Merge(persisted, incoming)

	// 被编辑的单元更新
	if a, _ := merged.Get("2025-06-02", "Rossi"); a.Shift != ShiftRest || a.Note != "ferie" {
		t.Errorf("被编辑单元未更新: %+v", a)
	}
	// 同日期未触碰的员工保留
	if a, _ := merged.Get("2025-06-02", "Bianchi"); a.Shift != ShiftNight {
		t.Errorf("同日期其他员工被破坏: %+v", a)
	}
	// incoming中缺失的日期原样保留
	if a, _ := merged.Get("2025-06-03", "Rossi"); a.Shift != ShiftAfternoon {
		t.Errorf("未触碰日期被破坏: %+v", a)
	}
	// 新日期被追加
	if a, ok := merged.Get("2025-06-04", "Bianchi"); !ok || a.Shift != ShiftMorning {
		t.Errorf("新日期未追加: %+v", a)
	}
}

func TestMerge_DisjointSequentialEdits(t *testing.T) {
	persisted := Roster{
		"2025-06-02": {"Rossi": {Shift: ShiftMorning}, "Bianchi": {Shift: ShiftNight}},
	}

	// 两个操作员触碰不相交的单元，串行应用后两份编辑都应生效
	edit1 := Roster{"2025-06-02": {"Rossi": {Shift: ShiftRest}}}
	edit2 := Roster{"2025-06-02": {"Bianchi": {Shift: ShiftAfternoon}}}

	merged := Merge(Merge(persisted, edit1), edit2)

	if a, _ := merged.Get("2025-06-02", "Rossi"); a.Shift != ShiftRest {
		t.Errorf("第一份编辑丢失: %+v", a)
	}
	if a, _ := merged.Get("2025-06-02", "Bianchi"); a.Shift != ShiftAfternoon {
		t.Errorf("第二份编辑丢失: %+v", a)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	persisted := Roster{"2025-06-02": {"Rossi": {Shift: ShiftMorning}}}
	incoming := Roster{"2025-06-02": {"Rossi": {Shift: ShiftRest}}}

	_ = Merge(persisted, incoming)

	if a, _ := persisted.Get("2025-06-02", "Rossi"); a.Shift != ShiftMorning {
		t.Error("Merge不应修改persisted输入")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		expected int
	}{
		{"2025年6月", 2025, 6, 30},
		{"2025年7月", 2025, 7, 31},
		{"2025年2月平年", 2025, 2, 28},
		{"2024年2月闰年", 2024, 2, 29},
		{"12月", 2025, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.expected {
				t.Errorf("DaysInMonth(%d, %d) = %d, expected %d", tt.year, tt.month, got, tt.expected)
			}
		})
	}
}

func TestMonthOf(t *testing.T) {
	y, m, err := MonthOf("2025-06-07")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if y != 2025 || m != 6 {
		t.Errorf("MonthOf = (%d, %d), expected (2025, 6)", y, m)
	}

	if _, _, err := MonthOf("07/06/2025"); err == nil {
		t.Error("非法日期格式应报错")
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(2025, 6); got != "2025-06" {
		t.Errorf("MonthKey = %q, expected %q", got, "2025-06")
	}
}
