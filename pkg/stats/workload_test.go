package stats

import (
	"testing"

	"github.com/lunban/lunban/pkg/model"
)

func testRoster() model.Roster {
	return model.Roster{
		"2025-06-02": {
			"Bianchi": {Shift: model.ShiftDay},
			"Neri":    {Shift: model.ShiftNightAny},
			"Rossi":   {Shift: model.ShiftMorning},
		},
		"2025-06-03": {
			"Bianchi": {Shift: model.ShiftRest},
			"Neri":    {Shift: model.ShiftHoliday},
			"Rossi":   {Shift: model.ShiftUnassigned},
		},
		"2025-06-04": {
			"Bianchi": {Shift: model.ShiftAfternoon},
			"Neri":    {Shift: model.ShiftNight},
			"Rossi":   {Shift: model.ShiftMorning},
		},
	}
}

func TestWorkload(t *testing.T) {
	got := Workload(testRoster())

	if len(got) != 3 {
		t.Fatalf("应有3位员工, got %d", len(got))
	}
	// 按姓名排序
	if got[0].Employee != "Bianchi" || got[1].Employee != "Neri" || got[2].Employee != "Rossi" {
		t.Errorf("排序不符: %v, %v, %v", got[0].Employee, got[1].Employee, got[2].Employee)
	}

	bianchi := got[0]
	if bianchi.WorkingDays != 2 || bianchi.RestDays != 1 || bianchi.Unassigned != 0 {
		t.Errorf("Bianchi工作量不符: %+v", bianchi)
	}
	if bianchi.Counts["D"] != 1 || bianchi.Counts["OP"] != 1 || bianchi.Counts["R"] != 1 {
		t.Errorf("Bianchi计数不符: %v", bianchi.Counts)
	}

	neri := got[1]
	if neri.WorkingDays != 2 || neri.RestDays != 1 {
		t.Errorf("Neri工作量不符: %+v", neri)
	}

	rossi := got[2]
	if rossi.WorkingDays != 2 || rossi.Unassigned != 1 {
		t.Errorf("Rossi工作量不符: %+v", rossi)
	}
}

func TestCoverage(t *testing.T) {
	got := Coverage(testRoster())

	if len(got) != 3 {
		t.Fatalf("应有3个日期, got %d", len(got))
	}
	if got[0].Date != "2025-06-02" || got[2].Date != "2025-06-04" {
		t.Errorf("日期排序不符: %v", got)
	}

	// 06-02: Rossi(O)与Bianchi(D)覆盖早班，Bianchi(D)覆盖午班，Neri(N)覆盖夜班
	day := got[0]
	if day.Morning != 2 || day.Afternoon != 1 || day.Night != 1 {
		t.Errorf("06-02覆盖不符: %+v", day)
	}

	// 06-03: 休息/节假日/未分配，全时段无人
	day = got[1]
	if day.Morning != 0 || day.Afternoon != 0 || day.Night != 0 {
		t.Errorf("06-03覆盖不符: %+v", day)
	}
}

func TestWorkload_EmptyRoster(t *testing.T) {
	if got := Workload(model.Roster{}); len(got) != 0 {
		t.Errorf("空排班表应返回空结果, got %v", got)
	}
	if got := Coverage(model.Roster{}); len(got) != 0 {
		t.Errorf("空排班表应返回空覆盖, got %v", got)
	}
}
