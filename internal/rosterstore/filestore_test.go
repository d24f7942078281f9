package rosterstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/lunban/lunban/pkg/model"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}
	return s
}

func TestFileStore_LoadMissing(t *testing.T) {
	s := newTestFileStore(t)

	r, exists, err := s.Load(context.Background(), 2025, 6)
	if err != nil {
		t.Fatalf("读取不存在的月份不应报错: %v", err)
	}
	if exists {
		t.Error("exists应为false")
	}
	if r != nil {
		t.Errorf("排班表应为nil, got %v", r)
	}
}

func TestFileStore_UpdateThenLoad(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	want := model.Roster{
		"2025-06-03": {
			"Rossi":   {Shift: model.ShiftMorning},
			"Bianchi": {Shift: model.ShiftRest, Note: "permesso"},
		},
	}

	got, err := s.Update(ctx, 2025, 6, func(cur model.Roster, exists bool) (model.Roster, error) {
		if exists {
			t.Error("首次Update时exists应为false")
		}
		return want, nil
	})
	if err != nil {
		t.Fatalf("Update失败: %v", err)
	}
	if a, _ := got.Get("2025-06-03", "Rossi"); a.Shift != model.ShiftMorning {
		t.Errorf("Update返回值不符: %+v", a)
	}

	// 重新读取，note等字段必须原样落盘
	loaded, exists, err := s.Load(ctx, 2025, 6)
	if err != nil {
		t.Fatalf("Load失败: %v", err)
	}
	if !exists {
		t.Fatal("写入后exists应为true")
	}
	if a, _ := loaded.Get("2025-06-03", "Bianchi"); a.Shift != model.ShiftRest || a.Note != "permesso" {
		t.Errorf("落盘数据不符: %+v", a)
	}
}

func TestFileStore_UpdateSeesPrevious(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	first := model.Roster{"2025-06-03": {"Rossi": {Shift: model.ShiftMorning}}}
	if _, err := s.Update(ctx, 2025, 6, func(cur model.Roster, exists bool) (model.Roster, error) {
		return first, nil
	}); err != nil {
		t.Fatalf("首次Update失败: %v", err)
	}

	// 第二次Update必须看到首次写入的内容
	_, err := s.Update(ctx, 2025, 6, func(cur model.Roster, exists bool) (model.Roster, error) {
		if !exists {
			t.Error("二次Update时exists应为true")
		}
		if a, ok := cur.Get("2025-06-03", "Rossi"); !ok || a.Shift != model.ShiftMorning {
			t.Errorf("未看到已持久化内容: %+v", a)
		}
		cur.Set("2025-06-04", "Rossi", model.DayAssignment{Shift: model.ShiftNight})
		return cur, nil
	})
	if err != nil {
		t.Fatalf("二次Update失败: %v", err)
	}

	loaded, _, _ := s.Load(ctx, 2025, 6)
	if len(loaded) != 2 {
		t.Errorf("应有2个日期, got %d", len(loaded))
	}
}

func TestFileStore_MonthsAreIsolated(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	june := model.Roster{"2025-06-03": {"Rossi": {Shift: model.ShiftMorning}}}
	if _, err := s.Update(ctx, 2025, 6, func(cur model.Roster, exists bool) (model.Roster, error) {
		return june, nil
	}); err != nil {
		t.Fatalf("Update失败: %v", err)
	}

	if _, exists, _ := s.Load(ctx, 2025, 7); exists {
		t.Error("7月不应存在")
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("创建文件存储失败: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "2025-06.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("写入损坏文件失败: %v", err)
	}

	if _, _, err := s.Load(context.Background(), 2025, 6); err == nil {
		t.Error("损坏文件应报错而非静默当作不存在")
	}
}

func TestFileStore_ConcurrentUpdates(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	// 两个并发编辑触碰不相交单元，互斥下不得丢失更新
	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			date := "2025-06-03"
			emp := string(rune('A' + i))
			_, err := s.Update(ctx, 2025, 6, func(cur model.Roster, exists bool) (model.Roster, error) {
				if cur == nil {
					cur = model.Roster{}
				}
				cur.Set(date, emp, model.DayAssignment{Shift: model.ShiftMorning})
				return cur, nil
			})
			if err != nil {
				t.Errorf("并发Update失败: %v", err)
			}
		}(i)
	}
	wg.Wait()

	loaded, _, err := s.Load(ctx, 2025, 6)
	if err != nil {
		t.Fatalf("Load失败: %v", err)
	}
	if got := len(loaded["2025-06-03"]); got != n {
		t.Errorf("应有%d个单元, got %d", n, got)
	}
}
