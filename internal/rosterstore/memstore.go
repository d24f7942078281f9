package rosterstore

import (
	"context"
	"sync"

	"github.com/lunban/lunban/pkg/model"
)

// MemStore 内存排班表存储，用于测试与本地开发
type MemStore struct {
	mu      sync.Mutex
	rosters map[string]model.Roster // 月份键 -> 排班表
}

// NewMemStore 创建内存存储
func NewMemStore() *MemStore {
	return &MemStore{rosters: make(map[string]model.Roster)}
}

// Load 读取某月排班表
func (s *MemStore) Load(ctx context.Context, year, month int) (model.Roster, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rosters[model.MonthKey(year, month)]
	if !ok {
		return nil, false, nil
	}
	return r.Clone(), true, nil
}

// Update 在全局锁内执行读-改-写（内存实现，粒度粗一点无妨）
func (s *MemStore) Update(ctx context.Context, year, month int, fn func(cur model.Roster, exists bool) (model.Roster, error)) (model.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := model.MonthKey(year, month)
	cur, exists := s.rosters[key]
	if exists {
		cur = cur.Clone()
	}

	next, err := fn(cur, exists)
	if err != nil {
		return nil, err
	}

	s.rosters[key] = next.Clone()
	return next, nil
}
