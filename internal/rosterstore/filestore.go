// Package rosterstore 提供排班表的按月持久化
//
// 每个(年,月)一份数据。写路径是整表读-改-写，存储层必须对同月访问互斥，
// 否则两个并发编辑即便触碰不相交单元也会发生丢失更新
package rosterstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lunban/lunban/pkg/model"
)

// FileStore 基于文件的排班表存储：每月一个JSON文件
//
// 文件格式（与外部接口约定一致）：
//
//	{"YYYY-MM-DD": {"员工名": {"shift": "O", "note": ""}}}
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex // 月份键 -> 互斥锁
}

// NewFileStore 创建文件存储，目录不存在时自动创建
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建排班目录失败: %w", err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// path 返回某月的文件路径，如 <dir>/2025-06.json
func (s *FileStore) path(year, month int) string {
	return filepath.Join(s.dir, model.MonthKey(year, month)+".json")
}

// lockFor 返回某月的互斥锁（按需创建）
func (s *FileStore) lockFor(year, month int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := model.MonthKey(year, month)
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Load 读取某月排班表，文件不存在时返回exists=false
func (s *FileStore) Load(ctx context.Context, year, month int) (model.Roster, bool, error) {
	data, err := os.ReadFile(s.path(year, month))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("读取排班文件失败: %w", err)
	}

	var r model.Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, fmt.Errorf("排班文件损坏 %s: %w", model.MonthKey(year, month), err)
	}
	return r, true, nil
}

// Update 在该月互斥锁内执行读-改-写
func (s *FileStore) Update(ctx context.Context, year, month int, fn func(cur model.Roster, exists bool) (model.Roster, error)) (model.Roster, error) {
	lock := s.lockFor(year, month)
	lock.Lock()
	defer lock.Unlock()

	cur, exists, err := s.Load(ctx, year, month)
	if err != nil {
		return nil, err
	}

	next, err := fn(cur, exists)
	if err != nil {
		return nil, err
	}

	if err := s.write(year, month, next); err != nil {
		return nil, err
	}
	return next, nil
}

// write 原子写入：先写临时文件再改名，避免读到半截文件
func (s *FileStore) write(year, month int, r model.Roster) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化排班表失败: %w", err)
	}

	target := s.path(year, month)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("写入排班文件失败: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("替换排班文件失败: %w", err)
	}
	return nil
}
