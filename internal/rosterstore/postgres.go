package rosterstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lunban/lunban/internal/database"
	"github.com/lunban/lunban/pkg/model"
)

// PostgresStore 基于PostgreSQL的排班表存储
// 每月一行jsonb，SELECT ... FOR UPDATE 提供同月写入互斥
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore 创建Postgres存储
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema 建表（幂等）
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS rosters (
			month_key  TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("创建rosters表失败: %w", err)
	}
	return nil
}

// Load 读取某月排班表
func (s *PostgresStore) Load(ctx context.Context, year, month int) (model.Roster, bool, error) {
	var data []byte
	query := `SELECT data FROM rosters WHERE month_key = $1`
	err := s.db.QueryRowContext(ctx, query, model.MonthKey(year, month)).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("查询排班表失败: %w", err)
	}

	var r model.Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, fmt.Errorf("排班数据损坏 %s: %w", model.MonthKey(year, month), err)
	}
	return r, true, nil
}

// Update 在事务内执行读-改-写，行锁保证同月互斥
func (s *PostgresStore) Update(ctx context.Context, year, month int, fn func(cur model.Roster, exists bool) (model.Roster, error)) (model.Roster, error) {
	key := model.MonthKey(year, month)
	var result model.Roster

	err := s.db.Transaction(ctx, func(tx *sql.Tx) error {
		var data []byte
		var cur model.Roster
		exists := true

		err := tx.QueryRowContext(ctx, `SELECT data FROM rosters WHERE month_key = $1 FOR UPDATE`, key).Scan(&data)
		if err == sql.ErrNoRows {
			exists = false
		} else if err != nil {
			return fmt.Errorf("锁定排班行失败: %w", err)
		} else if err := json.Unmarshal(data, &cur); err != nil {
			return fmt.Errorf("排班数据损坏 %s: %w", key, err)
		}

		next, err := fn(cur, exists)
		if err != nil {
			return err
		}

		nextJSON, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("序列化排班表失败: %w", err)
		}

		query := `
			INSERT INTO rosters (month_key, data, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (month_key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
		`
		if _, err := tx.ExecContext(ctx, query, key, nextJSON); err != nil {
			return fmt.Errorf("写入排班表失败: %w", err)
		}

		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
