// Package roster 提供整月默认排班的生成、合并与读写服务
package roster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lunban/lunban/pkg/errors"
	"github.com/lunban/lunban/pkg/logger"
	"github.com/lunban/lunban/pkg/model"
)

// Store 排班表存储协作方
//
// Update必须对同一(年,月)键提供互斥：读-合并-写序列在临界区内执行，
// 否则并发编辑同月会发生丢失更新。只读的Load可对一致快照无同步执行
type Store interface {
	// Load 加载某月排班表；不存在时exists为false且不报错
	Load(ctx context.Context, year, month int) (r model.Roster, exists bool, err error)
	// Update 在(年,月)键的互斥临界区内执行读-改-写，返回写入后的排班表
	Update(ctx context.Context, year, month int, fn func(cur model.Roster, exists bool) (model.Roster, error)) (model.Roster, error)
}

// Directory 员工目录协作方（只读）
type Directory interface {
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
}

// Service 排班服务：首次访问惰性生成、保存时非破坏合并
type Service struct {
	store     Store
	directory Directory
	catalog   *Catalog
	log       *logger.RosterLogger
}

// NewService 创建排班服务
func NewService(store Store, directory Directory, catalog *Catalog) *Service {
	return &Service{
		store:     store,
		directory: directory,
		catalog:   catalog,
		log:       logger.NewRosterLogger(),
	}
}

// Catalog 返回服务使用的轮换规则目录
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Month 返回某月排班表，首次访问时生成并持久化
// 第二个返回值表示本次调用是否新生成了默认排班
//
// 幂等：已持久化的月份原样返回，绝不重新生成覆盖。
// 生成发生在存储的临界区内，并发的首次访问只会生成一次
func (s *Service) Month(ctx context.Context, year, month int) (model.Roster, bool, error) {
	if err := ValidateMonth(year, month); err != nil {
		return nil, false, err
	}

	// 快路径：已有持久化数据，无同步读取即可
	if r, exists, err := s.store.Load(ctx, year, month); err != nil {
		return nil, false, errors.StorageError("load", err)
	} else if exists {
		return r, false, nil
	}

	employees, err := s.schedulableEmployees(ctx)
	if err != nil {
		return nil, false, err
	}

	generated := false
	r, err := s.store.Update(ctx, year, month, func(cur model.Roster, exists bool) (model.Roster, error) {
		if exists {
			// 其他请求抢先生成，保持幂等
			return cur, nil
		}
		s.log.GenerateMonth(year, month, len(employees))
		generated = true
		return Generate(year, month, employees, s.catalog), nil
	})
	if err != nil {
		return nil, false, errors.StorageError("generate", err)
	}
	return r, generated, nil
}

// SaveMonth 将部分编辑合并进某月排班表并持久化
//
// 两层浅合并（见model.Merge）：只有编辑触碰的(日期,员工)单元变化
func (s *Service) SaveMonth(ctx context.Context, year, month int, partial model.Roster) (model.Roster, error) {
	if err := ValidateMonth(year, month); err != nil {
		return nil, err
	}
	if err := ValidatePartial(year, month, partial); err != nil {
		return nil, err
	}

	r, err := s.store.Update(ctx, year, month, func(cur model.Roster, exists bool) (model.Roster, error) {
		if !exists {
			cur = make(model.Roster)
		}
		return model.Merge(cur, partial), nil
	})
	if err != nil {
		return nil, errors.StorageError("save", err)
	}

	s.log.MergeSaved(year, month, len(partial))
	return r, nil
}

// schedulableEmployees 从员工目录取可排班员工姓名
func (s *Service) schedulableEmployees(ctx context.Context) ([]string, error) {
	employees, err := s.directory.ListEmployees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "读取员工目录失败")
	}
	return model.SchedulableNames(employees), nil
}

// ValidateMonth 校验(年,月)参数
func ValidateMonth(year, month int) *errors.AppError {
	ve := &errors.ValidationErrors{}
	if year < 2000 || year > 2100 {
		ve.Add("year", fmt.Sprintf("年份超出范围: %d", year))
	}
	if month < 1 || month > 12 {
		ve.Add("month", fmt.Sprintf("月份无效: %d", month))
	}
	if ve.HasErrors() {
		return ve.ToAppError()
	}
	return nil
}

// ValidatePartial 校验部分编辑：日期格式与归属月份、班次代码合法性
func ValidatePartial(year, month int, partial model.Roster) *errors.AppError {
	ve := &errors.ValidationErrors{}
	prefix := model.MonthKey(year, month) + "-"

	for date, day := range partial {
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			ve.Add(date, "日期格式无效，应为YYYY-MM-DD")
			continue
		}
		if !strings.HasPrefix(date, prefix) {
			ve.Add(date, fmt.Sprintf("日期不属于 %s", model.MonthKey(year, month)))
		}
		for emp, a := range day {
			if !a.Shift.IsValid() {
				ve.Add(date+"/"+emp, fmt.Sprintf("班次代码无效: %q", a.Shift))
			}
		}
	}

	if ve.HasErrors() {
		return ve.ToAppError()
	}
	return nil
}
