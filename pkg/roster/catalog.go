// Package roster 提供整月默认排班的生成、合并与读写服务
package roster

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lunban/lunban/pkg/model"
)

// DefaultAnchor 共享锚点日期（周一），轮换周序号从这里起算
const DefaultAnchor = "2025-05-05"

// Catalog 轮换规则目录：每员工轮换模式 + 固定节假日表 + 锚点日期
// 属于本引擎的静态配置，可通过YAML文件外部化以支持未来的轮换调整
type Catalog struct {
	Anchor         string                       `yaml:"anchor"`          // YYYY-MM-DD
	DefaultPattern []model.ShiftCode            `yaml:"default_pattern"` // 未单独配置的员工使用
	Patterns       map[string][]model.ShiftCode `yaml:"patterns"`        // 员工姓名 -> 轮换模式
	Holidays       []string                     `yaml:"holidays"`        // MM-DD，与年份无关

	anchorTime time.Time
	holidaySet map[string]bool
}

// DefaultCatalog 返回内置规则目录
// 节假日表为意大利法定节假日（固定日期部分）
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Anchor:         DefaultAnchor,
		DefaultPattern: []model.ShiftCode{model.ShiftNight, model.ShiftAfternoon, model.ShiftMorning},
		Patterns:       map[string][]model.ShiftCode{},
		Holidays: []string{
			"01-01", // Capodanno
			"01-06", // Epifania
			"04-25", // Liberazione
			"05-01", // Festa del Lavoro
			"06-02", // Festa della Repubblica
			"08-15", // Ferragosto
			"11-01", // Ognissanti
			"12-08", // Immacolata
			"12-25", // Natale
			"12-26", // Santo Stefano
		},
	}
	if err := c.init(); err != nil {
		panic(err) // 内置配置必须合法
	}
	return c
}

// LoadCatalog 从YAML文件加载规则目录
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取轮换规则文件失败: %w", err)
	}

	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("解析轮换规则文件失败: %w", err)
	}

	if c.Anchor == "" {
		c.Anchor = DefaultAnchor
	}
	if len(c.DefaultPattern) == 0 {
		c.DefaultPattern = DefaultCatalog().DefaultPattern
	}
	if c.Patterns == nil {
		c.Patterns = map[string][]model.ShiftCode{}
	}

	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init 解析锚点并构建节假日集合
func (c *Catalog) init() error {
	anchor, err := time.Parse(model.DateLayout, c.Anchor)
	if err != nil {
		return fmt.Errorf("锚点日期无效 %q: %w", c.Anchor, err)
	}
	c.anchorTime = anchor

	c.holidaySet = make(map[string]bool, len(c.Holidays))
	for _, h := range c.Holidays {
		if _, err := time.Parse("01-02", h); err != nil {
			return fmt.Errorf("节假日格式无效 %q（应为MM-DD）", h)
		}
		c.holidaySet[h] = true
	}

	for name, p := range c.Patterns {
		if len(p) == 0 {
			return fmt.Errorf("员工 %q 的轮换模式为空", name)
		}
		for _, code := range p {
			if !code.IsValid() || code == model.ShiftUnassigned {
				return fmt.Errorf("员工 %q 的轮换模式含非法代码 %q", name, code)
			}
		}
	}
	for _, code := range c.DefaultPattern {
		if !code.IsValid() || code == model.ShiftUnassigned {
			return fmt.Errorf("默认轮换模式含非法代码 %q", code)
		}
	}

	return nil
}

// AnchorTime 返回解析后的锚点日期
func (c *Catalog) AnchorTime() time.Time {
	return c.anchorTime
}

// PatternFor 返回某员工的轮换模式，未配置时回退到默认模式
func (c *Catalog) PatternFor(employee string) []model.ShiftCode {
	if p, ok := c.Patterns[employee]; ok {
		return p
	}
	return c.DefaultPattern
}

// IsHoliday 检查MM-DD是否为法定节假日
func (c *Catalog) IsHoliday(mmdd string) bool {
	return c.holidaySet[mmdd]
}
