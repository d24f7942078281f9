// Package config 提供配置管理
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// 存储后端类型
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// 员工目录来源
const (
	DirectorySourcePostgres = "postgres"
	DirectorySourceFile     = "file"
)

// Config 应用配置
type Config struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Roster    RosterConfig    `yaml:"roster"`
	Directory DirectoryConfig `yaml:"directory"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name     string `yaml:"name"`
	Env      string `yaml:"env"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Name            string        `yaml:"name"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// DSN 返回数据库连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// RosterConfig 排班存储与轮换规则配置
type RosterConfig struct {
	StoreBackend string `yaml:"store_backend"` // file/postgres
	DataDir      string `yaml:"data_dir"`      // file后端的存储目录
	RulesPath    string `yaml:"rules_path"`    // 轮换规则YAML，空则用内置默认
}

// DirectoryConfig 员工目录配置
type DirectoryConfig struct {
	Source   string `yaml:"source"`    // postgres/file
	FilePath string `yaml:"file_path"` // file来源的员工YAML
}

// MetricsConfig 监控配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "lunban"),
			Env:      getEnv("APP_ENV", "development"),
			Port:     getEnvInt("APP_PORT", 7013),
			LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			Name:            getEnv("DB_NAME", "lunban"),
			User:            getEnv("DB_USER", "lunban"),
			Password:        getEnv("DB_PASSWORD", "lunban123"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Roster: RosterConfig{
			StoreBackend: getEnv("ROSTER_STORE_BACKEND", StoreBackendFile),
			DataDir:      getEnv("ROSTER_DATA_DIR", "./data/rosters"),
			RulesPath:    getEnv("ROSTER_RULES_PATH", ""),
		},
		Directory: DirectoryConfig{
			Source:   getEnv("DIRECTORY_SOURCE", DirectorySourceFile),
			FilePath: getEnv("DIRECTORY_FILE", "./data/employees.yaml"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate 校验配置取值
func (c *Config) validate() error {
	switch c.Roster.StoreBackend {
	case StoreBackendFile, StoreBackendPostgres:
	default:
		return fmt.Errorf("ROSTER_STORE_BACKEND无效: %q（应为file或postgres）", c.Roster.StoreBackend)
	}
	switch c.Directory.Source {
	case DirectorySourcePostgres, DirectorySourceFile:
	default:
		return fmt.Errorf("DIRECTORY_SOURCE无效: %q（应为postgres或file）", c.Directory.Source)
	}
	return nil
}

// NeedsDatabase 检查当前配置是否需要Postgres连接
func (c *Config) NeedsDatabase() bool {
	return c.Roster.StoreBackend == StoreBackendPostgres ||
		c.Directory.Source == DirectorySourcePostgres
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// 辅助函数
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
