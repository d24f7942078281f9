// LunBan 轮班引擎服务
// 主程序入口

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/lunban/lunban/internal/config"
	"github.com/lunban/lunban/internal/database"
	"github.com/lunban/lunban/internal/handler"
	"github.com/lunban/lunban/internal/metrics"
	"github.com/lunban/lunban/internal/repository"
	"github.com/lunban/lunban/internal/rosterstore"
	"github.com/lunban/lunban/pkg/eligibility"
	"github.com/lunban/lunban/pkg/logger"
	"github.com/lunban/lunban/pkg/roster"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// .env 不存在时静默跳过
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(logger.Config{
		Level:  cfg.App.LogLevel,
		Format: "console",
	})

	// 打印版本信息
	fmt.Printf("LunBan 轮班引擎 v%s\n", Version)
	fmt.Printf("Build: %s (%s)\n", BuildTime, GitCommit)
	fmt.Println()

	// 数据库连接（仅在存储或目录需要时建立）
	var db *database.DB
	if cfg.NeedsDatabase() {
		db, err = database.New(&cfg.Database)
		if err != nil {
			logger.Error().Err(err).Msg("数据库初始化失败")
			os.Exit(1)
		}
		defer db.Close()
	}

	// 轮换规则目录
	catalog := roster.DefaultCatalog()
	if cfg.Roster.RulesPath != "" {
		catalog, err = roster.LoadCatalog(cfg.Roster.RulesPath)
		if err != nil {
			logger.Error().Err(err).Str("path", cfg.Roster.RulesPath).Msg("轮换规则加载失败")
			os.Exit(1)
		}
		logger.Info().Str("path", cfg.Roster.RulesPath).Msg("轮换规则已加载")
	}

	// 排班表存储
	var store roster.Store
	switch cfg.Roster.StoreBackend {
	case config.StoreBackendPostgres:
		pgStore := rosterstore.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			logger.Error().Err(err).Msg("排班表结构初始化失败")
			os.Exit(1)
		}
		store = pgStore
	default:
		fileStore, err := rosterstore.NewFileStore(cfg.Roster.DataDir)
		if err != nil {
			logger.Error().Err(err).Str("dir", cfg.Roster.DataDir).Msg("排班文件存储初始化失败")
			os.Exit(1)
		}
		store = fileStore
	}

	// 员工目录
	var directory roster.Directory
	switch cfg.Directory.Source {
	case config.DirectorySourcePostgres:
		directory = repository.NewEmployeeRepository(db)
	default:
		staticDir, err := repository.LoadStaticDirectory(cfg.Directory.FilePath)
		if err != nil {
			logger.Error().Err(err).Str("path", cfg.Directory.FilePath).Msg("员工目录加载失败")
			os.Exit(1)
		}
		directory = staticDir
	}

	// 组装服务与处理器
	rosterSvc := roster.NewService(store, directory, catalog)
	validator := eligibility.NewValidator(store, directory)

	rosterHandler := handler.NewRosterHandler(rosterSvc)
	availabilityHandler := handler.NewAvailabilityHandler(validator)
	taskHandler := handler.NewTaskHandler(validator)
	employeeHandler := handler.NewEmployeeHandler(directory)

	// 创建 HTTP 服务器
	mux := http.NewServeMux()

	// ========================================
	// 系统端点
	// ========================================

	// 健康检查端点
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"lunban"}`))
	})

	// 版本信息端点
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","build_time":"%s","git_commit":"%s"}`, Version, BuildTime, GitCommit)
	})

	// ========================================
	// API v1 端点
	// ========================================

	// API 根路由
	mux.HandleFunc("/api/v1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"message": "LunBan 轮班引擎 API v1",
			"endpoints": {
				"roster": {
					"get": "GET /api/v1/roster?year=&month=",
					"save": "POST /api/v1/roster?year=&month=",
					"workload": "GET /api/v1/roster/workload?year=&month=",
					"available": "GET /api/v1/roster/available?date=&time="
				},
				"tasks": {
					"validate": "POST /api/v1/tasks/validate"
				},
				"employees": {
					"list": "GET /api/v1/employees"
				}
			}
		}`))
	})

	// 排班表读取/保存 API
	mux.HandleFunc("/api/v1/roster", rosterHandler.Handle)

	// 月度工作量统计 API
	mux.HandleFunc("/api/v1/roster/workload", rosterHandler.Workload)

	// 可用员工查询 API
	mux.HandleFunc("/api/v1/roster/available", availabilityHandler.Available)

	// 任务资格校验 API
	mux.HandleFunc("/api/v1/tasks/validate", taskHandler.Validate)

	// 员工目录 API（只读）
	mux.HandleFunc("/api/v1/employees", employeeHandler.List)

	// ========================================
	// 监控端点
	// ========================================

	// Prometheus 指标端点
	if cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, metrics.Handler())
	}

	// ========================================
	// 中间件
	// ========================================

	// 中间件执行顺序：requestID -> rateLimit -> cors -> logging -> handler
	root := requestIDMiddleware(rateLimitMiddleware(corsMiddleware(loggingMiddleware(mux))))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      root,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 启动服务器（非阻塞）
	go func() {
		logger.Info().
			Int("port", cfg.App.Port).
			Str("version", Version).
			Str("store_backend", cfg.Roster.StoreBackend).
			Str("directory_source", cfg.Directory.Source).
			Msg("服务器启动")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("服务器启动失败")
			os.Exit(1)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("服务器关闭失败")
		os.Exit(1)
	}

	logger.Info().Msg("服务器已关闭")
}

// requestIDMiddleware 请求ID追踪中间件
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 尝试从请求头获取 Request ID，没有则生成新的
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// 设置响应头
		w.Header().Set("X-Request-ID", requestID)

		// 将 Request ID 存储到 context 中
		ctx := context.WithValue(r.Context(), "request_id", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware 日志中间件
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// 获取 Request ID
		requestID, _ := r.Context().Value("request_id").(string)

		// 包装ResponseWriter以捕获状态码
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)

		logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Dur("duration", duration).
			Msg("请求处理")

		// 记录Prometheus指标
		metrics.RecordRequestMetrics(r.Method, r.URL.Path, rw.statusCode, duration)
	})
}

// responseWriter 包装ResponseWriter以捕获状态码
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RateLimiter 简单的令牌桶限流器
type RateLimiter struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // 每秒添加的令牌数
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter 创建限流器
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	return &RateLimiter{
		tokens:     requestsPerSecond,
		maxTokens:  requestsPerSecond * 2, // 允许突发流量
		refillRate: requestsPerSecond,
		lastRefill: time.Now(),
	}
}

// Allow 检查是否允许请求
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens += elapsed * rl.refillRate
	if rl.tokens > rl.maxTokens {
		rl.tokens = rl.maxTokens
	}
	rl.lastRefill = now

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

var globalRateLimiter = NewRateLimiter(100) // 默认 100 QPS

// rateLimitMiddleware 限流中间件
func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !globalRateLimiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error":   true,
				"code":    "RATE_LIMITED",
				"message": "请求过于频繁，请稍后重试",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware CORS中间件
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
