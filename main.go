package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/samara-logia/cadaster-portal/handlers"
	"github.com/samara-logia/cadaster-portal/internal/assistant"
	"github.com/samara-logia/cadaster-portal/internal/auth"
	"github.com/samara-logia/cadaster-portal/internal/config"
	"github.com/samara-logia/cadaster-portal/internal/database"
	"github.com/samara-logia/cadaster-portal/internal/news"
	reghandler "github.com/samara-logia/cadaster-portal/internal/registration/handler"
	"github.com/samara-logia/cadaster-portal/internal/registration/repository"
	regservice "github.com/samara-logia/cadaster-portal/internal/registration/service"
	"github.com/samara-logia/cadaster-portal/internal/tokens"
	"github.com/samara-logia/cadaster-portal/internal/upload"
	"github.com/samara-logia/cadaster-portal/pkg/logger"
	"github.com/samara-logia/cadaster-portal/pkg/metrics"
	"github.com/samara-logia/cadaster-portal/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: db=%s uploads=%s redis=%v assistant=%v",
		cfg.Database.Path, cfg.Upload.Dir, cfg.Redis.Host != "", cfg.Assistant.URL != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple; production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-staff-account when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Single store handle for the process lifetime, released on shutdown.
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	regRepo := repository.NewSQLiteRepo(db)
	if err := regRepo.Init(ctx); err != nil {
		logger.Fatalf("failed to initialize registrations table: %v", err)
	}
	newsRepo := news.NewSQLiteRepository(db)
	if err := newsRepo.Init(ctx); err != nil {
		logger.Fatalf("failed to initialize announcements table: %v", err)
	}

	// Document store: local disk by default, MinIO when configured.
	var docs upload.DocumentStore
	switch cfg.Upload.Backend {
	case "minio":
		ms, err := upload.NewMinIOStore(cfg.MinIO)
		if err != nil {
			logger.Fatalf("failed to initialize MinIO document store: %v", err)
		}
		docs = ms
		logger.Infof("Using MinIO document store (bucket=%s)", cfg.MinIO.Bucket)
	default:
		ds, err := upload.NewDiskStore(cfg.Upload.Dir)
		if err != nil {
			logger.Fatalf("failed to initialize upload directory: %v", err)
		}
		docs = ds
	}

	regSvc := regservice.NewService(regRepo, docs)
	newsSvc := news.NewService(newsRepo)
	assistantClient := assistant.NewClient(cfg.Assistant.URL, cfg.Assistant.Timeout)
	checker := auth.NewStaticChecker(cfg.Admin.Username, cfg.Admin.Password)

	adminAuth := middleware.AdminAuth(func(raw string) (string, error) {
		return tokens.ParseAdminToken(cfg, raw)
	})

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		if err := db.PingContext(c.Request.Context()); err != nil {
			deps["storage"] = false
			ready = false
		} else {
			deps["storage"] = true
		}

		// Redis readiness only matters when the limiter depends on it
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	reghandler.RegisterRoutes(r, regSvc, adminAuth)
	handlers.NewAdminHandler(cfg, checker).Register(r.Group("/"))
	handlers.RegisterNewsRoutes(r, newsSvc, adminAuth)
	handlers.RegisterRecordRoutes(r)
	handlers.RegisterAssistantRoutes(r, assistantClient)
	handlers.RegisterTranslationRoutes(r)
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting cadaster portal on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	// Block until shutdown is requested, then drain in-flight submissions
	// before the deferred db.Close runs.
	stop, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	logger.Infof("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
}
