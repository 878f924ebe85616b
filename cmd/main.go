package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vaanicall/vaani-backend/config"
	"github.com/vaanicall/vaani-backend/internal/container"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/memstore"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/redisstore"
	"github.com/vaanicall/vaani-backend/internal/interface/middleware"
	"github.com/vaanicall/vaani-backend/internal/navigation"
	"github.com/vaanicall/vaani-backend/internal/router"
	"github.com/vaanicall/vaani-backend/pkg/helpers"
	"github.com/vaanicall/vaani-backend/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	// Device state backend. Redis is the default; memory is for dev runs
	// and keeps everything in-process.
	if cfg.StoreBackend == "memory" {
		container.SetProfileStore(memstore.NewProfileStore())
		container.SetWalletRepo(memstore.NewWalletRepository())
		logger.Warn("using in-memory store backend; device state will not survive restarts")
	} else {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		container.SetRedis(rdb)
		container.SetProfileStore(redisstore.NewProfileStore(rdb))
		container.SetWalletRepo(redisstore.NewWalletRepository(rdb))
	}

	// Verification review queue. Publishing is best-effort, so a missing
	// broker only degrades the review pipeline, not onboarding itself.
	if pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQReviewQueue); err != nil {
		logger.WithError(err).Warn("review queue unavailable; verification submissions will not be published")
	} else {
		container.SetReviewPub(pub)
		defer pub.Close()
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetNavManager(navigation.NewManager())

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(middleware.DeviceID())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Device-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
