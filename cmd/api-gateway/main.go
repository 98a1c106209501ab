package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/ski-station-api/api/swagger"
	"github.com/noah-isme/ski-station-api/internal/handler"
	internalmiddleware "github.com/noah-isme/ski-station-api/internal/middleware"
	"github.com/noah-isme/ski-station-api/internal/repository"
	"github.com/noah-isme/ski-station-api/internal/service"
	"github.com/noah-isme/ski-station-api/pkg/cache"
	"github.com/noah-isme/ski-station-api/pkg/config"
	"github.com/noah-isme/ski-station-api/pkg/database"
	"github.com/noah-isme/ski-station-api/pkg/export"
	"github.com/noah-isme/ski-station-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/ski-station-api/pkg/middleware/cors"
	"github.com/noah-isme/ski-station-api/pkg/middleware/ratelimit"
	reqidmiddleware "github.com/noah-isme/ski-station-api/pkg/middleware/requestid"
)

// @title Ski Station API
// @version 1.0.0
// @description Skiers, subscriptions, courses, instructors, pistes and weekly course registrations.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if cfg.Migrations.Enabled {
		if err := database.RunMigrations(db, cfg.Migrations.Path); err != nil {
			logr.Fatal("failed to apply migrations", zap.Error(err))
		}
		logr.Info("migrations applied", zap.String("path", cfg.Migrations.Path))
	}

	metrics := service.NewMetricsService()
	checks := map[string]handler.Pinger{"database": db}

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, catalogue cache disabled", zap.Error(err))
		} else {
			redisRepo := repository.NewCacheRepository(client, "ski")
			defer redisRepo.Close() //nolint:errcheck
			cacheRepo = redisRepo
			checks["cache"] = handler.PingFunc(redisRepo.Ping)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cacheRepo != nil)

	validate := validator.New()

	subscriptionRepo := repository.NewSubscriptionRepository(db)
	skierRepo := repository.NewSkierRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	pisteRepo := repository.NewPisteRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, cacheSvc, validate, logr)
	pisteSvc := service.NewPisteService(pisteRepo, cacheSvc, validate, logr)
	instructorSvc := service.NewInstructorService(instructorRepo, courseRepo, validate, logr)
	registrationSvc := service.NewRegistrationService(registrationRepo, skierRepo, courseRepo, instructorRepo, metrics,
		cfg.Registration.CourseCapacity, validate, logr)
	skierSvc := service.NewSkierService(skierRepo, subscriptionRepo, pisteRepo, courseRepo, registrationSvc, validate, logr)
	exportSvc := service.NewExportService(courseRepo, registrationRepo, export.NewRenderer(), logr)

	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	defer stopLimiter()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	metricsHandler := handler.NewMetricsHandler(metrics, checks)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(internalmiddleware.WithResponseMeta())
	if cfg.RateLimit.RPS > 0 {
		limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
		go limiter.Run(limiterCtx, time.Minute)
		api.Use(limiter.Middleware())
	}

	handler.RegisterRoutes(api, handler.Handlers{
		Skier:        handler.NewSkierHandler(skierSvc),
		Course:       handler.NewCourseHandler(courseSvc),
		Instructor:   handler.NewInstructorHandler(instructorSvc),
		Piste:        handler.NewPisteHandler(pisteSvc),
		Registration: handler.NewRegistrationHandler(registrationSvc, exportSvc),
		Subscription: handler.NewSubscriptionHandler(subscriptionSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutdown signal received")
	stopLimiter()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
