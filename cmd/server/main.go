package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	billingapp "github.com/honoraria/backend/internal/application/billing"
	partnerapp "github.com/honoraria/backend/internal/application/partner"
	reportapp "github.com/honoraria/backend/internal/application/report"
	"github.com/honoraria/backend/internal/infrastructure/auth"
	"github.com/honoraria/backend/internal/infrastructure/config"
	"github.com/honoraria/backend/internal/infrastructure/logger"
	"github.com/honoraria/backend/internal/infrastructure/persistence"
	"github.com/honoraria/backend/internal/infrastructure/persistence/owner"
	"github.com/honoraria/backend/internal/interfaces/http/handler"
	"github.com/honoraria/backend/internal/interfaces/http/middleware"
	"github.com/honoraria/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting honoraria backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Backstop against any query escaping the explicit owner filters.
	owner.EnableAutoFilter(db.DB, false)

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	feeRepo := persistence.NewGormFeeRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	statusRepo := persistence.NewGormStatusRepository(db.DB)
	paymentTypeRepo := persistence.NewGormPaymentTypeRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	// Application services
	clientService := partnerapp.NewClientService(clientRepo)
	feeService := billingapp.NewFeeService(feeRepo, clientRepo)
	paymentService := billingapp.NewPaymentService(paymentRepo, feeRepo, paymentTypeRepo)
	lookupService := billingapp.NewLookupService(statusRepo, paymentTypeRepo)
	dashboardService := reportapp.NewDashboardService(dashboardRepo, feeRepo)

	jwtService := auth.NewJWTService(cfg.JWT)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(gin.Recovery())
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORSWithConfig(corsConfig))

	authConfig := middleware.DefaultAuthConfig(jwtService)
	authConfig.Logger = log
	engine.Use(middleware.AuthMiddlewareWithConfig(authConfig))

	r := router.NewRouter(engine)
	r.RegisterRoot(handler.NewSystemHandler(db))
	r.Register(handler.NewClientHandler(clientService))
	r.Register(handler.NewFeeHandler(feeService))
	r.Register(handler.NewPaymentHandler(paymentService))
	r.Register(handler.NewLookupHandler(lookupService))
	r.Register(handler.NewDashboardHandler(dashboardService))
	r.Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
