package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/attarerp/backend/internal/application/catalog"
	ledgerapp "github.com/attarerp/backend/internal/application/ledger"
	orderapp "github.com/attarerp/backend/internal/application/order"
	partyapp "github.com/attarerp/backend/internal/application/party"
	settingsapp "github.com/attarerp/backend/internal/application/settings"
	stockapp "github.com/attarerp/backend/internal/application/stock"
	"github.com/attarerp/backend/internal/infrastructure/config"
	"github.com/attarerp/backend/internal/infrastructure/logger"
	"github.com/attarerp/backend/internal/infrastructure/persistence"
	"github.com/attarerp/backend/internal/interfaces/http/handler"
	"github.com/attarerp/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer logger.Sync(log)

	log.Info("Starting backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	productSetRepo := persistence.NewGormProductSetRepository(db.DB)
	attarRepo := persistence.NewGormAttarRepository(db.DB)
	stockRepo := persistence.NewGormStockRecordRepository(db.DB)
	partyRepo := persistence.NewGormPartyRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)
	ledgerScope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	stockService := stockapp.NewService(stockRepo)
	settingsService := settingsapp.NewService(settingRepo)
	productService := catalogapp.NewProductService(productRepo, stockService, log)
	productSetService := catalogapp.NewProductSetService(productSetRepo, stockService, log)
	attarService := catalogapp.NewAttarService(attarRepo, stockService, log)
	partyService := partyapp.NewService(partyRepo, transactionRepo, log)
	postingService := ledgerapp.NewPostingService(ledgerScope, log)
	reconciliationService := ledgerapp.NewReconciliationService(ledgerScope, cfg.Ledger.DriftTolerance, log)
	orderService := orderapp.NewService(
		orderRepo, partyRepo,
		productRepo, productSetRepo, attarRepo,
		settingsService, postingService, log,
	)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewProductHandler(productService)).
		Register(handler.NewProductSetHandler(productSetService)).
		Register(handler.NewAttarHandler(attarService)).
		Register(handler.NewPartyHandler(partyService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewLedgerHandler(postingService, reconciliationService)).
		Register(handler.NewSettingsHandler(settingsService)).
		Register(handler.NewSystemHandler(db))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
