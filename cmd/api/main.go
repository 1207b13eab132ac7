package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tsampaio/loja-order-service/config"
	"github.com/tsampaio/loja-order-service/internal/auth"
	catHandlerPkg "github.com/tsampaio/loja-order-service/internal/category/handler"
	catRepoPkg "github.com/tsampaio/loja-order-service/internal/category/repository"
	catUCPkg "github.com/tsampaio/loja-order-service/internal/category/usecase"
	"github.com/tsampaio/loja-order-service/internal/logger"
	orderHandlerPkg "github.com/tsampaio/loja-order-service/internal/order/handler"
	orderRepoPkg "github.com/tsampaio/loja-order-service/internal/order/repository"
	orderUCPkg "github.com/tsampaio/loja-order-service/internal/order/usecase"
	prodHandlerPkg "github.com/tsampaio/loja-order-service/internal/product/handler"
	prodRepoPkg "github.com/tsampaio/loja-order-service/internal/product/repository"
	prodUCPkg "github.com/tsampaio/loja-order-service/internal/product/usecase"
	"github.com/tsampaio/loja-order-service/internal/server"
	"github.com/tsampaio/loja-order-service/internal/storage"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
		logConfig.DisableCaller = cfg.Logger.DisableCaller
		logConfig.DisableStacktrace = cfg.Logger.DisableStacktrace
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Open the database and bootstrap the schema
	db, err := storage.NewSQLite(&cfg.SQLite)
	if err != nil {
		appLogger.Fatal("Could not open database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to SQLite database", zap.String("path", cfg.SQLite.Path))

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewSQLiteRepository(db)
	prodRepo := prodRepoPkg.NewSQLiteRepository(db)
	orderRepo := orderRepoPkg.NewSQLiteRepository(db)

	// 5. Initialize Auth
	jwtManager := auth.NewJWTManager(&cfg.Auth)
	credentials := auth.NewStaticCredentials(&cfg.Auth)

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(db, orderRepo, prodRepo, appLogger)

	// 7. Initialize Handlers
	handlers := server.Handlers{
		Auth:     auth.NewHandler(credentials, jwtManager, appLogger),
		Category: catHandlerPkg.NewCategoryHandler(catUC, appLogger),
		Product:  prodHandlerPkg.NewProductHandler(prodUC, appLogger),
		Order:    orderHandlerPkg.NewOrderHandler(orderUC, appLogger),
		Verifier: jwtManager,
	}

	// 8. Start HTTP Server
	srv := server.New(&cfg.Server, appLogger, handlers)

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
