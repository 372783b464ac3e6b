package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mock-bank-api/config"
	"mock-bank-api/handler"
	"mock-bank-api/logger"
	"mock-bank-api/repository"
	"mock-bank-api/router"
	"mock-bank-api/service"
	"mock-bank-api/store"
)

// newRouter wires every layer over the given store.
func newRouter(st *store.Store) http.Handler {
	userRepo := repository.NewUserRepository(st)
	accountRepo := repository.NewAccountRepository(st)
	transactionRepo := repository.NewTransactionRepository(st)

	tokens := service.NewPrefixTokenService(config.AppConfig.Auth.TokenPrefix)
	authService := service.NewAuthService(userRepo, tokens)
	accountService := service.NewAccountService(accountRepo)
	transactionService := service.NewTransactionService(accountRepo, transactionRepo)

	userHandler := handler.NewUserHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	return router.NewRouter(userHandler, accountHandler, transactionHandler, tokens)
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	st, err := store.NewSeeded()
	if err != nil {
		logger.Log.Fatalf("Error seeding the in-memory store: %v", err)
	}

	r := newRouter(st)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp exposes the wired router and its backing store for
// integration tests.
type TestApp struct {
	Store  *store.Store
	Router http.Handler
}

// NewTestApp builds the full application over a fresh seeded store, so
// each test binary gets isolated state.
func NewTestApp() (*TestApp, error) {
	st, err := store.NewSeeded()
	if err != nil {
		return nil, err
	}
	return &TestApp{Store: st, Router: newRouter(st)}, nil
}
