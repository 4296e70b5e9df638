package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"healthcall/config"
	"healthcall/handler"
	"healthcall/logger"
	"healthcall/middleware"
	"healthcall/service"
	"healthcall/tools"
)

func main() {
	// Load .env file at the very beginning
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: .env file not found or cannot be loaded: %v", err)
		log.Println("ℹ️  Will use system environment variables or default values")
	} else {
		log.Println("✅ Successfully loaded .env file")
	}

	cfg := config.Load()

	logger.Init(cfg.Logger.Level, cfg.Logger.Verbose)
	defer logger.Sync()

	if err := cfg.ValidateServer(); err != nil {
		logger.Fatal("❌ Invalid configuration | error=%v", err)
	}

	logger.Info("🚀 Starting health check-in webhook")
	logger.Info("📋 Configuration loaded:")
	logger.Info("   ├─ Server Port: %s", cfg.Server.Port)
	logger.Info("   ├─ Log Level: %s", logger.GetLevel())
	logger.Info("   ├─ Vapi Base URL: %s", cfg.Vapi.BaseURL)
	logger.Info("   ├─ Spreadsheet: %s (%s)", cfg.Sheets.SpreadsheetID, cfg.Sheets.Range)
	logger.Info("   └─ Rate Limit Enabled: %v", cfg.RateLimit.Enabled)

	sheetsClient, err := service.NewSheetsClient(context.Background(), cfg.Sheets)
	if err != nil {
		logger.Fatal("❌ Failed to create Sheets client | error=%v", err)
	}
	vapiClient := service.NewVapiClient(cfg.Vapi)

	registry := tools.NewDefaultRegistry(sheetsClient, vapiClient, cfg.Vapi.PhoneNumberID)
	apiHandler := handler.NewAPIHandler(registry)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(apiHandler,
		middleware.RequestID(),
		middleware.NewRateLimiter(cfg.RateLimit).Middleware(),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		logger.Info("🌐 Server listening on %s", server.Addr)
		logger.Info("📡 API Endpoints:")
		logger.Info("   ├─ GET  /health")
		logger.Info("   ├─ GET  /tools")
		for _, name := range registry.Names() {
			logger.Info("   ├─ POST /tool/%s", name)
		}
		logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("❌ Server failed | error=%v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutdown signal received, gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("⚠️  Server forced to shutdown: %v", err)
	}

	logger.Info("👋 Server exited gracefully")
}
