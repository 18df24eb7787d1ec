package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apoorva792/Reseller-Dashboard/internal/config"
	"github.com/apoorva792/Reseller-Dashboard/internal/logger"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Инициализация приложения
	app, err := NewApp(rootCtx, cfg, zlog)
	if err != nil {
		zlog.Fatalf("Failed to initialize application: %v", err)
	}

	// Запуск сервера в отдельной горутине
	go func() {
		if err := app.Start(); err != nil {
			zlog.Errorf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	rootCancel()

	// Остановка приложения
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		zlog.Fatal(err)
	}
}
