package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gps-coord-bot/internal/adapters/primary/http/handlers"
	"gps-coord-bot/internal/adapters/primary/http/middleware"
	"gps-coord-bot/internal/adapters/primary/telegram"
	"gps-coord-bot/internal/adapters/secondary/ocr"
	"gps-coord-bot/internal/adapters/secondary/postgres"
	"gps-coord-bot/internal/config"
	output "gps-coord-bot/internal/core/ports/output"
	"gps-coord-bot/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// History storage (optional - based on config)
	var pool *pgxpool.Pool
	var repo output.ExtractionRepository
	if cfg.History.Enabled {
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			log.Fatalf("parse db config: %v", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("ping db: %v", err)
		}
		log.Info("database connection established")

		repo = postgres.NewExtractionRepository(pool)
	} else {
		log.Info("extraction history disabled")
	}

	// Secondary adapters
	ocrClient := ocr.NewTesseractClient(&cfg.OCR)

	// Core services
	extractionSvc := services.NewExtractionService(ocrClient, repo)

	// Primary adapter: HTTP
	h := handlers.New(extractionSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	// Health check with DB ping when history is on
	router.GET("/healthz", func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Primary adapter: Telegram (optional - based on config)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	botDone := make(chan struct{})
	if cfg.Telegram.Enabled {
		bot, err := telegram.New(&cfg.Telegram, &cfg.OCR, extractionSvc)
		if err != nil {
			log.Fatalf("create telegram bot: %v", err)
		}
		go func() {
			defer close(botDone)
			if err := bot.Run(ctx); err != nil {
				log.Errorf("telegram bot stopped with error: %v", err)
			}
		}()
	} else {
		close(botDone)
		log.Info("telegram adapter disabled")
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	cancel()
	<-botDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
