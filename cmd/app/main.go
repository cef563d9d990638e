package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/catalog"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/config"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/db"
	httpServer "github.com/GenioFalco/gardenTapTap2-sub000/internal/http"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/http/middleware"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/logger"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/service"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT") == "json")

	cfg := config.Load()

	dbPool := db.Connect(cfg.DatabaseURL)
	defer dbPool.Close()

	cat, err := catalog.Load(context.Background(), dbPool)
	if err != nil {
		logger.Fatal("failed to load game catalog", "error", err)
	}

	hub := ws.NewHub()

	engine := service.NewEngine(dbPool, cat, service.Config{
		TapExperience:    cfg.TapExperience,
		EnergyPerMinute:  cfg.EnergyPerMinute,
		DefaultMaxEnergy: cfg.DefaultMaxEnergy,
	}, hub)

	r := gin.Default()

	// CORS for production (frontend on different domain)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.PlayerHeader)
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, dbPool, engine, hub, cfg, version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
