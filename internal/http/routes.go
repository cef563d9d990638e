package http

import (
	"time"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/config"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/http/handlers"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/http/middleware"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/service"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the engine operations onto the router. The player
// identity is an opaque header; see middleware.PlayerID.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, engine *service.Engine, hub *ws.Hub, cfg *config.Config, version string) {
	h := handlers.NewHandler(engine)
	health := handlers.NewHealthHandler(db, version)

	r.GET("/health", health.Readiness)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)

	apiWindow := time.Duration(cfg.APIRateWindow) * time.Second
	tapWindow := time.Duration(cfg.TapRateWindow) * time.Second

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiWindow))
	v1.Use(middleware.PlayerID())
	{
		v1.GET("/progress", h.Progress)
		v1.POST("/tap/:locationId", middleware.TapRateLimit(cfg.TapRateLimit, tapWindow), h.Tap)

		v1.GET("/income/pending", h.PendingIncome)
		v1.POST("/income/collect", h.CollectIncome)

		v1.POST("/experience", h.AddExperience)
		v1.POST("/rank", h.UpdateRank)
		v1.POST("/achievements/check", h.CheckAchievements)

		v1.POST("/tools/:toolId/buy", h.BuyTool)
		v1.POST("/tools/:toolId/upgrade", h.UpgradeTool)
		v1.POST("/tools/:toolId/equip", h.EquipTool)
		v1.POST("/helpers/:helperId/buy", h.BuyHelper)
		v1.POST("/helpers/:helperId/upgrade", h.UpgradeHelper)
		v1.POST("/storage/:locationId/upgrade", h.UpgradeStorage)
	}

	// notification push channel
	r.GET("/ws", middleware.PlayerID(), h.WS(hub))
}
