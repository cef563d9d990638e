package handlers

import (
	"errors"
	"net/http"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/http/middleware"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/logger"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Engine *service.Engine
}

func NewHandler(engine *service.Engine) *Handler {
	return &Handler{Engine: engine}
}

func playerID(c *gin.Context) (string, bool) {
	id, ok := middleware.GetPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing player id"})
	}
	return id, ok
}

// respondErr maps engine errors onto the HTTP taxonomy: rejected
// operations are 4xx outcomes, bad references are 404, everything else is
// a server fault.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoEnergy),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrLocked),
		errors.Is(err, domain.ErrNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyOwned),
		errors.Is(err, domain.ErrMaxLevel):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("engine error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
