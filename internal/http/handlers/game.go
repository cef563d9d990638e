package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Tap handles the primary action for a location.
func (h *Handler) Tap(c *gin.Context) {
	userID, ok := playerID(c)
	if !ok {
		return
	}
	res, err := h.Engine.Tap(c.Request.Context(), userID, c.Param("locationId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Progress returns the full player snapshot, reconciling idle income and
// energy on the way.
func (h *Handler) Progress(c *gin.Context) {
	userID, ok := playerID(c)
	if !ok {
		return
	}
	snap, err := h.Engine.GetProgress(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// PendingIncome is the read-only peek; nothing is reconciled.
func (h *Handler) PendingIncome(c *gin.Context) {
	userID, ok := playerID(c)
	if !ok {
		return
	}
	view, err := h.Engine.GetPendingIncome(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CollectIncome moves pending income into the ledger up to the caps.
func (h *Handler) CollectIncome(c *gin.Context) {
	userID, ok := playerID(c)
	if !ok {
		return
	}
	res, err := h.Engine.CollectIncome(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type experienceRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

func (h *Handler) AddExperience(c *gin.Context) {
	userID, ok := playerID(c)
	if !ok {
		return
	}
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.Engine.AddExperience(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type rankRequest struct {
	SeasonID string `json:"season_id" binding:"required"`
	Points   int64  `json:"points" binding:"min=0"`
}

func (h *Handler) UpdateRank(c *gin.Context) {
	userID, ok := playerID(c)
	if !ok {
		return
	}
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.Engine.UpdateRank(c.Request.Context(), userID, req.SeasonID, req.Points)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) CheckAchievements(c *gin.Context) {
	userID, ok := playerID(c)
	if !ok {
		return
	}
	granted, err := h.Engine.CheckAchievements(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if granted == nil {
		granted = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"granted": granted})
}
