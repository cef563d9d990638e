package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Shop endpoints all answer {"ok": true} on success; rejections surface
// through the shared error mapping.

func (h *Handler) shopOp(c *gin.Context, op func(userID, targetID string) error, param string) {
	userID, ok := playerID(c)
	if !ok {
		return
	}
	if err := op(userID, c.Param(param)); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) BuyTool(c *gin.Context) {
	h.shopOp(c, func(u, t string) error { return h.Engine.BuyTool(c.Request.Context(), u, t) }, "toolId")
}

func (h *Handler) UpgradeTool(c *gin.Context) {
	h.shopOp(c, func(u, t string) error { return h.Engine.UpgradeTool(c.Request.Context(), u, t) }, "toolId")
}

func (h *Handler) EquipTool(c *gin.Context) {
	h.shopOp(c, func(u, t string) error { return h.Engine.EquipTool(c.Request.Context(), u, t) }, "toolId")
}

func (h *Handler) BuyHelper(c *gin.Context) {
	h.shopOp(c, func(u, t string) error { return h.Engine.BuyHelper(c.Request.Context(), u, t) }, "helperId")
}

func (h *Handler) UpgradeHelper(c *gin.Context) {
	h.shopOp(c, func(u, t string) error { return h.Engine.UpgradeHelper(c.Request.Context(), u, t) }, "helperId")
}

func (h *Handler) UpgradeStorage(c *gin.Context) {
	h.shopOp(c, func(u, t string) error { return h.Engine.UpgradeStorage(c.Request.Context(), u, t) }, "locationId")
}
