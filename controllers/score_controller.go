// controllers/score_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Count174/k-board-sub000/services"
	"github.com/Count174/k-board-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	Svc *services.ScoreService
	Hub *services.RealtimeHub
}

func NewScoreController(svc *services.ScoreService, hub *services.RealtimeHub) *ScoreController {
	return &ScoreController{Svc: svc, Hub: hub}
}

// GetScore computes the composite score for an inclusive date range,
// defaulting to the current month up to today.
func (h *ScoreController) GetScore(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	fromStr := c.DefaultQuery("from", first.Format(utils.ISODate))
	toStr := c.DefaultQuery("to", now.Format(utils.ISODate))

	from, err := time.ParseInLocation(utils.ISODate, fromStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := time.ParseInLocation(utils.ISODate, toStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	out, err := h.Svc.ComputeScore(c.Request.Context(), userID, fromStr, toStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastScore(userID, out)
	}
	c.JSON(http.StatusOK, out)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}
