package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"logic-looper-backend/internal/models"
	"logic-looper-backend/internal/services"
)

type LeaderboardHandler struct {
	redisService *services.RedisService
}

func NewLeaderboardHandler(redisService *services.RedisService) *LeaderboardHandler {
	return &LeaderboardHandler{redisService: redisService}
}

func (h *LeaderboardHandler) Get(c *gin.Context) {
	tf := models.ParseTimeframe(c.DefaultQuery("timeframe", "all"))

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}

	entries, err := h.redisService.Leaderboard(tf, time.Now(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load leaderboard",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"timeframe":   tf,
		"leaderboard": entries,
		"count":       len(entries),
	})
}
