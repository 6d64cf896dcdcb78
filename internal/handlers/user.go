package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logic-looper-backend/internal/services"
)

type UserHandler struct {
	redisService *services.RedisService
}

func NewUserHandler(redisService *services.RedisService) *UserHandler {
	return &UserHandler{redisService: redisService}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.redisService.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	stats, err := h.redisService.GetStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"display_name": user.DisplayName,
			"created_at":   user.CreatedAt,
		},
		"stats": gin.H{
			"puzzles_solved": stats.PuzzlesSolved,
			"streak_count":   stats.StreakCount,
			"total_points":   stats.TotalPoints,
			"last_played":    stats.LastPlayed,
		},
	})
}
