package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"logic-looper-backend/internal/models"
	"logic-looper-backend/internal/services"
)

type ScoreHandler struct {
	redisService *services.RedisService
	broadcaster  services.Broadcaster
}

func NewScoreHandler(redisService *services.RedisService, broadcaster services.Broadcaster) *ScoreHandler {
	return &ScoreHandler{
		redisService: redisService,
		broadcaster:  broadcaster,
	}
}

// Sync receives a client's solved days plus its derived summary. Scores are
// upserted by date; only score the store has not already credited moves the
// leaderboards.
func (h *ScoreHandler) Sync(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid sync payload",
			"details": err.Error(),
		})
		return
	}

	delta, err := h.redisService.UpsertScores(userID, req.Scores)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to store scores",
			"details": err.Error(),
		})
		return
	}

	stats := &models.UserStats{
		UserID:        userID,
		PuzzlesSolved: req.Stats.PuzzlesSolved,
		StreakCount:   req.Stats.StreakCount,
		TotalPoints:   req.Stats.TotalPoints,
		LastPlayed:    req.Stats.LastPlayed,
	}
	if err := h.redisService.SaveStats(stats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store stats"})
		return
	}

	if err := h.redisService.CreditLeaderboards(userID, delta, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update leaderboards"})
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastScoresSynced(userID, stats.PuzzlesSolved, stats.TotalPoints, stats.StreakCount)
		if delta != 0 {
			h.broadcaster.BroadcastLeaderboardChanged([]string{
				string(models.TimeframeAll),
				string(models.TimeframeWeek),
				string(models.TimeframeToday),
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"synced":   len(req.Scores),
		"credited": delta,
	})
}

// List returns every stored score for the bearer, oldest first.
func (h *ScoreHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	scores, err := h.redisService.GetScores(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get scores",
			"details": err.Error(),
		})
		return
	}

	sort.Slice(scores, func(i, j int) bool { return scores[i].Date < scores[j].Date })

	rows := make([]models.ScoreRow, 0, len(scores))
	for _, sc := range scores {
		rows = append(rows, models.ScoreRow{
			Date:       sc.Date,
			Score:      sc.Score,
			TimeTaken:  sc.TimeTaken,
			Difficulty: sc.Difficulty,
			HintsUsed:  sc.HintsUsed,
		})
	}

	c.JSON(http.StatusOK, models.ScoresResponse{Scores: rows})
}
