package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"logic-looper-backend/internal/models"
	"logic-looper-backend/internal/puzzle"
)

// PuzzleHandler exposes the deterministic engine over HTTP. No auth and no
// storage: the same date always produces the same board, so these routes
// are safely cacheable and public.
type PuzzleHandler struct{}

func NewPuzzleHandler() *PuzzleHandler {
	return &PuzzleHandler{}
}

// resolveDate takes an optional ?date=YYYY-MM-DD, defaulting to today.
// Dates are the only place the wall clock enters the engine.
func resolveDate(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		return puzzle.Today(time.Now()), true
	}
	if !models.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, want YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

func (h *PuzzleHandler) GetDaily(c *gin.Context) {
	date, ok := resolveDate(c)
	if !ok {
		return
	}

	p := puzzle.Daily(date)

	// The answer stays server-side; validation goes through Validate.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    date,
		"puzzle": gin.H{
			"type":            p.Type,
			"cells":           p.Cells,
			"missing_index":   p.MissingIndex,
			"options":         p.Options,
			"difficulty":      p.Difficulty,
			"remaining_hints": models.MaxHintsPerDay,
		},
	})
}

func (h *PuzzleHandler) Validate(c *gin.Context) {
	var req struct {
		Date      string `json:"date"`
		Answer    int    `json:"answer"`
		TimeTaken int    `json:"time_taken"`
		HintsUsed int    `json:"hints_used"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	date := req.Date
	if date == "" {
		date = puzzle.Today(time.Now())
	}
	if !models.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, want YYYY-MM-DD"})
		return
	}

	p := puzzle.Daily(date)
	correct := puzzle.Validate(p, req.Answer)

	resp := gin.H{
		"success": true,
		"date":    date,
		"correct": correct,
	}
	if correct {
		resp["score"] = puzzle.Score(req.TimeTaken, req.HintsUsed, p.Difficulty)
		resp["difficulty"] = p.Difficulty
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PuzzleHandler) GetHint(c *gin.Context) {
	date, ok := resolveDate(c)
	if !ok {
		return
	}

	p := puzzle.Daily(date)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    date,
		"hint":    puzzle.Hint(p),
	})
}
