package models

// SyncStats is the derived summary a client pushes alongside its solved days.
type SyncStats struct {
	StreakCount   int    `json:"streak_count"`
	TotalPoints   int    `json:"total_points"`
	PuzzlesSolved int    `json:"puzzles_solved"`
	LastPlayed    string `json:"last_played"`
}

// SyncRequest is the body of POST /api/scores/sync.
type SyncRequest struct {
	Scores []DailyActivity `json:"scores" binding:"required"`
	Stats  SyncStats       `json:"stats"`
}

// ScoreRow is one remote record returned by GET /api/scores.
type ScoreRow struct {
	Date       string `json:"date"`
	Score      int    `json:"score"`
	TimeTaken  int    `json:"time_taken"`
	Difficulty int    `json:"difficulty"`
	HintsUsed  int    `json:"hints_used"`
}

// ScoresResponse is the body of GET /api/scores.
type ScoresResponse struct {
	Scores []ScoreRow `json:"scores"`
}
