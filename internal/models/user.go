package models

import "time"

type User struct {
	ID           string `json:"id" redis:"id"`
	Email        string `json:"email" redis:"email"`
	DisplayName  string `json:"display_name" redis:"display_name"`
	// The hash round-trips through storage; API responses build their own
	// maps and never serialize this struct directly.
	PasswordHash string `json:"password_hash,omitempty" redis:"password_hash"`

	CreatedAt time.Time `json:"created_at" redis:"created_at"`
}

// UserStats is the remote store's aggregate view of a user's play history,
// written as a whole from the client's sync payload.
type UserStats struct {
	UserID        string `json:"user_id" redis:"user_id"`
	PuzzlesSolved int    `json:"puzzles_solved" redis:"puzzles_solved"`
	StreakCount   int    `json:"streak_count" redis:"streak_count"`
	TotalPoints   int    `json:"total_points" redis:"total_points"`
	LastPlayed    string `json:"last_played,omitempty" redis:"last_played"`

	UpdatedAt time.Time `json:"updated_at" redis:"updated_at"`
}

// LeaderboardEntry is one ranked row of the leaderboard query.
type LeaderboardEntry struct {
	UserID        string `json:"user_id"`
	DisplayName   string `json:"display_name"`
	TotalScore    int    `json:"total_score"`
	PuzzlesSolved int    `json:"puzzles_solved"`
	Rank          int    `json:"rank"`
}

// Timeframe discriminates leaderboard windows.
type Timeframe string

const (
	TimeframeAll   Timeframe = "all"
	TimeframeWeek  Timeframe = "week"
	TimeframeToday Timeframe = "today"
)
