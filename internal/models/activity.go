package models

// MaxHintsPerDay caps how many hints a single daily puzzle may consume.
const MaxHintsPerDay = 3

// DailyActivity is the durable record of one day's puzzle outcome. At most
// one entry exists per calendar date; days never played have no entry.
type DailyActivity struct {
	Date       string `json:"date" redis:"date"`
	Solved     bool   `json:"solved" redis:"solved"`
	Score      int    `json:"score" redis:"score"`
	TimeTaken  int    `json:"time_taken" redis:"time_taken"`
	Difficulty int    `json:"difficulty" redis:"difficulty"`
	HintsUsed  int    `json:"hints_used" redis:"hints_used"`
}

// ActivityMap maps ISO date strings (YYYY-MM-DD) to their day's record.
// Keys are unique and the map only grows, except on an explicit reset.
type ActivityMap map[string]DailyActivity

// Solved reports whether the given date has a solved entry.
func (m ActivityMap) Solved(date string) bool {
	return m[date].Solved
}

// GameState is the ephemeral in-progress session for the current date only.
// It is superseded the next day; no history is kept.
type GameState struct {
	CurrentAnswer *int     `json:"current_answer"`
	TimerStarted  bool     `json:"timer_started"`
	StartTime     *int64   `json:"start_time"` // epoch milliseconds
	HintsUsed     int      `json:"hints_used"`
	HintsRevealed []string `json:"hints_revealed"`
	Completed     bool     `json:"completed"`
}
