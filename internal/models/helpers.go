package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// NewUserID mints the opaque identifier for a registered user.
func NewUserID() string {
	return uuid.New().String()
}

// ValidDate reports whether s is a well-formed ISO date key.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// Validate rejects sync payloads the score store could not key correctly.
func (sr *SyncRequest) Validate() error {
	if len(sr.Scores) == 0 {
		return fmt.Errorf("no scores to sync")
	}
	for _, s := range sr.Scores {
		if !ValidDate(s.Date) {
			return fmt.Errorf("invalid score date: %q", s.Date)
		}
		if s.Score < 0 || s.TimeTaken < 0 || s.HintsUsed < 0 {
			return fmt.Errorf("negative values in score for %s", s.Date)
		}
		if s.Difficulty < 1 || s.Difficulty > 3 {
			return fmt.Errorf("difficulty out of range for %s: %d", s.Date, s.Difficulty)
		}
	}
	return nil
}

// ParseTimeframe maps a query value onto a leaderboard window, defaulting
// to the all-time board.
func ParseTimeframe(s string) Timeframe {
	switch Timeframe(strings.ToLower(s)) {
	case TimeframeWeek:
		return TimeframeWeek
	case TimeframeToday:
		return TimeframeToday
	default:
		return TimeframeAll
	}
}

// Activity converts a remote score row into the local activity record.
// Remote rows only ever describe solved days.
func (r ScoreRow) Activity() DailyActivity {
	return DailyActivity{
		Date:       r.Date,
		Solved:     true,
		Score:      r.Score,
		TimeTaken:  r.TimeTaken,
		Difficulty: r.Difficulty,
		HintsUsed:  r.HintsUsed,
	}
}
