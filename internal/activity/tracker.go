package activity

import (
	"sync"
	"time"

	"logic-looper-backend/internal/models"
)

const dateLayout = "2006-01-02"

// Tracker wraps a Store with the progress operations. Every read-modify-write
// runs under the mutex so concurrent hosts cannot lose updates.
type Tracker struct {
	mu    sync.Mutex
	store Store
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Result is a day's outcome before the date stamp is applied.
type Result struct {
	Solved     bool
	Score      int
	TimeTaken  int
	Difficulty int
	HintsUsed  int
}

// RecordResult stamps the given date onto the result and overwrites any
// existing entry for that day. Solving again rewrites the same day; it never
// creates duplicates or extra streak credit.
func (t *Tracker) RecordResult(date string, res Result) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	m := t.store.LoadActivity()
	m[date] = models.DailyActivity{
		Date:       date,
		Solved:     res.Solved,
		Score:      res.Score,
		TimeTaken:  res.TimeTaken,
		Difficulty: res.Difficulty,
		HintsUsed:  res.HintsUsed,
	}
	return t.store.SaveActivity(m)
}

// Activity returns a snapshot of the full activity map.
func (t *Tracker) Activity() models.ActivityMap {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.LoadActivity()
}

// MergeRemote inserts remote records for dates absent locally. Existing
// local entries are never touched: the device's own timer and hint data for
// a date it played is authoritative. Returns how many records were adopted.
func (t *Tracker) MergeRemote(rows []models.ScoreRow) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	m := t.store.LoadActivity()
	adopted := 0
	for _, row := range rows {
		if _, ok := m[row.Date]; ok {
			continue
		}
		m[row.Date] = row.Activity()
		adopted++
	}
	if adopted == 0 {
		return 0, nil
	}
	return adopted, t.store.SaveActivity(m)
}

// Streak walks backward one day at a time and counts consecutive solved
// days. An unsolved today does not break an existing streak (the current
// day is a grace period), but any earlier gap terminates the count.
func (t *Tracker) Streak(today string) int {
	return Streak(t.Activity(), today)
}

// Streak is the pure form, callable straight off a map snapshot.
func Streak(m models.ActivityMap, today string) int {
	current, err := time.Parse(dateLayout, today)
	if err != nil {
		return 0
	}

	if !m.Solved(current.Format(dateLayout)) {
		current = current.AddDate(0, 0, -1)
	}

	streak := 0
	for m.Solved(current.Format(dateLayout)) {
		streak++
		current = current.AddDate(0, 0, -1)
	}
	return streak
}

// RemainingHints reports how many hints today's puzzle still allows.
func RemainingHints(hintsUsed int) int {
	return max(0, models.MaxHintsPerDay-hintsUsed)
}

// State loads the in-progress session for a date, or nil when none exists.
func (t *Tracker) State(date string) *models.GameState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.LoadState(date)
}

// SaveState persists the in-progress session for a date.
func (t *Tracker) SaveState(date string, state *models.GameState) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.SaveState(date, state)
}

// Reset performs the explicit full wipe; nothing else ever deletes records.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.Reset()
}
