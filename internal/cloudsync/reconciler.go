// Package cloudsync reconciles the local activity store with the remote
// score service. Both operations are one-shot and best-effort: the local
// store stays the source of truth, and callers that want fire-and-forget
// semantics just run them in a goroutine and drop the result.
package cloudsync

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"logic-looper-backend/internal/activity"
	"logic-looper-backend/internal/models"
	"logic-looper-backend/internal/puzzle"
)

// Result says what a push or pull actually did, so callers and tests can
// tell "nothing to sync" apart from "sync attempted and failed".
type Result string

const (
	ResultSynced         Result = "synced"
	ResultNothingToSync  Result = "nothing_to_sync"
	ResultNoCredential   Result = "no_credential"
	ResultTransportError Result = "transport_error"
	ResultServerError    Result = "server_error"
)

// Failed reports whether a sync was attempted and did not complete.
func (r Result) Failed() bool {
	return r == ResultTransportError || r == ResultServerError
}

// TokenSource supplies the bearer credential; an empty string means the
// user is not logged in, which skips the call entirely.
type TokenSource func() string

type Reconciler struct {
	baseURL string
	tracker *activity.Tracker
	token   TokenSource
	client  *http.Client
	now     func() time.Time
}

func NewReconciler(baseURL string, tracker *activity.Tracker, token TokenSource) *Reconciler {
	return &Reconciler{
		baseURL: baseURL,
		tracker: tracker,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
}

// WithNow overrides the clock used to derive the streak summary. Tests use
// it to pin "today".
func (r *Reconciler) WithNow(now func() time.Time) *Reconciler {
	r.now = now
	return r
}

// Push transmits every locally solved day plus a derived summary to the
// remote store. No-op when nothing is solved or no credential is present.
func (r *Reconciler) Push(ctx context.Context) Result {
	m := r.tracker.Activity()

	solved := make([]models.DailyActivity, 0, len(m))
	for _, a := range m {
		if a.Solved {
			solved = append(solved, a)
		}
	}
	if len(solved) == 0 {
		return ResultNothingToSync
	}

	token := r.token()
	if token == "" {
		return ResultNoCredential
	}

	sort.Slice(solved, func(i, j int) bool { return solved[i].Date < solved[j].Date })

	totalPoints := 0
	for _, a := range solved {
		totalPoints += a.Score
	}

	payload := models.SyncRequest{
		Scores: solved,
		Stats: models.SyncStats{
			StreakCount:   activity.Streak(m, puzzle.Today(r.now())),
			TotalPoints:   totalPoints,
			PuzzlesSolved: len(solved),
			LastPlayed:    solved[len(solved)-1].Date,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ResultTransportError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/scores/sync", bytes.NewReader(body))
	if err != nil {
		return ResultTransportError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		return ResultTransportError
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ResultServerError
	}
	return ResultSynced
}

// Pull fetches the remote score list and adopts records for dates the local
// map has never seen. A date already present locally is never touched, so
// repeated pulls are idempotent and a stale in-flight pull cannot clobber
// newer local data.
func (r *Reconciler) Pull(ctx context.Context) Result {
	token := r.token()
	if token == "" {
		return ResultNoCredential
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/scores", nil)
	if err != nil {
		return ResultTransportError
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		return ResultTransportError
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ResultServerError
	}

	var remote models.ScoresResponse
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return ResultServerError
	}
	if len(remote.Scores) == 0 {
		return ResultNothingToSync
	}

	if _, err := r.tracker.MergeRemote(remote.Scores); err != nil {
		return ResultTransportError
	}
	return ResultSynced
}

// Sync runs a push followed by a pull and reports both outcomes.
func (r *Reconciler) Sync(ctx context.Context) (push, pull Result) {
	push = r.Push(ctx)
	pull = r.Pull(ctx)
	return push, pull
}
