package puzzle_test

import (
	"testing"

	"logic-looper-backend/internal/puzzle"
)

func TestScoreFloor(t *testing.T) {
	// Worst case: slow solve, all hints, easiest difficulty.
	if got := puzzle.Score(10000, 100, 1); got != 10 {
		t.Errorf("floored score = %d, want 10", got)
	}
	if got := puzzle.Score(0, 0, 1); got <= 0 {
		t.Errorf("score must stay positive, got %d", got)
	}
}

func TestScoreComponents(t *testing.T) {
	cases := []struct {
		timeTaken, hints, difficulty, want int
	}{
		{0, 0, 1, 400},    // full time bonus
		{300, 0, 1, 100},  // bonus fully decayed
		{500, 0, 1, 100},  // past five minutes nothing changes
		{0, 1, 1, 375},    // one hint
		{0, 3, 1, 325},    // all hints
		{0, 0, 3, 600},    // hard base
		{120, 2, 2, 330},  // mixed
	}
	for _, tc := range cases {
		if got := puzzle.Score(tc.timeTaken, tc.hints, tc.difficulty); got != tc.want {
			t.Errorf("Score(%d,%d,%d) = %d, want %d", tc.timeTaken, tc.hints, tc.difficulty, got, tc.want)
		}
	}
}

func TestScoreMonotonicInHints(t *testing.T) {
	for hints := 0; hints < 10; hints++ {
		a := puzzle.Score(60, hints, 2)
		b := puzzle.Score(60, hints+1, 2)
		if b > a {
			t.Errorf("score increased with an extra hint: %d -> %d", a, b)
		}
	}
}

func TestTimeBonusCaps(t *testing.T) {
	at300 := puzzle.Score(300, 0, 2)
	for _, tt := range []int{301, 400, 1000} {
		if got := puzzle.Score(tt, 0, 2); got != at300 {
			t.Errorf("time past 300s changed the score: Score(%d)=%d, Score(300)=%d", tt, got, at300)
		}
	}
}

func TestValidateExact(t *testing.T) {
	p := puzzle.Daily("2024-05-05")
	if !puzzle.Validate(p, p.Answer) {
		t.Error("correct answer rejected")
	}
	if puzzle.Validate(p, p.Answer+1) {
		t.Error("wrong answer accepted")
	}
}
