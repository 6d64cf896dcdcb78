package models

import "testing"

func TestValidDate(t *testing.T) {
	good := []string{"2024-01-01", "2024-12-31", "2000-02-29"}
	for _, d := range good {
		if !ValidDate(d) {
			t.Errorf("ValidDate(%q) = false", d)
		}
	}
	bad := []string{"", "2024-13-01", "2024-02-30", "01-01-2024", "2024/01/01", "today"}
	for _, d := range bad {
		if ValidDate(d) {
			t.Errorf("ValidDate(%q) = true", d)
		}
	}
}

func TestSyncRequestValidate(t *testing.T) {
	valid := SyncRequest{
		Scores: []DailyActivity{
			{Date: "2024-06-01", Solved: true, Score: 250, TimeTaken: 80, Difficulty: 2, HintsUsed: 1},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	empty := SyncRequest{}
	if err := empty.Validate(); err == nil {
		t.Error("empty score list accepted")
	}

	badDate := SyncRequest{Scores: []DailyActivity{{Date: "junk", Difficulty: 1}}}
	if err := badDate.Validate(); err == nil {
		t.Error("malformed date accepted")
	}

	negative := SyncRequest{Scores: []DailyActivity{{Date: "2024-06-01", Score: -5, Difficulty: 1}}}
	if err := negative.Validate(); err == nil {
		t.Error("negative score accepted")
	}

	badDifficulty := SyncRequest{Scores: []DailyActivity{{Date: "2024-06-01", Score: 100, Difficulty: 4}}}
	if err := badDifficulty.Validate(); err == nil {
		t.Error("difficulty 4 accepted")
	}
}

func TestParseTimeframe(t *testing.T) {
	cases := []struct {
		in   string
		want Timeframe
	}{
		{"all", TimeframeAll},
		{"week", TimeframeWeek},
		{"today", TimeframeToday},
		{"WEEK", TimeframeWeek},
		{"", TimeframeAll},
		{"bogus", TimeframeAll},
	}
	for _, tc := range cases {
		if got := ParseTimeframe(tc.in); got != tc.want {
			t.Errorf("ParseTimeframe(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScoreRowActivity(t *testing.T) {
	row := ScoreRow{Date: "2024-06-01", Score: 250, TimeTaken: 80, Difficulty: 2, HintsUsed: 1}
	a := row.Activity()
	if !a.Solved {
		t.Error("remote rows must convert to solved days")
	}
	if a.Date != row.Date || a.Score != row.Score || a.TimeTaken != row.TimeTaken ||
		a.Difficulty != row.Difficulty || a.HintsUsed != row.HintsUsed {
		t.Errorf("field mismatch: %+v", a)
	}
}

func TestActivityMapSolved(t *testing.T) {
	m := ActivityMap{
		"2024-06-01": {Date: "2024-06-01", Solved: true},
		"2024-06-02": {Date: "2024-06-02", Solved: false},
	}
	if !m.Solved("2024-06-01") {
		t.Error("solved day reported unsolved")
	}
	if m.Solved("2024-06-02") {
		t.Error("unsolved day reported solved")
	}
	if m.Solved("2024-06-03") {
		t.Error("absent day reported solved")
	}
}
