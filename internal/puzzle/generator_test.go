package puzzle_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"logic-looper-backend/internal/puzzle"
)

// datesOf yields every date of a year as ISO strings.
func datesOf(year int, t *testing.T) []string {
	t.Helper()
	var dates []string
	d := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	for d.Year() == year {
		dates = append(dates, d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 1)
	}
	return dates
}

func TestDailyDeterministic(t *testing.T) {
	for _, date := range []string{"2024-01-01", "2024-02-29", "2024-12-31", "2025-06-15"} {
		a := puzzle.Daily(date)
		b := puzzle.Daily(date)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("puzzle for %s not reproducible:\n%+v\n%+v", date, a, b)
		}
	}
}

func TestVariantAlternation(t *testing.T) {
	// 2024-01-01 is day-of-year 0: even, so a sequence.
	if p := puzzle.Daily("2024-01-01"); p.Type != puzzle.TypeSequence {
		t.Errorf("expected sequence on 2024-01-01, got %s", p.Type)
	}
	if p := puzzle.Daily("2024-01-02"); p.Type != puzzle.TypePatternGrid {
		t.Errorf("expected pattern-grid on 2024-01-02, got %s", p.Type)
	}

	dates := datesOf(2024, t)
	for i := 1; i < len(dates); i++ {
		prev, cur := puzzle.Daily(dates[i-1]), puzzle.Daily(dates[i])
		if prev.Type == cur.Type {
			t.Fatalf("variant did not alternate between %s and %s", dates[i-1], dates[i])
		}
	}
}

func TestDifficultyCycle(t *testing.T) {
	// Day 0 starts the easy week; three weeks later it is hard; then wraps.
	cases := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1}, // day 0, week 0
		{"2024-01-08", 2}, // day 7, week 1
		{"2024-01-15", 3}, // day 14, week 2
		{"2024-01-22", 1}, // day 21, week 3 wraps
	}
	for _, tc := range cases {
		if got := puzzle.Daily(tc.date).Difficulty; got != tc.want {
			t.Errorf("difficulty(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}

	for _, date := range datesOf(2024, t) {
		d := puzzle.Daily(date).Difficulty
		if d < 1 || d > 3 {
			t.Fatalf("difficulty out of range on %s: %d", date, d)
		}
	}
}

func TestAnswerIntegrity(t *testing.T) {
	for _, year := range []int{2024, 2025} {
		for _, date := range datesOf(year, t) {
			p := puzzle.Daily(date)

			if !puzzle.Validate(p, p.Answer) {
				t.Fatalf("%s: stored answer does not validate", date)
			}

			wantLen := 6
			if p.Type == puzzle.TypePatternGrid {
				wantLen = 9
			}
			if len(p.Cells) != wantLen {
				t.Fatalf("%s: %s board has %d cells", date, p.Type, len(p.Cells))
			}

			blanks := 0
			for i, c := range p.Cells {
				if c == nil {
					blanks++
					if i != p.MissingIndex {
						t.Fatalf("%s: blank at %d but missing index is %d", date, i, p.MissingIndex)
					}
				}
			}
			if blanks != 1 {
				t.Fatalf("%s: %d blanked cells", date, blanks)
			}

			if p.Type == puzzle.TypeSequence {
				if p.MissingIndex == 0 {
					t.Fatalf("%s: sequence blanked its anchor cell", date)
				}
				if len(p.Options) != 0 {
					t.Fatalf("%s: sequence puzzle has options", date)
				}
				continue
			}

			if len(p.Options) != puzzle.OptionCount {
				t.Fatalf("%s: %d options", date, len(p.Options))
			}
			seen := make(map[int]bool)
			hasAnswer := false
			for _, o := range p.Options {
				if o <= 0 {
					t.Fatalf("%s: non-positive option %d", date, o)
				}
				if seen[o] {
					t.Fatalf("%s: duplicate option %d in %v", date, o, p.Options)
				}
				seen[o] = true
				if o == p.Answer {
					hasAnswer = true
				}
			}
			if !hasAnswer {
				t.Fatalf("%s: answer %d missing from options %v", date, p.Answer, p.Options)
			}
		}
	}
}

func TestSequenceRuleHolds(t *testing.T) {
	// Spot-check that the visible cells plus the answer actually satisfy
	// an internally consistent progression for a handful of dates.
	for _, date := range []string{"2024-01-01", "2024-03-03", "2024-07-07", "2024-11-11"} {
		p := puzzle.Daily(date)
		if p.Type != puzzle.TypeSequence {
			continue
		}

		full := make([]int, len(p.Cells))
		for i, c := range p.Cells {
			if c == nil {
				full[i] = p.Answer
			} else {
				full[i] = *c
			}
		}
		for i, v := range full {
			if v <= 0 && i > 0 {
				t.Errorf("%s: suspicious non-positive term %d at %d (%v)", date, v, i, full)
			}
		}
	}
}

func TestYearBoundary(t *testing.T) {
	// Dec 31 and Jan 1 land on different day-of-year parities in a common
	// year (day 364 vs day 0), so the variant repeats across the boundary.
	p1 := puzzle.Daily("2023-12-31")
	p2 := puzzle.Daily("2024-01-01")
	if p1.Type != puzzle.TypeSequence || p2.Type != puzzle.TypeSequence {
		t.Errorf("expected sequences around the 2023/2024 boundary, got %s then %s", p1.Type, p2.Type)
	}

	// In a leap year Dec 31 is day 365: odd, so the boundary alternates.
	p3 := puzzle.Daily("2024-12-31")
	if p3.Type != puzzle.TypePatternGrid {
		t.Errorf("expected pattern-grid on 2024-12-31, got %s", p3.Type)
	}
}

func TestHintNeverRevealsAnswer(t *testing.T) {
	for _, date := range datesOf(2024, t) {
		p := puzzle.Daily(date)
		hint := puzzle.Hint(p)
		if hint == "" {
			t.Fatalf("%s: empty hint", date)
		}
		if p.Rule != "" && !strings.Contains(hint, p.Rule) {
			t.Fatalf("%s: hint %q does not carry the rule %q", date, hint, p.Rule)
		}
		if strings.Contains(hint, fmt.Sprintf(": %d", p.Answer)) {
			t.Fatalf("%s: hint leaks the answer: %q", date, hint)
		}
	}
}
