package puzzle

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Daily generates the puzzle for an ISO date string. The result is a pure
// function of the date: callers on different machines see the same board.
// A malformed date falls back to the Unix epoch rather than failing, since
// puzzle generation has no user-facing error states.
func Daily(date string) *Puzzle {
	rng := NewSeededRand(SeedForDate(date))

	day := dayOfYear(date)
	difficulty := 1 + (day/7)%3

	if day%2 == 0 {
		return generateSequence(rng, difficulty)
	}
	return generatePatternGrid(rng, difficulty)
}

// Today formats t as the ISO date key used throughout the engine.
func Today(t time.Time) string {
	return t.Format(dateLayout)
}

// dayOfYear is 0-indexed: January 1 is day 0. Variant alternation and the
// three-week difficulty cycle both key off it.
func dayOfYear(date string) int {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		t = time.Unix(0, 0).UTC()
	}
	return t.YearDay() - 1
}

type board struct {
	values []int
	rule   string
}

func generateSequence(rng *SeededRand, difficulty int) *Puzzle {
	families := []func() board{
		// Arithmetic: fixed step, wider steps at higher difficulty.
		func() board {
			start := rng.NextInt(1, 20)
			step := rng.NextInt(2, 8+difficulty*2)
			values := make([]int, 6)
			for i := range values {
				values[i] = start + step*i
			}
			return board{values, fmt.Sprintf("+%d", step)}
		},
		// Geometric.
		func() board {
			start := rng.NextInt(1, 5)
			mult := rng.NextInt(2, 3)
			values := make([]int, 6)
			term := start
			for i := range values {
				values[i] = term
				term *= mult
			}
			return board{values, fmt.Sprintf("×%d", mult)}
		},
		// Perfect squares with an offset.
		func() board {
			offset := rng.NextInt(0, 5)
			values := make([]int, 6)
			for i := range values {
				n := i + 1 + offset
				values[i] = n * n
			}
			return board{values, fmt.Sprintf("(n+%d)²", offset)}
		},
		// Fibonacci-like.
		func() board {
			values := make([]int, 6)
			values[0] = rng.NextInt(1, 5)
			values[1] = rng.NextInt(1, 5)
			for i := 2; i < 6; i++ {
				values[i] = values[i-1] + values[i-2]
			}
			return board{values, "Fibonacci-like"}
		},
		// Alternating two-step addition.
		func() board {
			start := rng.NextInt(1, 10)
			d1 := rng.NextInt(2, 6)
			d2 := rng.NextInt(1, 4)
			values := make([]int, 6)
			values[0] = start
			for i := 1; i < 6; i++ {
				if i%2 == 1 {
					values[i] = values[i-1] + d1
				} else {
					values[i] = values[i-1] + d2
				}
			}
			return board{values, fmt.Sprintf("alternating +%d/+%d", d1, d2)}
		},
	}

	// Harder days unlock more families.
	family := rng.NextInt(0, min(len(families)-1, 1+difficulty))
	b := families[family]()

	// Index 0 stays visible as an anchor.
	missing := rng.NextInt(1, len(b.values)-1)

	return &Puzzle{
		Type:         TypeSequence,
		Cells:        maskCells(b.values, missing),
		MissingIndex: missing,
		Answer:       b.values[missing],
		Rule:         b.rule,
		Difficulty:   difficulty,
	}
}

func generatePatternGrid(rng *SeededRand, difficulty int) *Puzzle {
	families := []func() board{
		// Every row sums to the same target.
		func() board {
			target := rng.NextInt(10, 20+difficulty*5)
			values := make([]int, 0, 9)
			for row := 0; row < 3; row++ {
				a := rng.NextInt(1, target-2)
				b := rng.NextInt(1, target-a-1)
				values = append(values, a, b, target-a-b)
			}
			return board{values, fmt.Sprintf("Each row sums to %d", target)}
		},
		// Uniform increment across the grid.
		func() board {
			start := rng.NextInt(1, 5)
			step := rng.NextInt(1, 3)
			values := make([]int, 9)
			for i := range values {
				values[i] = start + step*i
			}
			return board{values, fmt.Sprintf("Increment by %d", step)}
		},
		// Each column scales geometrically down the rows.
		func() board {
			bases := []int{rng.NextInt(1, 4), rng.NextInt(1, 4), rng.NextInt(1, 4)}
			mult := rng.NextInt(2, 3)
			values := make([]int, 0, 9)
			scale := 1
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					values = append(values, bases[col]*scale)
				}
				scale *= mult
			}
			return board{values, fmt.Sprintf("Columns multiply by %d", mult)}
		},
	}

	family := rng.NextInt(0, min(len(families)-1, difficulty))
	b := families[family]()

	missing := rng.NextInt(0, 8)
	answer := b.values[missing]

	return &Puzzle{
		Type:         TypePatternGrid,
		Cells:        maskCells(b.values, missing),
		MissingIndex: missing,
		Answer:       answer,
		Options:      buildOptions(rng, answer),
		Rule:         b.rule,
		Difficulty:   difficulty,
	}
}

// buildOptions assembles exactly OptionCount distinct positive choices with
// the answer guaranteed among them. Distractors are small offsets from the
// answer; when filtering leaves too few, synthetic values are padded in at
// increasing even offsets.
func buildOptions(rng *SeededRand, answer int) []int {
	candidates := []int{
		answer,
		answer + rng.NextInt(1, 5),
		answer - rng.NextInt(1, max(1, answer-1)),
		answer + rng.NextInt(2, 8),
	}

	kept := make([]int, 0, len(candidates))
	seen := make(map[int]bool, len(candidates))
	for _, v := range candidates {
		if v <= 0 || seen[v] {
			continue
		}
		seen[v] = true
		kept = append(kept, v)
	}
	kept = rng.Shuffle(kept)

	options := []int{answer}
	chosen := map[int]bool{answer: true}
	for _, v := range kept {
		if !chosen[v] && len(options) < OptionCount {
			chosen[v] = true
			options = append(options, v)
		}
	}
	for offset := 2; len(options) < OptionCount; offset += 2 {
		v := answer + offset
		if !chosen[v] {
			chosen[v] = true
			options = append(options, v)
		}
	}

	return rng.Shuffle(options)
}
