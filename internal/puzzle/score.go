package puzzle

import "fmt"

// Validate checks a submitted answer. Exact equality, no partial credit.
func Validate(p *Puzzle, answer int) bool {
	return answer == p.Answer
}

// Score computes the points for a correct solve. Difficulty sets the base
// reward, the time bonus decays to zero at five minutes, each hint costs a
// flat penalty, and the floor keeps a correct answer from ever scoring
// below 10.
func Score(timeTakenSeconds, hintsUsed, difficulty int) int {
	base := 100 * difficulty
	timeBonus := max(0, 300-timeTakenSeconds)
	penalty := 25 * hintsUsed
	return max(10, base+timeBonus-penalty)
}

// Hint wraps the puzzle's rule label in a fixed phrase. Hints never reveal
// the numeric answer.
func Hint(p *Puzzle) string {
	if p.Type == TypeSequence {
		return fmt.Sprintf("The pattern follows the rule: %s", p.Rule)
	}
	return fmt.Sprintf("Look for the pattern: %s", p.Rule)
}
