package puzzle

// SeededRand is a linear congruential generator. Two instances built from the
// same seed produce identical streams across platforms and restarts, which is
// what lets every client render the same puzzle for the same date.
type SeededRand struct {
	state uint32
}

func NewSeededRand(seed uint32) *SeededRand {
	return &SeededRand{state: seed}
}

// Next advances the generator and returns a float in [0, 1).
func (r *SeededRand) Next() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state) / (1 << 32)
}

// NextInt returns an integer in [min, max] inclusive.
func (r *SeededRand) NextInt(min, max int) int {
	return int(r.Next()*float64(max-min+1)) + min
}

// Shuffle returns a Fisher-Yates permuted copy. The input is left unmodified.
func (r *SeededRand) Shuffle(vals []int) []int {
	out := make([]int, len(vals))
	copy(out, vals)
	for i := len(out) - 1; i > 0; i-- {
		j := r.NextInt(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
