package puzzle

import "fmt"

// Namespace and version baked into every date seed. Bumping the version
// changes all future puzzles without rewriting history.
const (
	seedNamespace = "logic-looper"
	seedVersion   = "v1"
)

// SeedForDate derives the PRNG seed for an ISO date string (YYYY-MM-DD).
func SeedForDate(date string) uint32 {
	return hashString(fmt.Sprintf("%s-%s-%s", seedNamespace, date, seedVersion))
}

// hashString is a polynomial rolling hash (h = h*31 + byte) truncated to
// 32-bit signed, then made absolute. Widened before negation so the
// minimum-int32 case still yields a positive value.
func hashString(s string) uint32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return uint32(v)
}
