package puzzle

// Type discriminates the two daily puzzle variants.
type Type string

const (
	TypeSequence    Type = "sequence"
	TypePatternGrid Type = "pattern-grid"
)

// OptionCount is the number of multiple-choice options on a pattern grid.
const OptionCount = 4

// Puzzle is the daily puzzle. Cells holds the visible board (6 entries for a
// sequence, 9 for a 3x3 grid) with exactly one nil at MissingIndex. Options
// is populated for pattern grids only.
type Puzzle struct {
	Type         Type   `json:"type"`
	Cells        []*int `json:"cells"`
	MissingIndex int    `json:"missing_index"`
	Answer       int    `json:"answer"`
	Options      []int  `json:"options,omitempty"`
	Rule         string `json:"rule"`
	Difficulty   int    `json:"difficulty"`
}

// maskCells copies values into a display board, blanking missingIndex.
func maskCells(values []int, missingIndex int) []*int {
	cells := make([]*int, len(values))
	for i := range values {
		if i == missingIndex {
			continue
		}
		v := values[i]
		cells[i] = &v
	}
	return cells
}
