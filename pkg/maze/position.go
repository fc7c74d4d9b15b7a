package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a cell of a grid maze.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Offset is the signed difference between two positions.
type Offset struct {
	DRow int `json:"drow"`
	DCol int `json:"dcol"`
}

// Sub returns the offset that moves q onto p.
func (p Position) Sub(q Position) Offset {
	return Offset{DRow: p.Row - q.Row, DCol: p.Col - q.Col}
}

// String formats p as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Abs returns the offset with both components made non-negative.
func (o Offset) Abs() Offset {
	return Offset{DRow: abs(o.DRow), DCol: abs(o.DCol)}
}

// IsOrthogonalStep reports whether o moves along exactly one axis.
func (o Offset) IsOrthogonalStep() bool {
	return (o.DRow == 0) != (o.DCol == 0)
}

// ParsePosition parses "row,col". Surrounding parentheses and spaces are
// ignored, so the output of [Position.String] round-trips.
func ParsePosition(s string) (Position, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	row, col, ok := strings.Cut(trimmed, ",")
	if !ok {
		return Position{}, fmt.Errorf("parse position %q: expected row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return Position{}, fmt.Errorf("parse position %q: row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return Position{}, fmt.Errorf("parse position %q: col: %w", s, err)
	}
	return Position{Row: r, Col: c}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
