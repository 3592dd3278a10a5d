package source

import "fmt"

// Position is a 1-based line/column pair as shown to users.
type Position struct {
	Line   int
	Column int
}

// Location is a span in a source file. End may be nil for single-point locations.
type Location struct {
	Start *Position
	End   *Position
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// FromRowCol converts the preprocessor's 0-based row/column into a Position.
func FromRowCol(row, col uint64) *Position {
	return &Position{Line: int(row) + 1, Column: int(col) + 1}
}

// NewLocation builds a location starting at (row, col) and spanning width columns.
func NewLocation(row, col uint64, width int) *Location {
	start := FromRowCol(row, col)
	if width <= 1 {
		return &Location{Start: start}
	}
	return &Location{
		Start: start,
		End:   &Position{Line: start.Line, Column: start.Column + width},
	}
}
