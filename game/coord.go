package game

import (
	"battleship/meta"
	"fmt"
	"strconv"
	"strings"
)

const GridSize = meta.GridSize

// Coord is a cell on the grid, zero-based.
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// String renders the coordinate the way players call shots, e.g. "C5" for row 2, column 4.
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+c.Row, c.Col+1)
}

// ParseCoord reads either the called-shot notation ("C5") or a zero-based
// "row col" / "row,col" pair.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coord{}, fmt.Errorf("%w: empty input", ErrInvalidCoord)
	}

	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 2 {
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
		}
		c := Coord{Row: row, Col: col}
		if !c.InBounds() {
			return Coord{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
		}
		return c, nil
	}

	letter := strings.ToUpper(s[:1])[0]
	if letter < 'A' || letter >= 'A'+GridSize {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	c := Coord{Row: int(letter - 'A'), Col: col - 1}
	if !c.InBounds() {
		return Coord{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	return c, nil
}

// AllCoords lists every cell in row-major order.
func AllCoords() []Coord {
	coords := make([]Coord, 0, GridSize*GridSize)
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			coords = append(coords, Coord{Row: r, Col: c})
		}
	}
	return coords
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Extent returns the cells covered by a ship of the given length anchored at origin.
// The cells may fall outside the grid; callers check bounds.
func Extent(origin Coord, length int, o Orientation) []Coord {
	cells := make([]Coord, length)
	for i := 0; i < length; i++ {
		if o == Horizontal {
			cells[i] = Coord{Row: origin.Row, Col: origin.Col + i}
		} else {
			cells[i] = Coord{Row: origin.Row + i, Col: origin.Col}
		}
	}
	return cells
}
