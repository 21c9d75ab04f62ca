package battleship

import (
	"strconv"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const BoardSize int = 6

// Coordinates are zero-indexed.
type Coordinates struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

func NewCoordinates(column, row int) Coordinates {
	return Coordinates{Column: column, Row: row}
}

type Grid [][]*Cell

// Creates a new grid of empty, unattacked cells
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for row := 0; row < gridSize; row++ {
		grid[row] = make([]*Cell, gridSize)
		for column := 0; column < gridSize; column++ {
			grid[row][column] = &Cell{}
		}
	}
	return grid
}

func (g Grid) inBounds(row, column int) bool {
	return row >= 0 && row < len(g) && column >= 0 && column < len(g)
}

// Neighbours returns up to 8 in-bound cells around (row, column),
// diagonals included.
func (g Grid) Neighbours(row, column int) []*Cell {
	neighbours := make([]*Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.inBounds(row+dr, column+dc) {
				neighbours = append(neighbours, g[row+dr][column+dc])
			}
		}
	}
	return neighbours
}

// ParsePosition reads a move such as "34": first digit is the column,
// second is the row, both 1-indexed. Returned values are zero-indexed.
func ParsePosition(position string, gridSize int) (column, row int, err error) {
	if len(position) != 2 {
		return 0, 0, cerr.ErrPositionMalformed(position)
	}
	for i := 0; i < len(position); i++ {
		if position[i] < '0' || position[i] > '9' {
			return 0, 0, cerr.ErrPositionMalformed(position)
		}
	}

	column = int(position[0]-'0') - 1
	row = int(position[1]-'0') - 1
	if column < 0 || column >= gridSize || row < 0 || row >= gridSize {
		return 0, 0, cerr.ErrPositionOutOfGridBound(column+1, row+1, gridSize)
	}
	return column, row, nil
}

// FormatPosition is the inverse of ParsePosition.
func FormatPosition(column, row int) string {
	return strconv.Itoa(column+1) + strconv.Itoa(row+1)
}
