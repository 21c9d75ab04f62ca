package battleship

import (
	"fmt"
	"math/rand"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// Number of full rebuilds tried before a board is declared not ready.
const PlacementAttempts = 6

const (
	ShotMiss uint8 = iota
	ShotHit
	ShotSunk
)

type Shot struct {
	Coordinates
	Outcome     uint8 `json:"outcome"`
	Capitulated bool  `json:"capitulated"`
}

type Board struct {
	playerName string
	size       int
	grid       Grid
	ships      []*Ship
	index      map[*Cell]Coordinates
	rng        *rand.Rand
}

// NewBoard builds the fleet and places it at random. Each attempt starts
// from a fresh grid and fleet; a partially populated board is never returned.
func NewBoard(playerName string, rng *rand.Rand) (*Board, error) {
	return newBoard(playerName, rng, NewFleet)
}

func newBoard(playerName string, rng *rand.Rand, fleet func() []*Ship) (*Board, error) {
	for attempt := 1; attempt <= PlacementAttempts; attempt++ {
		b := &Board{
			playerName: playerName,
			size:       BoardSize,
			grid:       NewGrid(BoardSize),
			ships:      fleet(),
			rng:        rng,
		}
		b.buildIndex()

		if b.populate() {
			return b, nil
		}
	}
	return nil, cerr.ErrBoardNotReadyFor(playerName, PlacementAttempts)
}

func (b *Board) buildIndex() {
	b.index = make(map[*Cell]Coordinates, b.size*b.size)
	for row := range b.grid {
		for column, cell := range b.grid[row] {
			b.index[cell] = NewCoordinates(column, row)
		}
	}
}

func (b *Board) PlayerName() string {
	return b.playerName
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

func (b *Board) ShipsAfloat() int {
	afloat := 0
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			afloat++
		}
	}
	return afloat
}

// MakeMove reports whether position was a legal, previously
// unattacked cell. Illegal moves leave the board untouched.
func (b *Board) MakeMove(position string) bool {
	_, err := b.Fire(position)
	return err == nil
}

func (b *Board) Fire(position string) (Shot, error) {
	column, row, err := ParsePosition(position, b.size)
	if err != nil {
		return Shot{}, err
	}

	cell := b.grid[row][column]
	if cell.IsAttacked() {
		return Shot{}, cerr.ErrPositionAlreadyAttacked(column+1, row+1)
	}

	// A cell is attacked at most once, so its ship can never be hit past zero.
	if err := cell.SetAttacked(); err != nil {
		panic(fmt.Sprintf("board %s: cell %s: %v", b.playerName, FormatPosition(column, row), err))
	}

	shot := Shot{Coordinates: NewCoordinates(column, row), Outcome: ShotMiss}
	if cell.HasShip() {
		shot.Outcome = ShotHit
		if cell.Ship().IsSunk() {
			shot.Outcome = ShotSunk
		}
	}
	shot.Capitulated = b.IsCapitulate()
	return shot, nil
}

func (b *Board) IsCapitulate() bool {
	for _, row := range b.grid {
		for _, cell := range row {
			if cell.HasShip() && !cell.IsAttacked() {
				return false
			}
		}
	}
	return true
}

func (b *Board) CellByCoordinates(row, column int) *Cell {
	if !b.grid.inBounds(row, column) {
		return nil
	}
	return b.grid[row][column]
}

func (b *Board) CoordinatesByCell(cell *Cell) (row, column int, ok bool) {
	coords, ok := b.index[cell]
	if !ok {
		return 0, 0, false
	}
	return coords.Row, coords.Column, true
}

// Row-major.
func (b *Board) CellsNotAttacked() []*Cell {
	cells := make([]*Cell, 0, b.size*b.size)
	for _, row := range b.grid {
		for _, cell := range row {
			if !cell.IsAttacked() {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// FreeCellsForShip returns, row-major, the cells that hold no ship and
// touch no ship in any of the 8 directions.
func (b *Board) FreeCellsForShip() []*Cell {
	cells := make([]*Cell, 0, b.size*b.size)
	for row := range b.grid {
		for column, cell := range b.grid[row] {
			if !cell.HasShip() && !b.shipIsNear(row, column) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

func (b *Board) shipIsNear(row, column int) bool {
	for _, neighbour := range b.grid.Neighbours(row, column) {
		if neighbour.HasShip() {
			return true
		}
	}
	return false
}
