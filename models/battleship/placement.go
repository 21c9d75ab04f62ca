package battleship

type orientation struct {
	dRow    int
	dColumn int
}

var orientations = [...]orientation{
	{dRow: 0, dColumn: 1},  // right
	{dRow: 0, dColumn: -1}, // left
	{dRow: 1, dColumn: 0},  // down
	{dRow: -1, dColumn: 0}, // up
}

func (b *Board) populate() bool {
	for _, ship := range b.ships {
		if !b.placeShip(ship) {
			return false
		}
	}
	return true
}

// placeShip tries every free cell, in random order, as the bow of the ship
// and every orientation, also in random order, from that cell. The first
// fit whose cells are all free wins.
func (b *Board) placeShip(ship *Ship) bool {
	freeCells := b.FreeCellsForShip()
	free := make(map[*Cell]bool, len(freeCells))
	for _, cell := range freeCells {
		free[cell] = true
	}

	b.rng.Shuffle(len(freeCells), func(i, j int) {
		freeCells[i], freeCells[j] = freeCells[j], freeCells[i]
	})

	for _, start := range freeCells {
		row, column, _ := b.CoordinatesByCell(start)

		for _, i := range b.rng.Perm(len(orientations)) {
			place := b.line(row, column, orientations[i], ship.Size(), free)
			if place == nil {
				continue
			}
			for _, cell := range place {
				cell.SetShip(ship)
			}
			return true
		}
	}
	return false
}

// line returns the size cells running from (row, column) in direction o,
// or nil if any of them is off the board or not free.
func (b *Board) line(row, column int, o orientation, size int, free map[*Cell]bool) []*Cell {
	cells := make([]*Cell, 0, size)
	for i := 0; i < size; i++ {
		r, c := row+i*o.dRow, column+i*o.dColumn
		if !b.grid.inBounds(r, c) {
			return nil
		}
		cell := b.grid[r][c]
		if !free[cell] {
			return nil
		}
		cells = append(cells, cell)
	}
	return cells
}
