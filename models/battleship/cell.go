package battleship

type CellState uint8

const (
	CellStateWaterUntouched CellState = iota
	CellStateWaterHit
	CellStateShipAlive
	CellStateShipHit
)

// Cell is one grid position. The ship pointer is a handle into the
// owning board's fleet; a cell never owns its ship.
type Cell struct {
	ship     *Ship
	attacked bool
}

func (c *Cell) SetShip(ship *Ship) {
	c.ship = ship
}

func (c *Cell) HasShip() bool {
	return c.ship != nil
}

func (c *Cell) Ship() *Ship {
	return c.ship
}

// Marks the cell as attacked and forwards the
// attack to the ship sitting on it, if any.
func (c *Cell) SetAttacked() error {
	c.attacked = true
	if c.HasShip() {
		return c.ship.Attacked()
	}
	return nil
}

func (c *Cell) IsAttacked() bool {
	return c.attacked
}

func (c *Cell) State() CellState {
	switch {
	case c.HasShip() && c.attacked:
		return CellStateShipHit
	case c.HasShip():
		return CellStateShipAlive
	case c.attacked:
		return CellStateWaterHit
	default:
		return CellStateWaterUntouched
	}
}
