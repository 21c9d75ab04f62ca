package battleship

import (
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const (
	ShipSizeCruiser   = 3
	ShipSizeDestroyer = 2
	ShipSizeBoat      = 1

	CruiserCount   = 1
	DestroyerCount = 2
	BoatCount      = 4
)

type Ship struct {
	size   int
	health int
}

func NewShip(size int) *Ship {
	return &Ship{
		size:   size,
		health: size,
	}
}

// Fleet order is largest first, which is also the placement order.
func NewFleet() []*Ship {
	fleet := make([]*Ship, 0, CruiserCount+DestroyerCount+BoatCount)
	for i := 0; i < CruiserCount; i++ {
		fleet = append(fleet, NewShip(ShipSizeCruiser))
	}
	for i := 0; i < DestroyerCount; i++ {
		fleet = append(fleet, NewShip(ShipSizeDestroyer))
	}
	for i := 0; i < BoatCount; i++ {
		fleet = append(fleet, NewShip(ShipSizeBoat))
	}
	return fleet
}

func (sh *Ship) Attacked() error {
	if sh.health == 0 {
		return cerr.ErrShipAlreadyDestroyed
	}
	sh.health--
	return nil
}

func (sh *Ship) IsSunk() bool {
	return sh.health == 0
}

func (sh *Ship) Size() int {
	return sh.size
}

func (sh *Ship) Health() int {
	return sh.health
}
