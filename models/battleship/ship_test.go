package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

func TestShipAttacked(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		hits       int
		wantHealth int
		wantSunk   bool
	}{
		{name: "untouched cruiser", size: 3, hits: 0, wantHealth: 3, wantSunk: false},
		{name: "damaged cruiser", size: 3, hits: 2, wantHealth: 1, wantSunk: false},
		{name: "sunk destroyer", size: 2, hits: 2, wantHealth: 0, wantSunk: true},
		{name: "sunk boat", size: 1, hits: 1, wantHealth: 0, wantSunk: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship := NewShip(test.size)
			for i := 0; i < test.hits; i++ {
				if err := ship.Attacked(); err != nil {
					t.Fatalf("hit no. %d: %v", i+1, err)
				}
			}

			if ship.Health() != test.wantHealth {
				t.Fatalf("expected health: %d\tgot: %d", test.wantHealth, ship.Health())
			}
			if ship.IsSunk() != test.wantSunk {
				t.Fatalf("expected sunk: %t\tgot: %t", test.wantSunk, ship.IsSunk())
			}
			if ship.Size() != test.size {
				t.Fatalf("size must not change, expected: %d\tgot: %d", test.size, ship.Size())
			}
		})
	}
}

func TestShipAttackedWhenDestroyed(t *testing.T) {
	ship := NewShip(1)
	if err := ship.Attacked(); err != nil {
		t.Fatal(err)
	}

	err := ship.Attacked()
	if !errors.Is(err, cerr.ErrShipAlreadyDestroyed) {
		t.Fatalf("expected ErrShipAlreadyDestroyed, got: %v", err)
	}
	if ship.Health() != 0 {
		t.Fatalf("health must stay at 0, got: %d", ship.Health())
	}
}

func TestNewFleet(t *testing.T) {
	fleet := NewFleet()

	expectedSizes := []int{3, 2, 2, 1, 1, 1, 1}
	if len(fleet) != len(expectedSizes) {
		t.Fatalf("expected %d ships, got %d", len(expectedSizes), len(fleet))
	}
	for i, ship := range fleet {
		if ship.Size() != expectedSizes[i] {
			t.Fatalf("ship %d: expected size %d, got %d", i, expectedSizes[i], ship.Size())
		}
		if ship.Health() != ship.Size() {
			t.Fatalf("ship %d: a new ship must have full health", i)
		}
	}
}
