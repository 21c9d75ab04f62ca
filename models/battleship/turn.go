package battleship

import "math/rand"

type Side uint8

const (
	SideAI Side = iota
	SideHuman
)

func (s Side) Other() Side {
	if s == SideAI {
		return SideHuman
	}
	return SideAI
}

func (s Side) String() string {
	if s == SideAI {
		return "AI"
	}
	return "Human"
}

// TurnSequencer is a two-state machine. It does not judge moves; the
// controller tells it on every step whether the turn passes on.
type TurnSequencer struct {
	current Side
}

func NewTurnSequencer(rng *rand.Rand) *TurnSequencer {
	first := SideAI
	if rng.Intn(2) == 1 {
		first = SideHuman
	}
	return &TurnSequencer{current: first}
}

func (ts *TurnSequencer) Current() Side {
	return ts.current
}

func (ts *TurnSequencer) Next(advance bool) Side {
	if advance {
		ts.current = ts.current.Other()
	}
	return ts.current
}
