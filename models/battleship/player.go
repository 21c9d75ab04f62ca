package battleship

import (
	"math/rand"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// Sent by a move source to leave the game.
const ExitToken = "e"

type MoveSource interface {
	NextMove(opponent *Board) (string, error)
}

type Player struct {
	side   Side
	board  *Board
	source MoveSource
}

func NewPlayer(side Side, board *Board, source MoveSource) *Player {
	return &Player{
		side:   side,
		board:  board,
		source: source,
	}
}

func (p *Player) Side() Side {
	return p.side
}

func (p *Player) Name() string {
	return p.board.PlayerName()
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) IsLoser() bool {
	return p.board.IsCapitulate()
}

// RandomMoveSource fires at a uniformly chosen cell the
// opponent has not been attacked on yet.
type RandomMoveSource struct {
	rng *rand.Rand
}

func NewRandomMoveSource(rng *rand.Rand) *RandomMoveSource {
	return &RandomMoveSource{rng: rng}
}

func (r *RandomMoveSource) NextMove(opponent *Board) (string, error) {
	cells := opponent.CellsNotAttacked()
	if len(cells) == 0 {
		return "", cerr.ErrNoCellsLeft
	}

	row, column, _ := opponent.CoordinatesByCell(cells[r.rng.Intn(len(cells))])
	return FormatPosition(column, row), nil
}
