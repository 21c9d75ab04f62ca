package battleship

import (
	"errors"
	"io"
	"math/rand"

	"github.com/google/uuid"
)

const (
	PlayerNameHuman = "Human"
	PlayerNameAI    = "AI"
)

// Observer receives every game event in the order it happens.
// Implementations must not mutate the boards.
type Observer interface {
	GameStarted(game *Game)
	BoardsUpdated(boards []*Board)
	MoveRejected(player *Player, move string, reason error)
	ShotFired(player *Player, move string, shot Shot)
	GameWon(winner *Player)
	GameExited(player *Player)
}

type Outcome struct {
	GameUuid   string
	Winner     string
	WinnerSide Side
	Exited     bool
	Turns      int
}

func (o Outcome) HasWinner() bool {
	return o.Winner != ""
}

type Game struct {
	uuid      string
	players   [2]*Player
	turns     *TurnSequencer
	observers []Observer
}

type GameOption func(*Game) error

func WithObserver(observer Observer) GameOption {
	return func(g *Game) error {
		if observer == nil {
			return errors.New("observer must not be nil")
		}
		g.observers = append(g.observers, observer)
		return nil
	}
}

// Replaces the move source of one side, e.g. the automated one.
func WithMoveSource(side Side, source MoveSource) GameOption {
	return func(g *Game) error {
		if source == nil {
			return errors.New("move source must not be nil")
		}
		g.players[side].source = source
		return nil
	}
}

// NewGame builds both boards and decides who moves first. A board that
// cannot be populated aborts the game before it starts.
func NewGame(rng *rand.Rand, human MoveSource, opts ...GameOption) (*Game, error) {
	humanBoard, err := NewBoard(PlayerNameHuman, rng)
	if err != nil {
		return nil, err
	}
	aiBoard, err := NewBoard(PlayerNameAI, rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		uuid:  uuid.NewString()[:6],
		turns: NewTurnSequencer(rng),
	}
	g.players[SideAI] = NewPlayer(SideAI, aiBoard, NewRandomMoveSource(rng))
	g.players[SideHuman] = NewPlayer(SideHuman, humanBoard, human)

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.players[SideHuman].source == nil {
		return nil, errors.New("human move source must not be nil")
	}
	return g, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Player(side Side) *Player {
	return g.players[side]
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.turns.Current()]
}

func (g *Game) Opponent(p *Player) *Player {
	return g.players[p.side.Other()]
}

// AI board first, as it is rendered above the human one.
func (g *Game) Boards() []*Board {
	return []*Board{g.players[SideAI].board, g.players[SideHuman].board}
}

// Run drives the turn loop until a fleet is sunk or a player exits.
// An invalid move repeats the turn of the same player; any valid move,
// hit or miss, passes the turn on.
func (g *Game) Run() (Outcome, error) {
	outcome := Outcome{GameUuid: g.uuid}
	g.notify(func(o Observer) { o.GameStarted(g) })

	for {
		current := g.CurrentPlayer()
		opponent := g.Opponent(current)
		g.notify(func(o Observer) { o.BoardsUpdated(g.Boards()) })

		move, err := current.source.NextMove(opponent.board)
		if err != nil && !errors.Is(err, io.EOF) {
			return outcome, err
		}
		if move == ExitToken || errors.Is(err, io.EOF) {
			outcome.Exited = true
			g.notify(func(o Observer) { o.GameExited(current) })
			return outcome, nil
		}

		shot, err := opponent.board.Fire(move)
		if err != nil {
			g.notify(func(o Observer) { o.MoveRejected(current, move, err) })
			g.turns.Next(false)
			continue
		}

		outcome.Turns++
		g.notify(func(o Observer) { o.ShotFired(current, move, shot) })

		if shot.Capitulated {
			outcome.Winner = current.Name()
			outcome.WinnerSide = current.side
			g.notify(func(o Observer) { o.GameWon(current) })
			return outcome, nil
		}
		g.turns.Next(true)
	}
}

func (g *Game) notify(event func(Observer)) {
	for _, o := range g.observers {
		event(o)
	}
}
