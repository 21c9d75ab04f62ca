package battleship

import (
	"errors"
	"io"
	"math/rand"
	"testing"
)

// scriptedMoveSource replays moves, then reports io.EOF.
type scriptedMoveSource struct {
	moves []string
}

func (s *scriptedMoveSource) NextMove(opponent *Board) (string, error) {
	if len(s.moves) == 0 {
		return "", io.EOF
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, nil
}

func sweep() []string {
	moves := make([]string, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for column := 0; column < BoardSize; column++ {
			moves = append(moves, FormatPosition(column, row))
		}
	}
	return moves
}

type event struct {
	kind   string
	player string
	move   string
}

type recorder struct {
	events []event
}

func (r *recorder) GameStarted(game *Game) {
	r.events = append(r.events, event{kind: "started", player: game.CurrentPlayer().Name()})
}

func (r *recorder) BoardsUpdated(boards []*Board) {
	r.events = append(r.events, event{kind: "boards"})
}

func (r *recorder) MoveRejected(player *Player, move string, reason error) {
	r.events = append(r.events, event{kind: "rejected", player: player.Name(), move: move})
}

func (r *recorder) ShotFired(player *Player, move string, shot Shot) {
	r.events = append(r.events, event{kind: "shot", player: player.Name(), move: move})
}

func (r *recorder) GameWon(winner *Player) {
	r.events = append(r.events, event{kind: "won", player: winner.Name()})
}

func (r *recorder) GameExited(player *Player) {
	r.events = append(r.events, event{kind: "exited", player: player.Name()})
}

func (r *recorder) filter(kind string) []event {
	out := make([]event, 0)
	for _, e := range r.events {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// newGameStartingWith finds a seed whose coin flip gives the first turn to side.
func newGameStartingWith(t *testing.T, side Side, human MoveSource, opts ...GameOption) *Game {
	t.Helper()
	for seed := int64(0); seed < 100; seed++ {
		g, err := NewGame(rand.New(rand.NewSource(seed)), human, opts...)
		if err != nil {
			t.Fatal(err)
		}
		if g.CurrentPlayer().Side() == side {
			return g
		}
	}
	t.Fatalf("no seed gives the first turn to %s", side)
	return nil
}

func TestNewGame(t *testing.T) {
	g, err := NewGame(rand.New(rand.NewSource(1)), &scriptedMoveSource{})
	if err != nil {
		t.Fatal(err)
	}

	if len(g.Uuid()) != 6 {
		t.Fatalf("expected a 6 character game uuid, got %q", g.Uuid())
	}
	if g.Player(SideHuman).Name() != PlayerNameHuman || g.Player(SideAI).Name() != PlayerNameAI {
		t.Fatal("players must be named after their side")
	}
	if g.Opponent(g.Player(SideHuman)) != g.Player(SideAI) {
		t.Fatal("the opponent of the human must be the AI")
	}

	boards := g.Boards()
	if boards[0].PlayerName() != PlayerNameAI || boards[1].PlayerName() != PlayerNameHuman {
		t.Fatal("boards must be ordered AI then Human")
	}

	if _, err := NewGame(rand.New(rand.NewSource(1)), nil); err == nil {
		t.Fatal("a nil human move source must be rejected")
	}
}

func TestGameExit(t *testing.T) {
	tests := []struct {
		name  string
		first Side
		moves []string
	}{
		{name: "exit token", first: SideHuman, moves: []string{ExitToken}},
		{name: "closed input", first: SideHuman, moves: nil},
		{name: "exit after AI opens", first: SideAI, moves: []string{ExitToken}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := &recorder{}
			g := newGameStartingWith(t, test.first, &scriptedMoveSource{moves: test.moves}, WithObserver(rec))

			outcome, err := g.Run()
			if err != nil {
				t.Fatal(err)
			}
			if !outcome.Exited || outcome.HasWinner() {
				t.Fatalf("expected an exit without winner, got %+v", outcome)
			}
			if len(rec.filter("won")) != 0 {
				t.Fatal("no winner may be announced on exit")
			}
			exits := rec.filter("exited")
			if len(exits) != 1 || exits[0].player != PlayerNameHuman {
				t.Fatalf("expected one exit by the human, got %+v", exits)
			}
			if rec.events[0].kind != "started" {
				t.Fatal("the first event must be the game start")
			}
		})
	}
}

func TestGameRepeatsTurnOnInvalidMove(t *testing.T) {
	rec := &recorder{}
	human := &scriptedMoveSource{moves: []string{"a1", "77", "11", "11", ExitToken}}
	g := newGameStartingWith(t, SideHuman, human, WithObserver(rec))

	outcome, err := g.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Exited {
		t.Fatal("game should end with the exit token")
	}

	rejected := rec.filter("rejected")
	expectedRejected := []event{
		{kind: "rejected", player: PlayerNameHuman, move: "a1"},
		{kind: "rejected", player: PlayerNameHuman, move: "77"},
		{kind: "rejected", player: PlayerNameHuman, move: "11"},
	}
	if len(rejected) != len(expectedRejected) {
		t.Fatalf("expected %d rejected moves, got %+v", len(expectedRejected), rejected)
	}
	for i := range expectedRejected {
		if rejected[i] != expectedRejected[i] {
			t.Fatalf("rejected move %d: expected %+v\tgot: %+v", i, expectedRejected[i], rejected[i])
		}
	}

	// Human "11" is valid and passes the turn; the AI answers before the repeated "11"
	shots := rec.filter("shot")
	if len(shots) != 2 {
		t.Fatalf("expected 2 shots, got %+v", shots)
	}
	if shots[0].player != PlayerNameHuman || shots[0].move != "11" {
		t.Fatalf("unexpected first shot %+v", shots[0])
	}
	if shots[1].player != PlayerNameAI {
		t.Fatalf("the AI must move after a valid human move, got %+v", shots[1])
	}
	if outcome.Turns != 2 {
		t.Fatalf("expected 2 valid turns, got %d", outcome.Turns)
	}
}

func TestGameWin(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rec := &recorder{}
		g, err := NewGame(
			rand.New(rand.NewSource(seed)),
			&scriptedMoveSource{moves: sweep()},
			WithObserver(rec),
			WithMoveSource(SideAI, &scriptedMoveSource{moves: sweep()}),
		)
		if err != nil {
			t.Fatal(err)
		}

		outcome, err := g.Run()
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Exited || !outcome.HasWinner() {
			t.Fatalf("seed %d: expected a winner, got %+v", seed, outcome)
		}

		won := rec.filter("won")
		if len(won) != 1 || won[0].player != outcome.Winner {
			t.Fatalf("seed %d: expected exactly one announced winner, got %+v", seed, won)
		}

		winner := g.Player(outcome.WinnerSide)
		if !g.Opponent(winner).IsLoser() {
			t.Fatalf("seed %d: the loser's fleet must be sunk", seed)
		}
		if winner.IsLoser() {
			t.Fatalf("seed %d: the winner's fleet must not be sunk", seed)
		}
		if len(rec.filter("exited")) != 0 {
			t.Fatalf("seed %d: a won game must not report an exit", seed)
		}
	}
}

func TestGameAgainstRandomSource(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	g, err := NewGame(rng, NewRandomMoveSource(rng))
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := g.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.HasWinner() {
		t.Fatalf("two random players must finish the game, got %+v", outcome)
	}
	// Random sources never repeat a cell, so a game takes at most 2*36 moves
	if outcome.Turns > 2*BoardSize*BoardSize {
		t.Fatalf("too many turns: %d", outcome.Turns)
	}
}

type failingMoveSource struct{}

func (failingMoveSource) NextMove(opponent *Board) (string, error) {
	return "", errors.New("keyboard on fire")
}

func TestGameMoveSourceError(t *testing.T) {
	g := newGameStartingWith(t, SideHuman, failingMoveSource{})

	if _, err := g.Run(); err == nil {
		t.Fatal("a failing move source must abort the game with its error")
	}
}

func TestRandomMoveSource(t *testing.T) {
	b := newTestBoard(t, 4)
	source := NewRandomMoveSource(rand.New(rand.NewSource(4)))

	for i := 0; i < BoardSize*BoardSize; i++ {
		move, err := source.NextMove(b)
		if err != nil {
			t.Fatal(err)
		}
		if !b.MakeMove(move) {
			t.Fatalf("random move %q hit an attacked or invalid cell", move)
		}
	}

	if _, err := source.NextMove(b); err == nil {
		t.Fatal("expected an error once every cell is attacked")
	}
}
