package api

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const (
	GlyphShipAlive = "■"
	GlyphShipHit   = "X"
	GlyphWater     = "◯"
	GlyphWaterHit  = "T"
)

var shotOutcomeText = map[uint8]string{
	mb.ShotMiss: "miss",
	mb.ShotHit:  "hit",
	mb.ShotSunk: "sunk",
}

// ConsoleRenderer prints the game to a terminal. With fog of war on,
// ships of the automated side stay hidden until they are hit.
type ConsoleRenderer struct {
	out      io.Writer
	fogOfWar bool
	game     *mb.Game
}

var _ mb.Observer = (*ConsoleRenderer)(nil)

func NewConsoleRenderer(out io.Writer, fogOfWar bool) *ConsoleRenderer {
	return &ConsoleRenderer{out: out, fogOfWar: fogOfWar}
}

func Glyph(state mb.CellState) string {
	switch state {
	case mb.CellStateShipAlive:
		return GlyphShipAlive
	case mb.CellStateShipHit:
		return GlyphShipHit
	case mb.CellStateWaterHit:
		return GlyphWaterHit
	default:
		return GlyphWater
	}
}

func rowToPrint(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func (cr *ConsoleRenderer) RenderBoard(b *mb.Board) string {
	hideShips := cr.fogOfWar && b.PlayerName() == mb.PlayerNameAI

	var sb strings.Builder
	sb.WriteString("Player: " + b.PlayerName() + "\n")

	columnNumbers := make([]string, b.Size())
	for column := range columnNumbers {
		columnNumbers[column] = strconv.Itoa(column + 1)
	}
	sb.WriteString("  " + rowToPrint(columnNumbers) + "\n")

	for row := 0; row < b.Size(); row++ {
		glyphs := make([]string, b.Size())
		for column := range glyphs {
			state := b.CellByCoordinates(row, column).State()
			if hideShips && state == mb.CellStateShipAlive {
				state = mb.CellStateWaterUntouched
			}
			glyphs[column] = Glyph(state)
		}
		sb.WriteString(strconv.Itoa(row+1) + " " + rowToPrint(glyphs) + "\n")
	}
	return sb.String()
}

func (cr *ConsoleRenderer) GameStarted(game *mb.Game) {
	cr.game = game
	fmt.Fprintf(cr.out, "Start game %s, %s moves first\n", game.Uuid(), game.CurrentPlayer().Name())
}

func (cr *ConsoleRenderer) BoardsUpdated(boards []*mb.Board) {
	for _, b := range boards {
		fmt.Fprint(cr.out, cr.RenderBoard(b))
	}
}

func (cr *ConsoleRenderer) MoveRejected(player *mb.Player, move string, reason error) {
	fmt.Fprintf(cr.out, "!!! Try again !!! (%s)\n", reason)
}

func (cr *ConsoleRenderer) ShotFired(player *mb.Player, move string, shot mb.Shot) {
	fmt.Fprintf(cr.out, "%s fires at %s: %s\n", player.Name(), move, shotOutcomeText[shot.Outcome])
}

// The sunk fleet is shown once more between the announcement and the end.
func (cr *ConsoleRenderer) GameWon(winner *mb.Player) {
	fmt.Fprintf(cr.out, "%s is win!!!\n", winner.Name())
	if cr.game != nil {
		fmt.Fprint(cr.out, cr.RenderBoard(cr.game.Opponent(winner).Board()))
	}
	fmt.Fprint(cr.out, "Game over\n")
}

func (cr *ConsoleRenderer) GameExited(player *mb.Player) {
	fmt.Fprint(cr.out, "Exit...\nGame over\n")
}

// Longer input is cut before it reaches the board, which rejects it anyway.
const maxMoveLen = 16

// ConsoleMoveSource reads the human moves line by line.
type ConsoleMoveSource struct {
	reader *bufio.Reader
	out    io.Writer
}

var _ mb.MoveSource = (*ConsoleMoveSource)(nil)

func NewConsoleMoveSource(in io.Reader, out io.Writer) *ConsoleMoveSource {
	return &ConsoleMoveSource{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// NextMove blocks until a line is entered. A line of any length is a
// move; malformed ones are left to the board to reject. A closed input
// is reported as io.EOF, which ends the game like "e".
func (cms *ConsoleMoveSource) NextMove(opponent *mb.Board) (string, error) {
	fmt.Fprintf(cms.out, "Player %s (ColumnRow) (%q-exit): ", mb.PlayerNameHuman, mb.ExitToken)

	line, err := cms.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	move := strings.TrimSpace(line)
	if len(move) > maxMoveLen {
		move = move[:maxMoveLen]
	}
	return move, nil
}
