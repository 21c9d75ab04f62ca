package connection

import (
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespGameStarted struct {
	FirstPlayer string `json:"first_player"`
	BoardSize   int    `json:"board_size"`
}

type RespBoard struct {
	PlayerName  string           `json:"player_name"`
	ShipsAfloat int              `json:"ships_afloat"`
	Grid        [][]mb.CellState `json:"grid"`
}

func NewRespBoard(b *mb.Board) RespBoard {
	grid := make([][]mb.CellState, b.Size())
	for row := range grid {
		grid[row] = make([]mb.CellState, b.Size())
		for column := range grid[row] {
			grid[row][column] = b.CellByCoordinates(row, column).State()
		}
	}

	return RespBoard{
		PlayerName:  b.PlayerName(),
		ShipsAfloat: b.ShipsAfloat(),
		Grid:        grid,
	}
}

type RespBoards struct {
	Boards []RespBoard `json:"boards"`
}

type RespMoveRejected struct {
	PlayerName string `json:"player_name"`
	Move       string `json:"move"`
	Reason     string `json:"reason"`
}

type RespShot struct {
	PlayerName  string `json:"player_name"`
	Move        string `json:"move"`
	Column      int    `json:"column"`
	Row         int    `json:"row"`
	Outcome     uint8  `json:"outcome"`
	Capitulated bool   `json:"capitulated"`
}

func NewRespShot(playerName, move string, shot mb.Shot) RespShot {
	return RespShot{
		PlayerName:  playerName,
		Move:        move,
		Column:      shot.Column,
		Row:         shot.Row,
		Outcome:     shot.Outcome,
		Capitulated: shot.Capitulated,
	}
}

type RespEndGame struct {
	PlayerName string `json:"player_name"`
	Won        bool   `json:"won"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
