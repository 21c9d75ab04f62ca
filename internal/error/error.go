package error

import (
	"errors"
	"fmt"
)

var (
	ErrShipAlreadyDestroyed = errors.New("ship has already been destroyed")
	ErrBoardNotReady        = errors.New("board is not ready")
	ErrInvalidPosition      = errors.New("invalid position")
	ErrCellAlreadyAttacked  = errors.New("cell has already been attacked")
	ErrNoCellsLeft          = errors.New("no cells left to attack")
)

func ErrBoardNotReadyFor(playerName string, attempts int) error {
	return fmt.Errorf("%w: player %s, fleet could not be placed after %d attempts", ErrBoardNotReady, playerName, attempts)
}

func ErrPositionMalformed(position string) error {
	return fmt.Errorf("%w: expected two digits (column then row), got %q", ErrInvalidPosition, position)
}

func ErrPositionOutOfGridBound(column, row, gridSize int) error {
	return fmt.Errorf("%w: column or row is out of game grid bound\tcolumn: %d\trow: %d\tsize: %d", ErrInvalidPosition, column, row, gridSize)
}

func ErrPositionAlreadyAttacked(column, row int) error {
	return fmt.Errorf("%w: this position is already hit in previous rounds\tcolumn: %d\trow: %d", ErrCellAlreadyAttacked, column, row)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}
