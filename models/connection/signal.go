package connection

const (
	CodeSessionID uint8 = iota
	CodeGameStarted
	CodeBoards
	CodeMoveRejected
	CodeShot
	CodeGameWon
	CodeGameExited

	// Spectators only listen; anything they send gets this back
	CodeInvalidSignal
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
