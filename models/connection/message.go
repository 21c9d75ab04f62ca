package connection

type NoPayload bool

// Message is the envelope of every frame sent on the spectator feed.
type Message[T any] struct {
	Code     uint8    `json:"code"`
	GameUuid string   `json:"game_uuid,omitempty"`
	Payload  T        `json:"payload,omitempty"`
	Error    *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func NewGameMessage[T any](code uint8, gameUuid string, payload T) Message[T] {
	return Message[T]{Code: code, GameUuid: gameUuid, Payload: payload}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}
