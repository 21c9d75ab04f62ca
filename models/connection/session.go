package connection

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxReadWsRetries uint8 = 2
	backOffFactor    uint8 = 2
)

var writeDeadline = time.Second * 5

const (
	// Pre-encoded frames, e.g. a cached board snapshot
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

// Session is one spectator connection. Writes come from the game
// goroutine while reads run on the connection's own goroutine, so
// writes are serialized by mu.
type Session struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:   id,
		conn: conn,
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseAbnormalClosure, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake) {
		log.Println("critical error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

func encodeFrame(msg interface{}, msgType uint8) ([]byte, error) {
	switch msgType {
	case MessageTypeJSON:
		frame, err := json.Marshal(msg)
		if err != nil {
			return nil, NewConnErr(ConnInvalidMsgType).AddDesc("failed to encode json: " + err.Error())
		}
		return frame, nil

	case MessageTypeBytes:
		frame, ok := msg.([]byte)
		if !ok {
			return nil, NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
		}
		return frame, nil

	default:
		return nil, NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write")
	}
}

// Writes one text frame to the connection of that session. A failed
// write leaves the websocket unusable, a timed out one included,
// so it is never retried.
func (s *Session) writeToConn(msg interface{}, msgType uint8) error {
	frame, err := encodeFrame(msg, msgType)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		log.Printf("writing to ws failed [%s]: %s\n", s.conn.RemoteAddr().String(), err)
		return NewConnErr(ConnLoopBreak).AddDesc("breaking write due to: " + err.Error())
	}
	return nil
}

// Handles the errors that occur when reading from the
// ws connection. Anything but a retryable timeout ends the session.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	if s.onConnErr(err) == ConnLoopRetry && retries < maxReadWsRetries {
		log.Printf("failed to read from ws conn [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
		return ConnLoopContinue
	}

	log.Printf("break ws conn loop [%s] due to: %s\n", s.conn.RemoteAddr().String(), err)
	return ConnLoopBreak
}
