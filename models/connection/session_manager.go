package connection

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	Broadcast(msg interface{}, msgType uint8) int
	ReadFromSessionConn(session *Session) (int, []byte, error)
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	FetchCodeFromMsg(payload []byte) (uint8, error)
	Count() int
}

type FeedSessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewFeedSessionManager() *FeedSessionManager {
	initMapSize := 10

	return &FeedSessionManager{
		sessions: make(map[string]*Session, initMapSize),
	}
}

var _ SessionManager = (*FeedSessionManager)(nil)

func (fsm *FeedSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	fsm.mu.Lock()
	fsm.sessions[sessionId] = session
	fsm.mu.Unlock()

	return session
}

func (fsm *FeedSessionManager) FindSession(sessionId string) (*Session, error) {
	fsm.mu.RLock()
	defer fsm.mu.RUnlock()

	session, prs := fsm.sessions[sessionId]
	if !prs || session == nil {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}
	return session, nil
}

func (fsm *FeedSessionManager) TerminateSession(sessionId string) {
	fsm.mu.Lock()
	delete(fsm.sessions, sessionId)
	fsm.mu.Unlock()
	log.Printf("session terminated: %s", sessionId)
}

func (fsm *FeedSessionManager) Count() int {
	fsm.mu.RLock()
	defer fsm.mu.RUnlock()
	return len(fsm.sessions)
}

// Broadcast writes msg to every live session and returns how many
// received it. A session that fails the write is dropped.
func (fsm *FeedSessionManager) Broadcast(msg interface{}, msgType uint8) int {
	fsm.mu.RLock()
	sessions := make([]*Session, 0, len(fsm.sessions))
	for _, session := range fsm.sessions {
		sessions = append(sessions, session)
	}
	fsm.mu.RUnlock()

	delivered := 0
	for _, session := range sessions {
		if err := fsm.WriteToSessionConn(session, msg, msgType); err != nil {
			log.Println(err)
			fsm.TerminateSession(session.id)
			_ = session.conn.Close()
			continue
		}
		delivered++
	}
	return delivered
}

func (fsm *FeedSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	return session.writeToConn(msg, msgType)
}

func (fsm *FeedSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		if session.handleReadFromConnErr(err, retries) == ConnLoopContinue {
			retries++
			continue
		}
		return -1, []byte{}, err
	}
}

func (fsm *FeedSessionManager) FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}

	return signal.Code, nil
}
