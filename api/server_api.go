package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mc "github.com/saeidalz13/seabattle/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	FeedRoute = "GET /battleship/feed"
)

var (
	defaultPort = 9191
	upgrader    = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// a board snapshot is well below this
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// FeedServer streams the events of the local game to read-only
// websocket spectators. It never accepts moves.
type FeedServer struct {
	port           int
	stage          string
	sessionManager mc.SessionManager

	mu       sync.RWMutex
	gameUuid string
	snapshot []byte
}

type Option func(*FeedServer) error

func NewFeedServer(sessionManager mc.SessionManager, optFuncs ...Option) (*FeedServer, error) {
	fs := FeedServer{
		port:           defaultPort,
		stage:          StageDev,
		sessionManager: sessionManager,
	}
	for _, opt := range optFuncs {
		if err := opt(&fs); err != nil {
			return nil, err
		}
	}
	return &fs, nil
}

func WithPort(port int) Option {
	return func(fs *FeedServer) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid feed port: %d", port)
		}
		fs.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(fs *FeedServer) error {
		if stage != StageProd && stage != StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		fs.stage = stage
		return nil
	}
}

func (fs *FeedServer) Addr() string {
	if fs.stage == StageDev {
		return "127.0.0.1:" + strconv.Itoa(fs.port)
	}
	return "0.0.0.0:" + strconv.Itoa(fs.port)
}

func (fs *FeedServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(FeedRoute, fs)
	return mux
}

func (fs *FeedServer) ListenAndServe() error {
	log.Printf("spectator feed listening on %s\n", fs.Addr())
	return http.ListenAndServe(fs.Addr(), fs.Handler())
}

func (fs *FeedServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	session := fs.sessionManager.GenerateNewSession(conn)
	log.Println("a new spectator connected\tRemote Addr: ", conn.RemoteAddr().String())
	defer func() {
		fs.sessionManager.TerminateSession(session.Id())
		conn.Close()
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := fs.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	// Late joiners get the current boards right away
	fs.mu.RLock()
	snapshot := fs.snapshot
	fs.mu.RUnlock()
	if snapshot != nil {
		if err := fs.sessionManager.WriteToSessionConn(session, snapshot, mc.MessageTypeBytes); err != nil {
			return
		}
	}

	for {
		_, payload, err := fs.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			return
		}

		respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
		code, err := fs.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			respInvalidSignal.AddError(err.Error(), "malformed signal")
		} else {
			respInvalidSignal.AddError(fmt.Sprintf("code %d", code), "spectator feed is read-only")
		}
		if err := fs.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
			return
		}
	}
}
