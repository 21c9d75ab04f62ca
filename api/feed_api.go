package api

import (
	"encoding/json"
	"log"

	mb "github.com/saeidalz13/seabattle/models/battleship"
	mc "github.com/saeidalz13/seabattle/models/connection"
)

var _ mb.Observer = (*FeedServer)(nil)

func (fs *FeedServer) GameStarted(game *mb.Game) {
	fs.mu.Lock()
	fs.gameUuid = game.Uuid()
	fs.snapshot = nil
	fs.mu.Unlock()

	fs.broadcast(mc.NewGameMessage(mc.CodeGameStarted, game.Uuid(), mc.RespGameStarted{
		FirstPlayer: game.CurrentPlayer().Name(),
		BoardSize:   mb.BoardSize,
	}))
}

func (fs *FeedServer) BoardsUpdated(boards []*mb.Board) {
	payload := mc.RespBoards{Boards: make([]mc.RespBoard, 0, len(boards))}
	for _, b := range boards {
		payload.Boards = append(payload.Boards, mc.NewRespBoard(b))
	}

	// Encoded once, shared by every spectator and kept for late joiners
	fs.mu.Lock()
	frame, err := json.Marshal(mc.NewGameMessage(mc.CodeBoards, fs.gameUuid, payload))
	if err != nil {
		fs.mu.Unlock()
		log.Println("failed to encode boards:", err)
		return
	}
	fs.snapshot = frame
	fs.mu.Unlock()

	fs.sessionManager.Broadcast(frame, mc.MessageTypeBytes)
}

func (fs *FeedServer) MoveRejected(player *mb.Player, move string, reason error) {
	fs.broadcast(mc.NewGameMessage(mc.CodeMoveRejected, fs.currentGameUuid(), mc.RespMoveRejected{
		PlayerName: player.Name(),
		Move:       move,
		Reason:     reason.Error(),
	}))
}

func (fs *FeedServer) ShotFired(player *mb.Player, move string, shot mb.Shot) {
	fs.broadcast(mc.NewGameMessage(mc.CodeShot, fs.currentGameUuid(), mc.NewRespShot(player.Name(), move, shot)))
}

func (fs *FeedServer) GameWon(winner *mb.Player) {
	fs.broadcast(mc.NewGameMessage(mc.CodeGameWon, fs.currentGameUuid(), mc.RespEndGame{
		PlayerName: winner.Name(),
		Won:        true,
	}))
}

func (fs *FeedServer) GameExited(player *mb.Player) {
	fs.broadcast(mc.NewGameMessage(mc.CodeGameExited, fs.currentGameUuid(), mc.RespEndGame{
		PlayerName: player.Name(),
	}))
}

func (fs *FeedServer) currentGameUuid() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.gameUuid
}

func (fs *FeedServer) broadcast(msg interface{}) {
	fs.sessionManager.Broadcast(msg, mc.MessageTypeJSON)
}
