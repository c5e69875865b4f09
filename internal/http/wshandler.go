package httphandler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"power4special/internal/game"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsMessage is what a client may send over the socket
type wsMessage struct {
	Type    string `json:"type"` // "play", "start" or "reset"
	Col     int    `json:"col"`
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Mode    string `json:"mode"`
}

// ServeWS pushes the state on every change and accepts play/start/reset messages
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ch, unsub := s.eng.Subscribe()
	defer unsub()

	go s.readMessages(ctx, cancel, conn)

	// the socket has a single writer: this loop
	if err := s.pushState(ctx, conn); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			if err := s.pushState(ctx, conn); err != nil {
				s.log.Debug("websocket write failed", zap.Error(err))
				return
			}
		}
	}
}

func (s *Server) pushState(ctx context.Context, conn *websocket.Conn) error {
	st, err := s.eng.State(ctx)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(st)
}

func (s *Server) readMessages(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn) {
	defer cancel()
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := s.handleMessage(ctx, msg); err != nil {
			s.log.Debug("websocket message ignored", zap.String("type", msg.Type), zap.Error(err))
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, msg wsMessage) error {
	switch msg.Type {
	case "play":
		return s.eng.HandleColumnClick(ctx, msg.Col)
	case "start":
		mode, err := game.ParseMode(msg.Mode)
		if err != nil {
			return err
		}
		return s.eng.StartGame(ctx, msg.Player1, msg.Player2, mode)
	case "reset":
		return s.eng.ResetGame(ctx)
	}
	return nil
}
