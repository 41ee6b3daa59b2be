package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/game"
)

// Command is a navigation request sent over the websocket.
type Command struct {
	Action string `json:"action"` // forward, backward, seek, reset or end
	Ply    int    `json:"ply,omitempty"`
}

// Reply is sent for every command. Exactly one of Step and Error is set.
type Reply struct {
	Step  *StepView `json:"step,omitempty"`
	Error string    `json:"error,omitempty"`
}

func (c Command) run(sess *game.Session) ([]chess.Op, error) {
	switch c.Action {
	case "forward":
		return sess.StepForward()
	case "backward":
		return sess.StepBackward()
	case "seek":
		return sess.SeekTo(c.Ply)
	case "reset":
		return sess.Reset()
	case "end":
		return sess.End()
	default:
		return nil, fmt.Errorf("unknown action %q", c.Action)
	}
}

// HandleWebsocket upgrades the connection and serves navigation commands
// until the client disconnects. The current state is sent first.
func (s *Server) HandleWebsocket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var initial StepView
	err := s.sessions.With(id, func(sess *game.Session) error {
		initial = stepOf(id, sess, nil)
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorw("websocket upgrade failed", "id", id, "error", err)
		return
	}
	defer conn.Close()

	s.log.Debugw("websocket connected", "id", id)
	if err := conn.WriteJSON(Reply{Step: &initial}); err != nil {
		s.log.Debugw("websocket write failed", "id", id, "error", err)
		return
	}

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warnw("websocket read failed", "id", id, "error", err)
			}
			return
		}

		var reply Reply
		err := s.sessions.With(id, func(sess *game.Session) error {
			ops, err := cmd.run(sess)
			if err != nil {
				return err
			}
			step := stepOf(id, sess, ops)
			reply.Step = &step
			return nil
		})
		if err != nil {
			reply.Error = err.Error()
		}

		if err := conn.WriteJSON(reply); err != nil {
			s.log.Debugw("websocket write failed", "id", id, "error", err)
			return
		}
	}
}
