package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/game"
	"github.com/lgbarn/pgn-replay-go/internal/output"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// CreateRequest is the body of POST /sessions. Layout overrides the
// movetext's FEN tag; unset fields fall back to the server's session defaults.
type CreateRequest struct {
	Layout          string `json:"layout"`
	Movetext        string `json:"movetext"`
	JSONAnnotations *bool  `json:"jsonAnnotations,omitempty"`
	Flipped         *bool  `json:"flipped,omitempty"`
}

// SeekRequest is the body of POST /sessions/{id}/seek.
type SeekRequest struct {
	Ply int `json:"ply"`
}

// AnnotateRequest is the body of POST /sessions/{id}/annotations.
type AnnotateRequest struct {
	Text string `json:"text"`
}

// SessionView is the state of a session at its cursor.
type SessionView struct {
	ID          string             `json:"id"`
	Cursor      int                `json:"cursor"`
	PlyCount    int                `json:"plyCount"`
	FEN         string             `json:"fen"`
	Orientation string             `json:"orientation"`
	Move        string             `json:"move,omitempty"`
	Annotation  *parser.Annotation `json:"annotation,omitempty"`
	Tags        map[string]string  `json:"tags,omitempty"`
}

// StepView is the reply to a navigation request: the ops the client must
// apply, in order, and the state they lead to.
type StepView struct {
	SessionView
	Ops []string `json:"ops"`
}

func viewOf(id string, s *game.Session) SessionView {
	v := SessionView{
		ID:          id,
		Cursor:      s.Cursor(),
		PlyCount:    s.Len(),
		FEN:         s.CurrentFEN(),
		Orientation: s.Orientation().String(),
		Tags:        s.Headers(),
	}
	if m, ok := s.FormattedMoveAt(s.Cursor()); ok {
		v.Move = m
	}
	if a := s.CurrentAnnotation(); !a.IsZero() {
		v.Annotation = &a
	}
	return v
}

func stepOf(id string, s *game.Session, ops []chess.Op) StepView {
	wire := make([]string, len(ops))
	for i, op := range ops {
		wire[i] = op.String()
	}
	return StepView{SessionView: viewOf(id, s), Ops: wire}
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrTooManySessions):
		return http.StatusServiceUnavailable
	case errors.Is(err, errors.ErrInvalidFEN),
		errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrParseFailure),
		errors.Is(err, errors.ErrAnnotationFormat):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Errorw("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.log.Debugw("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	WriteError(w, status, err)
}

// HandleCreate compiles a game and registers a new session for it.
func (s *Server) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	structured := s.defaults.JSONAnnotations
	if req.JSONAnnotations != nil {
		structured = *req.JSONAnnotations
	}
	flipped := s.defaults.Flipped
	if req.Flipped != nil {
		flipped = *req.Flipped
	}

	sess, err := game.New(req.Layout, req.Movetext,
		game.WithDefaultLayout(s.defaults.Layout),
		game.WithJSONAnnotations(structured),
		game.WithFlipped(flipped),
		game.WithLogger(s.log),
	)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	id, err := s.sessions.Add(sess)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.log.Infow("session created", "id", id, "halfmoves", sess.Len())
	WriteResponseWithStatus(w, http.StatusCreated, viewOf(id, sess))
}

// HandleGet returns the session state at its cursor.
func (s *Server) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var view SessionView
	err := s.sessions.With(id, func(sess *game.Session) error {
		view = viewOf(id, sess)
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteResponseWithStatus(w, http.StatusOK, view)
}

// HandleDelete closes a session.
func (s *Server) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.Remove(id); err != nil {
		s.fail(w, r, err)
		return
	}
	s.log.Infow("session closed", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// navigate runs a navigation step on the session named in the URL and
// replies with the ops it produced.
func (s *Server) navigate(w http.ResponseWriter, r *http.Request, step func(*game.Session) ([]chess.Op, error)) {
	id := chi.URLParam(r, "id")
	var view StepView
	err := s.sessions.With(id, func(sess *game.Session) error {
		ops, err := step(sess)
		if err != nil {
			return err
		}
		view = stepOf(id, sess, ops)
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteResponseWithStatus(w, http.StatusOK, view)
}

// HandleForward advances the session one half-move.
func (s *Server) HandleForward(w http.ResponseWriter, r *http.Request) {
	s.navigate(w, r, (*game.Session).StepForward)
}

// HandleBackward retreats the session one half-move.
func (s *Server) HandleBackward(w http.ResponseWriter, r *http.Request) {
	s.navigate(w, r, (*game.Session).StepBackward)
}

// HandleSeek moves the session to the requested ply.
func (s *Server) HandleSeek(w http.ResponseWriter, r *http.Request) {
	var req SeekRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}
	s.navigate(w, r, func(sess *game.Session) ([]chess.Op, error) {
		return sess.SeekTo(req.Ply)
	})
}

// HandleAnnotate merges a comment into the annotation at the cursor.
func (s *Server) HandleAnnotate(w http.ResponseWriter, r *http.Request) {
	var req AnnotateRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		WriteError(w, http.StatusBadRequest, fmt.Errorf("empty annotation text"))
		return
	}

	id := chi.URLParam(r, "id")
	var view SessionView
	err := s.sessions.With(id, func(sess *game.Session) error {
		sess.AddAnnotation(req.Text)
		view = viewOf(id, sess)
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteResponseWithStatus(w, http.StatusOK, view)
}

// HandleFlip toggles the board orientation.
func (s *Server) HandleFlip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var view SessionView
	err := s.sessions.With(id, func(sess *game.Session) error {
		sess.Flip()
		view = viewOf(id, sess)
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteResponseWithStatus(w, http.StatusOK, view)
}

// HandleTransitions returns the whole game with its transition log.
func (s *Server) HandleTransitions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var jg *output.JSONGame
	err := s.sessions.With(id, func(sess *game.Session) error {
		jg = output.SessionToJSON(sess)
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteResponseWithStatus(w, http.StatusOK, jg)
}

// HandleBoardSVG renders the board at the cursor.
func (s *Server) HandleBoardSVG(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var buf bytes.Buffer
	err := s.sessions.With(id, func(sess *game.Session) error {
		return output.WriteSVG(&buf, sess.Board(), sess.Orientation(), s.squareSize)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}
