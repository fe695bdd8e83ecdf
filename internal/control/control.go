// Package control exposes the device state over a websocket so external
// front ends can read it and submit replacements. Like the remote syncer it
// is a writer collaborator working in whole State values.
package control

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ziyadedher/catears/internal/state"
)

// Server serves the control endpoints.
type Server struct {
	store    *state.Store
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// reply is the acknowledgment for every submitted state.
type reply struct {
	OK    bool         `json:"ok"`
	Error string       `json:"error,omitempty"`
	State *state.State `json:"state,omitempty"`
}

// New builds a control server over the store.
func New(store *state.Store, log zerolog.Logger) *Server {
	return &Server{
		store: store,
		log:   log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Routes returns a mux with all control endpoints mounted.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/state", s.HandleStateWS)
	mux.HandleFunc("/health", s.HandleHealth)
	return mux
}

// HandleStateWS streams the current state on connect, then treats every
// incoming message as a whole replacement State. Malformed submissions are
// rejected and leave the state untouched.
func (s *Server) HandleStateWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	cur := s.store.Read()
	if err := conn.WriteJSON(reply{OK: true, State: &cur}); err != nil {
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var next state.State
		if err := json.Unmarshal(msg, &next); err != nil {
			s.log.Warn().Err(err).Msg("rejected malformed state submission")
			if err := conn.WriteJSON(reply{OK: false, Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		s.store.Update(func(st *state.State) { *st = next })
		applied := s.store.Read()
		if err := conn.WriteJSON(reply{OK: true, State: &applied}); err != nil {
			return
		}
	}
}

// HandleHealth is a plain liveness endpoint.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	cur := s.store.Read()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":         true,
		"brightness": cur.Lights.Brightness,
		"audio":      cur.Speakers.Mode.Kind.String(),
	})
}
