package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	roomService "github.com/lackeysgame/lackeys/internal/services/room"
)

const requestTimeout = 10 * time.Second

// Server exposes the room service as a JSON polling API
type Server struct {
	roomService roomService.Service
	log         *zap.SugaredLogger
	httpServer  *http.Server
}

// Config holds the configuration for the HTTP server
type Config struct {
	// Addr is the listen address, e.g. ":8000"
	Addr string

	// RoomService handles all room and match operations
	RoomService roomService.Service

	// Logger receives request logs
	Logger *zap.SugaredLogger
}

// New creates a new HTTP server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr cannot be empty")
	}

	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &Server{
		roomService: cfg.RoomService,
		log:         cfg.Logger,
	}

	router := httprouter.New()
	router.POST("/room-create", s.handleRoomCreate)
	router.POST("/room-join", s.handleRoomJoin)
	router.POST("/room-check", s.handleRoomCheck)
	router.POST("/game-start", s.handleGameStart)
	router.POST("/game-options", s.handleGameOptions)
	router.POST("/game-pick", s.handleGamePick)

	// The browser frontend lives on another origin, so every preflight gets
	// a permissive answer.
	router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corsHeaders(w)
		w.WriteHeader(http.StatusOK)
	})

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.logRequests(router),
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       requestTimeout,
		ReadHeaderTimeout: requestTimeout,
		WriteTimeout:      requestTimeout,
	}

	return s, nil
}

// Start listens and serves until Stop is called. It returns nil on a
// graceful shutdown.
func (s *Server) Start() error {
	s.log.Infow("listening", "addr", s.httpServer.Addr)

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the root handler, for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleRoomCreate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createRoomRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.roomService.CreateRoom(r.Context(), &roomService.CreateRoomInput{
		OwnerName: req.OwnerName,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, createRoomResponse{
		RoomID:   out.RoomID,
		RoomCode: out.JoinCode,
		PlayerID: out.PlayerID,
	})
}

func (s *Server) handleRoomJoin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req joinRoomRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.roomService.JoinRoom(r.Context(), &roomService.JoinRoomInput{
		JoinCode:   req.RoomCode,
		PlayerName: req.PlayerName,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, joinRoomResponse{
		RoomID:   out.RoomID,
		PlayerID: out.PlayerID,
	})
}

func (s *Server) handleRoomCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req memberRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.roomService.PollRoom(r.Context(), &roomService.PollRoomInput{
		RoomID:   req.RoomID,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := snapshotResponse{
		RoomStatus:   string(out.Status),
		RoundCounter: out.RoundCounter,
		RoundTotal:   out.RoundTotal,
		OwnerID:      out.OwnerID,
		LeaderID:     out.LeaderID,
		PromptText:   out.PromptText,
		Players:      make([]playerPayload, 0, len(out.Players)),
	}

	for _, p := range out.Players {
		resp.Players = append(resp.Players, playerPayload{
			PlayerID:       p.ID,
			PlayerName:     p.Name,
			Score:          p.Score,
			LastCheck:      p.LastPollAgeSeconds,
			FinisherReady:  p.FinisherReady,
			NextRoundReady: p.NextRoundReady,
		})
	}

	for _, sub := range out.Submissions {
		resp.Submissions = append(resp.Submissions, submissionPayload{
			PlayerName:   sub.PlayerName,
			FinisherText: sub.FinisherText,
			IsWinner:     sub.IsWinner,
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGameStart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req memberRequest
	if !s.decode(w, r, &req) {
		return
	}

	_, err := s.roomService.Advance(r.Context(), &roomService.AdvanceInput{
		RoomID:   req.RoomID,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeNoContent(w)
}

func (s *Server) handleGameOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req memberRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.roomService.GetOptions(r.Context(), &roomService.GetOptionsInput{
		RoomID:   req.RoomID,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := optionsResponse{Options: make([]optionPayload, 0, len(out.Options))}
	for _, opt := range out.Options {
		resp.Options = append(resp.Options, optionPayload{
			OptionID:   opt.ID,
			OptionText: opt.Text,
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGamePick(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req pickRequest
	if !s.decode(w, r, &req) {
		return
	}

	_, err := s.roomService.SubmitPick(r.Context(), &roomService.SubmitPickInput{
		RoomID:   req.RoomID,
		PlayerID: req.PlayerID,
		OptionID: req.OptionID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeNoContent(w)
}

// decode parses the JSON request body into v. On failure it writes a 400
// and reports false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "expected Content-Type application/json"})
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}

	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	corsHeaders(w)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorw("failed to write response", "error", err)
	}
}

func (s *Server) writeNoContent(w http.ResponseWriter) {
	corsHeaders(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

// statusForError maps service error kinds onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case roomService.IsValidation(err):
		return http.StatusBadRequest
	case roomService.IsNotFound(err):
		return http.StatusNotFound
	case roomService.IsPrecondition(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func corsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// logRequests tags every request with an id and logs its outcome
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Infow("request",
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
