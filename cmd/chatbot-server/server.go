// cmd/chatbot-server/server.go
package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/engine"
	"support-chatbot/internal/store"
	"support-chatbot/internal/ticket"
)

type server struct {
	engine  *engine.Engine
	tickets *ticket.Repository
	index   *store.TurnIndex
	history *store.History
	version string
	log     logger.Logger
}

func newServer(eng *engine.Engine, tickets *ticket.Repository, index *store.TurnIndex, history *store.History, version string, log logger.Logger) *server {
	return &server{
		engine:  eng,
		tickets: tickets,
		index:   index,
		history: history,
		version: version,
		log:     log,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/tickets", s.handleTickets)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

type chatRequest struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.UserID == "" || req.Message == "" {
		s.writeError(w, http.StatusBadRequest, "userId and message are required")
		return
	}

	result := s.engine.ProcessMessage(r.Context(), req.UserID, req.SessionID, req.Message)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	userID := r.URL.Query().Get("userId")
	sessionID := r.URL.Query().Get("sessionId")
	if userID == "" || sessionID == "" {
		s.writeError(w, http.StatusBadRequest, "userId and sessionId are required")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	turns, err := s.engine.History(r.Context(), userID, sessionID, limit)
	if err != nil {
		s.log.Error("Failed to load history", map[string]interface{}{"error": err.Error()})
		s.writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"turns": turns})
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.index == nil {
		s.writeError(w, http.StatusServiceUnavailable, "search is not enabled")
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		s.writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	turns, err := s.index.Search(r.Context(), r.URL.Query().Get("userId"), query, 20)
	if err != nil {
		s.log.Error("Search failed", map[string]interface{}{"error": err.Error()})
		s.writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"turns": turns})
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.history == nil {
		s.writeError(w, http.StatusServiceUnavailable, "statistics are not enabled")
		return
	}

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	stats, err := s.history.Stats(r.Context(), days)
	if err != nil {
		s.log.Error("Failed to load statistics", map[string]interface{}{"error": err.Error()})
		s.writeError(w, http.StatusInternalServerError, "failed to load statistics")
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *server) handleTickets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.tickets == nil {
		s.writeError(w, http.StatusServiceUnavailable, "tickets are not enabled")
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		s.writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	open, err := s.tickets.OpenForUser(r.Context(), userID)
	if err != nil {
		s.log.Error("Failed to load tickets", map[string]interface{}{"error": err.Error()})
		s.writeError(w, http.StatusInternalServerError, "failed to load tickets")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"tickets": open})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := s.engine.Health()
	health["version"] = s.version
	health["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	s.writeJSON(w, http.StatusOK, health)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("Failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
