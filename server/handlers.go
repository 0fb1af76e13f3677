package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notyourimaginarycoder/termfolio"
	"github.com/notyourimaginarycoder/termfolio/internal/util"
)

const maxLineBytes = 4 << 10

type createSessionResponse struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Banner string `json:"banner"`
}

type execRequest struct {
	Line string `json:"line"`
}

type effectDTO struct {
	Type   termfolio.EffectKind `json:"type"`
	URL    string               `json:"url,omitempty"`
	Target string               `json:"target,omitempty"`
}

type execResponse struct {
	Output  string      `json:"output"`
	Clear   bool        `json:"clear"`
	Cwd     string      `json:"cwd"`
	Effects []effectDTO `json:"effects"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.SessionCount(),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := s.CreateSession()
	if errors.Is(err, ErrTooManySessions) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		util.GetLogger("handleCreateSession").Error().Err(err).Msg("Failed to create session")
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	writeJSON(w, http.StatusCreated, createSessionResponse{
		ID:     id,
		Prompt: s.cfg.Prompt,
		Banner: s.cfg.Banner,
	})
}

func (s *Server) handleExec(w http.ResponseWriter, r *http.Request) {
	var req execRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxLineBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, cwd, ok := s.Exec(r.PathValue("id"), req.Line)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, toExecResponse(resp, cwd))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.DeleteSession(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toExecResponse(resp termfolio.Response, cwd string) execResponse {
	out := execResponse{
		Output:  resp.Text,
		Clear:   resp.Clear,
		Cwd:     cwd,
		Effects: make([]effectDTO, 0, len(resp.Effects)),
	}
	for _, e := range resp.Effects {
		dto := effectDTO{Type: e.Kind()}
		if link, ok := e.(termfolio.OpenLinkEffect); ok {
			dto.URL = link.URL
			dto.Target = link.Target
		}
		out.Effects = append(out.Effects, dto)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		util.GetLogger("writeJSON").Warn().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
