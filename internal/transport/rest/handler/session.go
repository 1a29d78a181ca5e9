package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"intakeflow/internal/service"
	"intakeflow/internal/session"
)

// SessionHandler handles intake session endpoints
type SessionHandler struct {
	conversation *service.ConversationService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(conversation *service.ConversationService) *SessionHandler {
	return &SessionHandler{conversation: conversation}
}

// CreateSessionRequest is the request body for starting an intake session
type CreateSessionRequest struct {
	Transcript string `json:"transcript"`
}

// SubmitAnswerRequest is the request body for answering the pending question
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.conversation.SubmitTranscript(r.Context(), req.Transcript)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTranscript) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.conversation.GetState(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// NextQuestion handles GET /v1/sessions/{id}/question
func (h *SessionHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.conversation.NextPrompt(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	if prompt == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, prompt)
}

// SubmitAnswer handles POST /v1/sessions/{id}/answers
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.conversation.SubmitAnswer(r.Context(), mux.Vars(r)["id"], req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, service.ErrSessionTerminal), errors.Is(err, service.ErrNoPendingQuestion):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Status handles GET /v1/sessions/{id}/status
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	state, err := h.conversation.GetState(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         state.Status,
		"complete":       state.Complete(),
		"missingPoints":  state.Missing.Count(),
		"questionsAsked": state.QuestionsAsked,
	})
}

// Reset handles DELETE /v1/sessions/{id}
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.conversation.Reset(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
