package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"intakeflow/internal/service"
)

// ReportHandler handles advice report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// EnhanceRequest is the request body for weaving a term explanation into an
// advice text
type EnhanceRequest struct {
	Term string `json:"term"`
	Text string `json:"text"`
}

// Generate handles GET /v1/sessions/{id}/report
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.Generate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrSessionActive) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Enhance handles POST /v1/sessions/{id}/report/enhance
func (h *ReportHandler) Enhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	enhanced, err := h.reportSvc.Enhance(r.Context(), req.Term, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTerm) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": enhanced})
}
