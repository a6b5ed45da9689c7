package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tabscan/tabscan/internal/auth"
	"github.com/tabscan/tabscan/internal/calculator"
	"github.com/tabscan/tabscan/internal/middleware"
	"github.com/tabscan/tabscan/internal/models"
	"github.com/tabscan/tabscan/internal/service"
)

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// writeError maps service errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailExists):
		status = http.StatusConflict
	case errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrUnknownAssignee):
		status = http.StatusBadRequest
	case strings.Contains(err.Error(), "not found"):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decode parses the request body into v, rejecting unknown fields.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decode(w, r, &req) {
		return
	}

	session, err := s.auth.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decode(w, r, &req) {
		return
	}

	session, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type scanRequest struct {
	SourceKind models.SourceKind `json:"sourceKind"`
	SourceID   string            `json:"sourceId"`
	Text       string            `json:"text"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if !decode(w, r, &req) {
		return
	}

	userID := middleware.GetUserID(r.Context())
	outcome, err := s.scans.Scan(r.Context(), userID, req.SourceKind, req.SourceID, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	scans, err := s.scans.ListScans(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if scans == nil {
		scans = []models.ScanResult{}
	}
	writeJSON(w, http.StatusOK, scans)
}

type equalSplitRequest struct {
	Total        float64  `json:"total"`
	Participants []string `json:"participants"`
}

type equalSplitResponse struct {
	People []models.Person `json:"people"`
}

func (s *Server) handleEqualSplit(w http.ResponseWriter, r *http.Request) {
	var req equalSplitRequest
	if !decode(w, r, &req) {
		return
	}

	people := calculator.EqualSplit(req.Total, req.Participants)
	if people == nil {
		people = []models.Person{}
	}
	writeJSON(w, http.StatusOK, equalSplitResponse{People: people})
}

type settleRequest struct {
	Balances map[string]float64 `json:"balances"`
}

type settleResponse struct {
	Transfers []models.Transfer `json:"transfers"`
}

func (s *Server) handleSettle(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if !decode(w, r, &req) {
		return
	}

	transfers := calculator.SettlementPlan(req.Balances)
	if transfers == nil {
		transfers = []models.Transfer{}
	}
	writeJSON(w, http.StatusOK, settleResponse{Transfers: transfers})
}

type createTabRequest struct {
	Title        string           `json:"title"`
	Participants []string         `json:"participants"`
	Items        []models.TabItem `json:"items"`
}

type tabResponse struct {
	Tab   *models.Tab       `json:"tab"`
	Total float64           `json:"total"`
	Split *service.TabSplit `json:"split"`
}

func (s *Server) handleCreateTab(w http.ResponseWriter, r *http.Request) {
	var req createTabRequest
	if !decode(w, r, &req) {
		return
	}

	tab := &models.Tab{
		Title:        req.Title,
		Participants: req.Participants,
		Items:        req.Items,
		CreatedBy:    middleware.GetUserID(r.Context()),
	}
	split, err := s.tabs.CreateTab(r.Context(), tab)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tabResponse{Tab: tab, Total: tab.Total(), Split: split})
}

func (s *Server) handleGetTab(w http.ResponseWriter, r *http.Request) {
	tab, split, err := s.tabs.GetTab(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if tab.CreatedBy != middleware.GetUserID(r.Context()) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "not your tab"})
		return
	}
	writeJSON(w, http.StatusOK, tabResponse{Tab: tab, Total: tab.Total(), Split: split})
}

func (s *Server) handleListTabs(w http.ResponseWriter, r *http.Request) {
	tabs, err := s.tabs.ListTabs(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if tabs == nil {
		tabs = []models.Tab{}
	}
	writeJSON(w, http.StatusOK, tabs)
}
