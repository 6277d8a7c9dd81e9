package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
	"github.com/reliefops/kestrel/pkg/usecase"
)

// handler holds the intent and view endpoints
type handler struct {
	console *usecase.Console
	poller  *usecase.Poller
}

func newHandler(console *usecase.Console, poller *usecase.Poller) *handler {
	return &handler{
		console: console,
		poller:  poller,
	}
}

// viewsResponse bundles the derived views with the view state they were
// projected through
type viewsResponse struct {
	Views *model.DerivedViews `json:"views"`
	State *model.ViewState    `json:"state"`
}

type selectRequest struct {
	IncidentID string `json:"incidentId"`
}

type viewModeRequest struct {
	Mode string `json:"mode"`
}

type toggleTypeRequest struct {
	Type string `json:"type"`
}

type dispatchRequest struct {
	ResponderID string `json:"responderId"`
}

func (h *handler) handleViews(w http.ResponseWriter, r *http.Request) {
	views := h.console.Views(r.Context())
	respondJSON(w, r, http.StatusOK, &viewsResponse{
		Views: views,
		State: h.console.State(),
	})
}

func (h *handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.console.Analytics(r.Context()))
}

func (h *handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.poller.Refresh(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "refreshed"})
}

func (h *handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IncidentID == "" {
		http.Error(w, "incidentId is required", http.StatusBadRequest)
		return
	}

	h.console.Select(r.Context(), types.IncidentID(req.IncidentID))
	respondJSON(w, r, http.StatusOK, h.console.State())
}

func (h *handler) handleReveal(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IncidentID == "" {
		http.Error(w, "incidentId is required", http.StatusBadRequest)
		return
	}

	directive, err := h.console.SelectAndReveal(r.Context(), types.IncidentID(req.IncidentID))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, directive)
}

func (h *handler) handleViewMode(w http.ResponseWriter, r *http.Request) {
	var req viewModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.console.SetViewMode(r.Context(), types.ViewMode(req.Mode)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, r, http.StatusOK, h.console.State())
}

func (h *handler) handleToggleType(w http.ResponseWriter, r *http.Request) {
	var req toggleTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.console.ToggleType(r.Context(), types.IncidentType(req.Type)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, r, http.StatusOK, h.console.State())
}

func (h *handler) handleClearTypes(w http.ResponseWriter, r *http.Request) {
	h.console.ClearTypes(r.Context())
	respondJSON(w, r, http.StatusOK, h.console.State())
}

func (h *handler) handleToggleRecent(w http.ResponseWriter, r *http.Request) {
	h.console.ToggleRecentExpanded(r.Context())
	respondJSON(w, r, http.StatusOK, h.console.State())
}

func (h *handler) handleDispatch(w http.ResponseWriter, r *http.Request) {
	incidentID := types.IncidentID(chi.URLParam(r, "incidentID"))

	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// An anonymous dispatch mints a responder identity; the overlay and
	// the upstream timeline still get a stable ID to reconcile on
	responderID := types.ResponderID(req.ResponderID)
	if responderID == "" {
		responderID = types.NewResponderID()
	}

	if err := h.console.Dispatch(r.Context(), incidentID, responderID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, h.console.State())
}

func (h *handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	incidentID := types.IncidentID(chi.URLParam(r, "incidentID"))

	if err := h.console.MarkResolved(r.Context(), incidentID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "resolving"})
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrIncidentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrNoSnapshot):
		status = http.StatusServiceUnavailable
	}

	ctxlog.From(r.Context()).Error("request failed",
		"error", err,
		"status", status,
	)
	http.Error(w, err.Error(), status)
}
