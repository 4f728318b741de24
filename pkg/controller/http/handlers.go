package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/repository/memory"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/usecase"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/utils/errutil"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// respondError maps domain errors to HTTP status codes. Invalid selections are
// client errors; unknown sessions are not found; anything else is internal.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidSelection),
		errors.Is(err, usecase.ErrUnknownFormat):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, memory.ErrNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

func sessionID(r *http.Request) (types.SessionID, error) {
	id := types.SessionID(chi.URLParam(r, "sessionID"))
	if err := id.Validate(); err != nil {
		return "", goerr.Wrap(usecase.ErrSessionNotFound, "malformed session ID", goerr.V(usecase.SessionIDKey, id))
	}
	return id, nil
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(model.ErrInvalidSelection, "malformed request body")
	}
	return nil
}

func (s *Server) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	state, err := s.uc.Dashboard.CreateSession(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, state)
}

func (s *Server) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	state, err := s.uc.Dashboard.GetSession(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, state)
}

func (s *Server) closeSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	if err := s.uc.Dashboard.CloseSession(r.Context(), id); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setYearHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var req struct {
		Year types.Year `json:"year"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	state, err := s.uc.Dashboard.SetYear(r.Context(), id, req.Year)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, state)
}

func (s *Server) toggleThemeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	state, err := s.uc.Dashboard.ToggleTheme(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, state)
}

func (s *Server) setSimulationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	state, err := s.uc.Dashboard.SetSimulation(r.Context(), id, req.Enabled)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, state)
}

func (s *Server) selectCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var req struct {
		Category types.CategoryID `json:"category"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	state, err := s.uc.Dashboard.SelectCategory(r.Context(), id, req.Category)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, state)
}

func (s *Server) clearSelectionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	state, err := s.uc.Dashboard.ClearSelection(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, state)
}

func (s *Server) heatmapHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	payload, err := s.uc.Dashboard.Heatmap(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, payload)
}

func (s *Server) gapHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	payload, err := s.uc.Dashboard.Gap(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, payload)
}

func (s *Server) radarHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	category := types.CategoryID(chi.URLParam(r, "categoryID"))
	payload, err := s.uc.Dashboard.Radar(r.Context(), id, category)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, payload)
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	payload, err := s.uc.Dashboard.Stats(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, payload)
}

func (s *Server) detailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	payload, err := s.uc.Dashboard.Detail(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, payload)
}

func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	format := usecase.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = usecase.ExportJSON
	}
	if err := format.Validate(); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	switch format {
	case usecase.ExportCSV:
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="assessment.csv"`)
	default:
		w.Header().Set("Content-Type", "application/json")
	}

	if err := s.uc.Dashboard.ExportSession(r.Context(), id, format, w); err != nil {
		respondError(r.Context(), w, err)
		return
	}
}

func (s *Server) yearsHandler(w http.ResponseWriter, r *http.Request) {
	type yearResponse struct {
		ID       types.Year `json:"id"`
		Label    string     `json:"label"`
		Baseline bool       `json:"baseline"`
	}
	type response struct {
		Years []yearResponse `json:"years"`
	}

	years := s.uc.Dashboard.Dataset().Years()
	resp := response{Years: make([]yearResponse, len(years))}
	for i, y := range years {
		resp.Years[i] = yearResponse{ID: y.ID, Label: y.Label, Baseline: y.Baseline}
	}
	respondJSON(r.Context(), w, http.StatusOK, resp)
}

func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	type categoryResponse struct {
		ID          types.CategoryID `json:"id"`
		Name        string           `json:"name"`
		Description string           `json:"description"`
	}
	type response struct {
		Categories []categoryResponse `json:"categories"`
	}

	categories := s.uc.Dashboard.Dataset().Categories()
	resp := response{Categories: make([]categoryResponse, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = categoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
	}
	respondJSON(r.Context(), w, http.StatusOK, resp)
}
