package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"designflow/internal/design"
	applog "designflow/internal/log"
	"designflow/models"
)

const (
	maxJSONBodyBytes   = 1 << 20
	recentAnalysisSize = 20
)

// AnalysisLister reads the analysis log of a workspace.
type AnalysisLister interface {
	Recent(ctx context.Context, workspaceID string, limit int) ([]models.Analysis, error)
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		applog.Error(r.Context(), "failed to encode json response", "path", r.URL.Path, "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, message, field string) {
	writeJSON(w, r, status, errorResponse{Error: message, Field: field})
}

// GetDesign returns the caller's current configuration.
func GetDesign(w http.ResponseWriter, r *http.Request) {
	if !requireStore(w, r) {
		return
	}
	writeJSON(w, r, http.StatusOK, store.Open(workspaceID(r)).Design)
}

// PatchDesign merges a JSON patch into the caller's configuration.
func PatchDesign(w http.ResponseWriter, r *http.Request) {
	if !requireStore(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	var patch design.Patch
	if err := decoder.Decode(&patch); err != nil {
		applog.Debug(r.Context(), "rejected design patch body", "error", err)
		writeJSONError(w, r, http.StatusBadRequest, "invalid JSON patch: "+err.Error(), "")
		return
	}

	id := workspaceID(r)
	snap, err := store.Update(id, patch)
	if err != nil {
		var verr *design.ValidationError
		if errors.As(err, &verr) {
			writeJSONError(w, r, http.StatusUnprocessableEntity, verr.Error(), verr.Field)
			return
		}
		applog.Error(r.Context(), "failed to apply design patch", "workspace", id, "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "failed to apply patch", "")
		return
	}
	applog.Debug(r.Context(), "design patched", "workspace", id)
	writeJSON(w, r, http.StatusOK, snap.Design)
}

// DesignSchema serves the JSON Schema of the configuration.
func DesignSchema(w http.ResponseWriter, r *http.Request) {
	body, err := design.SchemaJSON()
	if err != nil {
		applog.Error(r.Context(), "failed to build design schema", "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "failed to build schema", "")
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	if _, err := w.Write(body); err != nil {
		applog.Error(r.Context(), "failed to write design schema", "error", err)
	}
}

// ListAnalyses returns the newest analysis records of the caller's workspace.
func ListAnalyses(w http.ResponseWriter, r *http.Request) {
	if analyses == nil {
		writeJSONError(w, r, http.StatusNotFound, "analysis log is not configured", "")
		return
	}
	rows, err := analyses.Recent(r.Context(), workspaceID(r), recentAnalysisSize)
	if err != nil {
		applog.Error(r.Context(), "failed to list analyses", "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "failed to list analyses", "")
		return
	}
	if rows == nil {
		rows = []models.Analysis{}
	}
	writeJSON(w, r, http.StatusOK, rows)
}
