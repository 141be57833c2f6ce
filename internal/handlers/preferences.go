package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "designflow/internal/log"
	"designflow/internal/views/components"
	"designflow/internal/views/theme"
)

type preferencesResponse struct {
	Theme string `json:"theme"`
}

// UpdatePreferences stores the studio chrome theme in the session.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeValue := strings.TrimSpace(r.FormValue(components.FieldTheme))
	themeConfig, ok := theme.Lookup(themeValue)
	if !ok {
		applog.Debug(r.Context(), "received invalid theme selection", "value", themeValue)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}

	setSessionTheme(r, themeConfig.Key)
	applog.Debug(r.Context(), "studio theme updated", "theme", themeConfig.Key)

	if isHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
	}
	response := preferencesResponse{Theme: themeConfig.Key}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		applog.Error(r.Context(), "failed to encode preferences response", "error", err)
	}
}
