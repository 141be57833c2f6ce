package handlers

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"designflow/internal/studio"
	"designflow/internal/upload"
	"designflow/models"
)

const (
	sessionWorkspaceKey = "studio:workspace"
	sessionThemeKey     = "studio:theme"

	// localWorkspaceID serves every request when no session manager is configured.
	localWorkspaceID = "local"
)

var (
	sessionManager *scs.SessionManager
	store          *studio.Store
	analyses       AnalysisLister
	uploadOptions  upload.Options
	maxUploadBytes int64 = 25 << 20
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, st *studio.Store) {
	sessionManager = sm
	store = st
}

// ConfigureUploads sets the request size cap and the normalisation options
// for screenshot uploads.
func ConfigureUploads(maxBytes int64, opts upload.Options) {
	if maxBytes > 0 {
		maxUploadBytes = maxBytes
	}
	uploadOptions = opts
}

// ConfigureAnalyses installs the analysis log read by the JSON API. A nil
// lister disables the endpoint.
func ConfigureAnalyses(lister AnalysisLister) {
	analyses = lister
}

// workspaceID returns the workspace bound to the caller's session, binding a
// new one on first use.
func workspaceID(r *http.Request) string {
	if sessionManager == nil {
		return localWorkspaceID
	}
	id := sessionManager.GetString(r.Context(), sessionWorkspaceKey)
	if id == "" {
		id = studio.NewWorkspaceID()
		sessionManager.Put(r.Context(), sessionWorkspaceKey, id)
	}
	return id
}

func sessionTheme(r *http.Request) string {
	if sessionManager == nil {
		return models.DefaultTheme
	}
	return models.NormalizeTheme(sessionManager.GetString(r.Context(), sessionThemeKey))
}

func setSessionTheme(r *http.Request, key string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionThemeKey, key)
}

func requireStore(w http.ResponseWriter, r *http.Request) bool {
	if store != nil {
		return true
	}
	http.Error(w, "studio is not available", http.StatusServiceUnavailable)
	return false
}
