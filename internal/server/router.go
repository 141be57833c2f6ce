package server

import (
	"context"
	"net/http"

	"designflow/internal/handlers"
	applog "designflow/internal/log"
	"designflow/internal/views/components"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"GET /healthz", handlers.Health},
		{"GET /{$}", handlers.Home},
		{"GET " + components.StudioPath, handlers.Studio},
		{"POST " + components.DesignPath, handlers.UpdateDesign},
		{"POST " + components.UploadPath, handlers.UploadImage},
		{"GET " + components.AdvisorPath, handlers.Advisor},
		{"POST " + components.PreferencesPath, handlers.UpdatePreferences},
		{"GET /api/design", handlers.GetDesign},
		{"PATCH /api/design", handlers.PatchDesign},
		{"GET /api/design/schema", handlers.DesignSchema},
		{"GET /api/analyses", handlers.ListAnalyses},
	}
	for _, route := range routes {
		mux.HandleFunc(route.pattern, route.handler)
		applog.Debug(context.Background(), "route registered", "pattern", route.pattern)
	}
	return mux
}
