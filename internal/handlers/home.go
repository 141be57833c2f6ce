package handlers

import (
	"net/http"

	"designflow/internal/views/components"
)

// Home sends visitors to the studio.
func Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, components.StudioPath, http.StatusFound)
}
