package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designflow/internal/views/components"
	"designflow/models"
)

func TestUpdatePreferencesStoresTheme(t *testing.T) {
	h := newStudioHarness(t)

	w := h.postForm(components.PreferencesPath, url.Values{components.FieldTheme: {" Dark "}}, true, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("HX-Refresh"))

	var resp preferencesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ThemeDark, resp.Theme)

	doc := parseHTML(t, h.get(components.StudioPath, false))
	assert.Equal(t, models.ThemeDark, doc.Find("html").AttrOr("data-theme", ""))
}

func TestUpdatePreferencesRejectsUnknownTheme(t *testing.T) {
	h := newStudioHarness(t)

	w := h.postForm(components.PreferencesPath, url.Values{components.FieldTheme: {"sepia"}}, true, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	doc := parseHTML(t, h.get(components.StudioPath, false))
	assert.Equal(t, models.DefaultTheme, doc.Find("html").AttrOr("data-theme", ""))
}

func TestUpdatePreferencesWithoutHTMXSkipsRefresh(t *testing.T) {
	h := newStudioHarness(t)

	w := h.postForm(components.PreferencesPath, url.Values{components.FieldTheme: {models.ThemeLight}}, false, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("HX-Refresh"))
}
