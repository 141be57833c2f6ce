package handlers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/require"

	"designflow/internal/studio"
	"designflow/internal/upload"
	"designflow/internal/views/components"
)

// studioHarness routes requests through a session manager and carries the
// session cookie between calls, like a browser tab.
type studioHarness struct {
	t       *testing.T
	store   *studio.Store
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newStudioHarness(t *testing.T) *studioHarness {
	t.Helper()

	prevManager, prevStore, prevAnalyses := sessionManager, store, analyses
	prevOptions, prevMax := uploadOptions, maxUploadBytes
	t.Cleanup(func() {
		sessionManager, store, analyses = prevManager, prevStore, prevAnalyses
		uploadOptions, maxUploadBytes = prevOptions, prevMax
	})

	st := studio.NewStore(nil)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	sm := scs.New()
	Configure(sm, st)
	ConfigureAnalyses(nil)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /studio", Studio)
	mux.HandleFunc("POST /studio/design", UpdateDesign)
	mux.HandleFunc("POST /studio/upload", UploadImage)
	mux.HandleFunc("GET /studio/advisor", Advisor)
	mux.HandleFunc("POST /studio/preferences", UpdatePreferences)
	mux.HandleFunc("GET /api/design", GetDesign)
	mux.HandleFunc("PATCH /api/design", PatchDesign)
	mux.HandleFunc("GET /api/design/schema", DesignSchema)
	mux.HandleFunc("GET /api/analyses", ListAnalyses)
	mux.HandleFunc("GET /healthz", Health)

	return &studioHarness{
		t:       t,
		store:   st,
		handler: sm.LoadAndSave(mux),
		cookies: map[string]*http.Cookie{},
	}
}

func (h *studioHarness) do(req *http.Request) *httptest.ResponseRecorder {
	h.t.Helper()
	for _, c := range h.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		h.cookies[c.Name] = c
	}
	return w
}

func (h *studioHarness) get(path string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return h.do(req)
}

// postForm submits values the way an htmx control does. An empty target
// leaves HX-Target unset; htmx false omits the htmx headers entirely.
func (h *studioHarness) postForm(path string, values url.Values, htmx bool, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
		if target != "" {
			req.Header.Set("HX-Target", target)
		}
	}
	return h.do(req)
}

func (h *studioHarness) upload(name string, data []byte) *httptest.ResponseRecorder {
	h.t.Helper()
	body, contentType := multipartBody(h.t, components.UploadFieldKey, name, data)
	req := httptest.NewRequest(http.MethodPost, components.UploadPath, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", components.WorkspaceID)
	return h.do(req)
}

func multipartBody(t *testing.T, field, name string, data []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		part, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	return doc
}
