package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"designflow/internal/design"
	applog "designflow/internal/log"
	"designflow/internal/studio"
	"designflow/internal/upload"
	"designflow/internal/views/components"
	"designflow/internal/views/pages"
)

const multipartMemory = 8 << 20

func renderHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render component", "path", r.URL.Path, "error", err)
	}
}

func studioView(r *http.Request, snap studio.Snapshot, notice string) pages.StudioView {
	return pages.NewStudioView(snap, sessionTheme(r), notice)
}

// Studio renders the studio page, or only the workspace for htmx requests.
func Studio(w http.ResponseWriter, r *http.Request) {
	if !requireStore(w, r) {
		return
	}
	id := workspaceID(r)
	view := studioView(r, store.Open(id), "")
	applog.Debug(r.Context(), "rendering studio", "workspace", id, "htmx", isHTMX(r))
	if isHTMX(r) {
		renderHTML(w, r, http.StatusOK, pages.Workspace(view))
		return
	}
	renderHTML(w, r, http.StatusOK, pages.Studio(view))
}

// UpdateDesign applies a control panel edit. Live controls target the canvas
// and receive the canvas plus out-of-band fragments; everything else receives
// the whole workspace.
func UpdateDesign(w http.ResponseWriter, r *http.Request) {
	if !requireStore(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse design form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	id := workspaceID(r)
	form, err := parseDesignForm(r.PostForm, design.DefaultCatalogue())
	if err != nil {
		applog.Debug(r.Context(), "rejected design form", "workspace", id, "error", err)
		rejectDesign(w, r, id, err.Error())
		return
	}
	if form.empty() {
		applog.Debug(r.Context(), "design form carried no fields", "workspace", id)
	}

	snap, err := store.Apply(id, form.build)
	if err != nil {
		var verr *design.ValidationError
		if errors.As(err, &verr) {
			rejectDesign(w, r, id, fmt.Sprintf("%q is not a valid value for %s", fmt.Sprint(verr.Value), verr.Field))
			return
		}
		applog.Error(r.Context(), "failed to apply design edit", "workspace", id, "error", err)
		http.Error(w, "failed to apply design edit", http.StatusInternalServerError)
		return
	}

	if !isHTMX(r) {
		http.Redirect(w, r, components.StudioPath, http.StatusSeeOther)
		return
	}
	view := studioView(r, snap, "")
	if htmxTarget(r) == components.CanvasID {
		view.Trigger = htmxTrigger(r)
		renderHTML(w, r, http.StatusOK, pages.DesignUpdate(view))
		return
	}
	renderHTML(w, r, http.StatusOK, pages.Workspace(view))
}

// rejectDesign answers an invalid edit with 422. htmx callers get the
// workspace re-rendered from the unchanged design with the message shown.
func rejectDesign(w http.ResponseWriter, r *http.Request, id, message string) {
	if !isHTMX(r) {
		http.Error(w, message, http.StatusUnprocessableEntity)
		return
	}
	retarget(w, components.WorkspaceID, "outerHTML")
	renderHTML(w, r, http.StatusUnprocessableEntity, pages.Workspace(studioView(r, store.Open(id), message)))
}

// UploadImage normalises the posted screenshot and starts its analysis.
func UploadImage(w http.ResponseWriter, r *http.Request) {
	if !requireStore(w, r) {
		return
	}
	id := workspaceID(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rejectUpload(w, r, id, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Images must be smaller than %d MB.", maxUploadBytes>>20))
			return
		}
		applog.Debug(r.Context(), "failed to parse upload", "error", err)
		rejectUpload(w, r, id, http.StatusBadRequest, "Choose an image to upload.")
		return
	}

	file, header, err := r.FormFile(components.UploadFieldKey)
	if err != nil {
		rejectUpload(w, r, id, http.StatusBadRequest, "Choose an image to upload.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		applog.Error(r.Context(), "failed to read upload", "error", err)
		http.Error(w, "failed to read upload", http.StatusInternalServerError)
		return
	}

	img, err := upload.Normalize(header.Filename, data, uploadOptions)
	switch {
	case errors.Is(err, upload.ErrTooLarge):
		applog.Debug(r.Context(), "rejected upload", "workspace", id, "name", header.Filename, "error", err)
		rejectUpload(w, r, id, http.StatusRequestEntityTooLarge, "That image has too many pixels to process.")
		return
	case errors.Is(err, upload.ErrEmpty), errors.Is(err, upload.ErrUnsupportedFormat):
		applog.Debug(r.Context(), "rejected upload", "workspace", id, "name", header.Filename, "error", err)
		rejectUpload(w, r, id, http.StatusUnprocessableEntity, "That file is not a supported image.")
		return
	case err != nil:
		applog.Error(r.Context(), "failed to normalise upload", "workspace", id, "error", err)
		rejectUpload(w, r, id, http.StatusUnprocessableEntity, "That image could not be processed.")
		return
	}

	snap := store.Upload(r.Context(), id, img)
	applog.Info(r.Context(), "screenshot uploaded",
		"workspace", id,
		"digest", img.ShortDigest(),
		"format", img.SourceFormat,
		"width", img.Width,
		"height", img.Height,
		"sequence", snap.Sequence,
	)

	if !isHTMX(r) {
		http.Redirect(w, r, components.StudioPath, http.StatusSeeOther)
		return
	}
	renderHTML(w, r, http.StatusOK, pages.Workspace(studioView(r, snap, "")))
}

func rejectUpload(w http.ResponseWriter, r *http.Request, id string, status int, message string) {
	if !isHTMX(r) {
		http.Error(w, message, status)
		return
	}
	renderHTML(w, r, status, pages.Workspace(studioView(r, store.Open(id), message)))
}

// Advisor renders the suggestion panel for polling. Polling never creates a
// workspace: a pruned or unknown one answers with the idle panel, which stops
// the poll.
func Advisor(w http.ResponseWriter, r *http.Request) {
	if !requireStore(w, r) {
		return
	}
	id := workspaceID(r)
	snap, ok := store.Snapshot(id)
	if !ok {
		applog.Debug(r.Context(), "advisor polled for unknown workspace", "workspace", id)
		snap = studio.Snapshot{WorkspaceID: id, Design: design.Default(), Status: studio.StatusIdle}
	}
	view := studioView(r, snap, "")
	renderHTML(w, r, http.StatusOK, components.Advisor(view.Theme, snap))
}
