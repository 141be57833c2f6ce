package components

import (
	"encoding/json"
	"strconv"

	"designflow/internal/views/markup"
)

// Routes the studio markup posts to.
const (
	StudioPath      = "/studio"
	DesignPath      = "/studio/design"
	UploadPath      = "/studio/upload"
	AdvisorPath     = "/studio/advisor"
	PreferencesPath = "/studio/preferences"
)

// Element ids used as htmx targets.
const (
	WorkspaceID    = "workspace"
	CanvasID       = "canvas"
	CompositionID  = "composition"
	AdvisorID      = "advisor"
	ContrastID     = "contrast-badge"
	PresetBarID    = "font-presets"
	UploadInputID  = "image-input"
	NoticeID       = "studio-notice"
	UploadFieldKey = "image"
)

// Ids of inputs that share a field with a sibling and are refreshed out of
// band after a live edit.
const (
	FontSizeInputID   = "font-size"
	FontSizeRangeID   = "font-size-range"
	FontColorPickerID = "font-color-picker"
	FontColorInputID  = "font-color"
)

// Form field names posted by the control panel.
const (
	FieldPreset           = "preset"
	FieldTitle            = "title"
	FieldSubtitle         = "subtitle"
	FieldFontFamily       = "fontFamily"
	FieldFontSize         = "fontSize"
	FieldFontWeight       = "fontWeight"
	FieldFontColor        = "fontColor"
	FieldFontOpacity      = "fontOpacity"
	FieldLetterSpacing    = "letterSpacing"
	FieldLineHeight       = "lineHeight"
	FieldDividerType      = "dividerType"
	FieldDividerThickness = "dividerThickness"
	FieldDividerSpacing   = "dividerSpacing"
	FieldDividerColor     = "dividerColor"
	FieldLayoutMode       = "layoutMode"
	FieldUseGradient      = "useGradient"
	FieldCornerRadius     = "cornerRadius"
	FieldShadowIntensity  = "shadowIntensity"
	FieldTheme            = "theme"
)

// ToggleValue asks the server to flip a boolean field.
const ToggleValue = "toggle"

// liveControl posts the element's own value and swaps the canvas.
func liveControl(trigger string) []markup.Attr {
	return []markup.Attr{
		markup.A("hx-post", DesignPath),
		markup.A("hx-trigger", trigger),
		markup.A("hx-target", "#"+CanvasID),
		markup.A("hx-swap", "innerHTML"),
	}
}

// panelControl posts vals and swaps the whole workspace, for edits that change
// the control panel itself.
func panelControl(vals map[string]string) []markup.Attr {
	encoded, _ := json.Marshal(vals)
	return []markup.Attr{
		markup.A("type", "button"),
		markup.A("hx-post", DesignPath),
		markup.A("hx-vals", string(encoded)),
		markup.A("hx-target", "#"+WorkspaceID),
		markup.A("hx-swap", "outerHTML"),
	}
}

func attrs(base []markup.Attr, extra ...markup.Attr) []markup.Attr {
	out := make([]markup.Attr, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
