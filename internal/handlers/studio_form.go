package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"designflow/internal/design"
	"designflow/internal/views/components"
)

// formError reports a control value that could not be parsed.
type formError struct {
	Field string
	Value string
}

func (e *formError) Error() string {
	return fmt.Sprintf("%q is not a valid value for %s", e.Value, e.Field)
}

// designForm is a control panel submission. Nested font and divider edits
// are merged into the current objects before the top-level patch is built.
type designForm struct {
	patch          design.Patch
	font           design.FontPatch
	divider        design.DividerPatch
	toggleGradient bool
}

// build returns the patch for current.
func (f designForm) build(current design.Configuration) design.Patch {
	p := f.patch
	if !f.font.Empty() {
		font := current.FontConfig.Apply(f.font)
		p.FontConfig = &font
	}
	if !f.divider.Empty() {
		divider := current.DividerConfig.Apply(f.divider)
		p.DividerConfig = &divider
	}
	if f.toggleGradient {
		p.UseGradient = design.Ptr(!current.UseGradient)
	}
	return p
}

func (f designForm) empty() bool {
	return f.patch.Empty() && f.font.Empty() && f.divider.Empty() && !f.toggleGradient
}

func formValue(form url.Values, key string) (string, bool) {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func formInt(form url.Values, key string) (*int, error) {
	raw, ok := formValue(form, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, &formError{Field: key, Value: raw}
	}
	return &v, nil
}

func formFloat(form url.Values, key string) (*float64, error) {
	raw, ok := formValue(form, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &formError{Field: key, Value: raw}
	}
	return &v, nil
}

func formString(form url.Values, key string) *string {
	raw, ok := formValue(form, key)
	if !ok {
		return nil
	}
	return &raw
}

func formTrimmed(form url.Values, key string) *string {
	raw, ok := formValue(form, key)
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)
	return &raw
}

// parseDesignForm maps the posted control values onto a designForm. Only
// fields present in form are edited. Values that do not parse are rejected;
// enum and colour checks happen when the patch is applied.
func parseDesignForm(form url.Values, cat design.Catalogue) (designForm, error) {
	var f designForm
	var err error

	if key, ok := formValue(form, components.FieldPreset); ok {
		preset, found := cat.Preset(strings.TrimSpace(key))
		if !found {
			return designForm{}, &formError{Field: components.FieldPreset, Value: key}
		}
		f.font = preset.FontPatch()
	}

	f.patch.Title = formString(form, components.FieldTitle)
	f.patch.Subtitle = formString(form, components.FieldSubtitle)

	if family := formTrimmed(form, components.FieldFontFamily); family != nil {
		f.font.Family = family
		if category, ok := cat.CategoryOf(*family); ok {
			f.font.Category = &category
		}
	}
	if size, err := formInt(form, components.FieldFontSize); err != nil {
		return designForm{}, err
	} else if size != nil {
		f.font.Size = size
	}
	if weight, err := formInt(form, components.FieldFontWeight); err != nil {
		return designForm{}, err
	} else if weight != nil {
		f.font.Weight = weight
	}
	f.font.Color = formTrimmed(form, components.FieldFontColor)
	if f.font.Opacity, err = formFloat(form, components.FieldFontOpacity); err != nil {
		return designForm{}, err
	}
	if f.font.LetterSpacing, err = formFloat(form, components.FieldLetterSpacing); err != nil {
		return designForm{}, err
	}
	if f.font.LineHeight, err = formFloat(form, components.FieldLineHeight); err != nil {
		return designForm{}, err
	}

	if kind := formTrimmed(form, components.FieldDividerType); kind != nil {
		f.divider.Type = design.Ptr(design.DividerType(*kind))
	}
	if f.divider.Thickness, err = formInt(form, components.FieldDividerThickness); err != nil {
		return designForm{}, err
	}
	if f.divider.Spacing, err = formInt(form, components.FieldDividerSpacing); err != nil {
		return designForm{}, err
	}
	f.divider.Color = formTrimmed(form, components.FieldDividerColor)

	if mode := formTrimmed(form, components.FieldLayoutMode); mode != nil {
		f.patch.LayoutMode = design.Ptr(design.LayoutMode(*mode))
	}
	if raw, ok := formValue(form, components.FieldUseGradient); ok {
		raw = strings.TrimSpace(raw)
		if raw == components.ToggleValue {
			f.toggleGradient = true
		} else {
			on, perr := strconv.ParseBool(raw)
			if perr != nil {
				return designForm{}, &formError{Field: components.FieldUseGradient, Value: raw}
			}
			f.patch.UseGradient = &on
		}
	}
	if f.patch.CornerRadius, err = formInt(form, components.FieldCornerRadius); err != nil {
		return designForm{}, err
	}
	if shadow := formTrimmed(form, components.FieldShadowIntensity); shadow != nil {
		f.patch.ShadowIntensity = design.Ptr(design.ShadowIntensity(*shadow))
	}

	return f, nil
}
