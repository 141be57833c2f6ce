package design

// Patch carries the top-level fields to replace. Nil fields are left alone.
// FontConfig and DividerConfig replace the whole nested object, so callers
// editing a single nested field build the full object first with Apply.
type Patch struct {
	Title           *string          `json:"title,omitempty"`
	Subtitle        *string          `json:"subtitle,omitempty"`
	FontConfig      *FontConfig      `json:"fontConfig,omitempty"`
	DividerConfig   *DividerConfig   `json:"dividerConfig,omitempty"`
	LayoutMode      *LayoutMode      `json:"layoutMode,omitempty"`
	UseGradient     *bool            `json:"useGradient,omitempty"`
	CornerRadius    *int             `json:"cornerRadius,omitempty"`
	ShadowIntensity *ShadowIntensity `json:"shadowIntensity,omitempty"`
}

// Empty reports whether the patch would leave any configuration unchanged.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Subtitle == nil && p.FontConfig == nil && p.DividerConfig == nil &&
		p.LayoutMode == nil && p.UseGradient == nil && p.CornerRadius == nil && p.ShadowIntensity == nil
}

// Merge returns current with every field present in patch replaced. It does
// not validate; see Clamp and Validate.
func Merge(current Configuration, patch Patch) Configuration {
	next := current
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		next.Subtitle = *patch.Subtitle
	}
	if patch.FontConfig != nil {
		next.FontConfig = *patch.FontConfig
	}
	if patch.DividerConfig != nil {
		next.DividerConfig = *patch.DividerConfig
	}
	if patch.LayoutMode != nil {
		next.LayoutMode = *patch.LayoutMode
	}
	if patch.UseGradient != nil {
		next.UseGradient = *patch.UseGradient
	}
	if patch.CornerRadius != nil {
		next.CornerRadius = *patch.CornerRadius
	}
	if patch.ShadowIntensity != nil {
		next.ShadowIntensity = *patch.ShadowIntensity
	}
	return next
}

// FontPatch lists the font fields a control edits.
type FontPatch struct {
	Family        *string
	Category      *FontCategory
	Size          *int
	Weight        *int
	Color         *string
	Opacity       *float64
	LetterSpacing *float64
	LineHeight    *float64
}

// Empty reports whether no font field is set.
func (p FontPatch) Empty() bool {
	return p.Family == nil && p.Category == nil && p.Size == nil && p.Weight == nil &&
		p.Color == nil && p.Opacity == nil && p.LetterSpacing == nil && p.LineHeight == nil
}

// Apply returns f with the fields set in p replaced.
func (f FontConfig) Apply(p FontPatch) FontConfig {
	if p.Family != nil {
		f.Family = *p.Family
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Size != nil {
		f.Size = *p.Size
	}
	if p.Weight != nil {
		f.Weight = *p.Weight
	}
	if p.Color != nil {
		f.Color = *p.Color
	}
	if p.Opacity != nil {
		f.Opacity = *p.Opacity
	}
	if p.LetterSpacing != nil {
		f.LetterSpacing = *p.LetterSpacing
	}
	if p.LineHeight != nil {
		f.LineHeight = *p.LineHeight
	}
	return f
}

// DividerPatch lists the divider fields a control edits.
type DividerPatch struct {
	Type      *DividerType
	Thickness *int
	Spacing   *int
	Color     *string
}

// Empty reports whether no divider field is set.
func (p DividerPatch) Empty() bool {
	return p.Type == nil && p.Thickness == nil && p.Spacing == nil && p.Color == nil
}

// Apply returns d with the fields set in p replaced.
func (d DividerConfig) Apply(p DividerPatch) DividerConfig {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Thickness != nil {
		d.Thickness = *p.Thickness
	}
	if p.Spacing != nil {
		d.Spacing = *p.Spacing
	}
	if p.Color != nil {
		d.Color = *p.Color
	}
	return d
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T {
	return &v
}
