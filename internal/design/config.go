// Package design holds the preview configuration aggregate and the pure
// functions that turn it into presentational values.
package design

// FontCategory groups font families in the catalogue.
type FontCategory string

const (
	CategorySans    FontCategory = "Sans"
	CategorySerif   FontCategory = "Serif"
	CategoryDisplay FontCategory = "Display"
)

// DividerType selects the divider treatment rendered under the title.
type DividerType string

const (
	DividerNone     DividerType = "none"
	DividerLine     DividerType = "line"
	DividerDot      DividerType = "dot"
	DividerGradient DividerType = "gradient"
)

// LayoutMode controls how the composition splits text and image.
type LayoutMode string

const (
	LayoutClassic    LayoutMode = "classic"
	LayoutModernCard LayoutMode = "modern-card"
	LayoutAsymmetric LayoutMode = "asymmetric"
)

// ShadowIntensity selects one of the fixed shadow treatments.
type ShadowIntensity string

const (
	ShadowNone ShadowIntensity = "none"
	ShadowSoft ShadowIntensity = "soft"
	ShadowHard ShadowIntensity = "hard"
)

// DividerTypes lists the divider variants in control-panel order.
var DividerTypes = []DividerType{DividerNone, DividerLine, DividerDot, DividerGradient}

// ShadowIntensities lists the shadow variants in control-panel order.
var ShadowIntensities = []ShadowIntensity{ShadowNone, ShadowSoft, ShadowHard}

// Valid reports whether c is a declared category.
func (c FontCategory) Valid() bool {
	switch c {
	case CategorySans, CategorySerif, CategoryDisplay:
		return true
	}
	return false
}

// Valid reports whether t is a declared divider type.
func (t DividerType) Valid() bool {
	switch t {
	case DividerNone, DividerLine, DividerDot, DividerGradient:
		return true
	}
	return false
}

// Valid reports whether m is a declared layout mode.
func (m LayoutMode) Valid() bool {
	switch m {
	case LayoutClassic, LayoutModernCard, LayoutAsymmetric:
		return true
	}
	return false
}

// Valid reports whether s is a declared shadow intensity.
func (s ShadowIntensity) Valid() bool {
	switch s {
	case ShadowNone, ShadowSoft, ShadowHard:
		return true
	}
	return false
}

// FontConfig describes the title typography.
type FontConfig struct {
	Family        string       `json:"family" validate:"fontfamily"`
	Category      FontCategory `json:"category" validate:"oneof=Sans Serif Display"`
	Size          int          `json:"size" validate:"gte=0"`
	Weight        int          `json:"weight"`
	Color         string       `json:"color" validate:"hexcolor6"`
	Opacity       float64      `json:"opacity" validate:"gte=0,lte=1"`
	LetterSpacing float64      `json:"letterSpacing"`
	LineHeight    float64      `json:"lineHeight"`
}

// DividerConfig describes the element rendered between title and subtitle.
type DividerConfig struct {
	Type      DividerType `json:"type" validate:"oneof=none line dot gradient"`
	Thickness int         `json:"thickness" validate:"gte=0"`
	Spacing   int         `json:"spacing" validate:"gte=0"`
	Color     string      `json:"color" validate:"hexcolor6"`
}

// Configuration is the full set of adjustable preview parameters. It contains
// no reference types, so assigning it copies it.
type Configuration struct {
	Title           string          `json:"title"`
	Subtitle        string          `json:"subtitle"`
	FontConfig      FontConfig      `json:"fontConfig"`
	DividerConfig   DividerConfig   `json:"dividerConfig"`
	LayoutMode      LayoutMode      `json:"layoutMode" validate:"oneof=classic modern-card asymmetric"`
	UseGradient     bool            `json:"useGradient"`
	CornerRadius    int             `json:"cornerRadius" validate:"gte=0"`
	ShadowIntensity ShadowIntensity `json:"shadowIntensity" validate:"oneof=none soft hard"`
}

// Default returns the configuration a new workspace starts with.
func Default() Configuration {
	return Configuration{
		Title:    "Design Your Future",
		Subtitle: "The modern interface for creators and innovators seeking professional clarity.",
		FontConfig: FontConfig{
			Family:        "Inter",
			Category:      CategorySans,
			Size:          48,
			Weight:        700,
			Color:         "#0f172a",
			Opacity:       1,
			LetterSpacing: -0.02,
			LineHeight:    1.2,
		},
		DividerConfig: DividerConfig{
			Type:      DividerLine,
			Thickness: 2,
			Spacing:   24,
			Color:     "#3b82f6",
		},
		LayoutMode:      LayoutModernCard,
		UseGradient:     true,
		CornerRadius:    16,
		ShadowIntensity: ShadowSoft,
	}
}
