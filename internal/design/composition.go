package design

// GridColumns is the width of the composition grid the arrangement divides.
const GridColumns = 12

// Arrangement describes how the composition splits horizontal space.
type Arrangement struct {
	TextColumns  int
	ImageColumns int
	// AccentCard reveals the decorative card beside the image.
	AccentCard bool
}

// Arrange returns the column split for mode. Asymmetric favours the image
// and adds the accent card; every other mode splits evenly.
func Arrange(mode LayoutMode) Arrangement {
	if mode == LayoutAsymmetric {
		return Arrangement{TextColumns: 5, ImageColumns: 7, AccentCard: true}
	}
	return Arrangement{TextColumns: 6, ImageColumns: 6}
}

var shadowTreatments = map[ShadowIntensity]string{
	ShadowNone: "none",
	ShadowSoft: "0 20px 50px rgba(8, 112, 184, 0.1)",
	ShadowHard: "0 35px 60px -15px rgba(0, 0, 0, 0.3)",
}

// ShadowTreatment returns the box-shadow value for s, or "none" for an
// undeclared intensity.
func ShadowTreatment(s ShadowIntensity) string {
	if value, ok := shadowTreatments[s]; ok {
		return value
	}
	return shadowTreatments[ShadowNone]
}

// ContainerStyle is the inline style of the outer composition card.
func ContainerStyle(cfg Configuration) Style {
	return Style{
		{"border-radius", px(cfg.CornerRadius)},
		{"box-shadow", ShadowTreatment(cfg.ShadowIntensity)},
	}
}
