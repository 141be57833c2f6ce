package design

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var catalogueYAML []byte

// FamilyGroup lists the font families offered for one category.
type FamilyGroup struct {
	Category FontCategory `yaml:"category"`
	Names    []string     `yaml:"names"`
}

// Preset is a fixed size/weight pair applied in one click.
type Preset struct {
	Key    string `yaml:"key"`
	Label  string `yaml:"label"`
	Size   int    `yaml:"size"`
	Weight int    `yaml:"weight"`
}

// Catalogue is the font and preset vocabulary offered by the control panel.
type Catalogue struct {
	Families []FamilyGroup `yaml:"families"`
	Presets  []Preset      `yaml:"presets"`
}

var (
	catalogueOnce sync.Once
	catalogue     Catalogue
)

// ParseCatalogue decodes a catalogue document and checks its categories.
func ParseCatalogue(data []byte) (Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalogue{}, fmt.Errorf("design: parse catalogue: %w", err)
	}
	for _, group := range c.Families {
		if !group.Category.Valid() {
			return Catalogue{}, fmt.Errorf("design: catalogue category %q is not a font category", group.Category)
		}
	}
	return c, nil
}

// DefaultCatalogue returns the embedded catalogue.
func DefaultCatalogue() Catalogue {
	catalogueOnce.Do(func() {
		c, err := ParseCatalogue(catalogueYAML)
		if err != nil {
			panic(err)
		}
		catalogue = c
	})
	return catalogue
}

// CategoryOf returns the category a family is listed under.
func (c Catalogue) CategoryOf(family string) (FontCategory, bool) {
	for _, group := range c.Families {
		for _, name := range group.Names {
			if name == family {
				return group.Category, true
			}
		}
	}
	return "", false
}

// Preset returns the preset registered under key.
func (c Catalogue) Preset(key string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// ActivePreset returns the preset whose size matches. Weight is ignored.
func (c Catalogue) ActivePreset(size int) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Size == size {
			return p, true
		}
	}
	return Preset{}, false
}

// FontPatch returns the patch that applies the preset.
func (p Preset) FontPatch() FontPatch {
	return FontPatch{Size: Ptr(p.Size), Weight: Ptr(p.Weight)}
}
