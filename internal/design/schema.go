package design

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// JSONSchemaExtend declares the closed set of categories.
func (FontCategory) JSONSchemaExtend(s *jsonschema.Schema) {
	s.Enum = []any{string(CategorySans), string(CategorySerif), string(CategoryDisplay)}
}

// JSONSchemaExtend declares the closed set of divider types.
func (DividerType) JSONSchemaExtend(s *jsonschema.Schema) {
	s.Enum = []any{string(DividerNone), string(DividerLine), string(DividerDot), string(DividerGradient)}
}

// JSONSchemaExtend declares the closed set of layout modes.
func (LayoutMode) JSONSchemaExtend(s *jsonschema.Schema) {
	s.Enum = []any{string(LayoutClassic), string(LayoutModernCard), string(LayoutAsymmetric)}
}

// JSONSchemaExtend declares the closed set of shadow intensities.
func (ShadowIntensity) JSONSchemaExtend(s *jsonschema.Schema) {
	s.Enum = []any{string(ShadowNone), string(ShadowSoft), string(ShadowHard)}
}

// JSONSchemaExtend adds the numeric and colour constraints.
func (FontConfig) JSONSchemaExtend(s *jsonschema.Schema) {
	if prop, ok := s.Properties.Get("opacity"); ok {
		prop.Minimum = json.Number("0")
		prop.Maximum = json.Number("1")
	}
	if prop, ok := s.Properties.Get("size"); ok {
		prop.Minimum = json.Number("0")
	}
	if prop, ok := s.Properties.Get("color"); ok {
		prop.Pattern = hexColorPattern.String()
	}
	if prop, ok := s.Properties.Get("family"); ok {
		prop.MinLength = ptrUint64(1)
		prop.MaxLength = ptrUint64(maxFamilyLength)
		prop.Pattern = `^[^;{}"<>\\\x00-\x1f\x7f]+$`
	}
}

// JSONSchemaExtend adds the numeric and colour constraints.
func (DividerConfig) JSONSchemaExtend(s *jsonschema.Schema) {
	for _, name := range []string{"thickness", "spacing"} {
		if prop, ok := s.Properties.Get(name); ok {
			prop.Minimum = json.Number("0")
		}
	}
	if prop, ok := s.Properties.Get("color"); ok {
		prop.Pattern = hexColorPattern.String()
	}
}

// JSONSchemaExtend adds the top-level numeric constraints.
func (Configuration) JSONSchemaExtend(s *jsonschema.Schema) {
	if prop, ok := s.Properties.Get("cornerRadius"); ok {
		prop.Minimum = json.Number("0")
	}
}

func ptrUint64(v uint64) *uint64 { return &v }

// Schema reflects the Configuration JSON schema.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := r.Reflect(&Configuration{})
	schema.Title = "DesignFlow configuration"
	schema.Description = "Adjustable typography, divider and layout parameters of one preview workspace."
	return schema
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("design: marshal schema: %w", err)
	}
	return data, nil
}
