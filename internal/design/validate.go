package design

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

const (
	maxFamilyLength = 64
	// familyForbidden holds characters that break out of a CSS declaration.
	familyForbidden = ";{}\"<>\\"
)

// ValidationError names the first configuration field that failed a rule.
type ValidationError struct {
	Field string
	Tag   string
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("design: %s failed validation for %q (value %v)", e.Field, e.Tag, e.Value)
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return IsHexColor(fl.Field().String())
		})
		_ = v.RegisterValidation("fontfamily", func(fl validator.FieldLevel) bool {
			return IsFontFamily(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// IsHexColor reports whether value is a #RRGGBB colour.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// IsFontFamily reports whether value is usable as one font family name. Blank
// names, names over 64 characters and names containing control characters or
// declaration delimiters are rejected.
func IsFontFamily(value string) bool {
	if strings.TrimSpace(value) == "" || utf8.RuneCountInString(value) > maxFamilyLength {
		return false
	}
	if strings.ContainsAny(value, familyForbidden) {
		return false
	}
	return !strings.ContainsFunc(value, unicode.IsControl)
}

// Validate rejects enum variants outside their declarations, colours that are
// not #RRGGBB, unsafe font family names and numeric fields outside their
// ranges.
func Validate(cfg Configuration) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &ValidationError{Field: fieldPath(fe), Tag: fe.Tag(), Value: fe.Value()}
	}
	return fmt.Errorf("design: validate: %w", err)
}

func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

// Clamp pulls numeric fields back into range: opacity into [0,1] and
// negative pixel values to zero. Enum and colour fields are left for Validate.
func Clamp(cfg Configuration) Configuration {
	cfg.FontConfig.Opacity = clampFloat(cfg.FontConfig.Opacity, 0, 1)
	cfg.FontConfig.Size = max(cfg.FontConfig.Size, 0)
	cfg.DividerConfig.Thickness = max(cfg.DividerConfig.Thickness, 0)
	cfg.DividerConfig.Spacing = max(cfg.DividerConfig.Spacing, 0)
	cfg.CornerRadius = max(cfg.CornerRadius, 0)
	return cfg
}

func clampFloat(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return hi
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
