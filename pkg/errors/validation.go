package errors

import (
	"strings"
	"unicode"
)

// maxColumnWidth is the widest column a workbook accepts, in characters.
const maxColumnWidth = 255

// ValidateColor validates a color given as six hexadecimal digits (RRGGBB).
// A leading '#' is accepted; see NormalizeColor.
func ValidateColor(name, color string) error {
	c := strings.TrimPrefix(color, "#")
	if len(c) != 6 {
		return New(ErrCodeInvalidColor, "%s color %q must be six hex digits (RRGGBB)", name, color)
	}
	for _, r := range c {
		if !isHex(r) {
			return New(ErrCodeInvalidColor, "%s color %q contains non-hex character %q", name, color, r)
		}
	}
	return nil
}

// NormalizeColor strips a leading '#' and upper-cases the digits.
// It does not validate; call ValidateColor first.
func NormalizeColor(color string) string {
	return strings.ToUpper(strings.TrimPrefix(color, "#"))
}

// ValidateWidth validates a column width in characters.
func ValidateWidth(name string, width float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidWidth, "%s column width must be positive, got %v", name, width)
	}
	if width > maxColumnWidth {
		return New(ErrCodeInvalidWidth, "%s column width too large (max %d), got %v", name, maxColumnWidth, width)
	}
	return nil
}

// ValidateFontName validates a font family name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 64 characters
func ValidateFontName(font string) error {
	if strings.TrimSpace(font) == "" {
		return New(ErrCodeInvalidInput, "font name cannot be empty")
	}
	if len(font) > 64 {
		return New(ErrCodeInvalidInput, "font name too long (max 64 characters)")
	}
	for _, r := range font {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "font name contains invalid control characters")
		}
	}
	return nil
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
