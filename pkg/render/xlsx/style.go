package xlsx

import (
	sterrors "github.com/matzehuels/testspec/pkg/errors"
)

// Style holds the font and colors of a workbook. Colors are RRGGBB hex.
type Style struct {
	Font             string `json:"font,omitempty" toml:"font"`
	HeaderText       string `json:"header_text,omitempty" toml:"header_text"`
	HeaderBackground string `json:"header_background,omitempty" toml:"header_background"`
	BodyText         string `json:"body_text,omitempty" toml:"body_text"`
	BodyBackground   string `json:"body_background,omitempty" toml:"body_background"`
	Border           string `json:"border,omitempty" toml:"border"`
}

// Default style values.
const (
	DefaultFont             = "Yu Gothic"
	DefaultHeaderText       = "FFFFFF"
	DefaultHeaderBackground = "5B9BD5"
	DefaultBodyText         = "000000"
	DefaultBodyBackground   = "FFFFFF"
	DefaultBorder           = "5B9BD5"
)

// DefaultStyle returns white bold headers on blue with blue borders.
func DefaultStyle() Style {
	return Style{
		Font:             DefaultFont,
		HeaderText:       DefaultHeaderText,
		HeaderBackground: DefaultHeaderBackground,
		BodyText:         DefaultBodyText,
		BodyBackground:   DefaultBodyBackground,
		Border:           DefaultBorder,
	}
}

// WithDefaults returns a copy of s with empty fields set to their defaults
// and colors normalized to upper-case hex without '#'.
func (s Style) WithDefaults() Style {
	d := DefaultStyle()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.Font, d.Font)
	fill(&s.HeaderText, d.HeaderText)
	fill(&s.HeaderBackground, d.HeaderBackground)
	fill(&s.BodyText, d.BodyText)
	fill(&s.BodyBackground, d.BodyBackground)
	fill(&s.Border, d.Border)

	for _, c := range s.colors() {
		*c.value = sterrors.NormalizeColor(*c.value)
	}
	return s
}

// Validate checks the font name and every color. Empty fields are allowed;
// they take their defaults.
func (s Style) Validate() error {
	if s.Font != "" {
		if err := sterrors.ValidateFontName(s.Font); err != nil {
			return err
		}
	}
	for _, c := range s.colors() {
		if *c.value == "" {
			continue
		}
		if err := sterrors.ValidateColor(c.name, *c.value); err != nil {
			return err
		}
	}
	return nil
}

type namedColor struct {
	name  string
	value *string
}

func (s *Style) colors() []namedColor {
	return []namedColor{
		{"header text", &s.HeaderText},
		{"header background", &s.HeaderBackground},
		{"body text", &s.BodyText},
		{"body background", &s.BodyBackground},
		{"border", &s.Border},
	}
}
