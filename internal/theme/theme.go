// Package theme resolves symbolic color tokens into concrete colors.
package theme

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var (
	// ErrIncompletePalette is returned when a palette does not cover every token.
	ErrIncompletePalette = errors.New("palette is missing color tokens")
	// ErrUnknownTheme is returned when a theme name is not registered.
	ErrUnknownTheme = errors.New("unknown theme")
)

// Token names a color of the palette rather than a concrete value.
type Token string

// Palette tokens used by tick and label styles.
const (
	Red200    Token = "red200"
	Red300    Token = "red300"
	Red400    Token = "red400"
	Green300  Token = "green300"
	Green400  Token = "green400"
	Yellow300 Token = "yellow300"
	Yellow400 Token = "yellow400"
	Gray200   Token = "gray200"
	Gray300   Token = "gray300"
	Gray400   Token = "gray400"
	Disabled  Token = "disabled"
)

// Tokens returns every palette token.
func Tokens() []Token {
	return []Token{
		Red200, Red300, Red400,
		Green300, Green400,
		Yellow300, Yellow400,
		Gray200, Gray300, Gray400,
		Disabled,
	}
}

// Color is a concrete color value, "#rrggbb" or Transparent.
type Color string

// Transparent is the fully transparent color.
const Transparent Color = "transparent"

// Lookup maps a token to a concrete color. Implementations must be total over Tokens().
type Lookup interface {
	Color(Token) Color
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(Token) Color

// Color implements Lookup.
func (f LookupFunc) Color(t Token) Color {
	return f(t)
}

// Theme is a named palette.
type Theme struct {
	Name   string          `yaml:"name" json:"name"`
	Colors map[Token]Color `yaml:"colors" json:"colors"`
}

// Color implements Lookup.
func (t Theme) Color(token Token) Color {
	return t.Colors[token]
}

// Validate checks that every token is present and parses as a hex color.
func (t Theme) Validate() error {
	var missing []string
	for _, token := range Tokens() {
		value, ok := t.Colors[token]
		if !ok || value == "" {
			missing = append(missing, string(token))
			continue
		}
		if _, err := colorful.Hex(string(value)); err != nil {
			return fmt.Errorf("theme %s: token %s: invalid color %q: %w", t.Name, token, value, err)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("theme %s: %w: %s", t.Name, ErrIncompletePalette, strings.Join(missing, ", "))
	}
	return nil
}

// Load reads a palette from a YAML file and validates it.
func Load(path string) (Theme, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	var t Theme
	if err := yaml.Unmarshal(content, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if t.Name == "" {
		return Theme{}, fmt.Errorf("theme %s must define a name", path)
	}
	for token, value := range t.Colors {
		t.Colors[token] = Color(strings.ToLower(strings.TrimSpace(string(value))))
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Light is the default light palette.
func Light() Theme {
	return Theme{
		Name: "light",
		Colors: map[Token]Color{
			Red200:    "#fa9da1",
			Red300:    "#f55459",
			Red400:    "#f32f35",
			Green300:  "#2ba185",
			Green400:  "#268d75",
			Yellow300: "#ebc000",
			Yellow400: "#e5a500",
			Gray200:   "#e0dce5",
			Gray300:   "#80708f",
			Gray400:   "#71637e",
			Disabled:  "#80708f",
		},
	}
}

// Dark is the default dark palette.
func Dark() Theme {
	return Theme{
		Name: "dark",
		Colors: map[Token]Color{
			Red200:    "#7a2a32",
			Red300:    "#d1404e",
			Red400:    "#f25c67",
			Green300:  "#24876e",
			Green400:  "#33bf9e",
			Yellow300: "#b89600",
			Yellow400: "#eabe00",
			Gray200:   "#3e3446",
			Gray300:   "#938ba0",
			Gray400:   "#bbb3c7",
			Disabled:  "#6c6377",
		},
	}
}
