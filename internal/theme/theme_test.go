package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solarizedPalette = `name: solarized
colors:
  red200: "#F4B5B3"
  red300: "#dc322f"
  red400: "#b02826"
  green300: "#859900"
  green400: "#6b7a00"
  yellow300: "#b58900"
  yellow400: "#916d00"
  gray200: "#eee8d5"
  gray300: "#93a1a1"
  gray400: "#657b83"
  disabled: "#93a1a1"
`

func TestBuiltinsAreTotal(t *testing.T) {
	for _, th := range []Theme{Light(), Dark()} {
		require.NoError(t, th.Validate(), th.Name)
		for _, token := range Tokens() {
			assert.NotEmpty(t, th.Color(token), "%s/%s", th.Name, token)
		}
	}
}

func TestLookupFunc(t *testing.T) {
	lookup := LookupFunc(func(tok Token) Color { return Color("#" + string(tok)) })
	assert.Equal(t, Color("#gray300"), lookup.Color(Gray300))
}

func TestValidateMissingTokens(t *testing.T) {
	th := Light()
	delete(th.Colors, Red200)
	delete(th.Colors, Disabled)

	err := th.Validate()
	require.ErrorIs(t, err, ErrIncompletePalette)
	assert.ErrorContains(t, err, "disabled, red200")
}

func TestValidateBadColor(t *testing.T) {
	th := Light()
	th.Colors[Gray200] = "grayish"
	assert.ErrorContains(t, th.Validate(), "gray200")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solarized.yaml")
	require.NoError(t, os.WriteFile(path, []byte(solarizedPalette), 0o644))

	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "solarized", th.Name)
	assert.Equal(t, Color("#f4b5b3"), th.Color(Red200))
}

func TestLoadIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: partial\ncolors:\n  red200: \"#ff0000\"\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrIncompletePalette)
}

func TestRegistry(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solarized.yaml"), []byte(solarizedPalette), 0o644))

	reg := NewRegistry()
	require.NoError(t, reg.LoadDirectory(dir))
	assert.Equal(t, []string{"dark", "light", "solarized"}, reg.Names())

	def, err := reg.Get("")
	require.NoError(t, err)
	assert.Equal(t, "light", def.Name)

	require.NoError(t, reg.SetDefault("solarized"))
	def, err = reg.Get("")
	require.NoError(t, err)
	assert.Equal(t, "solarized", def.Name)

	_, err = reg.Get("neon")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.ErrorIs(t, reg.SetDefault("neon"), ErrUnknownTheme)
}

func TestRegistryRejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(Theme{Name: "empty"})
	assert.ErrorIs(t, err, ErrIncompletePalette)
	_, err = reg.Get("empty")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}
