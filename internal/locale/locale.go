package locale

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Localizer translates user-facing strings.
type Localizer interface {
	// T returns the translation of source, or source itself when none exists.
	T(source string) string
	// TN returns the form of singular/plural matching count n.
	TN(singular, plural string, n int) string
}

// Source is the identity localizer: every string is returned untranslated.
var Source Localizer = &Catalog{Language: "en"}

// Catalog is a single-language message table loaded from YAML.
type Catalog struct {
	Language string              `yaml:"language"`
	Messages map[string]string   `yaml:"messages"`
	Plurals  map[string][]string `yaml:"plurals"`
}

// T implements Localizer.
func (c *Catalog) T(source string) string {
	if c == nil {
		return source
	}
	if translated, ok := c.Messages[source]; ok && translated != "" {
		return translated
	}
	return source
}

// TN implements Localizer. A count of exactly one selects the singular form; every other
// count, zero and negatives included, selects the plural.
func (c *Catalog) TN(singular, plural string, n int) string {
	one, other := singular, plural
	if c != nil {
		forms := c.Plurals[singular]
		if len(forms) > 0 && forms[0] != "" {
			one = forms[0]
		}
		if len(forms) > 1 && forms[1] != "" {
			other = forms[1]
		}
	}
	if n == 1 {
		return one
	}
	return other
}

// LoadCatalog reads a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if c.Language == "" {
		return nil, errors.New("catalog " + path + " must define a language")
	}
	return &c, nil
}
