package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
)

// Registry selects a catalog for a requested language.
type Registry struct {
	tags     []language.Tag
	catalogs []Localizer
	matcher  language.Matcher
}

// NewRegistry builds a registry over the given catalogs. English source text is always
// available and is the fallback when nothing matches.
func NewRegistry(catalogs ...*Catalog) (*Registry, error) {
	r := &Registry{
		tags:     []language.Tag{language.English},
		catalogs: []Localizer{Source},
	}
	for _, c := range catalogs {
		tag, err := language.Parse(c.Language)
		if err != nil {
			return nil, fmt.Errorf("catalog language %q: %w", c.Language, err)
		}
		r.tags = append(r.tags, tag)
		r.catalogs = append(r.catalogs, c)
	}
	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

// LoadDirectory loads every *.yaml catalog in dir. An empty dir yields a source-only registry.
func LoadDirectory(dir string) (*Registry, error) {
	if dir == "" {
		return NewRegistry()
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	if len(paths) == 0 {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("catalog directory: %w", err)
		}
	}
	sort.Strings(paths)

	catalogs := make([]*Catalog, 0, len(paths))
	for _, path := range paths {
		c, err := LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, c)
	}
	return NewRegistry(catalogs...)
}

// Languages reports the supported language tags, source language first.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.tags))
	for _, tag := range r.tags {
		out = append(out, tag.String())
	}
	return out
}

// Match picks the best catalog for an explicit language and an Accept-Language header.
// The explicit language wins when it is set and parses.
func (r *Registry) Match(lang, acceptLanguage string) Localizer {
	var wanted []language.Tag
	if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			wanted = append(wanted, tags...)
		}
	}
	if len(wanted) == 0 {
		return Source
	}
	_, index, confidence := r.matcher.Match(wanted...)
	if confidence == language.No || index < 0 || index >= len(r.catalogs) {
		return Source
	}
	return r.catalogs[index]
}
