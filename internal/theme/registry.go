package theme

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
)

// Registry holds named themes and a default.
type Registry struct {
	mu           sync.RWMutex
	themes       map[string]Theme
	defaultTheme string
}

// NewRegistry returns a registry with the built-in light and dark themes and light as default.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Theme), defaultTheme: "light"}
	for _, t := range []Theme{Light(), Dark()} {
		r.themes[t.Name] = t
	}
	return r
}

// Register validates and adds t, replacing any theme of the same name.
func (r *Registry) Register(t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[t.Name] = t
	return nil
}

// LoadDirectory registers every *.yaml palette found in dir.
func (r *Registry) LoadDirectory(dir string) error {
	if dir == "" {
		return nil
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("list themes: %w", err)
	}
	sort.Strings(paths)
	for _, path := range paths {
		t, err := Load(path)
		if err != nil {
			return err
		}
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// SetDefault selects the theme returned for an empty name.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.themes[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	r.defaultTheme = name
	return nil
}

// Get returns the named theme, or the default when name is empty.
func (r *Registry) Get(name string) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name == "" {
		name = r.defaultTheme
	}
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return t, nil
}

// Names lists registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
