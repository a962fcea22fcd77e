package ensemble

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry maps ensemble names to database paths. It is an explicit,
// caller-owned object: nothing is global and nothing persists unless
// Save is called.
type Registry struct {
	entries map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]string)}
}

// Add registers a database path under a name, replacing any previous
// entry with the same name.
func (r *Registry) Add(name, path string) {
	r.entries[name] = path
}

// Remove deletes an entry. Removing an unknown name is a no-op.
func (r *Registry) Remove(name string) {
	delete(r.entries, name)
}

// Path returns the database path registered under name.
func (r *Registry) Path(name string) (string, bool) {
	path, ok := r.entries[name]
	return path, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Open opens the store registered under name.
func (r *Registry) Open(name string) (*Store, error) {
	path, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("ensemble: no registry entry for %q", name)
	}

	return Open(path)
}

// Save writes the registry to a yaml file.
func (r *Registry) Save(path string) error {
	data, err := yaml.Marshal(r.entries)
	if err != nil {
		return fmt.Errorf("ensemble: encoding registry: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ensemble: writing registry: %w", err)
	}

	return nil
}

// LoadRegistry reads a registry previously written by Save.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ensemble: reading registry: %w", err)
	}

	entries := make(map[string]string)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ensemble: decoding registry: %w", err)
	}

	return &Registry{entries: entries}, nil
}
