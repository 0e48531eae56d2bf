package recording

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// BackendFactory creates a fresh backend instance for one playback.
type BackendFactory func() Backend

// Format describes a registered output backend.
type Format struct {
	// Name selects the backend, e.g. "svg".
	Name string

	// Extension is the file extension of the output, including the dot.
	Extension string

	// New creates a backend.
	New BackendFactory
}

var (
	formatsMu sync.RWMutex
	formats   = make(map[string]Format)
)

// Register makes a backend available. Backend packages call it from init(),
// so importing a backend for its side effect is enough:
//
//	import _ "github.com/gogpu/ornament/recording/backends/vector"
//
// Register panics on an empty name, a nil factory or a duplicate name.
func Register(f Format) {
	formatsMu.Lock()
	defer formatsMu.Unlock()

	switch {
	case f.Name == "":
		panic("recording: Register with empty name")
	case f.New == nil:
		panic("recording: Register factory is nil for " + f.Name)
	}
	if _, dup := formats[f.Name]; dup {
		panic("recording: Register called twice for " + f.Name)
	}
	f.Extension = strings.ToLower(f.Extension)
	formats[f.Name] = f
}

// Unregister removes a backend. Unknown names are ignored.
func Unregister(name string) {
	formatsMu.Lock()
	defer formatsMu.Unlock()
	delete(formats, name)
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	f, ok := formats[name]
	return f, ok
}

// NewBackend creates a new instance of the backend registered under name.
// The error lists the registered names, which usually points at a missing
// blank import.
func NewBackend(name string) (Backend, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (registered: %s; forgotten import?)",
			name, strings.Join(Backends(), ", "))
	}
	return f.New(), nil
}

// ForFile returns the format whose extension matches path, compared
// case-insensitively. When several backends share an extension the one with
// the alphabetically first name wins.
func ForFile(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		for _, name := range Backends() {
			if f, ok := Lookup(name); ok && f.Extension == ext {
				return f, nil
			}
		}
	}
	return Format{}, fmt.Errorf("recording: no backend writes %q files", ext)
}

// Backends returns the registered backend names in alphabetical order.
func Backends() []string {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	return slices.Sorted(maps.Keys(formats))
}
