package testbed

import (
	"fmt"
	"sync"

	hostcompat "github.com/wippyai/host-compat"
)

// Host is an in-memory hostcompat.Environment.
type Host struct {
	mu       sync.RWMutex
	defs     map[string]hostcompat.Definition
	version  string
	selected *Surface
}

// NewHost creates a host reporting the given version string, with an empty
// definition namespace and a default selected surface.
func NewHost(version string) *Host {
	return &Host{
		defs:     make(map[string]hostcompat.Definition),
		version:  version,
		selected: NewSurface(NewBuffer(), nil),
	}
}

// Bound reports whether name is bound to a definition.
func (h *Host) Bound(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.defs[name]
	return ok
}

// Lookup returns the definition bound to name.
func (h *Host) Lookup(name string) (hostcompat.Definition, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	def, ok := h.defs[name]
	return def, ok
}

// Define binds name to def, replacing any existing binding.
func (h *Host) Define(name string, def hostcompat.Definition) error {
	if name == "" {
		return fmt.Errorf("define: name cannot be empty")
	}
	if def == nil {
		return fmt.Errorf("define %q: definition cannot be nil", name)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.defs[name] = def
	return nil
}

// SelectedSurface returns the currently selected surface.
func (h *Host) SelectedSurface() hostcompat.Surface {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.selected
}

// Select makes s the selected surface.
func (h *Host) Select(s *Surface) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selected = s
}

// Version returns the host version string.
func (h *Host) Version() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}

// SetVersion changes the reported host version.
func (h *Host) SetVersion(v string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.version = v
}

// Call invokes the definition bound to name, the way host extensions would.
func (h *Host) Call(name string, args ...any) (any, error) {
	def, ok := h.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("void definition %q", name)
	}
	return def.Call(args...)
}
