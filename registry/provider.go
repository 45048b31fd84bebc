package registry

import (
	hostcompat "github.com/wippyai/host-compat"
)

// Source identifies which branch resolved a capability.
type Source string

const (
	// SourceNative means the host's own definition was kept.
	SourceNative Source = "native"
	// SourcePolyfill means a fallback was installed into an empty slot.
	SourcePolyfill Source = "polyfill"
	// SourceOverride means an existing definition was replaced under a
	// matched version gate.
	SourceOverride Source = "override"
)

// Provider is a resolved capability: the definition now bound in the host
// and which branch put it there.
type Provider interface {
	Source() Source
	Definition() hostcompat.Definition
}

type provider struct {
	source Source
	def    hostcompat.Definition
}

func (p *provider) Source() Source                    { return p.source }
func (p *provider) Definition() hostcompat.Definition { return p.def }
