package registry

import (
	hostcompat "github.com/wippyai/host-compat"
)

// BuildFunc constructs a fallback definition from other host primitives.
// The builder must not call other fallbacks from the same table.
type BuildFunc func(env hostcompat.Environment) (hostcompat.Definition, error)

// PresentFunc reports whether a capability is already available in the host.
type PresentFunc func(env hostcompat.Environment) bool

// GateFunc reports whether a replacement applies to a host version string.
type GateFunc func(version string) bool

// Descriptor describes a single capability rule.
type Descriptor struct {
	// Name is the stable capability name the ecosystem expects.
	Name string

	// Present overrides the default presence probe (env.Bound(Name)).
	Present PresentFunc

	// Build constructs the fallback definition when the capability is
	// absent, or the replacement definition for Replace descriptors.
	Build BuildFunc

	// Replace marks the descriptor as an unconditional override: Build's
	// result replaces the existing binding when Gate matches the host
	// version. Replace descriptors ignore Present.
	Replace bool

	// Gate limits a Replace descriptor to specific host versions. A nil
	// Gate replaces on every host.
	Gate GateFunc
}
