package shim

import (
	"go.uber.org/multierr"

	hostcompat "github.com/wippyai/host-compat"
	"github.com/wippyai/host-compat/errors"
	"github.com/wippyai/host-compat/geometry"
	"github.com/wippyai/host-compat/guard"
	"github.com/wippyai/host-compat/hook"
	"github.com/wippyai/host-compat/registry"
)

// Capability names the standard table binds.
const (
	CapSelectedSurface = "selected-surface"
	CapBorderWidth     = "surface-border-width"
	CapPixelWidth      = "surface-pixel-width"
	CapEditsMasked     = "with-edits-masked"
)

// LegacySelectedSurface is the older host name "selected-surface" aliases.
const LegacySelectedSurface = "current-surface"

// BuggyHookGate identifies the host build line whose command-loop hook
// realigns against the ambient current buffer instead of the selected
// surface's buffer.
var BuggyHookGate = hook.Gate{Major: 28, Minor: 1}

// Option configures the standard table.
type Option func(*Shim)

// WithGate overrides the hook correction's version gate.
func WithGate(g hook.Gate) Option {
	return func(s *Shim) {
		s.gate = g
	}
}

// WithProvides overrides the feature marker name.
func WithProvides(name string) Option {
	return func(s *Shim) {
		s.provides = name
	}
}

// Shim is the standard capability table, ready to apply against a host.
type Shim struct {
	reg      *registry.Registry
	cache    *hook.BoundsCache
	gate     hook.Gate
	provides string
}

// New builds the standard table.
func New(opts ...Option) (*Shim, error) {
	s := &Shim{
		cache:    &hook.BoundsCache{},
		gate:     BuggyHookGate,
		provides: registry.DefaultProvides,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reg = registry.New(registry.WithProvides(s.provides))

	err := multierr.Combine(
		s.reg.Alias(CapSelectedSurface, LegacySelectedSurface),
		s.reg.Fallback(CapBorderWidth, paramBuilder(geometry.BorderWidth)),
		s.reg.Fallback(CapPixelWidth, paramBuilder(geometry.PixelWidth)),
		s.reg.Fallback(CapEditsMasked, editsMaskedBuilder),
		hook.Install(s.reg, s.gate, s.cache),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Apply resolves the table against env. Safe to call more than once; the
// pass runs a single time per Shim.
func (s *Shim) Apply(env hostcompat.Environment) (*registry.Report, error) {
	return s.reg.Apply(env)
}

// Registry exposes the underlying registry for post-apply lookups.
func (s *Shim) Registry() *registry.Registry { return s.reg }

// Cache exposes the window-bounds cache owned by the hook correction.
func (s *Shim) Cache() *hook.BoundsCache { return s.cache }

// paramBuilder wraps a geometry computation into a definition. The
// definition accepts no argument (selected surface), a Surface, or a
// Params collection.
func paramBuilder(compute func(hostcompat.Params) int) registry.BuildFunc {
	return func(env hostcompat.Environment) (hostcompat.Definition, error) {
		return hostcompat.DefinitionFunc(func(args ...any) (any, error) {
			p, err := paramsArg(env, args)
			if err != nil {
				return nil, err
			}
			return compute(p), nil
		}), nil
	}
}

// paramsArg resolves the parameter collection a geometry definition
// operates on.
func paramsArg(env hostcompat.Environment, args []any) (hostcompat.Params, error) {
	if len(args) == 0 {
		return env.SelectedSurface().Params(), nil
	}
	if len(args) > 1 {
		return nil, errors.InvalidInput(errors.PhaseApply, "geometry accessor takes at most one argument")
	}
	switch v := args[0].(type) {
	case hostcompat.Surface:
		return v.Params(), nil
	case hostcompat.Params:
		return v, nil
	default:
		return nil, errors.TypeMismatch(errors.PhaseApply, CapPixelWidth, args[0])
	}
}

// editsMaskedBuilder installs the behavioral fallback: run a block with
// buffer bookkeeping suspended, restoring it on every exit path. An error
// from the block propagates unmodified. See guard for the content-mutation
// caveat.
func editsMaskedBuilder(env hostcompat.Environment) (hostcompat.Definition, error) {
	return hostcompat.DefinitionFunc(func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, errors.InvalidInput(errors.PhaseApply, "with-edits-masked takes a buffer and a block")
		}
		buf, ok := args[0].(hostcompat.Buffer)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseApply, CapEditsMasked, args[0])
		}
		fn, ok := args[1].(func() error)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseApply, CapEditsMasked, args[1])
		}
		return nil, guard.WithSuspended(buf, fn)
	}), nil
}
