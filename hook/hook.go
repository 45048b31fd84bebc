package hook

import (
	hostcompat "github.com/wippyai/host-compat"
	"github.com/wippyai/host-compat/errors"
	"github.com/wippyai/host-compat/registry"
)

// Name is the capability name of the command-loop hook this package
// corrects.
const Name = "command-loop-hook"

// CommandEvent describes the command that just finished executing.
type CommandEvent struct {
	// Command is the command's name.
	Command string

	// CacheReusable marks commands that cannot have moved window bounds
	// (pure cursor motion), letting the hook keep its cached bounds.
	CacheReusable bool
}

// Func is a command-loop hook invoked after each command.
type Func func(ev CommandEvent)

// Corrected returns the replacement hook. Unlike the native buggy hook,
// it reads the cursor position from the selected surface's own content
// buffer, never from the ambient current buffer, and realigns that surface.
func Corrected(env hostcompat.Environment, cache *BoundsCache) Func {
	return func(ev CommandEvent) {
		if !ev.CacheReusable {
			cache.Invalidate()
		}

		surface := env.SelectedSurface()
		pos := surface.Buffer().Cursor()
		surface.Realign(pos)
	}
}

// Install registers the version-gated override on reg. The installed
// definition expects a single CommandEvent argument and returns nil.
func Install(reg *registry.Registry, gate Gate, cache *BoundsCache) error {
	return reg.Override(Name, gate.Func(), func(env hostcompat.Environment) (hostcompat.Definition, error) {
		run := Corrected(env, cache)
		return hostcompat.DefinitionFunc(func(args ...any) (any, error) {
			if len(args) != 1 {
				return nil, errors.InvalidInput(errors.PhaseHook, "hook takes exactly one event")
			}
			ev, ok := args[0].(CommandEvent)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseHook, Name, args[0])
			}
			run(ev)
			return nil, nil
		}), nil
	})
}
