package hostcompat

// Definition is a named callable bound in the host's definition namespace.
// Both native host definitions and installed polyfills satisfy it.
type Definition interface {
	Call(args ...any) (any, error)
}

// DefinitionFunc adapts an ordinary Go function to Definition.
type DefinitionFunc func(args ...any) (any, error)

// Call invokes the function.
func (f DefinitionFunc) Call(args ...any) (any, error) { return f(args...) }

// Environment is the live host runtime surface the shim probes and patches.
// The host owns the namespace; the shim only adds definitions to slots found
// empty, except for the one documented version-gated replacement.
type Environment interface {
	// Bound reports whether name is currently bound to a definition.
	Bound(name string) bool

	// Lookup returns the definition bound to name.
	Lookup(name string) (Definition, bool)

	// Define binds name to def, replacing any existing binding.
	Define(name string, def Definition) error

	// SelectedSurface returns the currently selected display surface.
	SelectedSurface() Surface

	// Version returns the host version string, e.g. "28.1" or "29.0.50".
	Version() string
}

// Surface is a display surface: the host's on-screen rendering of a
// content buffer.
type Surface interface {
	// Params returns the surface's geometry parameter collection.
	Params() Params

	// Buffer returns the content buffer the surface displays.
	Buffer() Buffer

	// Realign scrolls the surface so pos is visible.
	Realign(pos int)
}

// Buffer is a content buffer with its ambient bookkeeping state.
type Buffer interface {
	// Cursor returns the buffer's cursor position.
	Cursor() int

	// Flag returns the named bookkeeping flag.
	Flag(name string) bool

	// SetFlag sets the named bookkeeping flag.
	SetFlag(name string, value bool)

	// FileName returns the buffer's file association, or "" when none.
	FileName() string

	// SetFileName sets the buffer's file association.
	SetFileName(name string)
}

// Params is a structured parameter collection describing a display
// surface's geometry.
type Params interface {
	// Int returns the named integer parameter and whether it is present.
	Int(key string) (int, bool)
}
