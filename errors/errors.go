package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // descriptor registration
	PhaseApply    Phase = "apply"    // the one-shot apply pass
	PhaseProbe    Phase = "probe"    // presence probing
	PhaseHook     Phase = "hook"     // hook override installation
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindDuplicate    Kind = "duplicate"
	KindNotFound     Kind = "not_found"
	KindTypeMismatch Kind = "type_mismatch"
	KindNotApplied   Kind = "not_applied"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	Capability string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Capability != "" {
		b.WriteString(" capability ")
		b.WriteString(e.Capability)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Capability sets the capability name
func (b *Builder) Capability(name string) *Builder {
	b.err.Capability = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Duplicate creates a duplicate registration error
func Duplicate(phase Phase, capability string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindDuplicate,
		Capability: capability,
		Detail:     "descriptor already registered",
	}
}

// NotFound creates a missing capability error
func NotFound(phase Phase, capability string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindNotFound,
		Capability: capability,
		Detail:     "no definition bound under this name",
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, capability string, got any) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindTypeMismatch,
		Capability: capability,
		Detail:     fmt.Sprintf("unexpected argument type %T", got),
		Value:      got,
	}
}

// NotApplied creates an error for lookups before the apply pass has run
func NotApplied(capability string) *Error {
	return &Error{
		Phase:      PhaseApply,
		Kind:       KindNotApplied,
		Capability: capability,
		Detail:     "registry has not been applied",
	}
}
