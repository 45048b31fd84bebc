// Package errors provides structured error types for the host-compat library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). They are raised only for registration mistakes: a fault inside
// an installed fallback propagates to the caller unmodified, exactly as the
// native capability's fault would have.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegister, errors.KindDuplicate).
//		Capability("surface-pixel-width").
//		Detail("descriptor already registered").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidInput(errors.PhaseRegister, "capability name cannot be empty")
//	err := errors.NotFound(errors.PhaseApply, "current-surface")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
