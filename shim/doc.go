// Package shim assembles the standard capability table.
//
// This is the fixed set of capabilities the surrounding extension
// ecosystem expects to find bound in every supported host:
//
//   - "selected-surface": aliased to the legacy "current-surface" name on
//     hosts that still only bind the old one.
//   - "surface-border-width": computed from the surface parameter
//     collection when the native accessor is missing; 0 when the
//     parameter is absent.
//   - "surface-pixel-width": computed as the arithmetic sum of the
//     width-contributing surface parameters when missing.
//   - "with-edits-masked": runs a caller-supplied block with buffer
//     bookkeeping suspended and guaranteed to be restored (see guard).
//   - "command-loop-hook": replaced outright on the known-buggy 28.1 host
//     line with a corrected implementation (see hook).
//
// Applying the table twice is a no-op; each capability resolves at most
// once per process.
package shim
