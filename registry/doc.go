// Package registry implements the capability polyfill registry.
//
// # Main Types
//
//   - Descriptor: one capability rule (name, presence predicate, fallback builder)
//   - Registry: ordered descriptor table with a one-shot Apply pass
//   - Provider: resolved capability with its Source (native, polyfill, override)
//   - Report: per-capability resolution outcomes plus the provided feature marker
//
// # Resolution Rules
//
// Apply walks the table once, in registration order, and decides per
// capability:
//
//  1. Already bound in the host: keep the native definition untouched.
//  2. Absent: build the fallback from host primitives and install it.
//  3. Replace descriptors: when the version gate matches, install the
//     replacement over the existing binding; otherwise skip silently.
//
// Rules are independent. A fallback body may call host primitives but never
// another fallback from the same table, so registration order carries no
// semantic weight.
//
// # Idempotence
//
// Apply runs at most once per Registry; later calls return the first
// report. Applying a table twice therefore leaves the host namespace in
// exactly the state one application produced.
//
// # Example
//
//	reg := registry.New(registry.WithProvides("host-compat"))
//	reg.Alias("selected-surface", "current-surface")
//	reg.Fallback("surface-border-width", borderWidthBuilder)
//	report, err := reg.Apply(env)
package registry
