// Package hostcompat provides a capability compatibility layer for editor
// host runtimes.
//
// Extensions written against a modern host API often need to run on older
// hosts where some functions, variables, or macros are missing or buggy.
// This library probes the live host once at startup and installs fallback
// definitions for whatever is absent, so calling code sees one uniform API
// surface regardless of host version.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	hostcompat/          Root package with core Environment and Definition interfaces
//	├── registry/        Capability descriptor table and one-shot apply pass
//	├── shim/            The standard capability table most consumers want
//	├── guard/           Scoped suspension of buffer bookkeeping flags
//	├── geometry/        Display-surface pixel arithmetic fallbacks
//	├── hook/            Version-gated command-loop hook correction
//	├── errors/          Structured error types for registration failures
//	└── testbed/         In-memory fake host for tests and examples
//
// # Quick Start
//
// Apply the standard capability table against a host:
//
//	reg, err := shim.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := reg.Apply(env)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, res := range report.Resolutions() {
//	    fmt.Printf("%s: %s\n", res.Name, res.Source)
//	}
//
// Afterwards every capability in the table is bound in the host under its
// stable name, either to the host's own definition or to a polyfill.
//
// # Resolution Model
//
// Each capability is resolved exactly once, at apply time. A capability
// already bound in the host is left untouched; its binding after Apply is
// referentially the same value it was before. A missing capability gets a
// fallback built from other host primitives. One entry, the command-loop
// hook correction, replaces an existing definition outright when the host
// reports a specific known-buggy version.
//
// # Thread Safety
//
// Registry construction and Apply are intended for a single goroutine at
// startup; resolved lookups afterwards are safe for concurrent use. Host
// runtimes in this domain perform definition-time mutation on one thread.
//
// # Error Model
//
// The library raises errors only for registration mistakes (empty names,
// duplicate descriptors, nil builders). A fault inside a fallback body
// propagates to the caller exactly as the native capability's fault would
// have; nothing is caught, wrapped, or retried.
package hostcompat
