// Package testbed provides an in-memory fake host environment.
//
// Host implements hostcompat.Environment with a map-backed definition
// namespace, a settable version string, and scripted surfaces and buffers.
// It exists for this module's integration tests and examples; it is not a
// real editor host.
package testbed
