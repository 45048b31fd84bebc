// Package geometry computes display-surface pixel metrics from a surface's
// parameter collection.
//
// These are the fallback implementations for hosts whose native geometry
// accessors are missing. Results carry the same type and units as the
// native accessors (pixels), so callers are unaffected by which branch
// resolved the capability. Every absent parameter contributes 0.
package geometry
