// Package hook implements the command-loop hook correction for a
// known-buggy host version.
//
// The flagged host builds run the post-command hook against whatever buffer
// happens to be current at hook time, which realigns the wrong surface when
// a command switches buffers before returning. The corrected hook reads the
// cursor position from the selected display surface's own content buffer
// and realigns that surface.
//
// The hook also owns a window-bounds cache. Commands tagged cache-reusable
// (pure cursor motion) keep the cached bounds; any other command
// invalidates the cache before realignment.
//
// The correction is a point patch: it is installed only when the host
// version matches the gate's major and minor exactly, and it replaces the
// native hook outright rather than supplementing it. On any other version
// the native hook is left untouched, with no validation performed.
package hook
