// Package guard implements scoped suspension of a buffer's bookkeeping
// flags with guaranteed restoration.
//
// The host tracks several ambient flags per buffer: undo recording,
// read-only enforcement, modification-hook delivery, and the buffer's file
// association. WithSuspended snapshots those flags, masks them for the
// duration of a caller-supplied block, and restores the snapshot on every
// exit path, including a panic raised inside the block.
//
//	err := guard.WithSuspended(buf, func() error {
//	    // runs with undo recording and modification hooks off,
//	    // read-only enforcement lifted, file association cleared
//	    return refreshOverlay(buf)
//	})
//
// # Caveat
//
// Suspension only masks bookkeeping signals. If the block performs a
// genuine content mutation, the host's undo history and modified state can
// end up out of sync with the buffer's real contents; the guarantee covers
// flag restoration, not content integrity. Reserve WithSuspended for
// presentation-only changes such as text property updates.
package guard
