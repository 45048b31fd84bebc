package guard

import (
	hostcompat "github.com/wippyai/host-compat"
)

// Names of the ambient buffer flags the guard manages.
const (
	FlagUndoRecording     = "undo-recording"
	FlagReadOnly          = "read-only"
	FlagModificationHooks = "modification-hooks"
)

// Flags is a snapshot of one buffer's bookkeeping state.
type Flags struct {
	UndoRecording     bool
	ReadOnly          bool
	ModificationHooks bool
	FileName          string
}

// Capture snapshots buf's current bookkeeping state.
func Capture(buf hostcompat.Buffer) Flags {
	return Flags{
		UndoRecording:     buf.Flag(FlagUndoRecording),
		ReadOnly:          buf.Flag(FlagReadOnly),
		ModificationHooks: buf.Flag(FlagModificationHooks),
		FileName:          buf.FileName(),
	}
}

// Restore writes the snapshot back to buf.
func (f Flags) Restore(buf hostcompat.Buffer) {
	buf.SetFlag(FlagUndoRecording, f.UndoRecording)
	buf.SetFlag(FlagReadOnly, f.ReadOnly)
	buf.SetFlag(FlagModificationHooks, f.ModificationHooks)
	buf.SetFileName(f.FileName)
}

// WithSuspended runs fn with buf's bookkeeping suspended: undo recording
// off, modification hooks off, read-only enforcement lifted, file
// association cleared. The prior state is restored on every exit path,
// including a panic inside fn, which is re-raised after restoration.
//
// See the package caveat: suspension masks bookkeeping signals only and is
// not safe around genuine content mutations.
func WithSuspended(buf hostcompat.Buffer, fn func() error) error {
	saved := Capture(buf)
	defer saved.Restore(buf)

	buf.SetFlag(FlagUndoRecording, false)
	buf.SetFlag(FlagModificationHooks, false)
	buf.SetFlag(FlagReadOnly, false)
	buf.SetFileName("")

	return fn()
}
