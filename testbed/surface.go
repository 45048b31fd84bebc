package testbed

import (
	"sync"

	hostcompat "github.com/wippyai/host-compat"
)

// Params is a scripted geometry parameter collection.
type Params map[string]int

// Int returns the named parameter and whether it is present.
func (p Params) Int(key string) (int, bool) {
	v, ok := p[key]
	return v, ok
}

// Surface is a scripted display surface recording every realignment.
type Surface struct {
	mu       sync.Mutex
	buffer   *Buffer
	params   Params
	realigns []int
}

// NewSurface creates a surface displaying buf with the given parameters.
// A nil params behaves as an empty collection.
func NewSurface(buf *Buffer, params Params) *Surface {
	if params == nil {
		params = Params{}
	}
	return &Surface{buffer: buf, params: params}
}

// Params returns the surface's parameter collection.
func (s *Surface) Params() hostcompat.Params { return s.params }

// Buffer returns the surface's content buffer.
func (s *Surface) Buffer() hostcompat.Buffer { return s.buffer }

// Realign records a realignment to pos.
func (s *Surface) Realign(pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.realigns = append(s.realigns, pos)
}

// Realigns returns every recorded realignment position, oldest first.
func (s *Surface) Realigns() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.realigns))
	copy(out, s.realigns)
	return out
}

// Buffer is a scripted content buffer with named bookkeeping flags.
type Buffer struct {
	mu       sync.Mutex
	cursor   int
	flags    map[string]bool
	fileName string
}

// NewBuffer creates an empty buffer with all flags cleared.
func NewBuffer() *Buffer {
	return &Buffer{flags: make(map[string]bool)}
}

// Cursor returns the buffer's cursor position.
func (b *Buffer) Cursor() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursor
}

// SetCursor moves the buffer's cursor.
func (b *Buffer) SetCursor(pos int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = pos
}

// Flag returns the named bookkeeping flag.
func (b *Buffer) Flag(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flags[name]
}

// SetFlag sets the named bookkeeping flag.
func (b *Buffer) SetFlag(name string, value bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flags[name] = value
}

// FileName returns the buffer's file association.
func (b *Buffer) FileName() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fileName
}

// SetFileName sets the buffer's file association.
func (b *Buffer) SetFileName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fileName = name
}
