package render

import (
	"bytes"
	"io"
)

// windowSize is the scratch output window allocated internally for the
// Buffer and Channel destinations, flushed to the real sink whenever it
// fills (§4.4's flush): a 64 KiB default.
const windowSize = 65536

// Dst is a destination descriptor (§4.4): Buffer, Channel, Manual or
// Other. The interface is sealed — isDst is unexported.
type Dst interface {
	isDst()
}

// Buffer is an in-memory, growable destination: the driver appends to
// buf as the internal output window fills.
type Buffer struct {
	buf *bytes.Buffer
}

func (*Buffer) isDst() {}

// NewBuffer creates a Buffer destination backed by a fresh
// bytes.Buffer; New allocates the windowSize output window that the
// driver flushes into it.
func NewBuffer() *Buffer { return &Buffer{buf: &bytes.Buffer{}} }

// Bytes returns the accumulated output. Only meaningful after End.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// Channel is a destination that accepts contiguous byte ranges via an
// io.Writer sink (the Go analog of a blocking channel consumer).
type Channel struct {
	Sink io.Writer
}

func (Channel) isDst() {}

// Manual is a destination where the caller owns the output window; the
// driver requests more space by returning Partial, the caller installs
// a new window with Renderer.SetWindow and resumes with Renderer.Await.
type Manual struct {
	Buf []byte
	Pos int
	Max int
}

func (Manual) isDst() {}

// OtherDst is an opaque destination: the backend manages output itself
// and never calls the Writeb/Writes/Writebuf primitives (used by
// backends, such as an HTML canvas target, that draw directly into
// their own surface).
type OtherDst struct{}

func (OtherDst) isDst() {}
