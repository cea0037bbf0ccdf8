// Package render implements the streaming renderer driver (§3.6, §4.4):
// a generic state machine that feeds a vg.Image through a
// backend-supplied Target, across one of four destination modes, while
// surfacing non-fatal warnings and exposing the backend SPI (the
// writer primitives, the current output window, the limit, and the
// metadata map).
package render

import (
	"bytes"
	"errors"
	"io"

	"github.com/monstasat/vg"
	"github.com/monstasat/vg/meta"
)

// Sentinel errors for invalid driver transitions (§4.4).
var (
	// ErrAwaitExpected is returned by Await when the driver is not
	// parked waiting for one.
	ErrAwaitExpected = errors.New("render: await not expected")
	// ErrEndRendered is returned by any event sent after End.
	ErrEndRendered = errors.New("render: renderer has ended")
	// ErrSingleImage is returned by a second Image event in Once mode.
	ErrSingleImage = errors.New("render: renderer accepts only one image")
)

// Code is the return status of a render step (§4.4).
type Code int

const (
	// Ok means the event was fully consumed.
	Ok Code = iota
	// Partial means the backend wants more output space; only possible
	// under the Manual destination.
	Partial
)

// Mode selects how many images a Renderer will accept (§4.4).
type Mode int

const (
	// Once permits exactly one Image event before End.
	Once Mode = iota
	// Loop permits any number of Image events before End.
	Loop
)

type state int

const (
	stateAwaitingImage state = iota
	stateRendering
	stateAwaitingEnd
	stateEnded
)

// Renderable is a (size, view, image) triple: size is the physical
// output size in millimeters, view is the rectangle of the image's
// coordinate space mapped onto size (§3.6).
type Renderable struct {
	Size  vg.Size2
	View  vg.Box2
	Image vg.Image
}

// Target is the backend-supplied continuation the driver feeds a
// Renderable through. Implementations write output via the Renderer's
// Writeb/Writes/Writebuf primitives, except under an OtherDst
// destination, where the target manages its output itself.
type Target interface {
	// Render advances r through one Renderable, returning Ok once fully
	// written or Partial if it parked on a full Manual window.
	Render(r *Renderer, ren Renderable) (Code, error)
	// Finish is called once, on End, after the last Renderable (if any)
	// has fully rendered; it lets a target write trailing output (e.g. a
	// file footer).
	Finish(r *Renderer) (Code, error)
}

// Renderer owns the destination descriptor, the output window, the
// soft output-size limit, the warning callback, the immutable metadata
// map, and the current lifecycle state (§3.6).
type Renderer struct {
	dst   Dst
	mode  Mode
	state state
	once  bool // an Image event has already been accepted, for Once mode

	window []byte
	pos    int
	max    int

	limit int
	warn  func(Warning)
	meta  meta.Meta

	target  Target
	pending func() (Code, error) // parked continuation, set when Partial is returned under Manual
}

// New creates a Renderer writing to dst in the given Mode, driven by
// target. limit is a soft output-size budget the target may consult;
// warn receives non-fatal Warning events, or may be nil to discard
// them; md is attached as the renderer's immutable metadata.
func New(dst Dst, mode Mode, target Target, limit int, warn func(Warning), md meta.Meta) *Renderer {
	if warn == nil {
		warn = func(Warning) {}
	}
	r := &Renderer{dst: dst, mode: mode, target: target, limit: limit, warn: warn, meta: md}
	switch d := dst.(type) {
	case *Buffer:
		r.window = make([]byte, windowSize)
		r.max = windowSize
	case Channel:
		r.window = make([]byte, windowSize)
		r.max = windowSize
	case Manual:
		r.window, r.pos, r.max = d.Buf, d.Pos, d.Max
	}
	return r
}

// Limit returns the soft output-size budget.
func (r *Renderer) Limit() int { return r.limit }

// Meta returns the renderer's immutable metadata map.
func (r *Renderer) Meta() meta.Meta { return r.meta }

// Warn reports a non-fatal Warning. Order and uniqueness are not
// guaranteed (§4.4).
func (r *Renderer) Warn(w Warning) { r.warn(w) }

// Window returns the current output window's backing buffer and the
// bounds [Pos, Max) available to write into.
func (r *Renderer) Window() (buf []byte, pos, max int) { return r.window, r.pos, r.max }

// Image feeds a Renderable into the driver (§4.4's Image event).
func (r *Renderer) Image(ren Renderable) (Code, error) {
	switch r.state {
	case stateEnded:
		return Ok, ErrEndRendered
	case stateAwaitingImage:
		if r.mode == Once && r.once {
			return Ok, ErrSingleImage
		}
	case stateAwaitingEnd:
		if r.mode == Once {
			return Ok, ErrSingleImage
		}
	case stateRendering:
		// A Renderable arriving while another is still parked on a full
		// Manual window is a protocol violation from the caller; treat it
		// as "await expected" since an Await was owed first.
		return Ok, ErrAwaitExpected
	}

	r.state = stateRendering
	r.once = true
	code, err := r.target.Render(r, ren)
	if err != nil {
		return code, err
	}
	if code == Partial {
		r.pending = func() (Code, error) { return r.target.Render(r, ren) }
		return Partial, nil
	}
	if r.mode == Once {
		r.state = stateAwaitingEnd
	} else {
		r.state = stateAwaitingImage
	}
	return Ok, nil
}

// Await resumes a continuation parked by a Partial return, after the
// caller installs a fresh window with SetWindow (§4.4's Await event,
// Manual mode only).
func (r *Renderer) Await() (Code, error) {
	if r.state != stateRendering || r.pending == nil {
		return Ok, ErrAwaitExpected
	}
	pending := r.pending
	r.pending = nil
	code, err := pending()
	if err != nil {
		return code, err
	}
	if code == Partial {
		r.pending = pending
		return Partial, nil
	}
	if r.mode == Once {
		r.state = stateAwaitingEnd
	} else {
		r.state = stateAwaitingImage
	}
	return Ok, nil
}

// SetWindow installs a fresh output window for Manual mode, to be
// followed by Await.
func (r *Renderer) SetWindow(buf []byte, pos, max int) {
	r.window, r.pos, r.max = buf, pos, max
}

// End feeds the End event, finalizing the renderer.
func (r *Renderer) End() (Code, error) {
	if r.state == stateEnded {
		return Ok, ErrEndRendered
	}
	if r.state == stateRendering {
		return Ok, ErrAwaitExpected
	}
	code, err := r.target.Finish(r)
	if err != nil {
		return code, err
	}
	if code == Partial {
		r.pending = func() (Code, error) { return r.target.Finish(r) }
		r.state = stateRendering
		return Partial, nil
	}
	r.flushFinal()
	r.state = stateEnded
	return Ok, nil
}

func (r *Renderer) flushFinal() {
	switch d := r.dst.(type) {
	case *Buffer:
		d.buf.Write(r.window[:r.pos])
	case Channel:
		if r.pos > 0 {
			_, _ = d.Sink.Write(r.window[:r.pos])
		}
	}
}

// Writeb writes one byte to the output window, flushing (and, in
// Buffer/Channel mode, resetting pos) when the window fills (§4.4).
func (r *Renderer) Writeb(b byte) (Code, error) {
	if r.pos >= r.max {
		if code, err := r.flush(); code != Ok || err != nil {
			return code, err
		}
	}
	r.window[r.pos] = b
	r.pos++
	return Ok, nil
}

// Writes writes l bytes from s starting at offset j to the output
// window, flushing as needed (§4.4).
func (r *Renderer) Writes(s []byte, j, l int) (Code, error) {
	for k := 0; k < l; k++ {
		if code, err := r.Writeb(s[j+k]); code != Ok || err != nil {
			return code, err
		}
	}
	return Ok, nil
}

// Writebuf writes l bytes from a growable buffer starting at offset j
// to the output window, flushing as needed (§4.4).
func (r *Renderer) Writebuf(buf *bytes.Buffer, j, l int) (Code, error) {
	return r.Writes(buf.Bytes(), j, l)
}

// flush handles a full output window per destination kind (§4.4): in
// Buffer mode it appends the window to the output buffer and resets
// pos; in Channel mode it writes the window to the sink and resets
// pos; in Manual mode it reports Partial so the caller installs a new
// window and resumes with Await.
func (r *Renderer) flush() (Code, error) {
	switch d := r.dst.(type) {
	case *Buffer:
		d.buf.Write(r.window[:r.pos])
		r.pos = 0
		return Ok, nil
	case Channel:
		if _, err := d.Sink.Write(r.window[:r.pos]); err != nil {
			return Ok, err
		}
		r.pos = 0
		return Ok, nil
	case Manual:
		return Partial, nil
	default:
		// Other: the backend manages its own output and should not be
		// calling the window-based writer primitives.
		return Ok, io.ErrShortWrite
	}
}
