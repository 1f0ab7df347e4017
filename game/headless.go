package game

import (
	"context"
	"sync"
	"time"

	"github.com/pthm-cable/plexus/field"
)

// HeadlessHost runs the game without a window. It draws onto a
// field.Recorder and paces frames with a ticker at the target FPS, or as
// fast as possible when the FPS is zero or negative.
//
// All methods except Close may be called from other goroutines while Run
// is using the host.
type HeadlessHost struct {
	recorder *field.Recorder
	fps      int
	ticker   *time.Ticker

	mu        sync.Mutex
	maxFrames int64
	frames    int64
	last      Status
	width     int
	height    int
	visible   bool
	commands  []Command
}

// NewHeadlessHost creates a visible headless host of the given size.
func NewHeadlessHost(width, height, fps int) *HeadlessHost {
	return &HeadlessHost{
		recorder: field.NewRecorder(width, height),
		fps:      fps,
		width:    width,
		height:   height,
		visible:  true,
	}
}

// SetMaxFrames makes NextFrame report closed after n frames (0 = unlimited).
func (h *HeadlessHost) SetMaxFrames(n int64) {
	h.mu.Lock()
	h.maxFrames = n
	h.mu.Unlock()
}

// SetVisible sets the visibility reported with the next frame.
func (h *HeadlessHost) SetVisible(visible bool) {
	h.mu.Lock()
	h.visible = visible
	h.mu.Unlock()
}

// SetSize sets the surface size reported with the next frame.
func (h *HeadlessHost) SetSize(width, height int) {
	h.mu.Lock()
	h.width, h.height = width, height
	h.mu.Unlock()
}

// Send queues a command for delivery with the next frame.
func (h *HeadlessHost) Send(cmd Command) {
	h.mu.Lock()
	h.commands = append(h.commands, cmd)
	h.mu.Unlock()
}

// NextFrame waits for the next ticker beat and reports the current size,
// visibility and queued commands.
func (h *HeadlessHost) NextFrame(ctx context.Context) (Frame, bool) {
	h.mu.Lock()
	done := h.maxFrames > 0 && h.frames >= h.maxFrames
	h.mu.Unlock()
	if done {
		return Frame{}, false
	}

	if h.fps > 0 {
		if h.ticker == nil {
			h.ticker = time.NewTicker(time.Second / time.Duration(h.fps))
		}
		select {
		case <-ctx.Done():
			return Frame{}, false
		case <-h.ticker.C:
		}
	} else if ctx.Err() != nil {
		return Frame{}, false
	}

	h.mu.Lock()
	f := Frame{
		Width:    h.width,
		Height:   h.height,
		Visible:  h.visible,
		Commands: h.commands,
	}
	h.commands = nil
	h.frames++
	h.mu.Unlock()

	return f, true
}

// Surface returns the recording surface.
func (h *HeadlessHost) Surface() field.Surface {
	return h.recorder
}

// Recorder returns the recording surface with its draw counters.
func (h *HeadlessHost) Recorder() *field.Recorder {
	return h.recorder
}

// Present stores the status of the last tick.
func (h *HeadlessHost) Present(s Status) {
	h.mu.Lock()
	h.last = s
	h.mu.Unlock()
}

// LastStatus returns the status passed to the most recent Present.
func (h *HeadlessHost) LastStatus() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Frames returns the number of frames handed out.
func (h *HeadlessHost) Frames() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Close stops the ticker.
func (h *HeadlessHost) Close() {
	if h.ticker != nil {
		h.ticker.Stop()
	}
}
