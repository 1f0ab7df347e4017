package field

// OpKind identifies a recorded drawing primitive.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64 // line end; unused for circles
	Size   float64 // circle radius or line width
	Color  Color
}

// Recorder is a Surface that records drawing calls instead of rasterizing
// them. Ops holds the calls since the last Clear; the counters accumulate
// over the recorder's lifetime.
type Recorder struct {
	Width, Height int
	Ops           []Op

	Clears  int
	Circles int
	Lines   int
	Resizes int
}

// NewRecorder creates a recorder with the given buffer size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Resize records the new buffer dimensions.
func (r *Recorder) Resize(width, height int) {
	r.Width, r.Height = width, height
	r.Resizes++
}

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
	r.Clears++
}

// FillCircle records a filled circle.
func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: x, Y0: y, Size: radius, Color: c})
	r.Circles++
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Size: width, Color: c})
	r.Lines++
}

// Frame returns the ops of the given kind recorded since the last Clear.
func (r *Recorder) Frame(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Draws returns the total number of circles and lines ever recorded.
func (r *Recorder) Draws() int {
	return r.Circles + r.Lines
}
