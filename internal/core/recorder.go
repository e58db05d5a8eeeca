package core

// DrawOp identifies a Canvas call captured by a Recorder.
type DrawOp int

const (
	OpClear DrawOp = iota
	OpRect
	OpCircle
	OpPolygon
	OpText
)

// DrawCall is a single recorded Canvas call.
type DrawCall struct {
	Op     DrawOp
	Color  Color
	Rect   Rect    // OpRect; for OpCircle the circle's bounding box
	Points []Point // OpPolygon
	Text   string  // OpText
	X, Y   float64 // OpText position
}

// Recorder is a headless Canvas that records every call in order.
type Recorder struct {
	W, H  float64
	Calls []DrawCall
}

// NewRecorder creates a recorder with the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(c Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpClear, Color: c, Rect: NewRect(0, 0, r.W, r.H)})
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpRect, Color: c, Rect: rect})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	r.Calls = append(r.Calls, DrawCall{
		Op:    OpCircle,
		Color: c,
		Rect:  NewRect(cx-radius, cy-radius, radius*2, radius*2),
	})
}

func (r *Recorder) FillPolygon(pts []Point, c Color) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.Calls = append(r.Calls, DrawCall{Op: OpPolygon, Color: c, Points: cp})
}

func (r *Recorder) FillText(x, y float64, text string, c Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpText, Color: c, Text: text, X: x, Y: y})
}

// MeasureText assumes a fixed 10-unit advance per rune.
func (r *Recorder) MeasureText(text string) float64 {
	return float64(len([]rune(text))) * 10
}

// LineHeight is a fixed 20 units.
func (r *Recorder) LineHeight() float64 {
	return 20
}

// Texts returns the strings of all recorded text calls.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
