package tinyfmt

// output assembles rendered text into a fixed-capacity destination.
// Once the destination fills up it keeps accumulating the logical length
// without writing further bytes; the logical length is what the entry
// points return.
type output struct {
	dst []byte
	pos int // next write offset within dst
	n   int // logical length, unbounded by capacity
}

func (o *output) writeString(s string) {
	o.n += len(s)
	if o.pos < len(o.dst) {
		o.pos += copy(o.dst[o.pos:], s)
	}
}

func (o *output) writeBytes(b []byte) {
	o.n += len(b)
	if o.pos < len(o.dst) {
		o.pos += copy(o.dst[o.pos:], b)
	}
}

// terminate writes the trailing NUL, displacing the final content byte
// when the destination is full. A zero-capacity destination is left
// untouched.
func (o *output) terminate() {
	switch {
	case len(o.dst) == 0:
	case o.pos < len(o.dst):
		o.dst[o.pos] = 0
	default:
		o.dst[len(o.dst)-1] = 0
	}
}
