package enc

// unpackPhase tells how many bits of the current symbol are still unread.
type unpackPhase int

const (
	unpackLeft6 unpackPhase = iota
	unpackLeft4
	unpackLeft2
)

// Left returns the number of unread bits of the current symbol.
func (p unpackPhase) Left() int {
	switch p {
	case unpackLeft6:
		return 6
	case unpackLeft4:
		return 4
	case unpackLeft2:
		return 2
	}
	panic("enc: unreachable unpack phase")
}

// shift is how far the previous symbol moves left to make room for the head
// of the current one.
func (p unpackPhase) shift() uint {
	return uint(8 - p.Left())
}

func (p unpackPhase) next() unpackPhase {
	return (p + 1) % 3
}

// UnpackCursor regroups 6-bit symbols back into bytes, emitting one byte per
// eight accumulated bits. Trailing bits that do not fill a byte are dropped.
type UnpackCursor struct {
	src   []byte
	index int // current symbol, src[index-1] is the previous one
	phase unpackPhase
}

// NewUnpackCursor returns a cursor positioned at the start of src.
func NewUnpackCursor(src []byte) *UnpackCursor {
	return &UnpackCursor{src: src, index: 1}
}

// Next returns the next byte. The second return value is false once fewer
// than eight bits remain.
func (c *UnpackCursor) Next() (byte, bool) {
	if c.index >= len(c.src) {
		return 0, false
	}

	left := c.phase.Left()
	b := c.src[c.index-1]<<c.phase.shift() | c.src[c.index]>>uint(left-2)

	c.index++
	if c.phase == unpackLeft2 {
		// The current symbol is used up; the next byte starts a fresh group.
		c.index++
	}
	c.phase = c.phase.next()
	return b, true
}

// AppendBytes drains the cursor into dst.
func (c *UnpackCursor) AppendBytes(dst []byte) []byte {
	for b, ok := c.Next(); ok; b, ok = c.Next() {
		dst = append(dst, b)
	}
	return dst
}
