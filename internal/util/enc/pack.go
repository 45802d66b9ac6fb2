package enc

// packPhase tells how many bits of the previously read byte are still owed to
// the next symbol. It is named after index*8 - bits, the distance between the
// read position and the emitted bit count.
type packPhase int

const (
	packAligned packPhase = iota // 0: next symbol is the top 6 bits of the next byte
	packCarry2                   // 2: 2 low bits of the previous byte, 4 of the next
	packCarry4                   // 4: 4 low bits of the previous byte, 2 of the next
	packCarry6                   // -2: the 6 low bits of the byte at index
)

var packBitsFromLast = [...]int{
	packAligned: 0,
	packCarry2:  2,
	packCarry4:  4,
	packCarry6:  -2,
}

// BitsFromLast returns index*8 - bits for a cursor in this phase.
func (p packPhase) BitsFromLast() int {
	return packBitsFromLast[p]
}

func (p packPhase) next() packPhase {
	return (p + 1) % 4
}

// advances reports whether producing a symbol in this phase finishes the byte
// at the read position.
func (p packPhase) advances() bool {
	return p != packCarry4
}

// PackCursor regroups a byte buffer into 6-bit symbols, most significant bits
// first. The last symbol is zero-filled on the right.
type PackCursor struct {
	src   []byte
	index int // next byte to read
	bits  int // bits emitted so far
	phase packPhase
}

// NewPackCursor returns a cursor positioned at the start of src.
func NewPackCursor(src []byte) *PackCursor {
	return &PackCursor{src: src}
}

// byteAt returns src[i], or zero past the end of the buffer.
func (c *PackCursor) byteAt(i int) byte {
	if i < len(c.src) {
		return c.src[i]
	}
	return 0
}

// Next returns the next symbol. The second return value is false once every
// bit of the buffer has been emitted.
func (c *PackCursor) Next() (byte, bool) {
	if c.bits >= len(c.src)*8 {
		return 0, false
	}

	var s byte
	switch c.phase {
	case packAligned:
		s = c.src[c.index] >> 2
	case packCarry2:
		s = c.src[c.index-1]<<4&0x30 | c.byteAt(c.index)>>4
	case packCarry4:
		s = c.src[c.index-1]<<2&0x3c | c.byteAt(c.index)>>6
	case packCarry6:
		s = c.src[c.index] & symbolMask
	default:
		panic("enc: unreachable pack phase")
	}

	if c.phase.advances() {
		c.index++
	}
	c.bits += SymbolBits
	c.phase = c.phase.next()
	return s, true
}

// AppendSymbols drains the cursor into dst.
func (c *PackCursor) AppendSymbols(dst []byte) []byte {
	for s, ok := c.Next(); ok; s, ok = c.Next() {
		dst = append(dst, s)
	}
	return dst
}
