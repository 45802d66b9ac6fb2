package enc

import "encoding/binary"

// BlockSize is the number of lanes the translator processes at once.
const BlockSize = 16

// Block is a batch of lanes handed to the translator.
type Block [BlockSize]byte

var (
	// translateBlock is replaced at init by a hardware implementation where one exists.
	translateBlock = translateSWAR
	translatorName = "swar"
)

// TranslatorName names the block translator in use.
func TranslatorName() string {
	return translatorName
}

// translateSWAR runs the range classification over two 64-bit words of eight
// lanes each. For every range a lane mask is built arithmetically and the
// masked offsets are OR-ed together; the ranges are disjoint, so each lane
// receives at most one offset. Lanes with the top bit set never match.
func translateSWAR(dst, src *Block, t *laneTable) {
	for w := 0; w < BlockSize; w += 8 {
		x := binary.LittleEndian.Uint64(src[w:])
		low := x &^ msbs

		var add uint64
		for i := range t.words {
			r := &t.words[i]
			ge := (low | msbs) - r.lo // top bit set where lane >= lo
			lt := ^(low + r.bias)     // top bit set where lane < hi
			in := ge & lt &^ x & msbs
			add |= (in >> 7) * 0xff & r.add
		}

		binary.LittleEndian.PutUint64(dst[w:], addLanes(x, add))
	}
}

// addLanes adds a and b byte-wise modulo 256 without carries between lanes.
func addLanes(a, b uint64) uint64 {
	return ((a &^ msbs) + (b &^ msbs)) ^ ((a ^ b) & msbs)
}

// translate appends the translation of src to dst, one block at a time. The
// final partial block is zero-filled and only its valid lanes are kept.
func translate(dst, src []byte, t *laneTable) []byte {
	var in, out Block
	for len(src) > 0 {
		n := copy(in[:], src)
		for i := n; i < BlockSize; i++ {
			in[i] = 0
		}
		translateBlock(&out, &in, t)
		dst = append(dst, out[:n]...)
		src = src[n:]
	}
	return dst
}
