package enc

const (
	laneCount = len(alphabetRanges)

	lsbs = 0x0101010101010101
	msbs = 0x8080808080808080
)

// laneVectors holds one range as 16-byte broadcast vectors. The layout is read
// by the assembly translator: gt at +0, lt at +16, add at +32.
type laneVectors struct {
	gt  [BlockSize]byte // low bound minus one
	lt  [BlockSize]byte // high bound (exclusive)
	add [BlockSize]byte // offset added to lanes inside the range
}

// laneWords holds one range as 64-bit broadcast words for the portable translator.
type laneWords struct {
	lo   uint64 // low bound in every byte
	bias uint64 // 0x80 minus the high bound in every byte
	add  uint64
}

// laneTable describes one translation direction.
type laneTable struct {
	vec   [laneCount]laneVectors
	words [laneCount]laneWords
}

// laneBounds is a range expressed in the translator's input domain.
type laneBounds struct {
	lo, hi, add byte
}

var (
	encodeLanes = newLaneTable(func(r charRange) laneBounds {
		return laneBounds{lo: r.symbol, hi: r.symbol + r.width, add: r.char - r.symbol}
	})
	decodeLanes = newLaneTable(func(r charRange) laneBounds {
		return laneBounds{lo: r.char, hi: r.char + r.width, add: r.symbol - r.char}
	})
)

// newLaneTable builds a lane table from alphabetRanges. Every bound must stay
// below 0x80: the hardware path compares signed bytes, the portable path uses
// the top bit of each lane as its borrow flag.
func newLaneTable(bounds func(charRange) laneBounds) *laneTable {
	t := &laneTable{}
	for i, r := range alphabetRanges {
		b := bounds(r)
		if b.hi > 0x80 || b.lo >= b.hi {
			panic("enc: lane bounds out of range")
		}
		for j := 0; j < BlockSize; j++ {
			t.vec[i].gt[j] = b.lo - 1
			t.vec[i].lt[j] = b.hi
			t.vec[i].add[j] = b.add
		}
		t.words[i] = laneWords{
			lo:   lsbs * uint64(b.lo),
			bias: lsbs * uint64(0x80-b.hi),
			add:  lsbs * uint64(b.add),
		}
	}
	return t
}
