package enc

import "strings"

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the standard alphabet
// and '=' padding.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) Encode(data []byte) string {
	return Encode(data)
}

func (b *Base64Encoder) Decode(data []byte) []byte {
	return Decode(data)
}

func (b *Base64Encoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64Encoder) BlocksizeEncoded() int {
	return 4
}

// -------------------------------------------------------

// EncodedLen returns the length of the padded encoding of n bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the number of bytes n symbols carry, padding included.
func DecodedLen(n int) int {
	return n * SymbolBits / 8
}

// Encode regroups src into symbols, translates them to the alphabet and pads
// the result to a multiple of four characters.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	symbols := NewPackCursor(src).AppendSymbols(make([]byte, 0, (len(src)*8+SymbolBits-1)/SymbolBits))

	var sb strings.Builder
	sb.Grow(EncodedLen(len(src)))
	sb.Write(translate(make([]byte, 0, len(symbols)), symbols, encodeLanes))
	for i := 0; i < padLength[len(src)%3]; i++ {
		sb.WriteByte(PadChar)
	}
	return sb.String()
}

// Decode translates src back to symbols and regroups them into bytes. Pad
// characters travel through the translator and repacker untouched; the bytes
// they produce are cut from the tail afterwards. Characters outside the
// alphabet are not rejected and yield unspecified bytes.
func Decode(src []byte) []byte {
	symbols := translate(make([]byte, 0, len(src)), src, decodeLanes)
	out := NewUnpackCursor(symbols).AppendBytes(make([]byte, 0, DecodedLen(len(symbols))))
	return out[:len(out)-padBytes(src, len(out))]
}

// padBytes returns how many trailing bytes of a decoded buffer of length n
// were produced by pad characters at the end of src. It never exceeds two
// and never exceeds n.
func padBytes(src []byte, n int) int {
	p := 0
	for p < 2 && p < len(src) && src[len(src)-1-p] == PadChar {
		p++
	}
	if p > n {
		p = n
	}
	return p
}
