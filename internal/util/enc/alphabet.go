package enc

const (
	// Alphabet is the RFC 4648 standard Base64 alphabet, indexed by symbol value.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// PadChar is appended to the encoded text so its length is a multiple of four.
	PadChar = '='

	// SymbolBits is the number of significant bits in a symbol.
	SymbolBits = 6

	symbolMask = 1<<SymbolBits - 1
)

// charRange is one contiguous run of the alphabet: width symbols starting at
// symbol map onto width characters starting at char.
type charRange struct {
	symbol byte
	char   byte
	width  byte
}

// alphabetRanges is the only description of the alphabet. Both translator
// directions and the scalar lookups are generated from it.
var alphabetRanges = [...]charRange{
	{symbol: 0, char: 'A', width: 26},
	{symbol: 26, char: 'a', width: 26},
	{symbol: 52, char: '0', width: 10},
	{symbol: 62, char: '+', width: 1},
	{symbol: 63, char: '/', width: 1},
}

// padLength maps len(src) % 3 to the number of pad characters.
var padLength = [3]int{0, 2, 1}

// symbolChar returns the alphabet character for a symbol. Bits 6 and 7 are ignored.
func symbolChar(s byte) byte {
	return Alphabet[s&symbolMask]
}

// charSymbol returns the symbol for an alphabet character. The second return
// value is false when c is not part of the alphabet.
func charSymbol(c byte) (byte, bool) {
	for _, r := range alphabetRanges {
		if c >= r.char && c < r.char+r.width {
			return c - r.char + r.symbol, true
		}
	}
	return 0, false
}
