package enc

// Transcoder converts binary data to text and back.
type Transcoder interface {
	// Name is the user-friendly name of this transcoder
	Name() string

	// Encode will take an array of bytes and encode it as text
	Encode([]byte) string

	// Decode is the reverse process of encoding. It does not validate its input.
	Decode([]byte) []byte

	// BlocksizeRaw returns the block size (number of bytes) this transcoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of bytes) output for every input block
	BlocksizeEncoded() int
}
