package enc

import (
	"encoding/base64"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

var encodeVectors = []struct {
	plain   string
	encoded string
}{
	{"", ""},
	{"encode me senpai uwu :3", "ZW5jb2RlIG1lIHNlbnBhaSB1d3UgOjM="},
	{"light work.", "bGlnaHQgd29yay4="},
	{"light work", "bGlnaHQgd29yaw=="},
	{"light wor", "bGlnaHQgd29y"},
	{"light wo", "bGlnaHQgd28="},
	{"light w", "bGlnaHQgdw=="},
	{"Many hands make light work.", "TWFueSBoYW5kcyBtYWtlIGxpZ2h0IHdvcmsu"},
	{"Line1\n    Line2\n        Line3", "TGluZTEKICAgIExpbmUyCiAgICAgICAgTGluZTM="},
}

func Test_Base64Encode(t *testing.T) {
	for _, v := range encodeVectors {
		require.Equal(t, v.encoded, Encode([]byte(v.plain)), "encoding %q", v.plain)
	}
}

func Test_Base64Decode(t *testing.T) {
	for _, v := range encodeVectors {
		require.Equal(t, v.plain, string(Decode([]byte(v.encoded))), "decoding %q", v.encoded)
	}
	require.Empty(t, Decode(nil))
	require.Equal(t, "a\tb  \n\tc", string(Decode([]byte(Encode([]byte("a\tb  \n\tc"))))))
}

func Test_Base64Encoder(t *testing.T) {
	var encoder Transcoder = &Base64Encoder{}
	encoded := encoder.Encode(encoderTest)
	require.Equal(t, base64.StdEncoding.EncodeToString(encoderTest), encoded)
	require.Equal(t, encoderTest, encoder.Decode([]byte(encoded)))
	require.Equal(t, "Base64", encoder.Name())
	require.Equal(t, 3, encoder.BlocksizeRaw())
	require.Equal(t, 4, encoder.BlocksizeEncoded())
}

func Test_Base64BlockBoundaries(t *testing.T) {
	for n := 0; n <= 4*BlockSize+1; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(n*13 + i*151)
		}
		encoded := Encode(src)
		require.Equal(t, base64.StdEncoding.EncodeToString(src), encoded, "length %d", n)
		require.Equal(t, src, Decode([]byte(encoded)), "length %d", n)
	}
}

func Test_Base64LengthAndPadding(t *testing.T) {
	for n := 0; n < 50; n++ {
		encoded := Encode(make([]byte, n))
		require.Len(t, encoded, EncodedLen(n))
		require.Zero(t, len(encoded)%4)
		require.Equal(t, padLength[n%3], strings.Count(encoded, "="))
		require.True(t, strings.HasSuffix(encoded, strings.Repeat("=", padLength[n%3])))
		for _, c := range strings.TrimRight(encoded, "=") {
			require.Contains(t, Alphabet, string(c))
		}
	}
}

func Test_Base64RoundTrip(t *testing.T) {
	roundTrip := func(src []byte) bool {
		if src == nil {
			src = []byte{}
		}
		decoded := Decode([]byte(Encode(src)))
		return string(decoded) == string(src) && Encode(src) == base64.StdEncoding.EncodeToString(src)
	}
	require.NoError(t, quick.Check(roundTrip, &quick.Config{MaxCount: 2000}))
}

func Test_Base64DecodeMalformed(t *testing.T) {
	inputs := []string{"=", "==", "===", "====", "A", "A=", "-_-_", "\xff\x80\x00\x7f", "TQ=", "TQ==="}
	for _, in := range inputs {
		require.NotPanics(t, func() { Decode([]byte(in)) }, "input %q", in)
	}
	require.Empty(t, Decode([]byte("==")))
	require.Equal(t, "M", string(Decode([]byte("TQ=="))))
}

func Test_PadBytes(t *testing.T) {
	require.Equal(t, 0, padBytes(nil, 0))
	require.Equal(t, 0, padBytes([]byte("TWFu"), 3))
	require.Equal(t, 1, padBytes([]byte("TWE="), 3))
	require.Equal(t, 2, padBytes([]byte("TQ=="), 3))
	require.Equal(t, 2, padBytes([]byte("T==="), 3))
	require.Equal(t, 1, padBytes([]byte("=="), 1))
	require.Equal(t, 0, padBytes([]byte("="), 0))
}
