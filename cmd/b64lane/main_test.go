package main

import (
	"bytes"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func newTestB64Lane() (*B64Lane, *bytes.Buffer) {
	out := &bytes.Buffer{}
	bl := NewB64Lane()
	bl.parser.Options &^= flags.PrintErrors
	bl.transcode.Out = out
	return bl, out
}

func Test_RunEncode(t *testing.T) {
	bl, out := newTestB64Lane()
	require.NoError(t, bl.Run([]string{"--encode", "light work."}))
	require.Equal(t, "bGlnaHQgd29yay4=\n", out.String())
}

func Test_RunDecode(t *testing.T) {
	bl, out := newTestB64Lane()
	require.NoError(t, bl.Run([]string{"-d", "bGlnaHQgd29yaw=="}))
	require.Equal(t, "light work\n", out.String())
}

func Test_RunWithoutAction(t *testing.T) {
	bl, out := newTestB64Lane()
	require.Error(t, bl.Run([]string{}))
	require.Empty(t, out.String())
}

func Test_RunUnknownFlag(t *testing.T) {
	bl, _ := newTestB64Lane()
	err := bl.Run([]string{"-x", "value"})
	require.Error(t, err)
	require.Equal(t, flags.ErrUnknownFlag, err.(*flags.Error).Type)
}
