package version

import (
	"bytes"
	"testing"

	"github.com/bokysan/b64lane/internal/version"
	"github.com/stretchr/testify/require"
)

func Test_PrintVersion(t *testing.T) {
	defer func(tag, commit string) {
		version.GitTag, version.GitCommit = tag, commit
	}(version.GitTag, version.GitCommit)
	version.GitTag = "v9.9.9"
	version.GitCommit = ""

	out := &bytes.Buffer{}
	cmd := &Command{Out: out}
	cmd.Print()

	require.Contains(t, out.String(), "B64LANE")
	require.Contains(t, out.String(), "v9.9.9")
	require.Contains(t, out.String(), "Translator")
	require.NotContains(t, out.String(), "Git commit")
}
