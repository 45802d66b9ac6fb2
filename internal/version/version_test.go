package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, v, summary string) {
		GitTag, Version, GitSummary = tag, v, summary
	}(GitTag, Version, GitSummary)

	GitTag, Version, GitSummary = "", "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	GitSummary = "4cb95ca-dirty"
	require.Equal(t, "4cb95ca-dirty", AppVersion())

	Version = "1.2.0"
	require.Equal(t, "1.2.0", AppVersion())

	GitTag = "v1.2.0"
	require.Equal(t, "v1.2.0", AppVersion())
}

func Test_DetailsSkipEmptyValues(t *testing.T) {
	defer func(commit, date string) {
		GitCommit, BuildDate = commit, date
	}(GitCommit, BuildDate)

	GitCommit, BuildDate = "", "2026-10-16T00:00:00Z"
	details := Details()

	require.Equal(t, Detail{"Built on", "2026-10-16T00:00:00Z"}, details[0])
	require.Equal(t, "Translator", details[len(details)-1].Name)
	require.NotEmpty(t, details[len(details)-1].Value)
	for _, d := range details {
		require.NotEqual(t, "Git commit", d.Name)
	}
}
