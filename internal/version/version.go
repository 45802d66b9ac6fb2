package version

import "github.com/bokysan/b64lane/internal/util/enc"

const UnknownVersion = "unknown"

// Injected with -ldflags "-X github.com/bokysan/b64lane/internal/version.<Name>=<value>".
var (
	GitCommit  string // e.g. "0b5ed7a"
	GitBranch  string
	GitTag     string // e.g. "v1.5.0"
	GitSummary string // git describe --tags --dirty --always
	GitState   string // "clean" or "dirty"
	BuildDate  string // RFC3339, UTC
	Version    string // ./VERSION, if present
	GoVersion  string
)

// Detail is one labelled line of build information.
type Detail struct {
	Name  string
	Value string
}

// AppVersion returns the most specific version information available.
func AppVersion() string {
	for _, v := range []string{GitTag, Version, GitSummary} {
		if v != "" {
			return v
		}
	}
	return UnknownVersion
}

// Details lists the known build metadata in display order, followed by the
// block translator picked for this machine. Empty values are left out.
func Details() []Detail {
	all := []Detail{
		{"Built on", BuildDate},
		{"Git commit", GitCommit},
		{"Git tag", GitTag},
		{"Git branch", GitBranch},
		{"Git state", GitState},
		{"Go version", GoVersion},
		{"Translator", enc.TranslatorName()},
	}
	res := all[:0]
	for _, d := range all {
		if d.Value != "" {
			res = append(res, d)
		}
	}
	return res
}
