package version

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/b64lane/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the application version and build details.
type Command struct {
	Out io.Writer `no-flag:"true"`
}

func NewCommand() *Command {
	return &Command{
		Out: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	i.Print()
	os.Exit(0)
	return nil
}

// Print writes the banner and all known build details to Out.
//
//goland:noinspection GoUnhandledErrorResult
func (i *Command) Print() {
	fmt.Fprintf(i.Out, Bold+BackgroundBlue+
		LightGray+" B64LANE - Base64 lane transcoder "+White+"%s"+LightGray+" "+Reset+"\n",
		version.AppVersion())
	for _, d := range version.Details() {
		fmt.Fprintf(i.Out, DarkGray+" %-12s"+White+"%+v"+Reset+"\n", d.Name, d.Value)
	}
}

