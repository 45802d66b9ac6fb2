package transcode

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/b64lane/internal/logging"
	"github.com/bokysan/b64lane/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command runs one transcoding action on a value given on the command line.
type Command struct {
	Encode *string `short:"e" long:"encode" value-name:"VALUE" description:"Encode VALUE to Base64 (use --encode=VALUE when VALUE starts with a dash)"`
	Decode *string `short:"d" long:"decode" value-name:"VALUE" description:"Decode Base64 VALUE (use --decode=VALUE when VALUE starts with a dash)"`

	Out   io.Writer      `no-flag:"true"`
	Codec enc.Transcoder `no-flag:"true"`
}

func NewCommand() *Command {
	return &Command{
		Out:   os.Stdout,
		Codec: &enc.Base64Encoder{},
	}
}

// Validate checks that exactly one action was requested and nothing else was given.
func (c *Command) Validate(args []string) error {
	var errs error

	if c.Encode == nil && c.Decode == nil {
		errs = multierror.Append(errs, &flags.Error{
			Type:    flags.ErrRequired,
			Message: "one of the actions `-e, --encode' or `-d, --decode' must be specified",
		})
	}
	if c.Encode != nil && c.Decode != nil {
		errs = multierror.Append(errs, &flags.Error{
			Type:    flags.ErrInvalidChoice,
			Message: "actions `-e, --encode' and `-d, --decode' are mutually exclusive",
		})
	}
	for _, a := range args {
		errs = multierror.Append(errs, &flags.Error{
			Type:    flags.ErrUnknownCommand,
			Message: fmt.Sprintf("unrecognized action `%s'", a),
		})
	}

	return errs
}

// Run transcodes the requested value and writes it, followed by a newline, to Out.
func (c *Command) Run() error {
	var res []byte
	if c.Encode != nil {
		log.Debugf("Encoding %d bytes with %v", len(*c.Encode), c.Codec.Name())
		res = []byte(c.Codec.Encode([]byte(*c.Encode)))
	} else {
		log.Debugf("Decoding %d bytes with %v", len(*c.Decode), c.Codec.Name())
		res = c.Codec.Decode([]byte(*c.Decode))
	}

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Result:\n%s", spew.Sdump(res))
	}

	if _, err := c.Out.Write(append(res, '\n')); err != nil {
		return errors.Wrapf(err, "Could not write %d bytes of output", len(res)+1)
	}
	return nil
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	if err := c.Validate(args); err != nil {
		return err
	}
	return c.Run()
}
