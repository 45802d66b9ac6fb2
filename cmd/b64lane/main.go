package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/b64lane/internal/args"
	"github.com/bokysan/b64lane/internal/commands/transcode"
	"github.com/bokysan/b64lane/internal/commands/version"
	b64Flags "github.com/bokysan/b64lane/internal/flags"
	"github.com/bokysan/b64lane/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// B64Lane is the main executable
type B64Lane struct {
	parser    *flags.Parser
	transcode *transcode.Command
}

// NewB64Lane will create a new instance of B64Lane and initialize the parser
func NewB64Lane() *B64Lane {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	bl := &B64Lane{
		parser:    flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
		transcode: transcode.NewCommand(),
	}
	bl.parser.SubcommandsOptional = true

	bl.setupGeneral()
	bl.setupTranscode()
	bl.setupVersion()

	return bl
}

// setupGeneral will configure general options
func (bl *B64Lane) setupGeneral() {
	if _, err := bl.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupTranscode adds the encode / decode actions as top level options
func (bl *B64Lane) setupTranscode() {
	if _, err := bl.parser.AddGroup("Action", "Transcoding actions", bl.transcode); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (bl *B64Lane) setupVersion() {
	_, err := bl.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		version.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// Run parses the command line and executes either the selected command or the transcoding action
func (bl *B64Lane) Run(argv []string) error {
	rest, err := bl.parser.ParseArgs(argv)
	if err != nil {
		return err
	}
	if bl.parser.Active != nil {
		return nil
	}
	return bl.transcode.Execute(rest)
}

// main starts b64lane and reads the configuration file
func main() {
	b64Lane := NewB64Lane()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		yamlParser := b64Flags.NewYamlParser(b64Lane.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	util.MustErrorNilOrExit(b64Lane.Run(os.Args[1:]))
}
