package util

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object -- either the error itself, its cause or the first
// error of a multierror. If it's a different kind of error, a generic error code - 99 - is returned.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	if flagsError := findFlagsError(err); flagsError != nil {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
			return
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
		log.Exit(int(flagsError.Type))
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}
}

func findFlagsError(err error) *flags.Error {
	err = errors.Cause(err)
	if merr, ok := err.(*multierror.Error); ok && len(merr.Errors) > 0 {
		err = errors.Cause(merr.Errors[0])
	}
	if flagsError, ok := err.(*flags.Error); ok {
		return flagsError
	}
	return nil
}
