package supporting

import (
	"github.com/go-errors/errors"
	"github.com/urfave/cli"
)

func AdaptError(err error, exitCode int) *cli.ExitError {
	if err == nil {
		return nil
	}
	if e, ok := err.(*cli.ExitError); ok {
		return e
	}
	if e, ok := err.(*errors.Error); ok {
		return cli.NewExitError(e.Error(), exitCode)
	}
	return cli.NewExitError(err.Error(), exitCode)
}
