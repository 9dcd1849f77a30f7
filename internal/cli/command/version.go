package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/uacore/uacore-go/internal/infra/buildinfo"
)

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, buildinfo.String())
			return nil
		},
	}
}
