package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/uacore/uacore-go/internal/cli/output"
	"github.com/uacore/uacore-go/internal/server/config"
)

// ShowCommand returns the show subcommand.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the configuration with credentials masked",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return cli.Exit(fmt.Sprintf("load: %v", err), 1)
			}

			// Never print raw credentials, whatever the format.
			cfg = config.Sanitize(cfg)

			format := output.Format(c.String("output"))
			var data any = cfg
			if format == output.FormatTable {
				data = endpointTable(cfg)
			}

			if err := output.NewFormatter(format).Format(c.App.Writer, data); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}

func endpointTable(cfg *config.ServerConfig) *output.Table {
	table := &output.Table{}
	table.SetHeaders("NAME", "PATH", "POLICY", "MODE", "ANONYMOUS", "USER")
	for _, e := range cfg.Endpoints {
		table.AddRow(e.Name, e.Path, e.SecurityPolicy.String(), e.SecurityMode.String(),
			strconv.FormatBool(e.Anonymous), e.User)
	}
	return table
}
