package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/uacore/uacore-go/internal/cli/output"
)

// ValidateCommand returns the validate subcommand.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check the configuration file against every invariant",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return cli.Exit(fmt.Sprintf("load: %v", err), 1)
			}

			violations := cfg.Validate()
			if len(violations) == 0 {
				getLogger(c).Info("configuration is valid",
					"path", c.String("config"),
					"endpoints", len(cfg.Endpoints))
				return nil
			}

			log := getLogger(c)
			for _, v := range violations {
				log.Error("violation", "subject", v.Subject, "message", v.Message)
			}

			if output.Format(c.String("output")) == output.FormatTable {
				table := &output.Table{}
				table.SetHeaders("SUBJECT", "MESSAGE")
				for _, v := range violations {
					table.AddRow(v.Subject, v.Message)
				}
				if err := table.Render(c.App.Writer); err != nil {
					return cli.Exit(err.Error(), 1)
				}
			}

			return cli.Exit(fmt.Sprintf("%d violation(s) found", len(violations)), 1)
		},
	}
}
