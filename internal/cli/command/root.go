// Package command provides CLI command definitions for uacore-cli.
//
// It uses urfave/cli/v2 for command parsing. Commands operate on the
// server configuration file: generating presets, validating, showing a
// sanitized view, and watching for changes.
package command

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/uacore/uacore-go/internal/infra/buildinfo"
	"github.com/uacore/uacore-go/internal/infra/confloader"
	"github.com/uacore/uacore-go/internal/server/config"
	"github.com/uacore/uacore-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "uacore-cli",
		Usage:   "uacore server configuration management tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			InitCommand(),
			ValidateCommand(),
			ShowCommand(),
			WatchCommand(),
			VersionCommand(),
		},
		Before: func(c *cli.Context) error {
			log := logger.New(logger.Config{
				Level:  c.String("log-level"),
				Format: c.String("log-format"),
			})
			c.App.Metadata["logger"] = log
			return nil
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the server configuration file",
			EnvVars: []string{"UACORE_CONFIG"},
			Value:   "server.yml",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: yaml, json, table",
			Value:   "yaml",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"UACORE_LOG_LEVEL"},
			Value:   "info",
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format: json, text",
			EnvVars: []string{"UACORE_LOG_FORMAT"},
			Value:   "text",
		},
	}
}

// getLogger retrieves the logger installed by the Before hook. Commands
// invoked outside App (tests) get a default logger.
func getLogger(c *cli.Context) *slog.Logger {
	if log, ok := c.App.Metadata["logger"].(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// loadConfig loads the configuration file named by the --config flag,
// layered with UACORE_ environment variables, on top of built-in
// defaults. It does not validate; callers decide what invalid means.
func loadConfig(c *cli.Context) (*config.ServerConfig, error) {
	cfg := config.New()
	loader := confloader.NewLoader(confloader.WithConfigFile(c.String("config")))
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
