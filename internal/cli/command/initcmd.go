package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/uacore/uacore-go/internal/infra/pkistore"
	"github.com/uacore/uacore-go/internal/server/config"
)

// InitCommand returns the init subcommand.
func InitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a preset server configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Usage:   "Preset to generate: anonymous, userpass, sample",
				Value:   "anonymous",
			},
			&cli.StringFlag{
				Name:  "user",
				Usage: "Username for the userpass preset",
			},
			&cli.StringFlag{
				Name:  "pass",
				Usage: "Password for the userpass preset",
			},
			&cli.StringFlag{
				Name:  "policy",
				Usage: "Security policy for the endpoint: None, Basic128Rsa15, Basic256, Basic256Sha256",
				Value: string(config.SecurityPolicyNone),
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Security mode for the endpoint: None, Sign, SignAndEncrypt",
				Value: string(config.SecurityModeNone),
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing configuration file",
			},
		},
		Action: initAction,
	}
}

func initAction(c *cli.Context) error {
	path := c.String("config")

	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return cli.Exit(fmt.Sprintf("%s already exists, use --force to overwrite", path), 1)
		}
	}

	cfg, err := presetConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := cfg.Save(path); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			log := getLogger(c)
			for _, v := range verr.Violations {
				log.Error("violation", "subject", v.Subject, "message", v.Message)
			}
			return cli.Exit("generated configuration is invalid, nothing written", 1)
		}
		return cli.Exit(fmt.Sprintf("save %s: %v", path, err), 1)
	}

	// The pki directory is resolved relative to the configuration file
	// when not absolute.
	pkiDir := cfg.PKIDir
	if !filepath.IsAbs(pkiDir) {
		pkiDir = filepath.Join(filepath.Dir(path), pkiDir)
	}
	if err := pkistore.Open(pkiDir).Init(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	getLogger(c).Info("configuration written",
		"path", path,
		"preset", c.String("preset"),
		"endpoints", len(cfg.Endpoints),
		"pki_dir", pkiDir)
	return nil
}

// presetConfig builds the configuration named by --preset. The endpoint
// security profile defaults to None/None and can be overridden with
// --policy and --mode.
func presetConfig(c *cli.Context) (*config.ServerConfig, error) {
	policy, err := config.ParseSecurityPolicy(c.String("policy"))
	if err != nil {
		return nil, err
	}
	mode, err := config.ParseSecurityMode(c.String("mode"))
	if err != nil {
		return nil, err
	}

	switch preset := c.String("preset"); preset {
	case "anonymous":
		return config.New(config.DefaultEndpoint(true, "", "", policy, mode)), nil
	case "userpass":
		user, pass := c.String("user"), c.String("pass")
		if user == "" || pass == "" {
			return nil, fmt.Errorf("the userpass preset requires --user and --pass")
		}
		return config.New(config.DefaultEndpoint(false, user, pass, policy, mode)), nil
	case "sample":
		return config.New(config.DefaultEndpoint(true, config.SampleUser, config.SamplePass, policy, mode)), nil
	default:
		return nil, fmt.Errorf("unknown preset %q (want anonymous, userpass or sample)", preset)
	}
}
