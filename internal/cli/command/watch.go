package command

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/uacore/uacore-go/internal/infra/confloader"
	"github.com/uacore/uacore-go/internal/infra/shutdown"
	"github.com/uacore/uacore-go/internal/telemetry/metric"
)

// WatchCommand returns the watch subcommand.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Revalidate the configuration file whenever it changes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Address to expose Prometheus metrics on (empty disables)",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Grace period for cleanup on exit",
				Value: 5 * time.Second,
			},
		},
		Action: watchAction,
	}
}

func watchAction(c *cli.Context) error {
	log := getLogger(c)
	path := c.String("config")
	metrics := metric.NewRegistry()

	check := func(reload bool) {
		cfg, err := loadConfig(c)
		if err != nil {
			log.Error("load failed", "path", path, "error", err)
			return
		}
		metrics.ConfigLoads.Inc()
		if reload {
			metrics.ConfigReloads.Inc()
		}

		violations := cfg.Validate()
		if len(violations) == 0 {
			log.Info("configuration is valid", "path", path, "endpoints", len(cfg.Endpoints))
			return
		}
		metrics.ValidationFailures.Inc()
		metrics.Violations.Add(float64(len(violations)))
		for _, v := range violations {
			log.Error("violation", "subject", v.Subject, "message", v.Message)
		}
	}

	// Initial pass before any change event arrives.
	check(false)

	watcher, err := confloader.NewWatcher(path, confloader.WithWatcherLogger(log))
	if err != nil {
		return cli.Exit(fmt.Sprintf("watch %s: %v", path, err), 1)
	}
	watcher.OnChange(func(string) { check(true) })
	watcher.StartAsync()

	handler := shutdown.NewHandler(c.Duration("shutdown-timeout"))
	handler.OnShutdown(func(context.Context) error {
		return watcher.Stop()
	})

	if addr := c.String("metrics-addr"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv := &http.Server{Addr: addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server failed", "addr", addr, "error", err)
			}
		}()
		handler.OnShutdown(func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		})
		log.Info("metrics exposed", "addr", addr)
	}

	log.Info("watching for changes", "path", path)
	if err := handler.Wait(); err != nil {
		return cli.Exit(fmt.Sprintf("shutdown: %v", err), 1)
	}
	return nil
}
