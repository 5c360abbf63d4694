package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/Pepryan/siteforge/internal/build"
	"github.com/Pepryan/siteforge/internal/config"
	"github.com/Pepryan/siteforge/internal/content"
	"github.com/Pepryan/siteforge/internal/daemon"
	"github.com/Pepryan/siteforge/internal/metrics"
	"github.com/Pepryan/siteforge/internal/server"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"site.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Output directory for the generated site (defaults to output.dir)"`
	} `cmd:"" help:"Build the static site, sitemap, and RSS feed"`

	Serve struct {
		Port         int           `short:"p" help:"HTTP port (defaults to serve.port)"`
		Watch        bool          `short:"w" help:"Rebuild when the content directory changes"`
		RebuildEvery time.Duration `help:"Rebuild the site on a fixed interval (0 disables)"`
	} `cmd:"" help:"Serve the built site and generate feeds per request"`

	Validate struct{} `cmd:"" help:"Validate content collections without building"`

	Init struct {
		Force bool `help:"Overwrite existing files"`
	} `cmd:"" help:"Initialize a starter configuration and example content"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg := mustLoadConfig()
		if _, err := build.New(cfg, nil).Run(context.Background(), CLI.Build.Output); err != nil {
			slog.Error("build failed", "error", err)
			os.Exit(1)
		}

	case "serve":
		cfg := mustLoadConfig()
		if err := runServe(cfg); err != nil {
			slog.Error("serve failed", "error", err)
			os.Exit(1)
		}

	case "validate":
		cfg := mustLoadConfig()
		store, err := content.Load(cfg.Content.Dir)
		if err != nil {
			slog.Error("content validation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("content is valid",
			slog.Int("posts", len(store.Posts)),
			slog.Int("published", len(store.PublishedPosts())),
			slog.Int("series", len(store.Series)))

	case "init":
		if err := runInit(CLI.Init.Force); err != nil {
			slog.Error("init failed", "error", err)
			os.Exit(1)
		}

	default:
		slog.Error("unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}

func mustLoadConfig() *config.Config {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	return cfg
}

// applyFlags lets command-line flags override the configuration file.
func applyFlags(cfg *config.Config) {
	if CLI.Serve.Port != 0 {
		cfg.Serve.Port = CLI.Serve.Port
	}
	if CLI.Serve.Watch {
		cfg.Serve.Watch = true
	}
	if CLI.Serve.RebuildEvery > 0 {
		cfg.Serve.RebuildEvery = config.Duration(CLI.Serve.RebuildEvery)
	}
}

func runServe(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewPrometheusRecorder(prom.NewRegistry())
	builder := build.New(cfg, recorder)

	rebuild := func(ctx context.Context) {
		if _, err := builder.Run(ctx, ""); err != nil {
			slog.Error("rebuild failed", "error", err)
		}
	}

	// Initial build so the static site is present before serving.
	rebuild(ctx)

	if cfg.Serve.Watch {
		watcher, err := daemon.NewContentWatcher(cfg.Content.Dir, rebuild)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	if interval := cfg.Serve.RebuildEvery.Std(); interval > 0 {
		scheduler, err := daemon.NewScheduler()
		if err != nil {
			return err
		}
		if _, err := scheduler.SchedulePeriodicRebuild(ctx, interval, rebuild); err != nil {
			return err
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				slog.Error("scheduler shutdown error", "error", err)
			}
		}()
	}

	srv := server.New(cfg, server.Options{
		Recorder:       recorder,
		MetricsHandler: recorder.Handler(),
	})
	return srv.Start(ctx)
}
