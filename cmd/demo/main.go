package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/comalice/tokennet/internal/config"
	"github.com/comalice/tokennet/internal/core"
	"github.com/comalice/tokennet/internal/extensibility"
	"github.com/comalice/tokennet/internal/log"
	"github.com/comalice/tokennet/internal/primitives"
	"github.com/comalice/tokennet/internal/production"
	"github.com/comalice/tokennet/testutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := log.New(log.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := production.NewMemoryRegistry()
	for _, def := range []primitives.MachineConfig{testutil.CounterConfig(), testutil.OnOffConfig()} {
		if _, err := registry.Register(ctx, def); err != nil {
			return err
		}
	}
	def, err := registry.Latest(ctx, cfg.Machine)
	if err != nil {
		return err
	}
	m, err := core.NewMachine(def, core.WithLogger(logger))
	if err != nil {
		return err
	}

	firings := make(chan production.Firing, len(cfg.Script))
	publisher := production.NewChannelPublisher(firings)
	session := production.NewSession(m,
		production.WithPublisher(publisher),
		production.WithSessionLogger(logger),
	)

	fmt.Printf("machine %s (version %s)\n", m.ID(), m.Version())
	fmt.Println("initial:", session.State(), "enabled:", session.Enabled())

	src := extensibility.NewScriptSource(cfg.Script, cfg.Interval)
	defer src.Stop()

	stats, err := extensibility.Drive(ctx, src, printer(os.Stdout, session, cfg.Role, logger))
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nShutting down gracefully...")
		return nil
	}
	if err != nil {
		return err
	}
	_ = publisher.Close()

	published := 0
	for range firings {
		published++
	}
	fmt.Printf("accepted=%d rejected=%d unknown=%d published=%d\n",
		stats.Accepted, stats.Rejected, stats.Unknown, published)

	return export(os.Stdout, cfg.Export, def, session.State())
}

// printer fires through the session, as role when one is set, and prints each
// step. A role mismatch is printed and counted as a rejection.
func printer(w io.Writer, s *production.Session, role string, logger *slog.Logger) extensibility.Firer {
	var inner extensibility.Firer = s
	if role != "" {
		inner = extensibility.FirerFunc(func(ctx context.Context, name string) (core.Outcome, error) {
			return s.FireAs(ctx, role, name)
		})
	}
	logged := extensibility.NewLoggingFirer(inner, logger)

	return extensibility.FirerFunc(func(ctx context.Context, name string) (core.Outcome, error) {
		o, err := logged.Fire(ctx, name)
		switch {
		case errors.Is(err, production.ErrRoleMismatch):
			fmt.Fprintf(w, "%-6s denied: %v\n", name, err)
			return core.Unknown, nil
		case core.IsUnknownTransition(err):
			fmt.Fprintf(w, "%-6s error: %v\n", name, err)
		case err == nil:
			fmt.Fprintf(w, "%-6s %-14s %v\n", name, o, s.State())
		}
		return o, err
	})
}

// export prints the definition and marking in the configured format.
func export(w io.Writer, format string, def primitives.MachineConfig, state primitives.Vector) error {
	v := &production.DefaultVisualizer{}
	switch format {
	case "dot":
		_, err := io.WriteString(w, v.ExportDOT(def, state))
		return err
	case "json":
		data, err := v.ExportJSON(def)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		data, err := v.ExportYAML(def)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "none":
		return nil
	default:
		return fmt.Errorf("invalid export format %q", format)
	}
}
