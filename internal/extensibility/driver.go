package extensibility

import (
	"context"
	"log/slog"
	"time"

	"github.com/comalice/tokennet/internal/core"
	"github.com/comalice/tokennet/internal/log"
)

// Firer fires a named transition. *production.Session satisfies it.
type Firer interface {
	Fire(ctx context.Context, name string) (core.Outcome, error)
}

// FirerFunc adapts a function to Firer.
type FirerFunc func(ctx context.Context, name string) (core.Outcome, error)

func (f FirerFunc) Fire(ctx context.Context, name string) (core.Outcome, error) {
	return f(ctx, name)
}

// MachineFirer adapts a bare Machine. The caller must not share m between goroutines.
func MachineFirer(m *core.Machine) Firer {
	return FirerFunc(func(ctx context.Context, name string) (core.Outcome, error) {
		if err := ctx.Err(); err != nil {
			return core.Unknown, err
		}
		return m.Fire(name)
	})
}

// LoggingFirer wraps a Firer and logs every firing with its duration.
type LoggingFirer struct {
	inner  Firer
	logger *slog.Logger
}

// NewLoggingFirer creates a LoggingFirer around inner.
func NewLoggingFirer(inner Firer, logger *slog.Logger) *LoggingFirer {
	if logger == nil {
		logger = log.Discard()
	}
	return &LoggingFirer{inner: inner, logger: logger}
}

// Fire logs after delegating to the inner Firer.
func (f *LoggingFirer) Fire(ctx context.Context, name string) (core.Outcome, error) {
	start := time.Now()
	o, err := f.inner.Fire(ctx, name)
	if err != nil {
		f.logger.WarnContext(ctx, "fire failed",
			log.Transition(name), log.Error(err), slog.Duration("elapsed", time.Since(start)))
		return o, err
	}
	f.logger.InfoContext(ctx, "fired",
		log.Transition(name), log.Outcome(o), slog.Duration("elapsed", time.Since(start)))
	return o, nil
}

// Stats counts what Drive did.
type Stats struct {
	Accepted int
	Rejected int
	Unknown  int
}

// Drive fires every name from src until its channel closes or ctx is done.
// Unknown transition names are counted and skipped; any other error stops the
// loop and is returned with the counts so far.
func Drive(ctx context.Context, src Source, f Firer) (Stats, error) {
	var stats Stats
	names := src.Names()
	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case name, ok := <-names:
			if !ok {
				return stats, nil
			}
			o, err := f.Fire(ctx, name)
			switch {
			case core.IsUnknownTransition(err):
				stats.Unknown++
			case err != nil:
				return stats, err
			case o == core.Accepted:
				stats.Accepted++
			default:
				stats.Rejected++
			}
		}
	}
}
