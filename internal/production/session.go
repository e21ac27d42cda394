package production

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/tokennet/internal/core"
	"github.com/comalice/tokennet/internal/log"
	"github.com/comalice/tokennet/internal/primitives"
)

// ErrRoleMismatch is returned by FireAs when the caller's role does not match the
// transition's role tag.
var ErrRoleMismatch = errors.New("role not permitted for transition")

type (
	// Session serialises access to one Machine so it can be shared between
	// goroutines, and publishes a Firing for every evaluated transition.
	Session struct {
		mu        sync.Mutex
		machine   *core.Machine
		publisher EventPublisher
		logger    *slog.Logger
		now       func() time.Time
	}

	// SessionOption configures a Session.
	SessionOption func(*Session)
)

// WithPublisher attaches an EventPublisher to the Session.
func WithPublisher(p EventPublisher) SessionOption {
	return func(s *Session) {
		s.publisher = p
	}
}

// WithSessionLogger sets the logger used for publish failures.
func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession wraps m. The Session must be the only writer of m from then on.
func NewSession(m *core.Machine, opts ...SessionOption) *Session {
	s := &Session{
		machine: m,
		logger:  log.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fire evaluates and, when legal, applies the named transition.
func (s *Session) Fire(ctx context.Context, name string) (core.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fire(ctx, name)
}

// FireAs is Fire for a caller acting as role. The engine itself never enforces
// roles; this is the host-side check.
func (s *Session) FireAs(ctx context.Context, role, name string) (core.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want, err := s.machine.Role(name)
	if err != nil {
		return core.Unknown, err
	}
	if want != role {
		return core.Unknown, fmt.Errorf("%w: %q requires %q, caller is %q", ErrRoleMismatch, name, want, role)
	}
	return s.fire(ctx, name)
}

// Transform is Fire collapsed to accepted / rejected.
func (s *Session) Transform(ctx context.Context, name string) (bool, error) {
	o, err := s.Fire(ctx, name)
	if err != nil {
		return false, err
	}
	return o == core.Accepted, nil
}

// State returns a copy of the current marking.
func (s *Session) State() primitives.Vector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

// Role returns the role tag of the named transition.
func (s *Session) Role(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Role(name)
}

// Enabled returns the transitions that would currently be accepted.
func (s *Session) Enabled() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Enabled()
}

// Snapshot copies the current marking.
func (s *Session) Snapshot() core.MachineSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Snapshot()
}

func (s *Session) fire(ctx context.Context, name string) (core.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return core.Unknown, err
	}
	before := s.machine.State()
	o, err := s.machine.Fire(name)
	if err != nil {
		return core.Unknown, err
	}
	if s.publisher == nil {
		return o, nil
	}

	role, _ := s.machine.Role(name)
	f := Firing{
		ID:         uuid.New(),
		MachineID:  s.machine.ID(),
		Transition: name,
		Role:       role,
		Outcome:    o.String(),
		Accepted:   o == core.Accepted,
		Before:     before,
		After:      s.machine.State(),
		Timestamp:  s.now(),
	}
	if err := s.publisher.Publish(ctx, f); err != nil {
		s.logger.Warn("publish firing failed",
			log.Machine(f.MachineID), log.Transition(name), log.Error(err))
	}
	return o, nil
}
