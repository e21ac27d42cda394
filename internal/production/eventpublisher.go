package production

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/tokennet/internal/primitives"
)

// Firing records one evaluated transition of a Session, accepted or not.
type Firing struct {
	ID         uuid.UUID         `json:"id" yaml:"id"`
	MachineID  string            `json:"machineID" yaml:"machineID"`
	Transition string            `json:"transition" yaml:"transition"`
	Role       string            `json:"role" yaml:"role"`
	Outcome    string            `json:"outcome" yaml:"outcome"`
	Accepted   bool              `json:"accepted" yaml:"accepted"`
	Before     primitives.Vector `json:"before" yaml:"before,flow"`
	After      primitives.Vector `json:"after" yaml:"after,flow"`
	Timestamp  time.Time         `json:"timestamp" yaml:"timestamp"`
}

// EventPublisher receives firings from a Session.
type EventPublisher interface {
	Publish(ctx context.Context, firing Firing) error
	Close() error
}

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher closed")

// ChannelPublisher forwards firings to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	mu     sync.Mutex
	ch     chan<- Firing
	closed bool
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- Firing) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

// Publish sends firing unless the channel is full, the context is done or the publisher is closed.
func (p *ChannelPublisher) Publish(ctx context.Context, firing Firing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.ch <- firing:
		return nil
	default:
		return nil // Non-blocking drop
	}
}

// Close closes the output channel. Later calls are no-ops.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	return nil
}
