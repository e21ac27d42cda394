// Package extensibility feeds transition names into a machine from outside:
// channels, timers and logging wrappers around whatever fires them.
package extensibility

import (
	"sync"
	"time"
)

// Source delivers the names of transitions to fire. A closed channel ends the feed.
type Source interface {
	Names() <-chan string
}

// ChannelSource is a Source backed by a caller-owned Go channel.
type ChannelSource struct {
	ch chan string
}

// NewChannelSource creates a ChannelSource reading from ch.
// The channel should be buffered if backpressure handling is needed.
func NewChannelSource(ch chan string) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Names returns the receive-only channel.
func (s *ChannelSource) Names() <-chan string {
	return s.ch
}

// TimerSource emits the same transition name periodically using time.Ticker.
// Useful for clock-driven nets such as a producer refilling a buffer place.
type TimerSource struct {
	ch     chan string
	name   string
	ticker *time.Ticker
	stop   chan struct{}
}

// NewTimerSource creates a TimerSource that emits name every d.
func NewTimerSource(name string, d time.Duration) *TimerSource {
	t := &TimerSource{
		ch:     make(chan string, 10),
		name:   name,
		ticker: time.NewTicker(d),
		stop:   make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *TimerSource) run() {
	for {
		select {
		case <-t.ticker.C:
			select {
			case t.ch <- t.name:
			default:
				// drop if full
			}
		case <-t.stop:
			t.ticker.Stop()
			close(t.ch)
			return
		}
	}
}

// Names returns the tick channel.
func (t *TimerSource) Names() <-chan string {
	return t.ch
}

// Stop stops the ticker and closes the channel.
func (t *TimerSource) Stop() {
	close(t.stop)
}

// ScriptSource emits a fixed list of names in order, waiting d between them,
// then closes its channel. A zero d emits them back to back.
type ScriptSource struct {
	ch       chan string
	names    []string
	interval time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewScriptSource creates a ScriptSource over a copy of names.
func NewScriptSource(names []string, d time.Duration) *ScriptSource {
	s := &ScriptSource{
		ch:       make(chan string),
		names:    append([]string(nil), names...),
		interval: d,
		stop:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *ScriptSource) run() {
	defer close(s.ch)

	var tick <-chan time.Time
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for i, name := range s.names {
		if i > 0 && tick != nil {
			select {
			case <-tick:
			case <-s.stop:
				return
			}
		}
		select {
		case s.ch <- name:
		case <-s.stop:
			return
		}
	}
}

// Names returns the script channel.
func (s *ScriptSource) Names() <-chan string {
	return s.ch
}

// Stop abandons the rest of the script and closes the channel. Safe to call more than once.
func (s *ScriptSource) Stop() {
	s.once.Do(func() { close(s.stop) })
}
