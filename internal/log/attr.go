package log

import (
	"fmt"
	"log/slog"
)

// Machine returns an attribute for a machine ID
func Machine(id string) slog.Attr {
	return slog.String("machine_id", id)
}

// Transition returns an attribute for a transition name
func Transition(name string) slog.Attr {
	return slog.String("transition", name)
}

// Role returns an attribute for a transition's role tag
func Role(role string) slog.Attr {
	return slog.String("role", role)
}

// Outcome returns an attribute for the result of a firing
func Outcome[T fmt.Stringer](o T) slog.Attr {
	return slog.String("outcome", o.String())
}

// State returns an attribute for a marking vector
func State[T ~[]int64](v T) slog.Attr {
	return slog.String("state", fmt.Sprint([]int64(v)))
}

// Error returns an attribute for an error, empty when err is nil
func Error(err error) slog.Attr {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return slog.String("error", msg)
}
