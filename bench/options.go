package bench

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Option mutates a Runner.
type Option func(*Runner)

// WithOutput sets the writer that receives the "start" progress line.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithLogger sets the logger for diagnostic events.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// WithClock replaces time.Now as the timer source.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}
