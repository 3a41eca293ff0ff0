package sheet

import "log/slog"

// Option configures a Grid.
type Option func(*Grid)

// WithHost sets the host notified after each recomputation.
func WithHost(h Host) Option {
	return func(g *Grid) { g.host = h }
}

// WithClipboardProvider mirrors every copy to a system clipboard.
func WithClipboardProvider(p ClipboardProvider) Option {
	return func(g *Grid) { g.provider = p }
}

// WithLogger replaces the package default logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithScheduler shares a scheduler, e.g. with other widgets on the same frame loop.
func WithScheduler(s *Scheduler) Option {
	return func(g *Grid) {
		if s != nil {
			g.sched = s
		}
	}
}
