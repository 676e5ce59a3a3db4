package blit

import "log/slog"

// Option configures a Context during creation.
//
// Example:
//
//	// Panic on unbalanced pops while developing
//	ctx := blit.NewContext(screen, blit.WithDebug(true))
//
//	// Start with centered blits and additive blending
//	ctx := blit.NewContext(screen,
//	    blit.WithAlign(blit.AlignCenter, blit.AlignMiddle),
//	    blit.WithColorState(blit.ColorState{Blend: blit.BlendAdd, Alpha: blit.MaxAlpha}),
//	)
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	debug  bool
	logger *slog.Logger
	color  ColorState
	alignX AlignX
	alignY AlignY
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		color: DefaultColorState(),
	}
}

// WithDebug makes unbalanced pops of the clip, color, align and target
// stacks panic with ErrStackEmpty instead of logging a warning.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithLogger sets a logger for this Context only: its stack warnings,
// target switches and the span table rebuilds its blits trigger. Without
// it the Context logs through the package logger set by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithColorState sets the color state the Context starts with and that
// ResetColor restores.
func WithColorState(s ColorState) Option {
	return func(o *options) {
		o.color = s
	}
}

// WithAlign sets the initial alignment of straight blits.
func WithAlign(x AlignX, y AlignY) Option {
	return func(o *options) {
		o.alignX = x
		o.alignY = y
	}
}
