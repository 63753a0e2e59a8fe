// Package logctx provides four named github.com/go-logr/logr loggers
// (debug, trace, error, stats) gated by the -v/-vv verbosity flags.
package logctx

import "github.com/go-logr/logr"

// Context bundles the four logging channels every command in this
// toolchain writes to. Debug and Trace are silenced (logr.Discard())
// unless their verbosity flag is set; Error and Stats are always live.
type Context struct {
	Debug logr.Logger
	Trace logr.Logger
	Error logr.Logger
	Stats logr.Logger
}

// New derives a Context from base. verbose enables Trace ("-v"),
// veryVerbose additionally enables Debug ("-vv"); Error and Stats are
// always derived from base regardless of either flag.
func New(base logr.Logger, verbose, veryVerbose bool) *Context {
	ctx := &Context{
		Debug: logr.Discard(),
		Trace: logr.Discard(),
		Error: base.WithName("error"),
		Stats: base.WithName("stats"),
	}
	if verbose || veryVerbose {
		ctx.Trace = base.WithName("trace")
	}
	if veryVerbose {
		ctx.Debug = base.WithName("debug")
	}
	return ctx
}
