package rules

import "go.uber.org/zap"

// Trace logs every hook it is offered at debug level and never handles
// anything. Put it first in a Chain to see what reaches the actors after it.
type Trace struct {
	log *zap.Logger
}

func NewTrace(log *zap.Logger) Trace { return Trace{log: log} }

func (t Trace) Before(ctx Context) bool      { return t.note("before", ctx) }
func (t Trace) After(ctx Context) bool       { return t.note("after", ctx) }
func (t Trace) ReactBefore(ctx Context) bool { return t.note("react_before", ctx) }
func (t Trace) ReactAfter(ctx Context) bool  { return t.note("react_after", ctx) }

func (t Trace) note(stage string, ctx Context) bool {
	t.log.Debug("hook",
		zap.String("stage", stage),
		zap.Stringer("action", ctx.Action),
		zap.Stringer("actor", ctx.Actor),
		zap.Stringer("self", ctx.Self))
	return false
}
