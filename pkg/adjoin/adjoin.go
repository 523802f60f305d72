package adjoin

import (
	"slices"
	"sync/atomic"

	"go.uber.org/zap"
)

// Handler is a function taking part in a composition. The *Context is the
// same for both Handlers of one composition.
type Handler func(c *Context, args ...any)

// Func is a composed function. It returns nothing; results travel through
// the Context or through the caller's continuation.
type Func func(args ...any)

type aspect string

const (
	aspectBefore aspect = "before"
	aspectAfter  aspect = "after"
)

// Before returns a Func that runs before ahead of original.
//
// In Async mode before receives the arguments without the caller's
// continuation plus a synthetic Callback; invoking that Callback runs
// original with the full arguments, caller's continuation included.
func Before(original, before Handler, opts ...Option) Func {
	return compose(aspectBefore, before, original, newOptions(opts))
}

// After returns a Func that runs after behind original.
//
// In Async mode original receives the arguments without the caller's
// continuation plus a synthetic Callback; invoking that Callback runs
// after with the full arguments, caller's continuation included.
func After(original, after Handler, opts ...Option) Func {
	return compose(aspectAfter, original, after, newOptions(opts))
}

// compose runs first, then second. Panics from either are not recovered.
func compose(a aspect, first, second Handler, o options) Func {
	log := o.logger.With(zap.String("aspect", string(a)))
	if o.name != "" {
		log = log.With(zap.String("name", o.name))
	}

	return func(args ...any) {
		captured := slices.Clone(args)
		mode := ModeOf(captured)

		log.Debug("adjoin dispatch",
			zap.Stringer("mode", mode),
			zap.Int("args", len(captured)),
			zap.Stringer("context", o.context.Id()))

		if mode == Sync {
			first(o.context, slices.Clone(captured)...)
			second(o.context, slices.Clone(captured)...)
			return
		}

		next := func() {
			second(o.context, slices.Clone(captured)...)
		}

		firstArgs := slices.Clone(captured)
		firstArgs[len(firstArgs)-1] = synthetic(log, o.once, next)
		first(o.context, firstArgs...)
	}
}

func synthetic(log *zap.Logger, once bool, next func()) Callback {
	if !once {
		return func(...any) {
			log.Debug("adjoin continuation")
			next()
		}
	}

	var fired atomic.Bool
	return func(...any) {
		if !fired.CompareAndSwap(false, true) {
			log.Warn("adjoin continuation already invoked, ignoring")
			return
		}
		log.Debug("adjoin continuation")
		next()
	}
}
