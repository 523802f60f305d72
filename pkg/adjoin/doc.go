// Package adjoin joins one function to another in an aspect-oriented style:
// a before function runs ahead of an original, or an after function runs
// behind it. Both functions receive the same *Context, which replaces an
// implicit receiver with an explicit shared handle.
//
// Every call of a composed Func picks its mode from the last argument. When
// it is a function (the continuation), the first stage receives a synthetic
// continuation in its place, and the second stage runs only once that
// synthetic continuation is invoked:
//   - Sync: the last argument is not a function; both stages run back to back
//   - Async: the last argument is a function; stages are chained by callbacks
//
// Key operations:
//   - Before/After: compose an original Handler with a companion Handler
//   - ModeOf/IsCallable: the shared mode-detection predicate
//   - Continuation: turn the trailing callable of an argument list into a Callback
//   - Start: build a Chain that stacks several companions over one Context
//
// Options configure a composition: WithContext, WithLogger, WithOnce, WithName.
package adjoin
