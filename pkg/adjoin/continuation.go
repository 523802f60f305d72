package adjoin

import "reflect"

// Callback is the shape of every synthetic continuation. Arguments passed to
// it are ignored by Before and After.
type Callback func(args ...any)

// Continuation returns the trailing callable of args as a Callback, or nil
// when args were passed in Sync mode.
//
// Callers may hand any function type as their continuation. Parameters the
// Callback does not receive, or receives as nil, are filled with zero values.
func Continuation(args []any) Callback {
	if ModeOf(args) != Async {
		return nil
	}
	return toCallback(args[len(args)-1])
}

func toCallback(fn any) Callback {
	switch f := fn.(type) {
	case Callback:
		return f
	case func(...any):
		return f
	case func():
		return func(...any) { f() }
	}

	rv := reflect.ValueOf(fn)
	return func(args ...any) {
		rv.Call(callArgs(rv.Type(), args))
	}
}

func callArgs(rt reflect.Type, args []any) []reflect.Value {
	fixed := rt.NumIn()
	if rt.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := range fixed {
		in = append(in, argValue(rt.In(i), args, i))
	}
	if rt.IsVariadic() {
		elem := rt.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			in = append(in, argValue(elem, args, i))
		}
	}
	return in
}

// argValue leaves type mismatches to reflect.Value.Call, which panics.
func argValue(t reflect.Type, args []any, i int) reflect.Value {
	if i >= len(args) || args[i] == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(args[i])
}
