package adjoin

import "reflect"

type Mode int

const (
	Sync Mode = iota
	Async
)

func (m Mode) String() string {
	switch m {
	case Sync:
		return "sync"
	case Async:
		return "async"
	default:
		return "unknown"
	}
}

// IsCallable reports whether v is a non-nil function value.
func IsCallable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// ModeOf decides the calling convention from the last argument.
// The same Func may be called in either mode.
func ModeOf(args []any) Mode {
	if len(args) == 0 {
		return Sync
	}
	if IsCallable(args[len(args)-1]) {
		return Async
	}
	return Sync
}
