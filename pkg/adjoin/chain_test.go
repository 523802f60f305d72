package adjoin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tag(name string, log *[]string) Handler {
	return func(c *Context, args ...any) {
		*log = append(*log, name)
		c.Set(name, true)
		if next := Continuation(args); next != nil {
			next()
		}
	}
}

func TestChain_SyncOrder(t *testing.T) {
	t.Parallel()
	var log []string
	f := Start(tag("original", &log)).
		Before(tag("before1", &log)).
		Before(tag("before2", &log)).
		After(tag("after1", &log)).
		After(tag("after2", &log)).
		Func()

	f(1)

	assert.Equal(t, []string{"before2", "before1", "original", "after1", "after2"}, log)
}

func TestChain_AsyncOrder(t *testing.T) {
	t.Parallel()
	var log []string
	c := Start(tag("original", &log)).
		Before(tag("before", &log)).
		After(tag("after1", &log)).
		After(tag("after2", &log))

	done := false
	c.Func()("x", func() {
		log = append(log, "done")
		done = true
	})

	require.True(t, done)
	assert.Equal(t, []string{"before", "original", "after1", "after2", "done"}, log)
}

func TestChain_SharesContext(t *testing.T) {
	t.Parallel()
	var log []string
	shared := NewContext()
	c := Start(tag("original", &log), WithContext(shared)).
		Before(tag("before", &log)).
		After(tag("after", &log))

	c.Func()()

	assert.Same(t, shared, c.Context())
	assert.Equal(t, []string{"after", "before", "original"}, shared.Keys())
}

func TestChain_DefaultContextPerStart(t *testing.T) {
	t.Parallel()
	noop := func(*Context, ...any) {}
	a := Start(noop)
	b := Start(noop)

	require.NotNil(t, a.Context())
	assert.NotSame(t, a.Context(), b.Context())
	assert.Same(t, a.Context(), a.Before(noop).After(noop).Context())
}

func TestChain_BranchesAreIndependent(t *testing.T) {
	t.Parallel()
	var log []string
	base := Start(tag("original", &log))
	left := base.Before(tag("left", &log))
	right := base.After(tag("right", &log))

	left.Func()()
	right.Func()()

	assert.Equal(t, []string{"left", "original", "original", "right"}, log)
}
