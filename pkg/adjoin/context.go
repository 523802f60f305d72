package adjoin

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Context is the receiver shared by both functions of a composition.
// The zero value is an empty Context without an id. It is not safe for
// concurrent use.
type Context struct {
	id        uuid.UUID
	createdAt time.Time
	values    map[string]any
}

func NewContext() *Context {
	return &Context{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		values:    make(map[string]any),
	}
}

func (c *Context) Id() uuid.UUID {
	return c.id
}

// CreatedAt time creation (UTC)
func (c *Context) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *Context) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

func (c *Context) Delete(key string) {
	delete(c.values, key)
}

func (c *Context) Len() int {
	return len(c.values)
}

// Keys returns the stored keys in sorted order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
