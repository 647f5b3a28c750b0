package value

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sandrolain/gojaq/pkg/types"
)

// Cursor walks the members of an array or object one at a time.
type Cursor struct {
	arr  Arr
	pos  int
	it   linkedhashmap.Iterator
	obj  bool
	done bool
}

// Members returns a cursor over the elements of an array (in order) or the
// values of an object (in insertion order). Scalars are not iterable.
func Members(v Value) (*Cursor, error) {
	switch x := v.(type) {
	case Arr:
		return &Cursor{arr: x}, nil
	case *Obj:
		if x.m == nil {
			return &Cursor{done: true}, nil
		}
		return &Cursor{it: x.m.Iterator(), obj: true}, nil
	}
	return nil, types.TypeMismatch(types.ErrNotIterable, "iterate", TypeName(v))
}

// Next returns the next member.
func (c *Cursor) Next() (Value, bool) {
	if c.done {
		return nil, false
	}
	if c.obj {
		if !c.it.Next() {
			c.done = true
			return nil, false
		}
		return c.it.Value().(Value), true
	}
	if c.pos >= len(c.arr) {
		c.done = true
		return nil, false
	}
	v := c.arr[c.pos]
	c.pos++
	return v, true
}
