package evaluator

import "github.com/sandrolain/gojaq/pkg/value"

// add folds + over the members of in, starting from null.
func (r *runner) add(in value.Value) (value.Value, error) {
	c, err := value.Members(in)
	if err != nil {
		return nil, err
	}
	acc := value.NullValue
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if acc, err = r.arith.Add(acc, v); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// quantify implements all (want=false) and any (want=true): it stops at the
// first member whose truthiness equals want.
func (r *runner) quantify(in value.Value, want bool) (value.Value, error) {
	c, err := value.Members(in)
	if err != nil {
		return nil, err
	}
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		if value.Truthy(v) == want {
			return value.Bool(want), nil
		}
	}
	return value.Bool(!want), nil
}
