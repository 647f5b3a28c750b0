package evaluator

import "github.com/sandrolain/gojaq/pkg/value"

// mapMembers implements map(f): every result of f over every member, in one
// array.
func (r *runner) mapMembers(f *Filter, env *frame, in value.Value) (value.Value, error) {
	c, err := value.Members(in)
	if err != nil {
		return nil, err
	}
	out := value.Arr{}
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		vs, err := r.collect(r.run(f, env, v))
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}
