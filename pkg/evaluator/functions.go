package evaluator

import (
	"fmt"

	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/value"
)

// callNew runs an atomic builtin: exactly one result or an error.
func (r *runner) callNew(b functions.Builtin, args []*Filter, env *frame, in value.Value) (value.Value, error) {
	switch b.ID {
	case functions.Null:
		return value.NullValue, nil
	case functions.True:
		return value.Bool(true), nil
	case functions.False:
		return value.Bool(false), nil
	case functions.Not:
		return value.Bool(!value.Truthy(in)), nil
	case functions.All:
		return r.quantify(in, false)
	case functions.Any:
		return r.quantify(in, true)
	case functions.Add:
		return r.add(in)
	case functions.Length:
		return value.Length(in)
	case functions.Type:
		return value.Str(value.TypeName(in)), nil
	case functions.Keys:
		return value.Keys(in)
	case functions.Sort:
		return value.Sort(in)
	case functions.Min:
		return value.Min(in)
	case functions.Max:
		return value.Max(in)
	case functions.Map:
		return r.mapMembers(args[0], env, in)
	default:
		return nil, fmt.Errorf("evaluator: %s is not an atomic builtin", b.Key())
	}
}
