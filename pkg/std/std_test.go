package std_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/resolver"
	"github.com/sandrolain/gojaq/pkg/std"
	"github.com/sandrolain/gojaq/pkg/value"
)

var dot = ast.Identity()

// resultsEquateEmpty applies EquateEmpty only to the result stream, so it does
// not overlap with the value.Equal comparer on an empty value.Arr.
var resultsEquateEmpty = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().Type() == reflect.TypeOf([]value.Value(nil))
}, cmpopts.EquateEmpty())

func call(name string, args ...*ast.Node) *ast.Node { return ast.Call(name, args...) }

func values(xs ...interface{}) []value.Value {
	out := make([]value.Value, len(xs))
	for i, x := range xs {
		out[i] = value.MustFromAny(x)
	}
	return out
}

func TestStandardDefinitions(t *testing.T) {
	mixed := []interface{}{nil, true, 1, "s", []interface{}{2}, map[string]interface{}{"k": 3}}
	tests := []struct {
		name  string
		term  *ast.Node
		input interface{}
		want  []value.Value
	}{
		{"values", ast.Pipe(ast.Each(), call("values")), []interface{}{1, nil, 2}, values(1, 2)},
		{"nulls", ast.Pipe(ast.Each(), call("nulls")), mixed, values(nil)},
		{"booleans", ast.Pipe(ast.Each(), call("booleans")), mixed, values(true)},
		{"numbers", ast.Pipe(ast.Each(), call("numbers")), mixed, values(1)},
		{"strings", ast.Pipe(ast.Each(), call("strings")), mixed, values("s")},
		{"arrays", ast.Pipe(ast.Each(), call("arrays")), mixed, values([]interface{}{2})},
		{"objects", ast.Pipe(ast.Each(), call("objects")), mixed, values(map[string]interface{}{"k": 3})},
		{"iterables", ast.Pipe(ast.Each(), call("iterables")), mixed, values([]interface{}{2}, map[string]interface{}{"k": 3})},
		{"scalars", ast.Pipe(ast.Each(), call("scalars")), mixed, values(nil, true, 1, "s")},
		{
			name:  "recurse",
			term:  call("recurse"),
			input: map[string]interface{}{"a": []interface{}{1, 2}},
			want:  values(map[string]interface{}{"a": []interface{}{1, 2}}, []interface{}{1, 2}, 1, 2),
		},
		{"isempty of empty", call("isempty", call("empty")), nil, values(true)},
		{"isempty of values", call("isempty", ast.Comma(ast.Int(1), ast.Int(2))), nil, values(false)},
		{
			name:  "until",
			term:  call("until", ast.Binary(ast.OpGt, dot, ast.Int(100)), ast.Binary(ast.OpMul, dot, ast.Int(2))),
			input: 1,
			want:  values(128),
		},
		{
			name:  "while",
			term:  call("while", ast.Binary(ast.OpLt, dot, ast.Int(10)), ast.Binary(ast.OpMul, dot, ast.Int(2))),
			input: 1,
			want:  values(1, 2, 4, 8),
		},
		{"range", call("range", ast.Int(4)), nil, values(0, 1, 2, 3)},
		{"range zero", call("range", ast.Int(0)), nil, nil},
		{"nth", call("nth", ast.Int(1), ast.Comma(ast.Int(10), ast.Int(20), ast.Int(30))), nil, values(20)},
		{"nth beyond", call("nth", ast.Int(5), ast.Int(10)), nil, values(10)},
		{"any/1", call("any", ast.Binary(ast.OpGt, dot, ast.Int(2))), []interface{}{1, 3}, values(true)},
		{"all/1", call("all", ast.Binary(ast.OpGt, dot, ast.Int(2))), []interface{}{1, 3}, values(false)},
		{"add/1", call("add", ast.Each()), map[string]interface{}{"a": 1}, values(1)},
		{"add/1 strings", call("add", ast.Each()), []interface{}{"a", "b"}, values("ab")},
		{"reverse", call("reverse"), []interface{}{1, 2, 3}, values([]interface{}{3, 2, 1})},
		{"reverse empty", call("reverse"), []interface{}{}, values([]interface{}{})},
		{"first/0", call("first"), []interface{}{1, 2, 3}, values(1)},
		{"last/0", call("last"), []interface{}{1, 2, 3}, values(3)},
		{"last/0 of empty", call("last"), []interface{}{}, values(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := resolver.Open(ast.NewMain(tt.term), std.Module())
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			got, err := prog.Run(context.Background(), value.MustFromAny(tt.input)).Collect()
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.Comparer(value.Equal), resultsEquateEmpty); diff != "" {
				t.Errorf("results mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModuleExtra(t *testing.T) {
	inc := ast.Def("inc", nil, ast.Binary(ast.OpAdd, dot, ast.Int(1)))
	double := ast.Def("incs", []string{"n"}, ast.Collect(ast.Pipe(call("range", call("n")), call("inc"))))
	prog, err := resolver.Open(ast.NewMain(call("incs", ast.Int(3))), std.Module(inc, double))
	if err != nil {
		t.Fatal(err)
	}
	got, err := prog.Run(context.Background(), nil).Collect()
	if err != nil {
		t.Fatal(err)
	}
	want := values([]interface{}{1, 2, 3})
	if diff := cmp.Diff(want, got, cmp.Comparer(value.Equal)); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestNames(t *testing.T) {
	names := strings.Join(std.Names(), " ")
	for _, want := range []string{"range/1", "until/2", "reverse/0", "recurse/0", "nth/2"} {
		if !strings.Contains(names, want) {
			t.Errorf("Names() missing %s: %s", want, names)
		}
	}
}
