// Package std provides the standard library module: filters defined in
// terms of the builtins, such as range, until and reverse.
//
// Pass it as the module argument of resolver.Open. Caller definitions given
// to Module are appended after the standard ones and may call them.
package std

import "github.com/sandrolain/gojaq/pkg/ast"

var (
	dot   = ast.Identity()
	empty = ast.Call("empty")
)

func call(name string, args ...*ast.Node) *ast.Node { return ast.Call(name, args...) }

func param(name string) *ast.Node { return ast.Call(name) }

// typeIs returns select(type == name).
func typeIs(name string) *ast.Node {
	return call("select", ast.Binary(ast.OpEq, call("type"), ast.Str(name)))
}

func definitions() ast.Definitions {
	return ast.Definitions{
		ast.Def("values", nil, call("select", ast.Binary(ast.OpNe, dot, call("null")))),
		ast.Def("nulls", nil, typeIs("null")),
		ast.Def("booleans", nil, typeIs("boolean")),
		ast.Def("numbers", nil, typeIs("number")),
		ast.Def("strings", nil, typeIs("string")),
		ast.Def("arrays", nil, typeIs("array")),
		ast.Def("objects", nil, typeIs("object")),
		ast.Def("iterables", nil, call("select", ast.Or(
			ast.Binary(ast.OpEq, call("type"), ast.Str("array")),
			ast.Binary(ast.OpEq, call("type"), ast.Str("object"))))),
		ast.Def("scalars", nil, call("select", ast.And(
			ast.Binary(ast.OpNe, call("type"), ast.Str("array")),
			ast.Binary(ast.OpNe, call("type"), ast.Str("object"))))),

		// recurse descends into arrays and objects; scalars are leaves.
		ast.Def("recurse", nil, call("recurse", ast.If(
			ast.Or(ast.Binary(ast.OpEq, call("type"), ast.Str("array")), ast.Binary(ast.OpEq, call("type"), ast.Str("object"))),
			ast.Each(),
			empty))),

		ast.Def("isempty", []string{"g"}, call("first", ast.Comma(ast.Pipe(param("g"), call("false")), call("true")))),
		ast.Def("until", []string{"cond", "update"}, ast.If(
			param("cond"),
			dot,
			ast.Pipe(param("update"), call("until", param("cond"), param("update"))))),
		ast.Def("while", []string{"cond", "update"}, ast.If(
			param("cond"),
			ast.Comma(dot, ast.Pipe(param("update"), call("while", param("cond"), param("update")))),
			empty)),
		ast.Def("range", []string{"n"}, call("limit", param("n"),
			ast.Pipe(ast.Int(0), call("recurse", ast.Binary(ast.OpAdd, dot, ast.Int(1)))))),
		ast.Def("nth", []string{"n", "f"}, call("last",
			call("limit", ast.Binary(ast.OpAdd, param("n"), ast.Int(1)), param("f")))),

		ast.Def("any", []string{"f"}, ast.Pipe(call("map", param("f")), call("any"))),
		ast.Def("all", []string{"f"}, ast.Pipe(call("map", param("f")), call("all"))),
		ast.Def("add", []string{"f"}, ast.Pipe(ast.Collect(param("f")), call("add"))),

		ast.Def("reverse", nil, call("fold", ast.Each(), ast.Collect(empty),
			ast.Binary(ast.OpAdd, ast.Collect(ast.Field("x")), ast.Field("acc")))),
		ast.Def("first", nil, ast.Index(dot, ast.Int(0))),
		ast.Def("last", nil, ast.Index(dot, ast.Int(-1))),
	}
}

// Module returns the standard definitions followed by extra.
func Module(extra ...*ast.Definition) *ast.Module {
	defs := definitions()
	defs = append(defs, extra...)
	return ast.NewModule(defs...)
}

// Names returns the (name/arity) keys of the standard definitions, in order.
func Names() []string {
	defs := definitions()
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Key().String()
	}
	return out
}
