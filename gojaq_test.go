package gojaq_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/gojaq"
	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/config"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

func TestVersion(t *testing.T) {
	if gojaq.Version() == "" {
		t.Fatal("empty version")
	}
}

func TestRun(t *testing.T) {
	main := ast.NewMain(ast.Call("map", ast.Binary(ast.OpAdd, ast.Identity(), ast.Int(1))))
	got, err := gojaq.Run(context.Background(), main, []interface{}{1, 2.5, 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []value.Value{value.MustFromAny([]interface{}{2, 3.5, 4})}
	if diff := cmp.Diff(want, got, cmp.Comparer(value.Equal)); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestRunUsesStandardLibrary(t *testing.T) {
	got, err := gojaq.Run(context.Background(), ast.NewMain(ast.Collect(ast.Call("range", ast.Int(3)))), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !value.Equal(got[0], value.MustFromAny([]interface{}{0, 1, 2})) {
		t.Errorf("got %v", got)
	}
}

func TestRunUnboundFunction(t *testing.T) {
	_, err := gojaq.Run(context.Background(), ast.NewMain(ast.Call("nope")), nil)
	if !errors.Is(err, types.ErrResolutionError) {
		t.Fatalf("expected resolution error, got %v", err)
	}
}

func TestMustOpenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	gojaq.MustOpen(ast.NewMain(ast.Call("nope")), nil)
}

func TestEngineCachesPrograms(t *testing.T) {
	cfg := config.Default()
	cfg.CacheSize = 2
	double := functions.CustomFunctionDef{Name: "double", Arity: 0, Fn: func(_ context.Context, in value.Value, _ ...value.Value) (value.Value, error) {
		return value.Add(in, in)
	}}
	eng, err := gojaq.NewEngine(cfg, gojaq.WithFunctions(double))
	if err != nil {
		t.Fatal(err)
	}
	main := ast.NewMain(ast.Pipe(ast.Call("first", ast.Call("range", ast.Int(5))), ast.Call("double")))

	p1, err := eng.Program("double", main)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := eng.Program("double", main)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 || eng.Cache().Len() != 1 {
		t.Fatalf("expected one cached program, got %d", eng.Cache().Len())
	}

	res, err := eng.Run(context.Background(), "double", main, value.NullValue)
	if err != nil {
		t.Fatal(err)
	}
	got, err := res.Collect()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !value.Equal(got[0], value.NewInt(0)) {
		t.Errorf("got %v", got)
	}
}

func TestEngineKeyIdentifiesProgram(t *testing.T) {
	eng, err := gojaq.NewEngine(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	run := func(main *ast.Main) value.Value {
		t.Helper()
		res, err := eng.Run(context.Background(), "f", main, value.NullValue)
		if err != nil {
			t.Fatal(err)
		}
		got, err := res.Collect()
		if err != nil || len(got) != 1 {
			t.Fatalf("got %v, %v", got, err)
		}
		return got[0]
	}
	one, two := ast.NewMain(ast.Int(1)), ast.NewMain(ast.Int(2))
	if got := run(one); !value.Equal(got, value.NewInt(1)) {
		t.Fatalf("got %v, want 1", got)
	}
	if got := run(two); !value.Equal(got, value.NewInt(1)) {
		t.Errorf("cached key ran a new program: got %v, want 1", got)
	}
	eng.Cache().Invalidate("f")
	if got := run(two); !value.Equal(got, value.NewInt(2)) {
		t.Errorf("after invalidation got %v, want 2", got)
	}
}

func TestEngineRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Precision = 0
	if _, err := gojaq.NewEngine(cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestEngineWithModule(t *testing.T) {
	module := ast.NewModule(ast.Def("answer", nil, ast.Int(42)))
	eng, err := gojaq.NewEngine(config.Default(), gojaq.WithModule(module))
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.Run(context.Background(), "answer", ast.NewMain(ast.Call("answer")), nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := res.Collect()
	if err != nil || len(got) != 1 || !value.Equal(got[0], value.NewInt(42)) {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := eng.Program("range", ast.NewMain(ast.Call("range", ast.Int(1)))); err == nil {
		t.Error("expected range to be unbound without the standard library")
	}
}
