// Benchmarks for resolution and evaluation.
//
//	go test -bench=. -benchmem .
package gojaq_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/sandrolain/gojaq"
	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/evaluator"
	"github.com/sandrolain/gojaq/pkg/ext"
	"github.com/sandrolain/gojaq/pkg/std"
	"github.com/sandrolain/gojaq/pkg/value"
)

// ---------------------------------------------------------------------------
// Test data
// ---------------------------------------------------------------------------

var (
	// mediumData - 10 users
	mediumData value.Value

	// largeData - 1000 users
	largeData value.Value
)

func init() {
	departments := []string{"Engineering", "Sales", "Marketing", "HR", "Finance"}

	buildDataset := func(n int) value.Value {
		users := make([]interface{}, n)
		for i := 0; i < n; i++ {
			users[i] = map[string]interface{}{
				"id":         i + 1,
				"name":       fmt.Sprintf("User%d", i+1),
				"age":        20 + (i % 40),
				"department": departments[i%5],
				"salary":     70000 + (i * 1000),
				"active":     i%2 == 0,
			}
		}
		return value.MustFromAny(map[string]interface{}{"users": users})
	}

	mediumData = buildDataset(10)
	largeData = buildDataset(1000)
}

// sharedEval is safe for concurrent use.
var sharedEval = evaluator.New()

func runEval(b *testing.B, prog *evaluator.Program, data value.Value) {
	b.Helper()
	if _, err := sharedEval.Eval(context.Background(), prog, data); err != nil {
		b.Fatal(err)
	}
}

// .users[] | select(.age > 30) | .name
var activeNames = ast.Pipe(
	ast.Iterate(ast.Field("users")),
	ast.Call("select", ast.Binary(ast.OpGt, ast.Field("age"), ast.Int(30))),
	ast.Field("name"),
)

// [.users[] | .salary] | add
var totalSalary = ast.Pipe(
	ast.Collect(ast.Pipe(ast.Iterate(ast.Field("users")), ast.Field("salary"))),
	ast.Call("add"),
)

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

func BenchmarkOpenStd(b *testing.B) {
	main := ast.NewMain(activeNames)
	module := std.Module()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gojaq.Open(main, module, ext.WithAll()); err != nil {
			b.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// Evaluation
// ---------------------------------------------------------------------------

func BenchmarkEvalSelect_Medium(b *testing.B) {
	prog := gojaq.MustOpen(ast.NewMain(activeNames), std.Module())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runEval(b, prog, mediumData)
	}
}

func BenchmarkEvalSelect_Large(b *testing.B) {
	prog := gojaq.MustOpen(ast.NewMain(activeNames), std.Module())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runEval(b, prog, largeData)
	}
}

func BenchmarkEvalAdd_Large(b *testing.B) {
	prog := gojaq.MustOpen(ast.NewMain(totalSalary), std.Module())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runEval(b, prog, largeData)
	}
}

func BenchmarkEvalFirstOfRange(b *testing.B) {
	// first(range(1000000)) must not build the whole range.
	prog := gojaq.MustOpen(ast.NewMain(ast.Call("first", ast.Call("range", ast.Int(1000000)))), std.Module())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runEval(b, prog, value.NullValue)
	}
}

func BenchmarkEvalParallel(b *testing.B) {
	prog := gojaq.MustOpen(ast.NewMain(activeNames), std.Module())
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			runEval(b, prog, mediumData)
		}
	})
}
