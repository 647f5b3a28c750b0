package value_test

import (
	"testing"

	"github.com/sandrolain/gojaq/pkg/value"
)

func FuzzParseJSON(f *testing.F) {
	seeds := []string{
		`null`,
		`{"a":[1,2.5,-0,1e400],"b":{"c":"é"}}`,
		`"x\n"`,
		`[true,false,{}]`,
		`1 2`,
		`{`,
		``,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		v, err := value.ParseJSON([]byte(input))
		if err != nil {
			return
		}
		out, err := value.JSON(v)
		if err != nil {
			t.Fatalf("JSON(%v): %v", v, err)
		}
		back, err := value.ParseJSON(out)
		if err != nil {
			t.Fatalf("re-parse %s: %v", out, err)
		}
		if !value.Equal(v, back) {
			t.Fatalf("round trip changed %v into %v", v, back)
		}
	})
}
