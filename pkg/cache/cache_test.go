package cache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/cache"
	"github.com/sandrolain/gojaq/pkg/evaluator"
	"github.com/sandrolain/gojaq/pkg/resolver"
)

func open(t *testing.T) *evaluator.Program {
	t.Helper()
	prog, err := resolver.Open(ast.NewMain(ast.Identity()), nil)
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestCacheNew(t *testing.T) {
	c := cache.New(10)
	if got := c.Len(); got != 0 {
		t.Fatalf("expected empty cache, got %d", got)
	}
	if got := c.Capacity(); got != 10 {
		t.Fatalf("expected capacity 10, got %d", got)
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	c := cache.New(0)
	if got := c.Capacity(); got != cache.DefaultCapacity {
		t.Fatalf("expected default capacity %d, got %d", cache.DefaultCapacity, got)
	}
}

func TestCacheSetGet(t *testing.T) {
	c := cache.New(4)
	prog := open(t)
	c.Set("id", prog)
	if got := c.Len(); got != 1 {
		t.Fatalf("expected 1 entry, got %d", got)
	}
	got, ok := c.Get("id")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != prog {
		t.Fatal("expected same program pointer")
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected cache miss")
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := cache.New(3)
	for _, k := range []string{"a", "b", "c"} {
		c.Set(k, open(t))
	}
	// Touch "a" so "b" becomes the oldest.
	if _, ok := c.Get("a"); !ok {
		t.Fatal(`expected "a" to be cached`)
	}
	c.Set("d", open(t))
	if got := c.Len(); got != 3 {
		t.Fatalf("expected 3 entries after eviction, got %d", got)
	}
	if _, ok := c.Get("b"); ok {
		t.Fatal(`expected "b" to be evicted (LRU)`)
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("expected %q to survive", k)
		}
	}
	if got := c.Evictions(); got != 1 {
		t.Fatalf("expected 1 eviction, got %d", got)
	}
}

func TestCacheInvalidateClear(t *testing.T) {
	c := cache.New(4)
	c.Set("k", open(t))
	c.Set("j", open(t))
	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after Invalidate")
	}
	c.Clear()
	if got := c.Len(); got != 0 {
		t.Fatalf("expected empty cache after Clear, got %d", got)
	}
	c.Set("k", open(t))
	if got := c.Len(); got != 1 {
		t.Fatalf("expected cache usable after Clear, got %d entries", got)
	}
}

func TestCacheGetOrOpen(t *testing.T) {
	c := cache.New(4)
	calls := 0
	build := func() (*evaluator.Program, error) {
		calls++
		return open(t), nil
	}
	first, err := c.GetOrOpen("k", build)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.GetOrOpen("k", build)
	if err != nil {
		t.Fatal(err)
	}
	if first != second || calls != 1 {
		t.Fatalf("expected one open and the same program, got %d opens", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrOpen("bad", func() (*evaluator.Program, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected open error, got %v", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Fatal("errors must not be cached")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := cache.New(8)
	prog := open(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%10))
			c.Set(key, prog)
			c.Get(key)
		}(i)
	}
	wg.Wait()
	if got := c.Len(); got > 8 {
		t.Fatalf("cache exceeded capacity: %d", got)
	}
}
