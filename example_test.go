package simplecache_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iTrooz/simplecache"
	"github.com/iTrooz/simplecache/config"
)

func Example() {
	cache := simplecache.New[int, string](0)

	cache.Insert(1, "hello")
	v, ok := cache.Get(1)
	fmt.Println(v, ok)

	cache.Delete(1)
	_, ok = cache.Get(1)
	fmt.Println(ok)

	// Output:
	// hello true
	// false
}

func Example_batch() {
	cache := simplecache.New[int, string](time.Minute)

	cache.InsertBatch([]simplecache.Item[int, string]{
		{Key: 1, Value: "hello"},
		{Key: 2, Value: "world"},
	})

	fmt.Println(cache.Len())

	// Output:
	// 2
}

func Example_config() {
	path := filepath.Join(os.TempDir(), "simplecache_example.yaml")
	if err := os.WriteFile(path, []byte("cache:\n  ttl: \"1h\"\n"), 0644); err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(path)

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		return
	}

	ttl, err := cfg.CacheTTL()
	if err != nil {
		fmt.Println(err)
		return
	}

	cache := simplecache.New[string, []byte](ttl)
	cache.Insert("session", []byte("token"))
	fmt.Println(cache.Len())

	// Output:
	// 1
}
