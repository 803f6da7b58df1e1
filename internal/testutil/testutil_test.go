package testutil

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDs(t *testing.T) {
	gen := NewSequentialIDs("")

	assert.Equal(t, "run-0001", gen.Generate())
	assert.Equal(t, "run-0002", gen.Generate())
	assert.Equal(t, 2, gen.Count())

	gen.Reset()
	assert.Equal(t, "run-0001", gen.Generate())
}

func TestSequentialIDs_CustomPrefix(t *testing.T) {
	gen := NewSequentialIDs("case")
	assert.Equal(t, "case-0001", gen.Generate())
}

func TestSequentialIDs_ThreadSafe(t *testing.T) {
	gen := NewSequentialIDs("")

	var mu sync.Mutex
	seen := map[string]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := gen.Generate()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 1000)
	assert.Equal(t, 1000, gen.Count())
}

func TestWriteAndListFiles(t *testing.T) {
	dir := t.TempDir()
	WriteFiles(t, dir, map[string]string{
		"b.js":          "b();\n",
		"lib/a.js":      "a();\n",
		"lib/deep/c.ts": "let c: number;\n",
	})

	assert.Equal(t, []string{"b.js", "lib/a.js", "lib/deep/c.ts"}, ListFiles(t, dir))
	assert.Equal(t, "a();\n", ReadFile(t, filepath.Join(dir, "lib", "a.js")))
}
