package pathtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpEmptyTrie(t *testing.T) {
	trie := New[string]()
	assert.Equal(t, "(empty trie)\n", trie.Dump())
}

func TestDumpSmallTree(t *testing.T) {
	trie := New[int]()
	trie.Insert("/a", 1)
	trie.Insert("/b", 2)

	expected := "(root)\n" +
		"└── \"/\"\n" +
		"    ├── \"a\" [exact: 1]\n" +
		"    └── \"b\" [exact: 2]\n"
	assert.Equal(t, expected, trie.Dump())
}

func TestDumpShowcase(t *testing.T) {
	trie := New[string]()
	trie.Insert("/", "home")
	trie.Insert("/api/*", "api_fallback")
	trie.Insert("/api/v1/users", "users_v1")
	trie.Insert("/api/v1/posts", "posts_v1")
	trie.Insert("/static/*", "static_files")
	trie.Insert("/admin/dashboard", "admin")

	out := trie.Dump()

	assert.Contains(t, out, "(root)")
	assert.Contains(t, out, "exact: home")
	assert.Contains(t, out, "wildcard: api_fallback")
	assert.Contains(t, out, "wildcard: static_files")
	assert.Contains(t, out, "exact: admin")
	assert.Contains(t, out, "├── ")
	assert.Contains(t, out, "└── ")

	// children are sorted by key byte, so rendering is deterministic
	assert.Equal(t, out, trie.Dump())
}

func TestDumpBothSlotsOnOneNode(t *testing.T) {
	trie := New[string]()
	trie.Insert("/api", "exact_v")
	trie.Insert("/api/*", "wild_v")

	assert.Contains(t, trie.Dump(), "[exact: exact_v, wildcard: wild_v]")
}
