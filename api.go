// Package pathtrie implements a compressed prefix tree mapping URL-style
// paths to values. Routes ending in "/*" are wildcards that match every
// sub-path unless a more specific exact or deeper wildcard route exists.
// Lookup cost is bounded by the path length, not the number of routes.
//
// The trie performs no internal locking: concurrent lookups are safe, but
// any mutation needs exclusive access to the whole structure.
package pathtrie

type Trie[T any] interface {
	Insert(path string, value T)
	Get(path string) (T, bool)
	Remove(path string) (T, bool)
	Empty() bool
	Size() int
	Walk(fn Callback[T])
	Iterator() Iterator[T]
	Dump() string
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (Entry[T], error)
}

// Entry is one stored route. Path is the clean path without the wildcard
// marker; Wildcard tells which slot the value lives in.
type Entry[T any] struct {
	Path     string
	Value    T
	Wildcard bool
}

// Callback receives entries during Walk; returning false stops the walk.
type Callback[T any] func(e Entry[T]) bool

func New[T any]() Trie[T] {
	return &trie[T]{root: newNode[T]("")}
}
