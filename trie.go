package pathtrie

import (
	"errors"
	"strings"
)

// wildcardSuffix marks a registered path as a wildcard route.
const wildcardSuffix = "/*"

var ErrNoMoreEntries = errors.New("there are no more entries in the trie")

type trie[T any] struct {
	size int
	root *node[T]
}

// Insert registers value at path. A trailing "/*" makes the route a
// wildcard; re-inserting the same (path, wildcard) pair overwrites the
// previous value silently.
func (t *trie[T]) Insert(path string, value T) {
	clean, wildcard := parsePath(path)
	updated := t.root.insert(clean, value, wildcard)
	if !updated {
		t.size++
	}
}

// Get returns the best match for path: an exact entry beats a wildcard, and
// a deeper wildcard beats a shallower one. The path is taken literally —
// "/*" inside a lookup is ordinary bytes.
func (t *trie[T]) Get(path string) (T, bool) {
	v := t.root.get(path, nil)
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}

// Remove deletes and returns the value stored at exactly path, honoring the
// trailing "/*" convention. It never restructures the tree: interior nodes
// left valueless stay in place.
func (t *trie[T]) Remove(path string) (T, bool) {
	clean, wildcard := parsePath(path)
	v := t.root.remove(clean, wildcard)
	if v == nil {
		var zero T
		return zero, false
	}
	t.size--
	return *v, true
}

// Empty reports whether the trie holds no values and no structural
// children. Nodes left behind by Remove count as structure.
func (t *trie[T]) Empty() bool {
	return t.root.empty()
}

func (t *trie[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Walk visits every stored entry, children in key-byte order and the exact
// slot before the wildcard slot, until fn returns false.
func (t *trie[T]) Walk(fn Callback[T]) {
	t.root.walk("", fn)
}

func parsePath(path string) (string, bool) {
	if clean, ok := strings.CutSuffix(path, wildcardSuffix); ok {
		return clean, true
	}
	return path, false
}

type iterLevel[T any] struct {
	node     *node[T]
	base     string
	children []*node[T]
	childIdx int
	slot     int // 0 exact pending, 1 wildcard pending, 2 both emitted
}

type iterator[T any] struct {
	depth []*iterLevel[T]
	entry *Entry[T]
}

// Iterator yields the stored entries in the same order as Walk.
func (t *trie[T]) Iterator() Iterator[T] {
	it := &iterator[T]{
		depth: []*iterLevel[T]{{node: t.root, children: t.root.sortedChildren()}},
	}
	it.next()
	return it
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && it.entry != nil
}

func (it *iterator[T]) Next() (Entry[T], error) {
	if !it.HasNext() {
		return Entry[T]{}, ErrNoMoreEntries
	}
	cur := *it.entry
	it.next()
	return cur, nil
}

func (it *iterator[T]) next() {
	it.entry = nil
	for len(it.depth) > 0 {
		lvl := it.depth[len(it.depth)-1]
		full := lvl.base + lvl.node.prefix

		if lvl.slot == 0 {
			lvl.slot = 1
			if lvl.node.exact != nil {
				it.entry = &Entry[T]{Path: full, Value: *lvl.node.exact}
				return
			}
		}
		if lvl.slot == 1 {
			lvl.slot = 2
			if lvl.node.wildcard != nil {
				it.entry = &Entry[T]{Path: full, Value: *lvl.node.wildcard, Wildcard: true}
				return
			}
		}
		if lvl.childIdx < len(lvl.children) {
			child := lvl.children[lvl.childIdx]
			lvl.childIdx++
			it.depth = append(it.depth, &iterLevel[T]{
				node:     child,
				base:     full,
				children: child.sortedChildren(),
			})
			continue
		}
		it.depth = it.depth[:len(it.depth)-1]
	}
}
