package pathtrie

import "sort"

// node stores a compressed run of path bytes. Children are keyed by the
// first byte of their prefix, so siblings never share a leading byte.
// Concatenating the prefixes from the root down to a node reconstructs the
// full path that reaches it.
type node[T any] struct {
	prefix   string
	children map[byte]*node[T]
	exact    *T
	wildcard *T
}

func newNode[T any](prefix string) *node[T] {
	return &node[T]{prefix: prefix}
}

func (n *node[T]) insert(path string, value T, wildcard bool) (updated bool) {
	if path == "" {
		return n.store(value, wildcard)
	}

	common := n.commonPrefixLen(path)

	// path diverges partway through our prefix
	if common < len(n.prefix) {
		n.splitAt(common)
	}

	if common < len(path) {
		return n.insertChild(path[common:], value, wildcard)
	}
	return n.store(value, wildcard)
}

func (n *node[T]) insertChild(remaining string, value T, wildcard bool) bool {
	first := remaining[0]
	child, ok := n.children[first]
	if !ok {
		child = newNode[T](remaining)
		if n.children == nil {
			n.children = make(map[byte]*node[T])
		}
		n.children[first] = child
	}
	return child.insert(remaining, value, wildcard)
}

// get walks the tree carrying the most specific wildcard value seen so far.
// A wildcard stored on this node overrides the fallback inherited from
// ancestors; a node whose prefix only partially matches the path hands back
// the inherited fallback untouched, since its own wildcard does not cover a
// path that diverges inside its prefix.
func (n *node[T]) get(path string, fallback *T) *T {
	current := n.wildcard
	if current == nil {
		current = fallback
	}

	if path == "" {
		if n.exact != nil {
			return n.exact
		}
		if n.wildcard != nil {
			return n.wildcard
		}
		return fallback
	}

	common := n.commonPrefixLen(path)
	if common < len(n.prefix) {
		return fallback
	}

	remaining := path[common:]
	if remaining == "" {
		if n.exact != nil {
			return n.exact
		}
		if n.wildcard != nil {
			return n.wildcard
		}
		return current
	}

	child, ok := n.children[remaining[0]]
	if !ok {
		return current
	}
	return child.get(remaining, current)
}

func (n *node[T]) remove(path string, wildcard bool) *T {
	if path == "" {
		return n.take(wildcard)
	}

	common := n.commonPrefixLen(path)
	if common != len(n.prefix) {
		return nil
	}

	remaining := path[common:]
	if remaining == "" {
		return n.take(wildcard)
	}

	child, ok := n.children[remaining[0]]
	if !ok {
		return nil
	}
	return child.remove(remaining, wildcard)
}

func (n *node[T]) store(value T, wildcard bool) (updated bool) {
	if wildcard {
		updated = n.wildcard != nil
		n.wildcard = &value
		return updated
	}
	updated = n.exact != nil
	n.exact = &value
	return updated
}

func (n *node[T]) take(wildcard bool) *T {
	if wildcard {
		v := n.wildcard
		n.wildcard = nil
		return v
	}
	v := n.exact
	n.exact = nil
	return v
}

// commonPrefixLen counts the bytes this node's prefix shares with path.
func (n *node[T]) commonPrefixLen(path string) int {
	limit := min(len(n.prefix), len(path))
	i := 0
	for i < limit && n.prefix[i] == path[i] {
		i++
	}
	return i
}

// splitAt cuts the prefix at pos and pushes everything this node owned
// (children, both value slots) one level down into a fresh child holding
// the cut-off suffix. The node keeps only the common head afterwards.
func (n *node[T]) splitAt(pos int) {
	if pos >= len(n.prefix) {
		return
	}

	suffix := n.prefix[pos:]
	child := newNode[T](suffix)
	child.children = n.children
	child.exact = n.exact
	child.wildcard = n.wildcard

	n.prefix = n.prefix[:pos]
	n.children = map[byte]*node[T]{suffix[0]: child}
	n.exact = nil
	n.wildcard = nil
}

func (n *node[T]) empty() bool {
	return len(n.children) == 0 && n.exact == nil && n.wildcard == nil
}

// sortedChildren returns the children ordered by key byte, for
// deterministic traversal and rendering.
func (n *node[T]) sortedChildren() []*node[T] {
	if len(n.children) == 0 {
		return nil
	}
	keys := make([]int, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	out := make([]*node[T], len(keys))
	for i, k := range keys {
		out[i] = n.children[byte(k)]
	}
	return out
}

func (n *node[T]) walk(base string, fn Callback[T]) bool {
	full := base + n.prefix
	if n.exact != nil {
		if !fn(Entry[T]{Path: full, Value: *n.exact}) {
			return false
		}
	}
	if n.wildcard != nil {
		if !fn(Entry[T]{Path: full, Value: *n.wildcard, Wildcard: true}) {
			return false
		}
	}
	for _, child := range n.sortedChildren() {
		if !child.walk(full, fn) {
			return false
		}
	}
	return true
}
