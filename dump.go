package pathtrie

import (
	"fmt"
	"strings"
)

// Dump renders the tree structure for debugging. Children are sorted by key
// byte so the output is deterministic. It has no effect on trie semantics.
func (t *trie[T]) Dump() string {
	if t.root.empty() {
		return "(empty trie)\n"
	}
	var sb strings.Builder
	t.root.dump(&sb, "", true, true)
	return sb.String()
}

func (n *node[T]) dump(sb *strings.Builder, indent string, last, root bool) {
	if !root {
		connector := "├── "
		if last {
			connector = "└── "
		}
		sb.WriteString(indent)
		sb.WriteString(connector)
	}

	if root && n.prefix == "" {
		sb.WriteString("(root)")
	} else {
		fmt.Fprintf(sb, "%q", n.prefix)
	}

	var slots []string
	if n.exact != nil {
		slots = append(slots, fmt.Sprintf("exact: %v", *n.exact))
	}
	if n.wildcard != nil {
		slots = append(slots, fmt.Sprintf("wildcard: %v", *n.wildcard))
	}
	if len(slots) > 0 {
		fmt.Fprintf(sb, " [%s]", strings.Join(slots, ", "))
	}
	sb.WriteByte('\n')

	childIndent := indent
	if !root {
		if last {
			childIndent += "    "
		} else {
			childIndent += "│   "
		}
	}

	children := n.sortedChildren()
	for i, child := range children {
		child.dump(sb, childIndent, i == len(children)-1, false)
	}
}
