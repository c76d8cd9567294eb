// core/tree/tree.go
package tree

// Node is one guide-tree node in the arena. Leaves carry the index of their
// sequence; internal nodes carry the arena indices of their two children and
// the UPGMA merge distance. Nodes are never mutated after construction.
type Node struct {
	SeqIndex int // sequence index for leaves, -1 for internal nodes
	Left     int // arena index of left child, -1 for leaves
	Right    int // arena index of right child, -1 for leaves
	Dist     float64
	Members  []int // sequence indices covered by this subtree
}

// Leaf reports whether the node has no children.
func (n Node) Leaf() bool { return n.Left < 0 && n.Right < 0 }

// Tree is an immutable arena of guide-tree nodes with a single root.
type Tree struct {
	nodes []Node
	root  int
}

// Root returns the arena index of the root node.
func (t *Tree) Root() int { return t.root }

// Node returns the node at arena index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Len returns the total number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Walk visits nodes depth-first from the root (parent before children,
// left before right), reporting each node's depth. Intended for diagnostic
// display by callers.
func (t *Tree) Walk(fn func(idx int, n Node, depth int)) {
	type frame struct {
		idx, depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[f.idx]
		fn(f.idx, n, f.depth)
		if !n.Leaf() {
			// push right first so left is visited first
			stack = append(stack, frame{n.Right, f.depth + 1})
			stack = append(stack, frame{n.Left, f.depth + 1})
		}
	}
}

// PostOrder returns arena indices in left-before-right post-order.
// Iterative so pathological ladder-shaped trees cannot blow the stack.
func (t *Tree) PostOrder() []int {
	out := make([]int, 0, len(t.nodes))
	stack := []int{t.root}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, idx)
		n := t.nodes[idx]
		if !n.Leaf() {
			stack = append(stack, n.Left, n.Right)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
