// Package tree builds and rebuilds Huffman trees stored in an index arena.
//
// Nodes live in a single slice and reference their children by index, so a tree
// is released as a unit and carries no parent pointers. Codes are derived by a
// top-down traversal (see package code) rather than by walking up from leaves.
package tree

import (
	"container/heap"

	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/internal/pool"
)

// None marks an absent child or an absent root.
const None int32 = -1

// MaxNodes is the node count of a full tree over the whole byte alphabet.
const MaxNodes = 2*freq.AlphabetSize - 1

var nodePool = pool.NewSlicePool[Node](MaxNodes)

// Node is a tree node. Leaves carry a symbol; internal nodes carry children.
type Node struct {
	Weight uint64
	Zero   int32
	One    int32
	Symbol byte
	Leaf   bool
}

// Child returns the zero-child for bit 0 and the one-child otherwise.
func (n *Node) Child(bit uint8) int32 {
	if bit == 0 {
		return n.Zero
	}

	return n.One
}

// Tree is a Huffman tree in an index arena.
//
// A Tree is owned by the call that built it and must not be shared across goroutines.
type Tree struct {
	nodes   []Node
	root    int32
	release func([]Node)
}

func newTree(capacity int) *Tree {
	nodes, cleanup := nodePool.Get(capacity)
	return &Tree{nodes: nodes, root: None, release: cleanup}
}

// Root returns the index of the root node, or None for an empty tree.
func (t *Tree) Root() int32 {
	return t.root
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	return t.root == None
}

// Node returns a pointer to the node at index i. The pointer is invalidated by Release.
func (t *Tree) Node(i int32) *Node {
	return &t.nodes[i]
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of leaf nodes.
func (t *Tree) Leaves() int {
	n := 0
	for i := range t.nodes {
		if t.nodes[i].Leaf {
			n++
		}
	}

	return n
}

// Release returns the arena to the node pool. The tree is empty afterwards.
// Calling Release more than once is a no-op.
func (t *Tree) Release() {
	if t.release == nil {
		return
	}

	t.release(t.nodes)
	t.release = nil
	t.nodes = nil
	t.root = None
}

func (t *Tree) add(n Node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1) //nolint:gosec // arena never exceeds int32
}

func leaf(symbol byte, weight uint64) Node {
	return Node{Symbol: symbol, Weight: weight, Zero: None, One: None, Leaf: true}
}

func internal(weight uint64, zero, one int32) Node {
	return Node{Weight: weight, Zero: zero, One: one}
}

// Build constructs a Huffman tree from symbol frequencies.
//
// Leaves enter the arena in ascending symbol order and internal nodes are
// appended as they are created. Candidates are ordered by (weight, arena index),
// so ties resolve to the node that entered the arena first. Each merge pops the
// two smallest candidates: the first becomes the zero-child and the second the
// one-child of a new node carrying their summed weight.
//
// With no symbols the tree is empty. With a single symbol the root is that leaf.
func Build(ft *freq.Table) *Tree {
	n := ft.Distinct()
	if n == 0 {
		return newTree(0)
	}

	t := newTree(2*n - 1)
	h := &minHeap{tree: t, idx: make([]int32, 0, n)}
	for sym, count := range ft.Counts {
		if count > 0 {
			h.idx = append(h.idx, t.add(leaf(byte(sym), count)))
		}
	}

	heap.Init(h)
	for h.Len() > 1 {
		zero, _ := heap.Pop(h).(int32)
		one, _ := heap.Pop(h).(int32)
		weight := t.nodes[zero].Weight + t.nodes[one].Weight
		heap.Push(h, t.add(internal(weight, zero, one)))
	}
	t.root = h.idx[0]

	return t
}

// minHeap orders arena indices by (weight, index).
type minHeap struct {
	tree *Tree
	idx  []int32
}

func (h *minHeap) Len() int { return len(h.idx) }

func (h *minHeap) Less(i, j int) bool {
	a, b := h.idx[i], h.idx[j]
	wa, wb := h.tree.nodes[a].Weight, h.tree.nodes[b].Weight
	if wa != wb {
		return wa < wb
	}

	return a < b
}

func (h *minHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *minHeap) Push(x any) {
	i, _ := x.(int32)
	h.idx = append(h.idx, i)
}

func (h *minHeap) Pop() any {
	old := h.idx
	n := len(old)
	x := old[n-1]
	h.idx = old[:n-1]

	return x
}
