package tree

import (
	"fmt"

	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/internal/bits"
)

// Rebuilder reconstructs a tree from serialized (symbol, bit length, bits) entries.
type Rebuilder struct {
	tree     *Tree
	entries  int
	inserted int
}

// NewRebuilder returns a Rebuilder expecting the given number of entries.
func NewRebuilder(entries int) *Rebuilder {
	capacity := 2*entries - 1
	if capacity < 1 {
		capacity = 1
	}

	return &Rebuilder{tree: newTree(capacity), entries: entries}
}

// Insert places symbol at the path described by the first bitLen bits of packed,
// creating internal nodes as needed.
//
// A zero bitLen is only valid when exactly one entry is declared; the tree is then
// a single leaf. Paths that cross an existing leaf, or that end on an occupied
// position, are rejected with errs.ErrInvalidCodeTable.
func (r *Rebuilder) Insert(symbol byte, bitLen uint8, packed []byte) error {
	if r.inserted >= r.entries {
		return fmt.Errorf("%w: more than %d entries", errs.ErrMalformedHeader, r.entries)
	}
	r.inserted++

	t := r.tree
	if bitLen == 0 {
		if r.entries != 1 {
			return fmt.Errorf("%w: zero-length code for symbol %d among %d entries",
				errs.ErrInvalidCodeTable, symbol, r.entries)
		}
		t.root = t.add(leaf(symbol, 0))

		return nil
	}

	if len(packed) < bits.NumBytes(int(bitLen)) {
		return fmt.Errorf("%w: code for symbol %d needs %d bytes, have %d",
			errs.ErrTruncatedInput, symbol, bits.NumBytes(int(bitLen)), len(packed))
	}

	if t.root == None {
		t.root = t.add(internal(0, None, None))
	}

	p := t.root
	last := int(bitLen) - 1
	for i := 0; i <= last; i++ {
		if t.nodes[p].Leaf {
			return fmt.Errorf("%w: code for symbol %d passes through a leaf",
				errs.ErrInvalidCodeTable, symbol)
		}

		bit := bits.Get(packed, i)
		child := t.nodes[p].Child(bit)
		if child != None {
			if i == last {
				return fmt.Errorf("%w: code for symbol %d collides with an existing code",
					errs.ErrInvalidCodeTable, symbol)
			}
			p = child

			continue
		}

		if i == last {
			child = t.add(leaf(symbol, 0))
		} else {
			child = t.add(internal(0, None, None))
		}

		if bit == 0 {
			t.nodes[p].Zero = child
		} else {
			t.nodes[p].One = child
		}
		p = child
	}

	return nil
}

// Tree returns the rebuilt tree. Ownership passes to the caller.
func (r *Rebuilder) Tree() *Tree {
	return r.tree
}

// Release releases the partially built tree.
func (r *Rebuilder) Release() {
	r.tree.Release()
}
