// Package code derives per-symbol Huffman codes from a tree.
package code

import (
	"strings"

	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/internal/bits"
	"github.com/arloliu/huffman/tree"
)

// MaxBits is the longest representable code. A tree over 256 symbols is at most
// 255 levels deep.
const MaxBits = 255

// Code is the bit sequence of one symbol.
//
// Bit i is the branch taken at depth i on the way from the root to the symbol's
// leaf (0 for the zero-child, 1 for the one-child), stored least significant
// bit first. This is the wire layout of a table entry.
type Code struct {
	Len  uint8
	bits [maxCodeBytes]byte
}

const maxCodeBytes = (MaxBits + 7) / 8

// Bit returns bit i of the code.
func (c *Code) Bit(i int) uint8 {
	return bits.Get(c.bits[:], i)
}

// Bytes returns the packed code, NumBytes(Len) bytes long.
func (c *Code) Bytes() []byte {
	return c.bits[:bits.NumBytes(int(c.Len))]
}

// Word returns the code as an integer with the first branch in the most
// significant position, so "10" is 0b10. Only the low 64 bits of longer codes
// are kept.
func (c *Code) Word() uint64 {
	n := int(c.Len)
	if n == 0 {
		return 0
	}

	rev := c.bits
	bits.Reverse(rev[:], n)

	var w uint64
	for i := 0; i < n && i < 64; i++ {
		w |= uint64(bits.Get(rev[:], i)) << i
	}

	return w
}

// String renders the code as a string of '0' and '1' in branch order.
func (c *Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := 0; i < int(c.Len); i++ {
		sb.WriteByte('0' + c.Bit(i))
	}

	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c *Code) HasPrefix(p *Code) bool {
	if p.Len > c.Len {
		return false
	}
	for i := 0; i < int(p.Len); i++ {
		if c.Bit(i) != p.Bit(i) {
			return false
		}
	}

	return true
}

// Table maps symbols to codes.
type Table struct {
	codes   [freq.AlphabetSize]Code
	present [freq.AlphabetSize]bool
	n       int
}

// Derive computes the code of every leaf in tr.
//
// A tree whose root is a leaf yields a single zero-length code. An empty tree
// yields an empty table.
func Derive(tr *tree.Tree) *Table {
	t := &Table{}
	if tr.Empty() {
		return t
	}

	var path Code
	t.walk(tr, tr.Root(), &path)

	return t
}

// walk visits the subtree at i. path holds the branches from the root to i and
// is restored before returning.
func (t *Table) walk(tr *tree.Tree, i int32, path *Code) {
	node := tr.Node(i)
	if node.Leaf {
		t.codes[node.Symbol] = *path
		t.present[node.Symbol] = true
		t.n++

		return
	}

	depth := int(path.Len)
	path.Len++
	for bit := uint8(0); bit <= 1; bit++ {
		child := node.Child(bit)
		if child == tree.None {
			continue
		}
		bits.Set(path.bits[:], depth, bit)
		t.walk(tr, child, path)
	}
	bits.Set(path.bits[:], depth, 0)
	path.Len--
}

// Lookup returns the code of sym.
func (t *Table) Lookup(sym byte) (Code, bool) {
	return t.codes[sym], t.present[sym]
}

// At returns a pointer to the code of sym without a presence check. Absent
// symbols have a zero-length code.
func (t *Table) At(sym byte) *Code {
	return &t.codes[sym]
}

// Has reports whether sym has a code.
func (t *Table) Has(sym byte) bool {
	return t.present[sym]
}

// Len returns the number of symbols with a code.
func (t *Table) Len() int {
	return t.n
}

// Symbols returns the symbols with a code in ascending order.
func (t *Table) Symbols() []byte {
	syms := make([]byte, 0, t.n)
	for sym, ok := range t.present {
		if ok {
			syms = append(syms, byte(sym))
		}
	}

	return syms
}

// IsPrefixFree reports whether no code is a prefix of another.
func (t *Table) IsPrefixFree() bool {
	syms := t.Symbols()
	for i, a := range syms {
		for j, b := range syms {
			if i != j && t.At(a).HasPrefix(t.At(b)) {
				return false
			}
		}
	}

	return true
}

// EncodedBits returns the payload size in bits for the symbol counts in ft.
func (t *Table) EncodedBits(ft *freq.Table) uint64 {
	var n uint64
	for sym, count := range ft.Counts {
		if count > 0 {
			n += count * uint64(t.codes[sym].Len)
		}
	}

	return n
}
