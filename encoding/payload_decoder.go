package encoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/tree"
)

// PayloadDecoder turns payload bits back into symbols by walking a tree.
type PayloadDecoder struct {
	tree  *tree.Tree
	count uint32
}

// NewPayloadDecoder creates a PayloadDecoder that emits exactly count symbols.
// The tree stays owned by the caller.
func NewPayloadDecoder(tr *tree.Tree, count uint32) *PayloadDecoder {
	return &PayloadDecoder{tree: tr, count: count}
}

// Decode reads payload bytes from r and writes decoded symbols to w.
//
// Decoding stops once count symbols have been written; bytes and bits after
// that point are never read. A tree whose root is a leaf emits its symbol count
// times without reading r.
//
// Returns:
//   - error: ErrInvalidPayload if the walk reaches an absent child, ErrTruncatedInput
//     if r is exhausted early, or a wrapped I/O error
func (d *PayloadDecoder) Decode(r io.ByteReader, w io.ByteWriter) error {
	remaining := d.count
	if remaining == 0 {
		return nil
	}

	if d.tree.Empty() {
		return fmt.Errorf("%w: no code table for %d symbols", errs.ErrInvalidPayload, remaining)
	}

	tr := d.tree
	root := tr.Root()
	if node := tr.Node(root); node.Leaf {
		for ; remaining > 0; remaining-- {
			if err := w.WriteByte(node.Symbol); err != nil {
				return fmt.Errorf("write symbol: %w", err)
			}
		}

		return nil
	}

	p := root
	for remaining > 0 {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: payload ended with %d of %d symbols left",
					errs.ErrTruncatedInput, remaining, d.count)
			}

			return fmt.Errorf("read payload: %w", err)
		}

		for mask := byte(1); mask != 0 && remaining > 0; mask <<= 1 {
			var bit uint8
			if b&mask != 0 {
				bit = 1
			}

			p = tr.Node(p).Child(bit)
			if p == tree.None {
				return fmt.Errorf("%w: no branch for bit %d with %d symbols left",
					errs.ErrInvalidPayload, bit, remaining)
			}

			if node := tr.Node(p); node.Leaf {
				if err := w.WriteByte(node.Symbol); err != nil {
					return fmt.Errorf("write symbol: %w", err)
				}
				p = root
				remaining--
			}
		}
	}

	return nil
}
