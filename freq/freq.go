// Package freq counts byte occurrences for Huffman tree construction.
package freq

import (
	"fmt"
	"io"
	"math"
)

// AlphabetSize is the number of distinct symbols, one per byte value.
const AlphabetSize = 256

const readBufferSize = 32 * 1024

// Table holds per-symbol occurrence counts.
type Table struct {
	// Counts is indexed by symbol value.
	Counts [AlphabetSize]uint64
	// Total is the number of symbols counted.
	Total uint64
}

// Count builds a frequency table over data.
func Count(data []byte) Table {
	var t Table
	t.Add(data)

	return t
}

// CountReader builds a frequency table by consuming r until io.EOF.
//
// The reader is left at EOF; callers that need a second pass must rewind it.
func CountReader(r io.Reader) (Table, error) {
	var t Table

	buf := make([]byte, readBufferSize)
	for {
		n, err := r.Read(buf)
		t.Add(buf[:n])

		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return Table{}, fmt.Errorf("count symbols: %w", err)
		}
	}
}

// Add counts the symbols in data into t.
func (t *Table) Add(data []byte) {
	for _, c := range data {
		t.Counts[c]++
	}
	t.Total += uint64(len(data))
}

// Distinct returns the number of symbols that occur at least once.
func (t *Table) Distinct() int {
	n := 0
	for _, c := range t.Counts {
		if c > 0 {
			n++
		}
	}

	return n
}

// Symbols returns the present symbols in ascending order.
func (t *Table) Symbols() []byte {
	syms := make([]byte, 0, t.Distinct())
	for sym, c := range t.Counts {
		if c > 0 {
			syms = append(syms, byte(sym))
		}
	}

	return syms
}

// Entropy returns the order-0 Shannon entropy of t in bits per symbol.
//
// Entropy times Total is the lower bound on the payload size of any prefix code
// built from t.
func (t *Table) Entropy() float64 {
	if t.Total == 0 {
		return 0
	}

	total := float64(t.Total)
	h := 0.0
	for _, c := range t.Counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		h -= p * math.Log2(p)
	}

	return h
}
