// Package errs defines the sentinel errors returned by the huffman codec.
//
// Every failure path wraps one of these values, so callers can classify
// failures with errors.Is regardless of which surface (buffer or stream)
// produced them.
package errs

import "errors"

var (
	// ErrMalformedHeader indicates an inconsistent code table preamble, such as an
	// entry count above 256 or a zero entry count paired with a nonzero decoded size.
	ErrMalformedHeader = errors.New("malformed code table header")
	// ErrInvalidHeaderSize indicates a preamble slice shorter than the fixed header size.
	ErrInvalidHeaderSize = errors.New("invalid code table header size")
	// ErrTruncatedInput indicates the input ended before all declared entries or bytes were read.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrInvalidCodeTable indicates conflicting or ambiguous code paths in a serialized table.
	ErrInvalidCodeTable = errors.New("invalid code table")
	// ErrInvalidPayload indicates the payload walked into an absent tree branch.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrAllocationFailure indicates an output buffer could not be allocated, or the
	// declared decoded size exceeds the configured limit.
	ErrAllocationFailure = errors.New("allocation failure")
	// ErrInputTooLarge indicates an input longer than the wire format's 32-bit decoded size.
	ErrInputTooLarge = errors.New("input too large")
)
