// Package section defines the binary layout of the serialized code table.
//
// An encoded stream starts with the code table followed immediately by the
// payload bits, with no separator, magic number, version or checksum:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Preamble (8 bytes, fixed, big-endian)                   │
//	│  - EntryCount (4 bytes): number of table entries        │
//	│  - DecodedCount (4 bytes): number of original bytes     │
//	├─────────────────────────────────────────────────────────┤
//	│ Entries (EntryCount × variable), ascending symbol order │
//	│  - Symbol (1 byte)                                      │
//	│  - BitLen (1 byte)                                      │
//	│  - Bits (ceil(BitLen/8) bytes)                          │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (variable)                                      │
//	│  - codes packed least significant bit first             │
//	│  - final byte zero-padded                               │
//	└─────────────────────────────────────────────────────────┘
//
// # Entry Bits
//
// Bit i of an entry's code is the branch taken at depth i below the root and is
// stored at bit i%8 of byte i/8. For the codes a=0, c=10, b=11 the entries are:
//
//	61 01 00    symbol 'a', 1 bit
//	62 02 03    symbol 'b', 2 bits, branches 1,1
//	63 02 01    symbol 'c', 2 bits, branches 1,0
//
// # Degenerate Tables
//
// Empty input encodes as EntryCount=0, DecodedCount=0 and nothing else. Input with
// a single distinct symbol encodes one entry with BitLen=0 and no packed bytes;
// the payload is then empty and the decoder repeats the symbol DecodedCount times.
package section
