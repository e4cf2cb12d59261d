package section

const (
	HeaderSize      = 8   // fixed preamble size in bytes: entry count + decoded count
	EntryHeaderSize = 2   // symbol byte + bit length byte preceding each packed code
	MaxEntries      = 256 // one entry per byte value at most
	MaxEntryBytes   = 32  // packed bytes of the longest (255-bit) code
)
