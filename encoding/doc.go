// Package encoding packs symbols into the payload bit stream and walks a Huffman
// tree to unpack them.
//
// Payload bits are filled least significant bit first: the first code bit of the
// stream lands in bit 0 of the first payload byte. The final byte is zero-padded;
// the decoder never reads the padding because it stops as soon as the declared
// number of symbols has been produced.
//
// Both directions work on io.ByteWriter and io.ByteReader so the same code serves
// the in-memory surface (pool.ByteBuffer, bytes.Reader) and the stream surface
// (bufio.Writer, bufio.Reader).
package encoding
