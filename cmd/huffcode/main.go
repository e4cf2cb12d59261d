// huffcode encodes and decodes files with static Huffman coding.
//
// Usage:
//
//	huffcode [options]
//	huffcode -s [-j N] file...
//
// Options:
//
//	-i file     Input file (default: stdin)
//	-o file     Output file (default: stdout)
//	-c          Encode the input (default)
//	-d          Decode the input
//	-m          Use the in-memory surface instead of streaming
//	-t          Print the code table of the input to stderr
//	-v          Print sizes to stderr
//	-verify     Decode the encoded output and compare checksums
//	-s          Print compression statistics for each file argument
//	-j N        Number of files measured concurrently in -s mode
//	-h          Show this help
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/arloliu/huffman/codec"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/internal/hash"
	"golang.org/x/sync/errgroup"
)

type config struct {
	input   string
	output  string
	encode  bool
	decode  bool
	memory  bool
	table   bool
	verbose bool
	verify  bool
	stat    bool
	jobs    int
	files   []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "huffcode: ", 0)

	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Print(err)
		return 1
	}

	if cfg.stat {
		err = runStat(context.Background(), cfg.files, cfg.jobs, stdout)
	} else {
		err = runCodec(cfg, stdin, stdout, logger)
	}

	if err != nil {
		logger.Print(err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("huffcode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "i", "", "Input file (default: stdin)")
	fs.StringVar(&cfg.output, "o", "", "Output file (default: stdout)")
	fs.BoolVar(&cfg.encode, "c", false, "Encode the input (default)")
	fs.BoolVar(&cfg.decode, "d", false, "Decode the input")
	fs.BoolVar(&cfg.memory, "m", false, "Use the in-memory surface instead of streaming")
	fs.BoolVar(&cfg.table, "t", false, "Print the code table of the input to stderr")
	fs.BoolVar(&cfg.verbose, "v", false, "Print sizes to stderr")
	fs.BoolVar(&cfg.verify, "verify", false, "Decode the encoded output and compare checksums")
	fs.BoolVar(&cfg.stat, "s", false, "Print compression statistics for each file argument")
	fs.IntVar(&cfg.jobs, "j", runtime.NumCPU(), "Number of files measured concurrently in -s mode")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: huffcode [-c|-d] [-m] [-t] [-v] [-verify] [-i input] [-o output]")
		fmt.Fprintln(fs.Output(), "       huffcode -s [-j N] file...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.files = fs.Args()

	switch {
	case cfg.encode && cfg.decode:
		return nil, errors.New("-c and -d are mutually exclusive")
	case cfg.decode && cfg.verify:
		return nil, errors.New("-verify applies to encoding only")
	case cfg.stat && len(cfg.files) == 0:
		return nil, errors.New("-s needs at least one file")
	case !cfg.stat && len(cfg.files) > 0:
		return nil, fmt.Errorf("unexpected arguments: %v", cfg.files)
	case cfg.jobs < 1:
		return nil, fmt.Errorf("invalid -j value: %d", cfg.jobs)
	}

	return cfg, nil
}

func runCodec(cfg *config, stdin io.Reader, stdout io.Writer, logger *log.Logger) (err error) {
	src, err := openInput(cfg.input, stdin)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := createOutput(cfg.output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if cfg.table {
		if err := dumpInputTable(src, cfg.decode, logger.Writer()); err != nil {
			return err
		}
	}

	in, out := &countingReader{r: src}, &countingWriter{w: dst}
	switch {
	case cfg.decode && cfg.memory:
		err = decodeMemory(out, in)
	case cfg.decode:
		err = decodeStream(out, in)
	case cfg.memory:
		err = encodeMemory(out, in, cfg.verify)
	default:
		in.n, err = encodeStream(out, src, cfg.verify)
	}
	if err != nil {
		return err
	}

	if cfg.verbose {
		verb := "encoded"
		if cfg.decode {
			verb = "decoded"
		}
		logger.Printf("%s %d bytes into %d bytes (%.2f%%)", verb, in.n, out.n, percent(out.n, in.n))
	}
	if cfg.verify {
		logger.Print("verified: checksums match")
	}

	return nil
}

func encodeMemory(dst io.Writer, src io.Reader, verify bool) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	enc, err := codec.NewEncoder()
	if err != nil {
		return err
	}
	encoded, err := enc.Encode(data)
	if err != nil {
		return err
	}

	if verify {
		dec, err := codec.NewDecoder()
		if err != nil {
			return err
		}
		decoded, err := dec.Decode(encoded)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if err := compareChecksums(hash.Checksum(data), hash.Checksum(decoded)); err != nil {
			return err
		}
	}

	if _, err := dst.Write(encoded); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func decodeMemory(dst io.Writer, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	dec, err := codec.NewDecoder()
	if err != nil {
		return err
	}
	decoded, err := dec.Decode(data)
	if err != nil {
		return err
	}

	if _, err := dst.Write(decoded); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// encodeStream encodes src into dst. With verify set, the encoded bytes are
// decoded concurrently through a pipe and the checksum of the decoded output is
// compared with a checksum taken over src before encoding.
//
// Returns the number of input bytes encoded.
func encodeStream(dst io.Writer, src io.ReadSeeker, verify bool) (int64, error) {
	enc, err := codec.NewEncoder()
	if err != nil {
		return 0, err
	}

	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("locate input: %w", err)
	}

	if !verify {
		if err := enc.EncodeStream(dst, src); err != nil {
			return 0, err
		}
		end, err := src.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, fmt.Errorf("locate input: %w", err)
		}

		return end - start, nil
	}

	want, n, err := hash.ChecksumReader(src)
	if err != nil {
		return 0, fmt.Errorf("checksum input: %w", err)
	}
	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind input: %w", err)
	}

	dec, err := codec.NewDecoder()
	if err != nil {
		return 0, err
	}

	pr, pw := io.Pipe()
	digest := hash.NewDigest()

	var g errgroup.Group
	g.Go(func() error {
		err := dec.DecodeStream(digest, pr)
		if err == nil {
			_, err = io.Copy(io.Discard, pr)
		}
		pr.CloseWithError(err)

		return err
	})

	err = enc.EncodeStream(io.MultiWriter(dst, pw), src)
	pw.CloseWithError(err)
	if werr := g.Wait(); err == nil && werr != nil {
		err = fmt.Errorf("verify: %w", werr)
	}
	if err != nil {
		return 0, err
	}

	return n, compareChecksums(want, digest.Sum64())
}

func decodeStream(dst io.Writer, src io.Reader) error {
	dec, err := codec.NewDecoder()
	if err != nil {
		return err
	}

	return dec.DecodeStream(dst, src)
}

func compareChecksums(want, got uint64) error {
	if want != got {
		return fmt.Errorf("verify: checksum mismatch: input %016x, decoded %016x", want, got)
	}

	return nil
}

// dumpInputTable prints the code table src would be encoded with, or the table
// it carries when decoding, and rewinds src.
func dumpInputTable(src io.ReadSeeker, decoding bool, w io.Writer) error {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("locate input: %w", err)
	}

	if decoding {
		err = dumpEncodedTable(w, src)
	} else {
		var ft freq.Table
		ft, err = freq.CountReader(src)
		if err == nil {
			err = dumpTable(w, &ft)
		}
	}
	if err != nil {
		return err
	}

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("rewind input: %w", err)
	}

	return nil
}

// inputFile is a seekable input. Named files are used directly; stdin is read
// into memory first since encoding needs two passes.
type inputFile interface {
	io.ReadSeeker
	io.Closer
}

type memoryInput struct {
	*bytes.Reader
}

func (memoryInput) Close() error { return nil }

func openInput(path string, stdin io.Reader) (inputFile, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return memoryInput{bytes.NewReader(data)}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	return f, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

func percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}
