package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/arloliu/huffman/compress"
	"github.com/arloliu/huffman/format"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/internal/collision"
	"github.com/arloliu/huffman/internal/hash"
	"golang.org/x/sync/errgroup"
)

var statCodecs = []format.CompressionType{
	format.CompressionHuffman,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

type fileStat struct {
	name     string
	checksum uint64
	size     int64
	entropy  int64
	baseline int64
	codecs   []compress.CompressionStats
}

// runStat measures every file concurrently, at most jobs at a time, and prints
// one row per file in argument order followed by a note for each file whose
// content repeats an earlier one.
func runStat(ctx context.Context, files []string, jobs int, w io.Writer) error {
	results := make([]fileStat, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			st, err := measureFile(name)
			if err != nil {
				return err
			}
			results[i] = st

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return printStats(w, results)
}

func measureFile(name string) (fileStat, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return fileStat{}, fmt.Errorf("stat %s: %w", name, err)
	}

	return measure(name, data)
}

func measure(name string, data []byte) (fileStat, error) {
	ft := freq.Count(data)
	st := fileStat{
		name:     name,
		checksum: hash.Checksum(data),
		size:     int64(len(data)),
		entropy:  int64(math.Ceil(ft.Entropy() * float64(ft.Total) / 8)),
		codecs:   make([]compress.CompressionStats, 0, len(statCodecs)),
	}

	baseline, err := compress.EntropyBaseline(data)
	if err != nil {
		return fileStat{}, fmt.Errorf("stat %s: %w", name, err)
	}
	st.baseline = int64(baseline)

	for _, typ := range statCodecs {
		cs, err := compress.Measure(typ, data)
		if err != nil {
			return fileStat{}, fmt.Errorf("stat %s: %w", name, err)
		}
		st.codecs = append(st.codecs, cs)
	}

	return st, nil
}

func printStats(w io.Writer, results []fileStat) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "FILE\tSIZE\tENTROPY\tHUFF0\t")
	for _, typ := range statCodecs {
		fmt.Fprintf(tw, "%s\t", typ)
	}
	fmt.Fprintln(tw)

	for _, st := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t", st.name, st.size, st.entropy, st.baseline)
		for _, cs := range st.codecs {
			fmt.Fprintf(tw, "%d (%.1f%%)\t", cs.CompressedSize, cs.Ratio*100)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	tracker := collision.NewTracker()
	for _, st := range results {
		first, dup, err := tracker.Track(st.name, st.checksum)
		if err != nil {
			return err
		}
		if dup {
			fmt.Fprintf(w, "%s: same content as %s\n", st.name, first)
		}
	}

	return nil
}
