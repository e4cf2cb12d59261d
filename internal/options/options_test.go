package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sinkConfig struct {
	capacity int
	limit    uint32
	calls    []string
}

type sinkOption = Option[*sinkConfig]

func withCapacity(n int) sinkOption {
	return New(func(c *sinkConfig) error {
		if n < 0 {
			return errors.New("capacity cannot be negative")
		}
		c.capacity = n
		c.calls = append(c.calls, "capacity")

		return nil
	})
}

func withLimit(n uint32) sinkOption {
	return NoError(func(c *sinkConfig) {
		c.limit = n
		c.calls = append(c.calls, "limit")
	})
}

func TestApply(t *testing.T) {
	t.Run("No options", func(t *testing.T) {
		cfg := &sinkConfig{capacity: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.capacity)
		require.Empty(t, cfg.calls)
	})

	t.Run("Options run in order", func(t *testing.T) {
		cfg := &sinkConfig{}
		err := Apply(cfg, withLimit(10), withCapacity(64), withLimit(20))
		require.NoError(t, err)
		require.Equal(t, 64, cfg.capacity)
		require.Equal(t, uint32(20), cfg.limit)
		require.Equal(t, []string{"limit", "capacity", "limit"}, cfg.calls)
	})

	t.Run("First error stops the chain", func(t *testing.T) {
		cfg := &sinkConfig{}
		err := Apply(cfg, withLimit(1), withCapacity(-1), withLimit(2))
		require.EqualError(t, err, "capacity cannot be negative")
		require.Equal(t, uint32(1), cfg.limit)
		require.Equal(t, []string{"limit"}, cfg.calls)
	})

	t.Run("Nil options are skipped", func(t *testing.T) {
		cfg := &sinkConfig{}
		require.NoError(t, Apply(cfg, nil, withCapacity(3)))
		require.Equal(t, 3, cfg.capacity)
	})
}

func TestOptionsOnValueTypes(t *testing.T) {
	counter := 0
	inc := NoError(func(p *int) { *p++ })

	require.NoError(t, Apply[*int](&counter, inc, inc, inc))
	require.Equal(t, 3, counter)
}

func BenchmarkApply(b *testing.B) {
	opts := []sinkOption{withCapacity(1024), withLimit(1 << 20)}

	b.ReportAllocs()
	for b.Loop() {
		cfg := &sinkConfig{calls: make([]string, 0, 2)}
		_ = Apply(cfg, opts...)
	}
}
