package life

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPath(t *testing.T) {
	tests := []struct {
		path        string
		compression Compression
		format      Format
	}{
		{"glider.cells", CompressionNone, FormatPlaintext},
		{"glider.txt", CompressionNone, FormatPlaintext},
		{"dir/glider.cells.zst", CompressionZSTD, FormatPlaintext},
		{"glider.CELLS.ZSTD", CompressionZSTD, FormatPlaintext},
		{"glider.cells.lz4", CompressionLZ4, FormatPlaintext},
		{"glider.lif", CompressionNone, FormatLife106},
		{"glider.life.zst", CompressionZSTD, FormatLife106},
		{"glider.lif.lz4", CompressionLZ4, FormatLife106},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c, f := DetectPath(tt.path)
			assert.Equal(t, tt.compression, c)
			assert.Equal(t, tt.format, f)
		})
	}

	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "none", CompressionNone.String())
}

func TestSaveLoadFile(t *testing.T) {
	src, err := ReadPattern(strings.NewReader(gliderCells))
	require.NoError(t, err)

	magic := map[Compression][]byte{
		CompressionZSTD: {0x28, 0xB5, 0x2F, 0xFD},
		CompressionLZ4:  {0x04, 0x22, 0x4D, 0x18},
	}

	for _, name := range []string{"g.cells", "g.cells.zst", "g.cells.lz4", "g.lif", "g.lif.zst", "g.life.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveFile(path, src))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			c, f := DetectPath(path)
			if m, ok := magic[c]; ok {
				assert.Equal(t, m, raw[:len(m)])
			} else if f == FormatLife106 {
				assert.True(t, strings.HasPrefix(string(raw), "#Life 1.06"))
			} else {
				assert.Equal(t, gliderCells, string(raw))
			}

			got, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "Glider", got.Name)
			assert.Equal(t, src.Population(), got.Population())
			assert.Equal(t, src.OffsetRow, got.OffsetRow)
			assert.Equal(t, src.OffsetCol, got.OffsetCol)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.cells"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt compressed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.cells.zst")
		require.NoError(t, os.WriteFile(path, []byte("not zstd"), 0o600))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("no temp files left", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, SaveFile(filepath.Join(dir, "a.cells"), src))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.cells", entries[0].Name())
	})
}

func TestSimulationFiles(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	sim, err := NewSimulation(16, 16, WithSeed(3), WithMetricsCollector(metrics))
	require.NoError(t, err)
	sim.Randomize()
	want := sim.Grid()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.cells.zst")
	require.NoError(t, sim.SaveFile(ctx, path, "state"))

	sim.Clear()
	p, err := sim.LoadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "state", p.Name)
	assert.True(t, want.Equal(sim.Grid()))

	_, err = sim.LoadFile(ctx, filepath.Join(t.TempDir(), "missing.cells"))
	assert.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.SaveCount)
	assert.Positive(t, stats.SaveBytes)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, stats.SaveBytes, stats.LoadBytes)
}
