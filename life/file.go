package life

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the stream codec wrapped around a pattern file.
type Compression uint8

const (
	// CompressionNone stores the pattern as plain text.
	CompressionNone Compression = iota
	// CompressionLZ4 wraps the pattern in an LZ4 frame.
	CompressionLZ4
	// CompressionZSTD wraps the pattern in a zstd frame.
	CompressionZSTD
)

func (c Compression) String() string {
	switch c {
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// Format identifies the textual pattern encoding.
type Format uint8

const (
	// FormatPlaintext is the '!'-commented 'O'/'.' grid format.
	FormatPlaintext Format = iota
	// FormatLife106 is the coordinate-list format.
	FormatLife106
)

// DetectPath derives the codec and text format from a file name:
// ".zst"/".zstd" and ".lz4" select compression, and an inner ".lif" or
// ".life" extension selects Life 1.06.
func DetectPath(path string) (Compression, Format) {
	name := strings.ToLower(filepath.Base(path))

	c := CompressionNone
	switch ext := filepath.Ext(name); ext {
	case ".zst", ".zstd":
		c = CompressionZSTD
		name = strings.TrimSuffix(name, ext)
	case ".lz4":
		c = CompressionLZ4
		name = strings.TrimSuffix(name, ext)
	}

	f := FormatPlaintext
	switch filepath.Ext(name) {
	case ".lif", ".life":
		f = FormatLife106
	}
	return c, f
}

func newDecompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func newCompressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

// LoadFile reads a pattern file, decompressing by extension and detecting
// the text format from the content.
func LoadFile(path string) (*Pattern, error) {
	p, _, err := loadFile(path)
	return p, err
}

func loadFile(path string) (*Pattern, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var size int64
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}

	c, _ := DetectPath(path)
	rc, err := newDecompressor(f, c)
	if err != nil {
		return nil, size, err
	}
	defer rc.Close()

	p, err := DecodePattern(rc)
	if err != nil {
		return nil, size, fmt.Errorf("%s: %w", path, err)
	}
	return p, size, nil
}

// SaveFile writes p to path, compressing and choosing the text format by
// extension. The file is replaced atomically.
func SaveFile(path string, p *Pattern) error {
	_, err := saveFile(path, p)
	return err
}

func saveFile(path string, p *Pattern) (written int64, err error) {
	c, format := DetectPath(path)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	wc, err := newCompressor(tmp, c)
	if err != nil {
		return 0, err
	}
	if format == FormatLife106 {
		_, err = p.WriteLife106(wc)
	} else {
		_, err = p.WriteTo(wc)
	}
	if err != nil {
		return 0, errors.Join(err, wc.Close())
	}
	if err = wc.Close(); err != nil {
		return 0, err
	}

	if fi, statErr := tmp.Stat(); statErr == nil {
		written = fi.Size()
	}
	if err = tmp.Sync(); err != nil {
		return 0, err
	}
	if err = tmp.Close(); err != nil {
		return 0, err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	return written, nil
}
