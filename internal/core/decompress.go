package core

// decompress.go materializes the compressed reference file in memory.
//
// Reference files are bounded (tens of thousands of rows), so the whole
// payload is read before parsing starts. The container is detected from its
// magic bytes:
//
//   - gzip (1f 8b): the published format; concatenated members are read as one
//   - zstd (28 b5 2f fd): accepted for locally recompressed copies

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Open reads and decompresses the file at path.
// limit caps the decompressed size; zero or negative means no cap.
// The returned CountingReader reports how many compressed bytes were consumed.
func Open(path string, limit int64) ([]byte, *CountingReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &FatalError{Kind: KindFileNotFound, Path: path, Err: err}
	}
	defer f.Close()

	var total int64
	if info, statErr := f.Stat(); statErr == nil {
		total = info.Size()
	}

	counter := NewCountingReader(f, total)
	raw, err := Decompress(counter, limit)
	if err != nil {
		var fe *FatalError
		if errors.As(err, &fe) && fe.Path == "" {
			fe.Path = path
		}
		return nil, counter, err
	}
	return raw, counter, nil
}

// Decompress reads a single compressed stream from r and returns the
// decompressed bytes. Any failure is a FatalError of kind KindDecompression.
func Decompress(r io.Reader, limit int64) ([]byte, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(len(zstdMagic))
	if err != nil && len(magic) < len(gzipMagic) {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, decompressionError(fmt.Errorf("reading header: %w", err))
	}

	var src io.Reader
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, decompressionError(err)
		}
		defer zr.Close()
		src = zr

	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, decompressionError(err)
		}
		defer zr.Close()
		src = zr

	default:
		return nil, decompressionError(fmt.Errorf("unrecognized container (magic % x)", magic))
	}

	if limit > 0 {
		// Read one byte past the cap so an oversized payload is detectable.
		src = io.LimitReader(src, limit+1)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(src); err != nil {
		return nil, decompressionError(err)
	}

	if limit > 0 && int64(buf.Len()) > limit {
		return nil, decompressionError(fmt.Errorf("payload exceeds %d bytes", limit))
	}

	return buf.Bytes(), nil
}

func decompressionError(err error) error {
	return &FatalError{Kind: KindDecompression, Err: err}
}
