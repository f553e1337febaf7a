package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/cusipref/internal/logging"
)

// ContextCheckInterval is how often (in records) to check for context cancellation.
var ContextCheckInterval = 1000

// DiagnosticPrefix starts every per-record failure line on the diagnostic stream.
const DiagnosticPrefix = "Error reading CSV record: "

// Options is the explicit configuration of a single extraction run.
type Options struct {
	InputPath            string
	MaxLineBytes         int   // <= 0 selects DefaultMaxLineBytes
	MaxDecompressedBytes int64 // <= 0 means no cap
}

// Stats summarizes a completed run.
type Stats struct {
	Records         int   // parse attempts, including failures
	Emitted         int   // lines written to the output stream
	Skipped         int   // records dropped by the filter
	Failed          int   // records reported on the diagnostic stream
	CompressedBytes int64 // bytes read from the input file
	DecodedBytes    int64 // UTF-8 bytes after code page translation
}

// Run extracts the CUSIP reference table from opts.InputPath.
//
// Qualifying records are written to out in input order. Per-record failures
// are written to diag and do not stop the run. A returned error is fatal: a
// *FatalError for open or decompression failures, or a write/cancellation
// error.
func Run(ctx context.Context, opts Options, out, diag io.Writer) (Stats, error) {
	var stats Stats
	logger := logging.WithFields(ctx, "input", opts.InputPath)

	// 1. Decompress
	raw, counter, err := Open(opts.InputPath, opts.MaxDecompressedBytes)
	if counter != nil {
		stats.CompressedBytes = counter.BytesRead
	}
	if err != nil {
		return stats, err
	}
	logger.Debug("input decompressed",
		"compressed_bytes", stats.CompressedBytes,
		"compressed_total", counter.Total,
		"consumed_pct", counter.Progress(),
		"decompressed_bytes", len(raw),
	)

	// 2. Decode
	text := DecodeWindows1252(raw)
	stats.DecodedBytes = int64(len(text))

	// 3. Parse + 4. Filter/emit
	records := NewRecordReader(strings.NewReader(text), opts.MaxLineBytes)
	emitter := NewEmitter(out)

	for rec, err := range records.All() {
		stats.Records++

		if stats.Records%ContextCheckInterval == 0 {
			if cerr := ctx.Err(); cerr != nil {
				_ = emitter.Flush()
				stats.Emitted = emitter.Count()
				return stats, fmt.Errorf("operation cancelled at record %d: %w", stats.Records, cerr)
			}
		}

		if err == nil {
			var entry Entry
			var ok bool
			entry, ok, err = Select(rec)
			if err == nil {
				if !ok {
					stats.Skipped++
					continue
				}
				if werr := emitter.Emit(entry); werr != nil {
					return stats, fmt.Errorf("writing output: %w", werr)
				}
				continue
			}
		}

		stats.Failed++
		logger.Debug("record rejected", "error", err)
		if _, werr := fmt.Fprintf(diag, "%s%v\n", DiagnosticPrefix, err); werr != nil {
			return stats, fmt.Errorf("writing diagnostic: %w", werr)
		}
	}

	if err := emitter.Flush(); err != nil {
		return stats, fmt.Errorf("flushing output: %w", err)
	}
	stats.Emitted = emitter.Count()

	logger.Info("extraction complete",
		"records", stats.Records,
		"emitted", stats.Emitted,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return stats, nil
}
