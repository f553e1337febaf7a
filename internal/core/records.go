package core

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/JonMunkholm/cusipref/internal/schema"
)

// DefaultMaxLineBytes caps a single record when no limit is configured.
const DefaultMaxLineBytes = 64 * 1024

// Record is one input line split on the field delimiter.
type Record struct {
	Line   int // 1-indexed input line
	Fields []string
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.Fields)
}

// Field returns field i and whether the record is wide enough to have it.
func (r Record) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.Fields) {
		return "", false
	}
	return r.Fields[i], true
}

// RecordReader splits pipe-delimited text into records.
//
// There is no header row and no quoting: a field is exactly the text between
// two delimiters. Field counts may vary from line to line. A record ends at
// "\n", "\r\n" or a lone "\r". A line longer than the configured cap is
// reported as a *ParseError and skipped; the reader stays usable and resumes
// on the next line.
type RecordReader struct {
	br      *bufio.Reader
	buf     []byte
	maxLine int
	line    int
	done    bool
}

// NewRecordReader creates a reader over r. maxLine <= 0 selects DefaultMaxLineBytes.
func NewRecordReader(r io.Reader, maxLine int) *RecordReader {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	return &RecordReader{
		br:      bufio.NewReader(r),
		maxLine: maxLine,
	}
}

// Read returns the next record, or io.EOF when the input is exhausted.
func (r *RecordReader) Read() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}

	raw, tooLong, err := r.readLine()
	if err != nil {
		r.done = true
		return Record{}, err
	}

	r.line++
	if tooLong {
		return Record{}, &ParseError{Line: r.line, Err: ErrLineTooLong}
	}

	return Record{
		Line:   r.line,
		Fields: strings.Split(string(raw), schema.Delimiter),
	}, nil
}

// All returns a single-pass sequence over the remaining records.
// Recoverable *ParseError values are yielded and iteration continues;
// any other error is yielded once and ends the sequence.
func (r *RecordReader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) {
				return
			}
			var pe *ParseError
			if err != nil && !errors.As(err, &pe) {
				return
			}
		}
	}
}

// readLine returns the next line without its terminator. Bytes past maxLine
// are dropped and reported through tooLong. The returned slice is only valid
// until the next call.
func (r *RecordReader) readLine() (line []byte, tooLong bool, err error) {
	r.buf = r.buf[:0]
	seen := false

	for {
		if r.br.Buffered() == 0 {
			if _, err := r.br.Peek(1); err != nil {
				if errors.Is(err, io.EOF) && seen {
					return r.buf, tooLong, nil
				}
				return nil, false, err
			}
		}
		seen = true

		chunk, _ := r.br.Peek(r.br.Buffered())
		i := bytes.IndexAny(chunk, "\r\n")
		if i < 0 {
			tooLong = r.keep(chunk, tooLong)
			_, _ = r.br.Discard(len(chunk))
			continue
		}

		tooLong = r.keep(chunk[:i], tooLong)
		term := chunk[i]
		_, _ = r.br.Discard(i + 1)
		if term == '\r' {
			if next, perr := r.br.Peek(1); perr == nil && next[0] == '\n' {
				_, _ = r.br.Discard(1)
			}
		}
		return r.buf, tooLong, nil
	}
}

// keep appends b to the line buffer unless the line is already over the cap.
func (r *RecordReader) keep(b []byte, tooLong bool) bool {
	if tooLong || len(r.buf)+len(b) > r.maxLine {
		return true
	}
	r.buf = append(r.buf, b...)
	return false
}
