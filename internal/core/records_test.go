package core

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

type readResult struct {
	line   int
	fields []string
	err    error
}

func readAllResults(r *RecordReader) []readResult {
	var out []readResult
	for rec, err := range r.All() {
		out = append(out, readResult{line: rec.Line, fields: rec.Fields, err: err})
	}
	return out
}

func TestRecordReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "basic records",
			input: "AAA|Desc|12345|CS|AAAX\nBBB|Desc3|67890|CS|BBBX\n",
			want: [][]string{
				{"AAA", "Desc", "12345", "CS", "AAAX"},
				{"BBB", "Desc3", "67890", "CS", "BBBX"},
			},
		},
		{
			name:  "final record without terminator",
			input: "X|Y",
			want:  [][]string{{"X", "Y"}},
		},
		{
			name:  "ragged widths",
			input: "a\nb|c|d\ne|f\n",
			want:  [][]string{{"a"}, {"b", "c", "d"}, {"e", "f"}},
		},
		{
			name:  "windows line endings",
			input: "a|b\r\nc|d\r\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "lone carriage return ends a record",
			input: "a|b\rc|d\r",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "mixed terminators",
			input: "a\rb\nc\r\nd",
			want:  [][]string{{"a"}, {"b"}, {"c"}, {"d"}},
		},
		{
			name:  "carriage return pair is a blank record",
			input: "a\r\rb\r",
			want:  [][]string{{"a"}, {""}, {"b"}},
		},
		{
			name:  "quotes are literal",
			input: "\"A|B\"|\"C\n",
			want:  [][]string{{"\"A", "B\"", "\"C"}},
		},
		{
			name:  "commas are literal",
			input: "A,B|C\n",
			want:  [][]string{{"A,B", "C"}},
		},
		{
			name:  "empty fields",
			input: "||\n",
			want:  [][]string{{"", "", ""}},
		},
		{
			name:  "blank line is a record",
			input: "a|b\n\nc|d\n",
			want:  [][]string{{"a", "b"}, {""}, {"c", "d"}},
		},
		{
			name:  "trailing blank line",
			input: "a|b\n\n",
			want:  [][]string{{"a", "b"}, {""}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecordReader(strings.NewReader(tt.input), 0)

			var got [][]string
			for i, res := range readAllResults(r) {
				if res.err != nil {
					t.Fatalf("record %d: unexpected error: %v", i, res.err)
				}
				if res.line != i+1 {
					t.Errorf("record %d: Line = %d, want %d", i, res.line, i+1)
				}
				got = append(got, res.fields)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("records mismatch:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}

func TestRecordReader_LineTooLong(t *testing.T) {
	long := strings.Repeat("x", 100)

	tests := []struct {
		name  string
		input string
	}{
		{name: "far beyond buffer", input: "a|b\n" + long + "|" + long + "\nc|d\n"},
		{name: "just over limit", input: "a|b\n" + long[:17] + "\nc|d\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecordReader(strings.NewReader(tt.input), 16)
			results := readAllResults(r)

			if len(results) != 3 {
				t.Fatalf("got %d results, want 3: %+v", len(results), results)
			}
			if results[0].err != nil || !reflect.DeepEqual(results[0].fields, []string{"a", "b"}) {
				t.Errorf("first record = %+v", results[0])
			}

			var pe *ParseError
			if !errors.As(results[1].err, &pe) || !errors.Is(pe, ErrLineTooLong) {
				t.Fatalf("second result error = %v, want ErrLineTooLong", results[1].err)
			}
			if pe.Line != 2 {
				t.Errorf("ParseError.Line = %d, want 2", pe.Line)
			}

			if results[2].err != nil || !reflect.DeepEqual(results[2].fields, []string{"c", "d"}) {
				t.Errorf("record after failure = %+v", results[2])
			}
			if results[2].line != 3 {
				t.Errorf("line after failure = %d, want 3", results[2].line)
			}
		})
	}
}

func TestRecordReader_LineTooLongAtEOF(t *testing.T) {
	r := NewRecordReader(strings.NewReader("a\n"+strings.Repeat("y", 200)), 16)

	if _, err := r.Read(); err != nil {
		t.Fatalf("first Read() error = %v", err)
	}
	if _, err := r.Read(); !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("second Read() error = %v, want ErrLineTooLong", err)
	}
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("third Read() error = %v, want io.EOF", err)
	}
}

func TestRecordReader_ExactLimit(t *testing.T) {
	line := strings.Repeat("z", 16)
	r := NewRecordReader(strings.NewReader(line+"\r\n"), 16)

	rec, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if rec.Fields[0] != line {
		t.Errorf("field = %q, want %q", rec.Fields[0], line)
	}
}

func TestRecordReader_CarriageReturnOnlyFile(t *testing.T) {
	// Many short records with no newline anywhere must not trip the cap.
	input := strings.Repeat("AAA|Desc|12345|CS|AAAX\r", 50)
	r := NewRecordReader(strings.NewReader(input), 32)

	results := readAllResults(r)
	if len(results) != 50 {
		t.Fatalf("got %d records, want 50", len(results))
	}
	for i, res := range results {
		if res.err != nil {
			t.Fatalf("record %d: unexpected error: %v", i, res.err)
		}
		if res.line != i+1 || len(res.fields) != 5 || res.fields[4] != "AAAX" {
			t.Fatalf("record %d = %+v", i, res)
		}
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestRecordReader_SourceErrorEndsSequence(t *testing.T) {
	boom := errors.New("boom")
	r := NewRecordReader(failingReader{err: boom}, 0)

	results := readAllResults(r)
	if len(results) != 1 || !errors.Is(results[0].err, boom) {
		t.Fatalf("results = %+v, want single boom error", results)
	}
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("Read() after failure = %v, want io.EOF", err)
	}
}

func TestRecordField(t *testing.T) {
	rec := Record{Fields: []string{"a", "b"}}

	if v, ok := rec.Field(1); !ok || v != "b" {
		t.Errorf("Field(1) = %q, %v", v, ok)
	}
	if _, ok := rec.Field(2); ok {
		t.Errorf("Field(2) should be out of range")
	}
	if _, ok := rec.Field(-1); ok {
		t.Errorf("Field(-1) should be out of range")
	}
	if rec.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rec.Len())
	}
}
