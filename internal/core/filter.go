package core

import (
	"bufio"
	"fmt"
	"io"

	"github.com/JonMunkholm/cusipref/internal/schema"
)

// Entry is one row of the extracted reference table.
type Entry struct {
	CUSIP     string
	Symbol    string
	SIPSymbol string
}

// String renders the output line without its terminator.
func (e Entry) String() string {
	return e.CUSIP + ", " + e.Symbol + ", " + e.SIPSymbol
}

// Select decides whether rec produces an output line.
//
//   - 3 or fewer fields: skipped silently
//   - exactly 4 fields: *ParseError wrapping ErrMissingSIPSymbol
//   - empty CUSIP or the END trailer: skipped silently
//
// ok is true only when entry should be emitted.
func Select(rec Record) (entry Entry, ok bool, err error) {
	if rec.Len() <= schema.ColCUSIP+1 {
		return Entry{}, false, nil
	}

	sip, has := rec.Field(schema.ColSIPSymbol)
	if !has {
		return Entry{}, false, &ParseError{
			Line: rec.Line,
			Err: fmt.Errorf("%w: %d fields, %s is column %d",
				ErrMissingSIPSymbol, rec.Len(), schema.ColumnName(schema.ColSIPSymbol), schema.ColSIPSymbol+1),
		}
	}

	symbol := rec.Fields[schema.ColSymbol]
	cusip := rec.Fields[schema.ColCUSIP]
	if cusip == "" || symbol == schema.EndOfDataSymbol {
		return Entry{}, false, nil
	}

	return Entry{CUSIP: cusip, Symbol: symbol, SIPSymbol: sip}, true, nil
}

// Emitter writes entries to an output stream, one line each.
type Emitter struct {
	w     *bufio.Writer
	count int
}

// NewEmitter creates an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// Emit writes one newline-terminated line for e.
func (em *Emitter) Emit(e Entry) error {
	if _, err := em.w.WriteString(e.String()); err != nil {
		return err
	}
	if err := em.w.WriteByte('\n'); err != nil {
		return err
	}
	em.count++
	return nil
}

// Count returns the number of lines emitted so far.
func (em *Emitter) Count() int {
	return em.count
}

// Flush writes any buffered output.
func (em *Emitter) Flush() error {
	return em.w.Flush()
}
