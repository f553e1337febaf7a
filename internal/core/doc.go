// Package core extracts the CUSIP reference table from a TAQ master file.
//
// The work is one forward pipeline with no state beyond a single pass:
//
//  1. [Open] / [Decompress] materialize the gzip (or zstd) payload in memory
//  2. [DecodeWindows1252] translates the code page to UTF-8; it cannot fail
//  3. [RecordReader] splits lines on '|' with no header and no quoting; a
//     line ends at "\n", "\r\n" or a lone "\r"
//  4. [Select] and [Emitter] filter records and write "cusip, symbol, sip"
//
// [Run] wires the stages together.
//
// # Error Handling
//
// Failures come in two tiers:
//
//   - [FatalError]: the input could not be opened ([KindFileNotFound]) or
//     decompressed ([KindDecompression]). The run stops.
//   - [ParseError]: a single record was unusable. It is written to the
//     diagnostic stream prefixed with [DiagnosticPrefix] and the run continues.
//
// Records that are too short, have an empty CUSIP, or carry the END trailer
// symbol are not errors and are dropped silently.
package core
