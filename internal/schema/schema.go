// Package schema describes the layout of the TAQ master reference file.
//
// The file is pipe-delimited with no header row, so columns are addressed by
// position. Only [ColSymbol], [ColCUSIP] and [ColSIPSymbol] are read by the
// extractor; the full column list lets diagnostics name the column a record
// is missing.
package schema

// Delimiter separates fields within a record.
const Delimiter = "|"

// ColumnName returns the name of the column at idx, or "" if out of range.
func ColumnName(idx int) string {
	if idx < 0 || idx >= len(TAQMasterColumns) {
		return ""
	}
	return TAQMasterColumns[idx]
}
