package core

import "golang.org/x/text/encoding/charmap"

// DecodeWindows1252 converts Windows-1252 bytes to UTF-8 text.
//
// Every one of the 256 byte values has a mapping, so decoding cannot fail.
// The five slots the code page leaves unassigned (0x81, 0x8D, 0x8F, 0x90,
// 0x9D) come through as the C1 control with the same value.
func DecodeWindows1252(raw []byte) string {
	// A single-byte table decoder has no invalid input, so err is always nil.
	out, _ := charmap.Windows1252.NewDecoder().Bytes(raw)
	return string(out)
}
