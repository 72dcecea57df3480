package source

import (
	"path/filepath"
	"slices"

	"golang.org/x/text/encoding/unicode"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the new slice and whether any replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Fast path: no \r at all.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// decodeUTF16 transcodes UTF-16 content (detected by its BOM) to UTF-8.
// Content without a UTF-16 BOM is returned as is.
func decodeUTF16(content []byte) ([]byte, bool) {
	if len(content) < 2 {
		return content, false
	}
	le := content[0] == 0xFF && content[1] == 0xFE
	be := content[0] == 0xFE && content[1] == 0xFF
	if !le && !be {
		return content, false
	}

	endian := unicode.LittleEndian
	if be {
		endian = unicode.BigEndian
	}
	decoder := unicode.UTF16(endian, unicode.UseBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		// Undecodable tail: keep the original bytes, the scanner will cope.
		return content, false
	}
	return out, true
}

// buildLineIndex records the rune offset of every '\n'.
func buildLineIndex(runes []rune) []uint32 {
	out := make([]uint32, 0, len(runes)/16)
	for i, r := range runes {
		if r == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Empty index: the whole file is one line.
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// Binary search for the number of newlines strictly before off.
	// A '\n' at off itself still belongs to the line it terminates.
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo // 0-based line index

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}

	return LineCol{Line: uint32(line) + 1, Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// A single shape for cross-platform diffs.
	return filepath.ToSlash(filepath.Clean(p))
}
