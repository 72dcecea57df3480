package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, REPL line).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a byte order mark was stripped during load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF pairs were rewritten to LF.
	FileNormalizedCRLF
	// FileDecodedUTF16 indicates the file was transcoded from UTF-16.
	FileDecodedUTF16
)

// File captures metadata and content for a single source file.
// Content holds the normalized UTF-8 bytes; Runes is the same text decoded
// once into codepoints so the scanner gets O(1) lookahead. LineIdx holds the
// rune offset of every '\n'.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Runes   []rune
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in codepoints
}
