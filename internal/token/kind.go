package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// CodeBlock represents a frontmatter code region fenced by `---`.
	CodeBlock
	// OpeningTagStart represents `<name`, the start of an opening tag.
	OpeningTagStart
	// OpeningTagEnd represents `>`, the end of an opening tag.
	OpeningTagEnd
	// SelfClosingTagEnd represents `/>`.
	SelfClosingTagEnd
	// ClosingTag represents `</name>`.
	ClosingTag
	// Text represents a run of plain text between markup delimiters.
	Text
	// Expression represents scripting content embedded within `{ }`.
	Expression
	// HTMLExprStart represents `(` + backtick, opening a nested sub-template.
	HTMLExprStart
	// HTMLExprEnd represents backtick + `)`, closing a nested sub-template.
	HTMLExprEnd
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case CodeBlock:
		return "CodeBlock"
	case OpeningTagStart:
		return "OpeningTagStart"
	case OpeningTagEnd:
		return "OpeningTagEnd"
	case SelfClosingTagEnd:
		return "SelfClosingTagEnd"
	case ClosingTag:
		return "ClosingTag"
	case Text:
		return "Text"
	case Expression:
		return "Expression"
	case HTMLExprStart:
		return "HTMLExprStart"
	case HTMLExprEnd:
		return "HTMLExprEnd"
	}
	return "Unknown"
}

// HasLiteral reports whether tokens of this kind carry a literal payload.
// Pure-delimiter kinds and EOF do not.
func (k Kind) HasLiteral() bool {
	switch k {
	case CodeBlock, OpeningTagStart, ClosingTag, Text, Expression:
		return true
	default:
		return false
	}
}
