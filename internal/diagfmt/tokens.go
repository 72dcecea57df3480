package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"regg/internal/source"
	"regg/internal/token"
)

// TokenOutput is the serialisable view of a token shared by the JSON and
// msgpack encoders.
type TokenOutput struct {
	Kind    string      `json:"kind" msgpack:"kind"`
	Lexeme  string      `json:"lexeme" msgpack:"lexeme"`
	Literal string      `json:"literal,omitempty" msgpack:"literal,omitempty"`
	Line    uint32      `json:"line" msgpack:"line"`
	Span    source.Span `json:"span" msgpack:"span"`
}

// FormatTokensPretty writes tokens in a human-readable form.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-17s", i+1, tok.Kind.String())

		if tok.Kind.HasLiteral() {
			fmt.Fprintf(w, " %q", tok.Literal)
		} else if tok.Lexeme != "" {
			fmt.Fprintf(w, " %q", tok.Lexeme)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d (line %d)",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col,
			tok.Line)

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokensOutput(tokens))
}

// FormatTokensMsgpack writes tokens as a msgpack-encoded array, for callers
// that feed the stream into another tool.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	encoder := msgpack.NewEncoder(w)
	return encoder.Encode(tokensOutput(tokens))
}

func tokensOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Lexeme:  tok.Lexeme,
			Literal: tok.Literal,
			Line:    tok.Line,
			Span:    tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}
