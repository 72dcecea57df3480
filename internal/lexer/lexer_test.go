package lexer_test

import (
	"testing"

	"regg/internal/diag"
	"regg/internal/lexer"
	"regg/internal/source"
	"regg/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, line uint32, msg string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Line:     line,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) Codes() []diag.Code {
	codes := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

// makeTestLexer builds a lexer over a virtual file.
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.regg", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

type expectTok struct {
	kind    token.Kind
	literal string
}

// expectTokens asserts the kind/literal sequence, EOF excluded.
func expectTokens(t *testing.T, input string, expected []expectTok) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := lx.ScanAll()

	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("token stream must end with EOF\nInput: %q\nTokens: %v", input, tokens)
	}
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nDiags: %v",
			len(expected), len(tokens), input, tokens, reporter.diagnostics)
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i].kind {
			t.Errorf("Token %d: expected kind %v, got %v (lexeme %q)",
				i, expected[i].kind, tok.Kind, tok.Lexeme)
		}
		if tok.Literal != expected[i].literal {
			t.Errorf("Token %d (%v): expected literal %q, got %q",
				i, tok.Kind, expected[i].literal, tok.Literal)
		}
	}
}

func TestSimpleElement(t *testing.T) {
	expectTokens(t, "<div>hello</div>", []expectTok{
		{token.OpeningTagStart, "div"},
		{token.OpeningTagEnd, ""},
		{token.Text, "hello"},
		{token.ClosingTag, "div"},
	})
}

func TestSelfClosingTagWithSpace(t *testing.T) {
	expectTokens(t, "<br />", []expectTok{
		{token.OpeningTagStart, "br"},
		{token.SelfClosingTagEnd, ""},
	})
}

// A self-closing tag written without a space folds the slash into the tag
// name. That is the historical scan rule (the name scan only breaks on space
// or '>'), kept as-is.
func TestSelfClosingTagWithoutSpaceFoldsSlash(t *testing.T) {
	expectTokens(t, "<br/>", []expectTok{
		{token.OpeningTagStart, "br/"},
		{token.OpeningTagEnd, ""},
	})
}

func TestSimpleExpression(t *testing.T) {
	expectTokens(t, "{count}", []expectTok{
		{token.Expression, "count"},
	})
}

func TestExpressionBetweenTags(t *testing.T) {
	expectTokens(t, "<h1>{title}</h1>", []expectTok{
		{token.OpeningTagStart, "h1"},
		{token.OpeningTagEnd, ""},
		{token.Expression, "title"},
		{token.ClosingTag, "h1"},
	})
}

func TestCodeBlock(t *testing.T) {
	// The fence trim keeps the separators adjoining the body.
	expectTokens(t, "---\nlet a = 1\n---", []expectTok{
		{token.CodeBlock, "\nlet a = 1\n"},
	})
}

func TestCodeBlockFollowedByMarkup(t *testing.T) {
	lx, reporter := makeTestLexer("---\nconst x = 2\n---\n<p>hi</p>")
	tokens := lx.ScanAll()

	kinds := []token.Kind{
		token.CodeBlock, token.OpeningTagStart, token.OpeningTagEnd,
		token.Text, token.ClosingTag, token.EOF,
	}
	if len(tokens) != len(kinds) {
		t.Fatalf("got %d tokens: %v", len(tokens), tokens)
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, k)
		}
	}
	if tokens[0].Literal != "\nconst x = 2\n" {
		t.Errorf("code block literal = %q", tokens[0].Literal)
	}
	if reporter.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", reporter.diagnostics)
	}
}

// The fence detector checks three lookahead positions independently instead
// of matching a contiguous "---". A dash inside the body therefore stops the
// body scan early and the recovery consumes re-trigger on the real fence.
// Pinned so nobody "fixes" one side without the other.
func TestCodeBlockDashInBodyQuirk(t *testing.T) {
	lx, reporter := makeTestLexer("---\na-b\n---")
	tokens := lx.ScanAll()

	if len(tokens) != 3 {
		t.Fatalf("got %d tokens: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != token.CodeBlock || tokens[0].Literal != "\na" {
		t.Errorf("first token = %v literal %q", tokens[0].Kind, tokens[0].Literal)
	}
	if tokens[1].Kind != token.CodeBlock || tokens[1].Literal != "" {
		t.Errorf("second token = %v literal %q", tokens[1].Kind, tokens[1].Literal)
	}
	if !reporter.HasErrors() {
		t.Error("the re-triggered fence scan should report unterminated")
	}
}

func TestUnterminatedCodeBlock(t *testing.T) {
	lx, reporter := makeTestLexer("---\nabc")
	tokens := lx.ScanAll()

	if len(tokens) != 2 || tokens[0].Kind != token.CodeBlock {
		t.Fatalf("got tokens: %v", tokens)
	}
	// The scan ran to end of input, so the end trim eats into the body.
	if tokens[0].Literal != "\n" {
		t.Errorf("partial literal = %q", tokens[0].Literal)
	}
	if tokens[0].Lexeme != "---\nabc" {
		t.Errorf("lexeme = %q", tokens[0].Lexeme)
	}
	codes := reporter.Codes()
	if len(codes) != 1 || codes[0] != diag.LexUnterminatedCodeBlock {
		t.Errorf("diagnostics = %v", reporter.diagnostics)
	}
}

func TestUnterminatedExpression(t *testing.T) {
	lx, reporter := makeTestLexer("{count")
	tokens := lx.ScanAll()

	if len(tokens) != 2 || tokens[0].Kind != token.Expression {
		t.Fatalf("got tokens: %v", tokens)
	}
	// The close-brace trim runs unconditionally, so the partial slice loses
	// its final character too.
	if tokens[0].Literal != "coun" {
		t.Errorf("partial literal = %q", tokens[0].Literal)
	}
	codes := reporter.Codes()
	if len(codes) != 1 || codes[0] != diag.LexUnterminatedExpression {
		t.Errorf("diagnostics = %v", reporter.diagnostics)
	}
}

func TestExpressionClosedAtEndOfInputIsNotAnError(t *testing.T) {
	lx, reporter := makeTestLexer("{done}")
	lx.ScanAll()
	if reporter.HasErrors() {
		t.Errorf("closed expression reported: %v", reporter.diagnostics)
	}
}

func TestHTMLExpression(t *testing.T) {
	expectTokens(t, "{items.map(i => (`<li>{i}</li>`))}", []expectTok{
		{token.Expression, "items.map(i =>"},
		{token.HTMLExprStart, ""},
		{token.OpeningTagStart, "li"},
		{token.OpeningTagEnd, ""},
		{token.Expression, "i"},
		{token.ClosingTag, "li"},
		{token.HTMLExprEnd, ""},
		{token.Expression, ")"},
	})
}

func TestHTMLExprEndResumesExpressionScan(t *testing.T) {
	lx, _ := makeTestLexer("{(`<b>x</b>`) tail}")
	tokens := lx.ScanAll()

	want := []token.Kind{
		token.Expression, token.HTMLExprStart, token.OpeningTagStart,
		token.OpeningTagEnd, token.Text, token.ClosingTag,
		token.HTMLExprEnd, token.Expression, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens: %v", len(tokens), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, k)
		}
	}
	// The resumed scan starts right past the `)` delimiter and keeps the
	// trailing run up to (not including) the '}'.
	if got := tokens[7].Literal; got != " tail" {
		t.Errorf("resumed literal = %q", got)
	}
	if tokens[6].Lexeme != "`)" {
		t.Errorf("HTMLExprEnd lexeme = %q", tokens[6].Lexeme)
	}
}

// An expression that merely happens to follow a ')' in the text takes the
// same no-leading-brace branch: the trim check looks at the preceding source
// rune, nothing else. Historical behavior, pinned.
func TestExpressionAfterParenTextQuirk(t *testing.T) {
	expectTokens(t, "){x}", []expectTok{
		{token.Text, ")"},
		{token.Expression, "{x"},
	})
}

func TestTextStopsBeforeDelimiters(t *testing.T) {
	expectTokens(t, "hello/>world", []expectTok{
		{token.Text, "hello"},
		{token.SelfClosingTagEnd, ""},
		{token.Text, "world"},
	})
	expectTokens(t, "a{b}", []expectTok{
		{token.Text, "a"},
		{token.Expression, "b"},
	})
}

func TestWhitespaceSkipped(t *testing.T) {
	expectTokens(t, "  \t\r<a>", []expectTok{
		{token.OpeningTagStart, "a"},
		{token.OpeningTagEnd, ""},
	})
}

func TestLoneDelimiterFragmentsProduceNothing(t *testing.T) {
	for _, input := range []string{"-", "--", "/", "(", "`"} {
		lx, reporter := makeTestLexer(input)
		tokens := lx.ScanAll()
		if len(tokens) != 1 || tokens[0].Kind != token.EOF {
			t.Errorf("input %q: tokens = %v", input, tokens)
		}
		if reporter.HasErrors() {
			t.Errorf("input %q: diagnostics = %v", input, reporter.diagnostics)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	lx, reporter := makeTestLexer("")
	tokens := lx.ScanAll()

	if len(tokens) != 1 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	eof := tokens[0]
	if eof.Kind != token.EOF || eof.Lexeme != "" || eof.Line != 1 {
		t.Errorf("EOF token = %+v", eof)
	}
	if reporter.HasErrors() {
		t.Errorf("diagnostics = %v", reporter.diagnostics)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("<a>")
	lx.ScanAll()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next after EOF returned %v", tok.Kind)
		}
	}
}

func TestEveryStreamEndsWithExactlyOneEOF(t *testing.T) {
	inputs := []string{
		"", "<div>hello</div>", "{x}", "---\na\n---", "plain text",
		"{unterminated", "---\nunterminated", "<br />", "){x}", "`)",
	}
	for _, input := range inputs {
		lx, _ := makeTestLexer(input)
		tokens := lx.ScanAll()
		count := 0
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				count++
				if tok.Lexeme != "" {
					t.Errorf("input %q: EOF lexeme = %q", input, tok.Lexeme)
				}
			}
		}
		if count != 1 {
			t.Errorf("input %q: %d EOF tokens", input, count)
		}
		if tokens[len(tokens)-1].Kind != token.EOF {
			t.Errorf("input %q: stream does not end with EOF", input)
		}
	}
}

func TestLineTracking(t *testing.T) {
	lx, _ := makeTestLexer("<p>\n{x}\n</p>")
	tokens := lx.ScanAll()

	want := []struct {
		kind token.Kind
		line uint32
	}{
		{token.OpeningTagStart, 1},
		{token.OpeningTagEnd, 1},
		{token.Expression, 2},
		{token.ClosingTag, 3},
		{token.EOF, 3},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens: %v", len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Line != w.line {
			t.Errorf("token %d: got %v line %d, want %v line %d",
				i, tokens[i].Kind, tokens[i].Line, w.kind, w.line)
		}
	}
}

// A token spanning several lines records the line where it ended, not where
// it began. Defined semantics, not a bug.
func TestMultiLineTokenRecordsEmissionLine(t *testing.T) {
	lx, _ := makeTestLexer("first\nsecond\nthird<")
	tokens := lx.ScanAll()

	if tokens[0].Kind != token.Text {
		t.Fatalf("tokens = %v", tokens)
	}
	if tokens[0].Line != 3 {
		t.Errorf("multi-line text token line = %d, want 3", tokens[0].Line)
	}
}

// The recovery consumes that skip a closing fence do not run the newline
// counter, so the separator before the fence goes uncounted. Historical
// behavior, pinned.
func TestCodeBlockFenceSkipDoesNotCountSeparatorNewline(t *testing.T) {
	lx, _ := makeTestLexer("---\nx\n---\n<a>")
	tokens := lx.ScanAll()

	if tokens[0].Kind != token.CodeBlock {
		t.Fatalf("tokens = %v", tokens)
	}
	if tokens[0].Line != 2 {
		t.Errorf("code block line = %d, want 2", tokens[0].Line)
	}
	// The '\n' after the closing fence is dispatched normally and counted.
	if tokens[1].Kind != token.OpeningTagStart || tokens[1].Line != 3 {
		t.Errorf("tag after fence: %v line %d, want line 3", tokens[1].Kind, tokens[1].Line)
	}
}

func TestLexemesCoverExactSourceSlices(t *testing.T) {
	lx, _ := makeTestLexer("<div>{x}</div>")
	tokens := lx.ScanAll()

	lexemes := []string{"<div", ">", "{x}", "</div>", ""}
	if len(tokens) != len(lexemes) {
		t.Fatalf("got %d tokens: %v", len(tokens), tokens)
	}
	for i, want := range lexemes {
		if tokens[i].Lexeme != want {
			t.Errorf("token %d lexeme = %q, want %q", i, tokens[i].Lexeme, want)
		}
	}
}

func TestUnicodeText(t *testing.T) {
	expectTokens(t, "<p>héllo wörld</p>", []expectTok{
		{token.OpeningTagStart, "p"},
		{token.OpeningTagEnd, ""},
		{token.Text, "héllo wörld"},
		{token.ClosingTag, "p"},
	})
}

func TestNilReporterDoesNotPanic(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.regg", []byte("{oops")))
	lx := lexer.New(file, lexer.Options{})
	tokens := lx.ScanAll()
	if tokens[len(tokens)-1].Kind != token.EOF {
		t.Error("scan with nil reporter should still finish")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("<a>")
	first := lx.Peek()
	second := lx.Next()
	if first.Kind != second.Kind || first.Lexeme != second.Lexeme {
		t.Errorf("Peek/Next mismatch: %v vs %v", first, second)
	}
}
