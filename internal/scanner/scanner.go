// Package scanner finds undocumented function signatures across a whole
// document and generates headers for all of them in one pass.
package scanner

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/marwest/doxgen/internal/editor"
	"github.com/marwest/doxgen/internal/header"
	"github.com/marwest/doxgen/internal/signature"
)

// sigLexer tokenizes a single source line just enough to tell whether it can
// possibly contain a scope-qualified name. Lexing is much cheaper than running
// the full signature patterns on every line of a large file.
var sigLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Scope", Pattern: `::`},
	{Name: "Ident", Pattern: `~?[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Other", Pattern: `.`},
})

// Insertion is one pending header insertion, anchored at the zero-based line
// the signature starts on.
type Insertion struct {
	Line  int
	Block header.Block
}

// Scanner walks a document top to bottom collecting header insertions for
// every signature that is not already documented.
type Scanner struct {
	matcher *signature.Matcher
	gen     *header.Generator
}

// NewScanner creates a scanner using the given generator.
func NewScanner(gen *header.Generator) *Scanner {
	return &Scanner{
		matcher: signature.NewMatcher(),
		gen:     gen,
	}
}

// Scan returns the insertions for all undocumented signatures in the document,
// in ascending line order. Lines consumed by multi-line accumulation are not
// revisited.
func (s *Scanner) Scan(doc editor.Document) []Insertion {
	var insertions []Insertion
	for line := 0; line < doc.LineCount(); line++ {
		text := doc.Line(line)
		if !hasScopedName(text) || s.documented(doc, line) {
			continue
		}
		if m, ok := s.matcher.Match(text); ok {
			insertions = append(insertions, Insertion{Line: line, Block: s.gen.Generate(m)})
			continue
		}
		if !s.matcher.MatchesPartialStart(text) {
			continue
		}
		cursor := editor.NewCursor(doc, line)
		if m, ok := s.matcher.Match(signature.Accumulate(cursor)); ok {
			insertions = append(insertions, Insertion{Line: line, Block: s.gen.Generate(m)})
			line = cursor.Line()
		}
	}
	return insertions
}

// Annotate applies all insertions to the buffer, bottom-up so earlier line
// numbers stay valid, and returns the number of headers inserted.
func (s *Scanner) Annotate(buf *editor.Buffer) (int, error) {
	insertions := s.Scan(buf)
	for i := len(insertions) - 1; i >= 0; i-- {
		if err := buf.InsertAbove(insertions[i].Line, insertions[i].Block.String()); err != nil {
			return 0, err
		}
	}
	return len(insertions), nil
}

// documented reports whether the nearest non-blank line above already closes a
// block comment or is a line comment.
func (s *Scanner) documented(doc editor.Document, line int) bool {
	for i := line - 1; i >= 0; i-- {
		prev := strings.TrimSpace(doc.Line(i))
		if prev == "" {
			continue
		}
		return strings.HasSuffix(prev, "*/") || strings.HasPrefix(prev, "//")
	}
	return false
}

// hasScopedName reports whether the line contains an identifier, a scope
// token and another identifier in sequence, skipping whitespace.
func hasScopedName(line string) bool {
	lex, err := sigLexer.Lex("", strings.NewReader(line))
	if err != nil {
		return false
	}
	symbols := sigLexer.Symbols()
	ident, scope, whitespace := symbols["Ident"], symbols["Scope"], symbols["Whitespace"]

	// Track the last two significant token types seen.
	var prev, prevPrev lexer.TokenType
	for {
		tok, err := lex.Next()
		if err != nil {
			return false
		}
		if tok.EOF() {
			return false
		}
		if tok.Type == whitespace {
			continue
		}
		if tok.Type == ident && prev == scope && prevPrev == ident {
			return true
		}
		prevPrev, prev = prev, tok.Type
	}
}
