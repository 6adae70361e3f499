// Package command wires the signature matcher, the multi-line accumulator and
// the header generator into the single host-facing operation: insert a
// documentation header above the signature at the current line.
package command

import (
	"fmt"

	"github.com/marwest/doxgen/internal/editor"
	"github.com/marwest/doxgen/internal/header"
	"github.com/marwest/doxgen/internal/signature"
)

// Result classifies the outcome of one command invocation.
type Result int

const (
	// Inserted means a header was generated and inserted.
	Inserted Result = iota
	// NoMatch means the text did not resemble any recognized signature shape,
	// even after multi-line accumulation. This is a normal outcome, reported
	// through the diagnostic sink rather than as an error.
	NoMatch
	// Aborted means required host context was missing and the invocation
	// stopped silently.
	Aborted
)

// InsertHeader is the insert-documentation-header command. Invocations are
// independent and idempotent with respect to their inputs; no state persists
// between calls.
type InsertHeader struct {
	matcher *signature.Matcher
	gen     *header.Generator
	sink    editor.DiagnosticSink
}

// NewInsertHeader creates the command. The sink may be nil, in which case
// no-match diagnostics are dropped silently.
func NewInsertHeader(matcher *signature.Matcher, gen *header.Generator, sink editor.DiagnosticSink) *InsertHeader {
	return &InsertHeader{
		matcher: matcher,
		gen:     gen,
		sink:    sink,
	}
}

// Execute runs the pipeline against the given zero-based line of the document:
// direct match first, then multi-line accumulation when the line looks like
// the start of a wrapped signature, then a diagnostic echoing the line
// verbatim. The header is always inserted at the original starting line.
func (c *InsertHeader) Execute(doc editor.Document, line int) Result {
	if doc == nil || line < 0 || line >= doc.LineCount() {
		return Aborted
	}
	text := doc.Line(line)

	if m, ok := c.matcher.Match(text); ok {
		return c.insert(doc, line, m)
	}

	if c.matcher.MatchesPartialStart(text) {
		accumulated := signature.Accumulate(editor.NewCursor(doc, line))
		if m, ok := c.matcher.Match(accumulated); ok {
			return c.insert(doc, line, m)
		}
	}

	if c.sink == nil {
		return Aborted
	}
	c.sink.Report(fmt.Sprintf("not a valid function signature: %s", text))
	return NoMatch
}

func (c *InsertHeader) insert(doc editor.Document, line int, m *signature.Match) Result {
	block := c.gen.Generate(m)
	if err := doc.InsertAbove(line, block.String()); err != nil {
		if c.sink != nil {
			c.sink.Report(fmt.Sprintf("failed to insert header: %v", err))
		}
		return Aborted
	}
	return Inserted
}
