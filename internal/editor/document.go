package editor

// Document is the host surface the core pipeline works against. Implementations
// expose line-oriented read access and a single insertion primitive; the CLI uses
// the in-memory Buffer, editor integrations can provide their own.
type Document interface {
	// LineCount returns the number of lines in the document.
	LineCount() int
	// Line returns the text of the zero-based line index, without a trailing newline.
	Line(i int) string
	// InsertAbove inserts a block of text so that it appears immediately above the
	// given zero-based line index.
	InsertAbove(i int, text string) error
}

// DiagnosticSink receives user-facing diagnostic messages, e.g. when a line does
// not resemble any recognized signature shape.
type DiagnosticSink interface {
	Report(message string)
}

// Cursor is a line cursor over a Document. It only moves forward.
type Cursor struct {
	doc  Document
	line int
}

// NewCursor creates a cursor positioned at the given zero-based line.
func NewCursor(doc Document, line int) *Cursor {
	return &Cursor{doc: doc, line: line}
}

// Text returns the text of the current line.
func (c *Cursor) Text() string {
	return c.doc.Line(c.line)
}

// Line returns the current zero-based line index.
func (c *Cursor) Line() int {
	return c.line
}

// Advance moves the cursor down one line. Calling Advance at the last line is a
// no-op; callers should check AtEnd first.
func (c *Cursor) Advance() {
	if !c.AtEnd() {
		c.line++
	}
}

// AtEnd reports whether the cursor is on the last line of the document.
func (c *Cursor) AtEnd() bool {
	return c.line >= c.doc.LineCount()-1
}
