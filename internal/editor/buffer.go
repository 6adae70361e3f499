package editor

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Buffer is an in-memory Document backed by a slice of lines. It remembers
// whether the original text ended with a newline so round-tripping through
// String preserves the file byte-for-byte when nothing is inserted.
type Buffer struct {
	lines      []string
	trailingNL bool
}

// NewBuffer creates a buffer from source text.
func NewBuffer(src string) *Buffer {
	trailing := strings.HasSuffix(src, "\n")
	if trailing {
		src = strings.TrimSuffix(src, "\n")
	}
	return &Buffer{
		lines:      strings.Split(src, "\n"),
		trailingNL: trailing,
	}
}

// ReadBuffer creates a buffer from a reader.
func ReadBuffer(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return NewBuffer(string(data)), nil
}

// OpenBuffer creates a buffer from a file on disk.
func OpenBuffer(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	return NewBuffer(string(data)), nil
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of the zero-based line index.
func (b *Buffer) Line(i int) string {
	return b.lines[i]
}

// InsertAbove inserts a block of text above the given zero-based line. The block
// may span multiple lines; a trailing newline on the block is ignored so the
// target line keeps its own row.
func (b *Buffer) InsertAbove(i int, text string) error {
	if i < 0 || i >= len(b.lines) {
		return fmt.Errorf("line %d out of range (document has %d lines)", i, len(b.lines))
	}
	block := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	inserted := make([]string, 0, len(b.lines)+len(block))
	inserted = append(inserted, b.lines[:i]...)
	inserted = append(inserted, block...)
	inserted = append(inserted, b.lines[i:]...)
	b.lines = inserted
	return nil
}

// String serializes the buffer back to source text.
func (b *Buffer) String() string {
	out := strings.Join(b.lines, "\n")
	if b.trailingNL {
		out += "\n"
	}
	return out
}

// WriteFile writes the buffer contents to the given path.
func (b *Buffer) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	return nil
}
