package signature

import (
	"strings"

	"github.com/marwest/doxgen/internal/editor"
)

// Accumulate reconstructs a logical signature that wraps across physical lines.
// It seeds the accumulated text with the cursor's current line, then appends
// each following line trimmed and with no separator, tracking the running
// parenthesis balance, until the balance closes or the document ends. The
// balance is checked only after a line has been appended, so one line of
// lookahead always occurs even when the starting line opens no parenthesis.
//
// The loop does not give back lines consumed past the true end of the
// signature; callers insert at the original starting line regardless.
func Accumulate(cursor *editor.Cursor) string {
	text := cursor.Text()
	balance := parenBalance(text)
	for !cursor.AtEnd() {
		cursor.Advance()
		line := strings.TrimSpace(cursor.Text())
		text += line
		balance += parenBalance(line)
		if balance <= 0 {
			break
		}
	}
	return text
}

func parenBalance(s string) int {
	return strings.Count(s, "(") - strings.Count(s, ")")
}
