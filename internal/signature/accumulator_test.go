package signature

import (
	"strings"
	"testing"

	"github.com/marwest/doxgen/internal/editor"
)

func TestAccumulateJoinsWrappedSignature(t *testing.T) {
	buf := editor.NewBuffer("int* MyClass::Compute(int a,\n    float b)\n")

	got := Accumulate(editor.NewCursor(buf, 0))
	want := "int* MyClass::Compute(int a,float b)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAccumulateStopsWhenBalanceCloses(t *testing.T) {
	buf := editor.NewBuffer(strings.Join([]string{
		"void MyClass::Long(int a,",
		"    int b,",
		"    int c)",
		"{",
		"}",
	}, "\n"))

	cursor := editor.NewCursor(buf, 0)
	got := Accumulate(cursor)
	if got != "void MyClass::Long(int a,int b,int c)" {
		t.Errorf("unexpected accumulated text %q", got)
	}
	// The cursor stops on the line that closed the balance; the brace lines
	// are never consumed.
	if cursor.Line() != 2 {
		t.Errorf("expected cursor on line 2, got %d", cursor.Line())
	}
}

func TestAccumulateAlwaysLooksAheadOneLine(t *testing.T) {
	// The starting line opens no parenthesis, so the balance starts at zero;
	// one line of lookahead must still happen because the balance is checked
	// only after a line has been appended.
	buf := editor.NewBuffer("void MyClass::NameOnly\n(int a)\n")

	got := Accumulate(editor.NewCursor(buf, 0))
	if got != "void MyClass::NameOnly(int a)" {
		t.Errorf("unexpected accumulated text %q", got)
	}

	matcher := NewMatcher()
	if _, ok := matcher.Match(got); !ok {
		t.Errorf("expected accumulated text to match")
	}
}

func TestAccumulateStopsAtEndOfDocument(t *testing.T) {
	buf := editor.NewBuffer("void MyClass::Unclosed(int a,\n    int b,")

	cursor := editor.NewCursor(buf, 0)
	got := Accumulate(cursor)
	if got != "void MyClass::Unclosed(int a,int b," {
		t.Errorf("unexpected accumulated text %q", got)
	}
	if !cursor.AtEnd() {
		t.Error("expected cursor at end of document")
	}

	// The incomplete text still goes through the matcher and simply fails.
	if _, ok := NewMatcher().Match(got); ok {
		t.Error("expected incomplete signature not to match")
	}
}

func TestAccumulateTerminatesWithinDocumentBound(t *testing.T) {
	// A document with no closing parenthesis anywhere must terminate after
	// consuming at most every remaining line.
	lines := make([]string, 200)
	lines[0] = "void MyClass::Pathological(int a,"
	for i := 1; i < len(lines); i++ {
		lines[i] = "    int x,"
	}
	buf := editor.NewBuffer(strings.Join(lines, "\n"))

	cursor := editor.NewCursor(buf, 0)
	Accumulate(cursor)
	if !cursor.AtEnd() {
		t.Error("expected accumulation to stop at end of document")
	}
}

func TestAccumulateOverconsumptionIsKept(t *testing.T) {
	// A stray closing parenthesis past the signature drives the balance
	// negative; accumulation stops there and the extra text is kept rather
	// than given back.
	buf := editor.NewBuffer(strings.Join([]string{
		"void MyClass::NameOnly",
		")",
	}, "\n"))

	got := Accumulate(editor.NewCursor(buf, 0))
	if got != "void MyClass::NameOnly)" {
		t.Errorf("unexpected accumulated text %q", got)
	}
}
