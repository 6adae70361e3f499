package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marwest/doxgen/internal/editor"
	"github.com/marwest/doxgen/internal/header"
	"github.com/marwest/doxgen/internal/signature"
)

type recordingSink struct {
	messages []string
}

func (s *recordingSink) Report(message string) {
	s.messages = append(s.messages, message)
}

func newCommand(sink editor.DiagnosticSink) *InsertHeader {
	return NewInsertHeader(signature.NewMatcher(), header.NewGenerator(), sink)
}

func TestExecuteDirectMatch(t *testing.T) {
	sink := &recordingSink{}
	buf := editor.NewBuffer("void MyClass::Tick(float DeltaTime)\n{\n}\n")

	result := newCommand(sink).Execute(buf, 0)

	require.Equal(t, Inserted, result)
	assert.Empty(t, sink.messages)
	assert.Equal(t, strings.Join([]string{
		"/**-------------------------------------------------------------",
		"* @brief Called every frame",
		"*",
		"* @param DeltaTime ",
		"*/",
		"void MyClass::Tick(float DeltaTime)",
		"{",
		"}",
		"",
	}, "\n"), buf.String())
}

func TestExecuteMultiLineSignature(t *testing.T) {
	sink := &recordingSink{}
	buf := editor.NewBuffer("int* MyClass::Compute(int a,\n    float b)\n{\n}\n")

	result := newCommand(sink).Execute(buf, 0)

	require.Equal(t, Inserted, result)
	out := buf.String()
	// Header lands above the original starting line.
	assert.True(t, strings.HasPrefix(out, "/**"))
	assert.Contains(t, out, "* @param a \n* @param b \n")
	assert.Contains(t, out, "* @return \n")
	// The wrapped physical lines stay untouched below the header.
	assert.Contains(t, out, "int* MyClass::Compute(int a,\n    float b)")
}

func TestExecuteNoMatchReportsVerbatim(t *testing.T) {
	sink := &recordingSink{}
	buf := editor.NewBuffer("foo bar baz\n")

	result := newCommand(sink).Execute(buf, 0)

	require.Equal(t, NoMatch, result)
	require.Len(t, sink.messages, 1)
	assert.Contains(t, sink.messages[0], "foo bar baz")
	// Nothing was inserted.
	assert.Equal(t, "foo bar baz\n", buf.String())
}

func TestExecuteMissingDocumentAbortsSilently(t *testing.T) {
	sink := &recordingSink{}

	assert.Equal(t, Aborted, newCommand(sink).Execute(nil, 0))
	assert.Empty(t, sink.messages)
}

func TestExecuteLineOutOfRangeAborts(t *testing.T) {
	sink := &recordingSink{}
	buf := editor.NewBuffer("void A::B()\n")

	assert.Equal(t, Aborted, newCommand(sink).Execute(buf, 5))
	assert.Equal(t, Aborted, newCommand(sink).Execute(buf, -1))
	assert.Empty(t, sink.messages)
}

func TestExecuteMissingSinkAbortsSilently(t *testing.T) {
	buf := editor.NewBuffer("foo bar baz\n")

	// No sink to report against: degraded but non-fatal.
	assert.Equal(t, Aborted, newCommand(nil).Execute(buf, 0))
	assert.Equal(t, "foo bar baz\n", buf.String())
}

func TestExecuteIsIdempotentPerInput(t *testing.T) {
	cmd := newCommand(&recordingSink{})

	first := editor.NewBuffer("int MyClass::GetValue()\n")
	second := editor.NewBuffer("int MyClass::GetValue()\n")
	require.Equal(t, Inserted, cmd.Execute(first, 0))
	require.Equal(t, Inserted, cmd.Execute(second, 0))
	assert.Equal(t, first.String(), second.String())
}

func TestRegistryAllowsSingleRegistration(t *testing.T) {
	defer Unregister()

	cmd := newCommand(nil)
	require.NoError(t, Register(cmd))

	got, ok := Registered()
	require.True(t, ok)
	assert.Same(t, cmd, got)

	// A second live registration is rejected.
	assert.Error(t, Register(newCommand(nil)))

	Unregister()
	_, ok = Registered()
	assert.False(t, ok)
	require.NoError(t, Register(cmd))
}

func TestRegisterNilCommand(t *testing.T) {
	defer Unregister()
	assert.Error(t, Register(nil))
}

func TestExecutorRunsTasksSerially(t *testing.T) {
	executor := NewExecutor()
	defer executor.Close()

	var order []int
	for i := 0; i < 10; i++ {
		i := i
		require.NoError(t, executor.Do(func() {
			order = append(order, i)
		}))
	}

	require.Len(t, order, 10)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestExecutorDoAfterClose(t *testing.T) {
	executor := NewExecutor()
	executor.Close()

	assert.Error(t, executor.Do(func() {}))
	// Close is idempotent.
	executor.Close()
}

func TestExecutorOwnsDocumentAccess(t *testing.T) {
	executor := NewExecutor()
	defer executor.Close()

	buf := editor.NewBuffer("MyClass::MyClass()\n")
	cmd := newCommand(&recordingSink{})

	var result Result
	require.NoError(t, executor.Do(func() {
		result = cmd.Execute(buf, 0)
	}))

	require.Equal(t, Inserted, result)
	assert.Contains(t, buf.String(), "Default constructor")
}
