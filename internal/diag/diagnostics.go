package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Level represents the verbosity of diagnostic output.
type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelDebug
)

// System provides structured, user-friendly terminal output. It also
// implements editor.DiagnosticSink so no-match diagnostics flow through the
// same channel as the rest of the tool's output.
type System struct {
	level     Level
	useColors bool
	output    io.Writer
	errorOut  io.Writer
}

// NewSystem creates a diagnostic system writing to stdout/stderr.
func NewSystem(level Level) *System {
	return &System{
		level:     level,
		useColors: shouldUseColors(),
		output:    os.Stdout,
		errorOut:  os.Stderr,
	}
}

// NewQuiet creates a diagnostic system that only shows errors.
func NewQuiet() *System {
	return NewSystem(LevelError)
}

// NewVerbose creates a diagnostic system with full output.
func NewVerbose() *System {
	return NewSystem(LevelVerbose)
}

// SetOutput redirects both output streams, used by tests.
func (d *System) SetOutput(w io.Writer) {
	d.output = w
	d.errorOut = w
}

// Report implements the diagnostic sink the insert-header command talks to.
// The message already carries the offending source text verbatim.
func (d *System) Report(message string) {
	if d.level >= LevelWarn {
		d.writeMessage(d.errorOut, "WARN", color.FgYellow, "%s", message)
	}
}

// Error outputs error messages.
func (d *System) Error(format string, args ...interface{}) {
	if d.level >= LevelError {
		d.writeMessage(d.errorOut, "ERROR", color.FgRed, format, args...)
	}
}

// Warn outputs warning messages.
func (d *System) Warn(format string, args ...interface{}) {
	if d.level >= LevelWarn {
		d.writeMessage(d.output, "WARN", color.FgYellow, format, args...)
	}
}

// Info outputs informational messages.
func (d *System) Info(format string, args ...interface{}) {
	if d.level >= LevelInfo {
		d.writeMessage(d.output, "INFO", color.FgBlue, format, args...)
	}
}

// Success outputs success messages with emphasis.
func (d *System) Success(format string, args ...interface{}) {
	if d.level >= LevelInfo {
		d.writeMessage(d.output, "SUCCESS", color.FgGreen, format, args...)
	}
}

// Verbose outputs detailed messages, shown in verbose mode only.
func (d *System) Verbose(format string, args ...interface{}) {
	if d.level >= LevelVerbose {
		d.writeMessage(d.output, "VERBOSE", color.FgHiBlack, format, args...)
	}
}

// Summary outputs a final summary with statistics.
func (d *System) Summary(title string, stats map[string]int) {
	if d.level >= LevelInfo {
		fmt.Fprintf(d.output, "\n%s\n", title)
		for key, value := range stats {
			fmt.Fprintf(d.output, "   %s: %d\n", key, value)
		}
		fmt.Fprintln(d.output)
	}
}

func (d *System) writeMessage(writer io.Writer, label string, attr color.Attribute, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	var out strings.Builder
	if d.useColors {
		out.WriteString(color.New(attr).Sprintf("[%s]", label))
		out.WriteString(" ")
	} else {
		out.WriteString(fmt.Sprintf("[%s] ", label))
	}
	out.WriteString(message)
	out.WriteString("\n")

	fmt.Fprint(writer, out.String())
}

func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
