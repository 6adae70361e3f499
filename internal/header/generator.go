// Package header renders documentation comment blocks for matched function
// signatures. The block layout is a fixed external convention consumed by
// downstream documentation tooling, so the literal strings here must not
// change.
package header

import (
	"strings"

	"github.com/marwest/doxgen/internal/signature"
)

const (
	openFence  = "/**-------------------------------------------------------------"
	closeFence = "*/"
	separator  = "*"
)

// BriefRule is a user-supplied brief heuristic. When Contains is true the rule
// fires on a substring hit against the function name, otherwise on an exact
// name match. Rules are consulted after the built-in heuristics.
type BriefRule struct {
	Name     string
	Contains bool
	Brief    string
}

// Block is a generated header: a sequence of text lines ready for insertion
// above the matched signature.
type Block struct {
	Lines []string
}

// String renders the block with a trailing newline so the signature below the
// insertion point keeps its own row.
func (b Block) String() string {
	return strings.Join(b.Lines, "\n") + "\n"
}

// Generator produces header blocks from signature matches. The zero value uses
// only the built-in brief heuristics.
type Generator struct {
	extraBriefs []BriefRule
}

// NewGenerator creates a generator with optional extra brief rules.
func NewGenerator(extra ...BriefRule) *Generator {
	return &Generator{extraBriefs: extra}
}

// Generate renders the header block for a match. It is a pure function of the
// match fields: identical input always yields byte-identical output.
func (g *Generator) Generate(m *signature.Match) Block {
	lines := []string{
		openFence,
		"* @brief " + g.briefFor(m),
	}

	if names := signature.ParamNames(m.Params); len(names) > 0 {
		lines = append(lines, separator)
		for _, name := range names {
			lines = append(lines, "* @param "+name+" ")
		}
	}

	if m.ReturnType != "void" {
		lines = append(lines, separator, "* @return ")
	}

	lines = append(lines, closeFence)
	return Block{Lines: lines}
}

// briefFor picks the one-line summary. Built-in heuristics are checked in a
// fixed priority order, first hit wins; extra rules only apply when none of
// the built-ins fired.
func (g *Generator) briefFor(m *signature.Match) string {
	switch {
	case m.Name == m.Owner:
		return "Default constructor"
	case strings.Contains(m.Name, "Tick"):
		return "Called every frame"
	case m.Name == "BeginPlay":
		return "Called once actor has been spawned into world"
	case m.Name == "EndPlay":
		return "Called when actor is being removed from world"
	case m.Name == "OnConstruction":
		return "Called after spawning actor but before play"
	}
	for _, rule := range g.extraBriefs {
		if rule.Contains && strings.Contains(m.Name, rule.Name) {
			return rule.Brief
		}
		if !rule.Contains && m.Name == rule.Name {
			return rule.Brief
		}
	}
	return ""
}
