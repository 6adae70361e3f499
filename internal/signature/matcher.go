package signature

import (
	"regexp"
	"strings"
)

// Match holds the fields extracted from a recognized function signature.
type Match struct {
	ReturnType string
	Owner      string
	Name       string
	Params     string
}

// Full-signature patterns, tried in priority order. The function pattern
// requires a return type ahead of the owner so that constructor-shaped
// signatures fall through to the constructor pattern instead of having their
// owner swallowed as a return type.
var (
	// <returnType> <owner>::<name>(<params>) [const]
	functionPattern = regexp.MustCompile(`(?i)^\s*([A-Za-z_][\w<>,:*&\s]*?)\s+([A-Za-z_]\w*)::(~?[A-Za-z_]\w*)\s*\(\s*(.*?)\s*\)\s*(const)?\s*;?\s*$`)

	// <owner>::<name>(<params>) — constructors, destructors
	constructorPattern = regexp.MustCompile(`^\s*([A-Za-z_]\w*)::(~?[A-Za-z_]\w*)\s*\(\s*(.*?)\s*\)\s*;?\s*$`)

	// Loose start-of-signature shape: <returnType> <owner>::<name> with no
	// requirement that a parameter list is present or closed.
	partialPattern = regexp.MustCompile(`(?i)^\s*(?:[A-Za-z_][\w<>,:*&\s]*?\s+)?[A-Za-z_]\w*::~?[A-Za-z_]\w*`)
)

// Matcher classifies raw text against the recognized signature shapes. It is
// stateless and safe for reuse across calls.
type Matcher struct{}

// NewMatcher creates a new signature matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match tries each full-signature pattern in priority order and returns the
// extracted fields of the first one that matches. The second return value is
// false when the text does not resemble any recognized signature shape. An
// empty or absent return type is normalized to "void".
func (m *Matcher) Match(text string) (*Match, bool) {
	if groups := functionPattern.FindStringSubmatch(text); groups != nil {
		return newMatch(groups[1], groups[2], groups[3], groups[4]), true
	}
	if groups := constructorPattern.FindStringSubmatch(text); groups != nil {
		return newMatch("", groups[1], groups[2], groups[3]), true
	}
	return nil, false
}

// MatchesPartialStart reports whether the text looks like the beginning of a
// signature that may continue on following lines.
func (m *Matcher) MatchesPartialStart(text string) bool {
	return partialPattern.MatchString(text)
}

func newMatch(returnType, owner, name, params string) *Match {
	returnType = strings.TrimSpace(returnType)
	if returnType == "" {
		returnType = "void"
	}
	return &Match{
		ReturnType: returnType,
		Owner:      owner,
		Name:       name,
		Params:     params,
	}
}
