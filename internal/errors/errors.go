// Package errors implements the diagnostic sink shared by every pass of the
// Bird pipeline: lexing, parsing, semantic analysis, and type checking all
// append to the same kind of Diagnostic and report through Sink.
package errors

import (
	"fmt"
	"strings"

	"github.com/colecarley/bird-lang-sub000/internal/lexer"
)

// Diagnostic is a single compiler error anchored to a source position.
type Diagnostic struct {
	Message string
	Pos     lexer.Position
}

// Format renders a diagnostic as:
//
//	>>[ERROR] <message> (line N, character M)
//	 N-1 | <previous line>
//	 N   | <offending line>
//	       ^
//	 N+1 | <next line>
//
// source is the full program text split into lines for context rendering;
// it may be empty, in which case only the header line is produced.
func (d Diagnostic) Format(source []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, ">>[ERROR] %s (line %d, character %d)\n", d.Message, d.Pos.Line, d.Pos.Column)

	lineIdx := d.Pos.Line - 1
	for i := lineIdx - 1; i <= lineIdx+1; i++ {
		if i < 0 || i >= len(source) {
			continue
		}
		prefix := fmt.Sprintf("%4d | ", i+1)
		sb.WriteString(prefix)
		sb.WriteString(source[i])
		sb.WriteString("\n")
		if i == lineIdx {
			sb.WriteString(strings.Repeat(" ", len(prefix)+d.Pos.Column-1))
			sb.WriteString("^\n")
		}
	}
	return sb.String()
}

// Sink accumulates diagnostics for a single pass so that multiple problems
// can surface from one run instead of aborting on the first.
type Sink struct {
	source []string
	diags  []Diagnostic
}

// NewSink creates a Sink that renders diagnostics against source, the
// complete program text (used to print the flanking-line context).
func NewSink(source string) *Sink {
	return &Sink{source: strings.Split(source, "\n")}
}

// Add records a diagnostic at pos.
func (s *Sink) Add(pos lexer.Position, format string, args ...interface{}) {
	s.diags = append(s.diags, Diagnostic{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// HasErrors reports whether any diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	return len(s.diags) > 0
}

// Count returns the number of recorded diagnostics.
func (s *Sink) Count() int {
	return len(s.diags)
}

// Diagnostics returns the accumulated diagnostics in the order they were added.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diags
}

// Format renders every diagnostic in the sink, one after another.
func (s *Sink) Format() string {
	var sb strings.Builder
	for _, d := range s.diags {
		sb.WriteString(d.Format(s.source))
	}
	return sb.String()
}
