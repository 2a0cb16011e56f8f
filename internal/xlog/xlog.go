/*
Package xlog wires this repository's packages into schuko's tracing
facade: a gologadapter.New() backend and a pterm-styled Info/Error
prefix pair, selected once at process start.

Library packages never call Init themselves — they only call
tracing.Select("sparqlgo.<package>") to obtain their own tracer, which is
a no-op tracer until a caller (a CLI, a test) installs a backend here.
*/
package xlog

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

// Init installs a gologadapter-backed tracer as the package-wide
// SyntaxTracer and applies level to every subsystem this module traces
// (sparqlparse, rowcursor, transport).
func Init(level tracing.TraceLevel) {
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(level)
	for _, name := range []string{
		"sparqlgo.sparqlparse",
		"sparqlgo.rowcursor",
		"sparqlgo.transport",
	} {
		tracing.Select(name).SetTraceLevel(level)
	}
}

// Styled applies this module's pterm prefix styling to the Info/Error
// printers.
func Styled() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " sparqlgo ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " error ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// LevelFromString maps the CLI's "-trace" flag value the same way
// trepl's own traceLevel() helper does.
func LevelFromString(s string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(s)
}
