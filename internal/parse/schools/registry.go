// Package schools holds the per-school placement-page parsers and the
// registry that routes a school name to one.
package schools

import (
	"econgrads-engine/internal/parse"
)

// bespoke maps school names to parsers tuned for that department's
// markup. Schools absent from the map get the generic fallback; so do
// bespoke parsers that come back empty, handled at the orchestrator.
var bespoke = map[string]func() parse.Parser{
	"MIT":                        func() parse.Parser { return &MIT{} },
	"Harvard":                    func() parse.Parser { return &Harvard{} },
	"Stanford":                   func() parse.Parser { return &Stanford{} },
	"Princeton":                  func() parse.Parser { return &Princeton{} },
	"Yale":                       func() parse.Parser { return &Yale{} },
	"University of Chicago":      func() parse.Parser { return &UChicago{} },
	"Columbia":                   func() parse.Parser { return &Columbia{} },
	"NYU":                        func() parse.Parser { return &NYU{} },
	"University of Pennsylvania": func() parse.Parser { return &Penn{} },
	"University of Michigan":     func() parse.Parser { return &Michigan{} },
	"University of Minnesota":    func() parse.Parser { return &Minnesota{} },
	"Brown":                      func() parse.Parser { return &Brown{} },
	"Carnegie Mellon":            func() parse.Parser { return &CMU{} },
	"University of Maryland":     func() parse.Parser { return &Maryland{} },
}

// For returns the parser for a school, falling back to the generic parser
// when no bespoke one exists.
func For(school string) parse.Parser {
	if mk, ok := bespoke[school]; ok {
		return mk()
	}
	return parse.NewGeneric(school)
}

// HasBespoke reports whether a school has a tuned parser.
func HasBespoke(school string) bool {
	_, ok := bespoke[school]
	return ok
}
