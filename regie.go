// Package regie compiles a composed expression tree (package expr) into a
// deterministic automaton and matches whole strings against it.
//
// The compilation pipeline is expression -> NFA -> DFA, implemented by
// package automaton; this package is the front end that walks the tree and
// the small facade that ties compilation and matching together for callers.
package regie

import (
	"github.com/fhur/regie/automaton"
	"github.com/fhur/regie/expr"
)

// Compile lowers e into an NFA and determinizes it into a Dfa. It returns
// *ParseError if e contains a leaf the front end does not recognize, or
// *EmptyLiteralError if e contains an empty string literal.
func Compile(e expr.Expr) (*automaton.Dfa, error) {
	nfa, err := toNfa(e)
	if err != nil {
		return nil, err
	}
	return nfa.CompileDfa(), nil
}

// Matches reports whether query, consumed in full, is accepted by dfa.
func Matches(dfa *automaton.Dfa, query string) bool {
	return dfa.MatchString(query)
}

// MatchesExpr compiles e and matches query against the result in one call.
// It does not expose the intermediate Dfa to the caller.
func MatchesExpr(e expr.Expr, query string) (bool, error) {
	dfa, err := Compile(e)
	if err != nil {
		return false, err
	}
	return Matches(dfa, query), nil
}

// NOrMore builds an expression matching k or more repetitions of e: Star(e)
// when k == 0, otherwise Cat of k copies of e followed by Star(e). It
// returns *PreconditionError if k < 0.
func NOrMore(k int, e expr.Expr) (expr.Expr, error) {
	if k < 0 {
		return nil, &PreconditionError{Message: "k must be >= 0"}
	}
	if k == 0 {
		return expr.Star(e), nil
	}

	children := make([]expr.Expr, 0, k+1)
	for i := 0; i < k; i++ {
		children = append(children, e)
	}
	children = append(children, expr.Star(e))
	return expr.Cat(children...), nil
}
