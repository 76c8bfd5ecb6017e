package regie

import (
	"strconv"

	"github.com/fhur/regie/automaton"
	"github.com/fhur/regie/expr"
)

// toNfa lowers an expression tree into an NFA via a post-order walk, exactly
// as the teacher's ParseRegexp/CompileNfa pair does it over a parsed token
// stream instead of a tree. Every child of an operator node has, by the
// post-order property, already been converted to an NFA before its parent
// is combined.
func toNfa(e expr.Expr) (*automaton.Nfa, error) {
	switch v := e.(type) {
	case expr.Literal:
		if v.Value == "" {
			return nil, &EmptyLiteralError{}
		}
		return automaton.LiteralNfa(v.Value), nil

	case expr.IntLiteral:
		return automaton.LiteralNfa(strconv.Itoa(v.Value)), nil

	case expr.Op:
		return toNfaOp(v)

	default:
		return nil, &ParseError{Leaf: e}
	}
}

func toNfaOp(op expr.Op) (*automaton.Nfa, error) {
	switch op.Tag {
	case expr.Cat:
		return foldChildren(op, func(acc, next *automaton.Nfa) *automaton.Nfa {
			return acc.Concat(next)
		})

	case expr.Or:
		return foldChildren(op, func(acc, next *automaton.Nfa) *automaton.Nfa {
			return acc.Union(next)
		})

	case expr.Star:
		child, err := firstChild(op)
		if err != nil {
			return nil, err
		}
		return child.Star(), nil

	case expr.Plus:
		child, err := firstChild(op)
		if err != nil {
			return nil, err
		}
		return child.Plus(), nil

	case expr.Opt:
		child, err := firstChild(op)
		if err != nil {
			return nil, err
		}
		return child.Opt(), nil

	default:
		return nil, &ParseError{Leaf: op}
	}
}

// firstChild lowers and returns the first child of a star/plus/opt node.
// Extra children are silently ignored, matching the reference
// implementation's documented leniency (see SPEC_FULL.md §9).
func firstChild(op expr.Op) (*automaton.Nfa, error) {
	if len(op.Children) == 0 {
		return nil, &ParseError{Leaf: op}
	}
	return toNfa(op.Children[0])
}

// foldChildren left-folds toNfa over an operator node's children using
// combine, matching spec §4.1's "variadic cat/or are defined by left-fold
// over their binary forms."
func foldChildren(op expr.Op, combine func(acc, next *automaton.Nfa) *automaton.Nfa) (*automaton.Nfa, error) {
	if len(op.Children) == 0 {
		return nil, &ParseError{Leaf: op}
	}

	acc, err := toNfa(op.Children[0])
	if err != nil {
		return nil, err
	}

	for _, child := range op.Children[1:] {
		next, err := toNfa(child)
		if err != nil {
			return nil, err
		}
		acc = combine(acc, next)
	}

	return acc, nil
}
