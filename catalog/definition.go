package catalog

import (
	"github.com/pkg/errors"

	"github.com/fhur/regie/expr"
)

// Definition is a textual, YAML-friendly description of an expr.Expr. It is
// a thin caller-side DSL on top of the core — the core itself never sees
// this shape, only the expr.Expr that Build produces from it.
type Definition struct {
	// Kind is one of "lit", "int", "cat", "or", "star", "plus", "opt".
	Kind string `yaml:"kind"`
	// Value holds the literal string for kind "lit".
	Value string `yaml:"value,omitempty"`
	// IntValue holds the literal integer for kind "int".
	IntValue int `yaml:"intValue,omitempty"`
	// Children holds the sub-definitions for every other kind.
	Children []Definition `yaml:"children,omitempty"`
}

// Build recursively lowers a Definition into an expr.Expr.
func (d Definition) Build() (expr.Expr, error) {
	switch d.Kind {
	case "lit":
		return expr.Lit(d.Value), nil

	case "int":
		return expr.Int(d.IntValue), nil

	case "cat":
		children, err := buildChildren(d.Children)
		if err != nil {
			return nil, err
		}
		return expr.Cat(children...), nil

	case "or":
		children, err := buildChildren(d.Children)
		if err != nil {
			return nil, err
		}
		return expr.Or(children...), nil

	case "star":
		child, err := buildSingleChild(d)
		if err != nil {
			return nil, err
		}
		return expr.Star(child), nil

	case "plus":
		child, err := buildSingleChild(d)
		if err != nil {
			return nil, err
		}
		return expr.Plus(child), nil

	case "opt":
		child, err := buildSingleChild(d)
		if err != nil {
			return nil, err
		}
		return expr.Opt(child), nil

	default:
		return nil, errors.Errorf("catalog: unrecognized definition kind %q", d.Kind)
	}
}

func buildChildren(defs []Definition) ([]expr.Expr, error) {
	if len(defs) == 0 {
		return nil, errors.New("catalog: cat/or definition requires at least one child")
	}
	children := make([]expr.Expr, 0, len(defs))
	for i, d := range defs {
		child, err := d.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "child %d", i)
		}
		children = append(children, child)
	}
	return children, nil
}

func buildSingleChild(d Definition) (expr.Expr, error) {
	if len(d.Children) == 0 {
		return nil, errors.Errorf("catalog: %s definition requires one child", d.Kind)
	}
	return d.Children[0].Build()
}
