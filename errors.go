package regie

import "fmt"

// ParseError reports that an expression tree contained a leaf the front end
// does not recognize: neither a string literal, an integer literal, nor a
// known operator node.
type ParseError struct {
	Leaf any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regie: unrecognized expression leaf: %#v", e.Leaf)
}

// EmptyLiteralError reports that a zero-length string literal appeared in
// an expression tree. Its language is ambiguous between "matches nothing,
// consumes nothing" (ε) and "matches only the empty word"; callers wanting
// optionality should use expr.Opt instead.
type EmptyLiteralError struct{}

func (e *EmptyLiteralError) Error() string {
	return "regie: empty string literal is ambiguous; use expr.Opt for optionality"
}

// PreconditionError reports that a caller-supplied precondition was
// violated, such as a negative repetition count to NOrMore.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return "regie: precondition violated: " + e.Message
}
