// Package automaton implements the NFA builder, the subset-construction
// determinizer, and the whole-string matcher. It is grounded on
// syntax/parser/automata.go from the teacher repository: the same
// fresh-start/fresh-accept Thompson-construction shape, the same
// ε-closure/subset-construction determinizer, and the same partition-
// refinement minimization pass, adapted from byte-labeled edges over a
// fixed 256-symbol alphabet to rune-labeled edges over an open alphabet.
package automaton

import "golang.org/x/text/unicode/norm"

// Nfa is a nondeterministic finite automaton with ε-transitions.
// State 0 is always the start state. Exactly one state has accept == true,
// except in EmptyLanguageNfa, which has none; the combinators (Concat,
// Union, Star, Plus, Opt) require operands that have an accept state.
type Nfa struct {
	states []*nfaState
}

type nfaState struct {
	// inputTransitions maps a rune to the set of states reachable by
	// consuming that rune from this state.
	inputTransitions map[rune][]int
	// emptyTransitions lists states reachable via ε without consuming input.
	emptyTransitions []int
	accept           bool
}

func newNfaState(accept bool) *nfaState {
	return &nfaState{
		inputTransitions: make(map[rune][]int),
		accept:           accept,
	}
}

// EmptyLanguageNfa returns an NFA that matches no strings (the empty language).
func EmptyLanguageNfa() *Nfa {
	return &Nfa{states: []*nfaState{newNfaState(false)}}
}

// EmptyStringNfa returns an NFA that matches only the empty string.
func EmptyStringNfa() *Nfa {
	nfa := EmptyLanguageNfa()
	nfa.states[0].accept = true
	return nfa
}

// LiteralNfa returns an NFA matching exactly the string s. s must be
// non-empty; callers (regie/compile.go) are responsible for rejecting empty
// literals with EmptyLiteralError before reaching here.
func LiteralNfa(s string) *Nfa {
	runes := []rune(norm.NFC.String(s))
	nfa := runeNfa(runes[0])
	for _, r := range runes[1:] {
		nfa = nfa.Concat(runeNfa(r))
	}
	return nfa
}

func runeNfa(r rune) *Nfa {
	nfa := EmptyLanguageNfa()
	nfa.states = append(nfa.states, newNfaState(true))
	nfa.states[0].inputTransitions[r] = []int{1}
	return nfa
}

// clone returns an independent copy of nfa, sharing no backing slices or
// maps with the original. Plus uses it to give the Star operand its own
// copy of the sub-expression. Concat and Star already copy every operand
// state through copyWithShift, so the combined Nfa never shares an
// *nfaState with its operands either way; the clone is a defensive copy.
func (nfa *Nfa) clone() *Nfa {
	states := make([]*nfaState, len(nfa.states))
	for i, s := range nfa.states {
		states[i] = s.copyWithShift(0)
	}
	return &Nfa{states: states}
}

func (s *nfaState) copyWithShift(n int) *nfaState {
	newState := &nfaState{
		inputTransitions: make(map[rune][]int, len(s.inputTransitions)),
		emptyTransitions: make([]int, 0, len(s.emptyTransitions)),
		accept:           s.accept,
	}
	for r, targets := range s.inputTransitions {
		shifted := make([]int, len(targets))
		for i, t := range targets {
			shifted[i] = t + n
		}
		newState.inputTransitions[r] = shifted
	}
	for _, t := range s.emptyTransitions {
		newState.emptyTransitions = insertUniqueSorted(newState.emptyTransitions, t+n)
	}
	return newState
}

func (nfa *Nfa) acceptIndex() int {
	for i, s := range nfa.states {
		if s.accept {
			return i
		}
	}
	// Reached only for an Nfa without an accept state (EmptyLanguageNfa);
	// every other Nfa produced by this package has exactly one.
	panic("automaton: nfa has no accept state")
}

// Concat returns the concatenation of nfa followed by other: start -> nfa ->
// other -> accept.
func (nfa *Nfa) Concat(other *Nfa) *Nfa {
	result := EmptyLanguageNfa()

	leftAccept := nfa.acceptIndex()
	for i, s := range nfa.states {
		shifted := s.copyWithShift(1)
		if i == leftAccept {
			shifted.accept = false
			shifted.emptyTransitions = insertUniqueSorted(shifted.emptyTransitions, len(nfa.states)+1)
		}
		result.states = append(result.states, shifted)
	}

	for _, s := range other.states {
		result.states = append(result.states, s.copyWithShift(len(nfa.states)+1))
	}

	start := result.states[0]
	start.emptyTransitions = insertUniqueSorted(start.emptyTransitions, 1)

	return result
}

// Union returns an NFA matching the union of nfa and other's languages: a
// fresh start ε-branches to both operand starts, and both operand accepts
// ε-converge on a fresh accept state.
func (nfa *Nfa) Union(other *Nfa) *Nfa {
	result := EmptyLanguageNfa()

	leftOffset := 1
	rightOffset := 1 + len(nfa.states)
	acceptIdx := rightOffset + len(other.states)

	leftAccept := nfa.acceptIndex()
	for i, s := range nfa.states {
		shifted := s.copyWithShift(leftOffset)
		if i == leftAccept {
			shifted.accept = false
			shifted.emptyTransitions = insertUniqueSorted(shifted.emptyTransitions, acceptIdx)
		}
		result.states = append(result.states, shifted)
	}

	rightAccept := other.acceptIndex()
	for i, s := range other.states {
		shifted := s.copyWithShift(rightOffset)
		if i == rightAccept {
			shifted.accept = false
			shifted.emptyTransitions = insertUniqueSorted(shifted.emptyTransitions, acceptIdx)
		}
		result.states = append(result.states, shifted)
	}

	result.states = append(result.states, newNfaState(true))

	start := result.states[0]
	start.emptyTransitions = insertUniqueSorted(start.emptyTransitions, leftOffset)
	start.emptyTransitions = insertUniqueSorted(start.emptyTransitions, rightOffset)

	return result
}

// Star returns the Kleene star of nfa: a fresh accepting start ε-branches
// into nfa, whose accept state ε-loops back to that same start.
func (nfa *Nfa) Star() *Nfa {
	result := EmptyLanguageNfa()
	result.states[0].accept = true

	offset := 1
	accept := nfa.acceptIndex()
	for i, s := range nfa.states {
		shifted := s.copyWithShift(offset)
		if i == accept {
			shifted.accept = false
			shifted.emptyTransitions = insertUniqueSorted(shifted.emptyTransitions, 0)
		}
		result.states = append(result.states, shifted)
	}

	result.states[0].emptyTransitions = insertUniqueSorted(result.states[0].emptyTransitions, offset)
	return result
}

// Plus returns one-or-more repetitions of nfa: nfa followed by Star of an
// independent copy of nfa.
func (nfa *Nfa) Plus() *Nfa {
	return nfa.Concat(nfa.clone().Star())
}

// Opt returns zero-or-one repetitions of nfa.
func (nfa *Nfa) Opt() *Nfa {
	return nfa.Union(EmptyStringNfa())
}

// emptyTransitionsClosure returns every state reachable from any state in
// startStates via zero or more ε-transitions, including the start states
// themselves, sorted ascending.
func (nfa *Nfa) emptyTransitionsClosure(startStates []int) []int {
	reached := make(map[int]struct{}, len(startStates))
	stack := append([]int{}, startStates...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := reached[s]; ok {
			continue
		}
		reached[s] = struct{}{}
		stack = append(stack, nfa.states[s].emptyTransitions...)
	}
	return sortedKeys(reached)
}

// alphabet returns every rune labeling a non-ε edge anywhere in the NFA.
func (nfa *Nfa) alphabet() []rune {
	seen := make(map[rune]struct{})
	for _, s := range nfa.states {
		for r := range s.inputTransitions {
			seen[r] = struct{}{}
		}
	}
	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	return runes
}
