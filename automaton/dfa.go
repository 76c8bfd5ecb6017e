package automaton

import "golang.org/x/text/unicode/norm"

// DfaDeadState is the state that rejects every remaining input. It is never
// the target of a subset produced from a reachable NFA subset; it exists
// purely so that "no transition" has a concrete, comparable representation.
const DfaDeadState int = 0

// Dfa is a deterministic finite automaton with a dense-over-reachable-
// symbols transition table: one map[rune]int per state. The alphabet is
// open-ended (runes), so a sparse per-state map is used instead of a fixed
// array, per the spec's design notes.
type Dfa struct {
	NumStates    int
	StartState   int
	Transitions  []map[rune]int
	AcceptStates []bool
}

// NextState returns the state reached from 'from' on input r, and whether a
// transition exists at all.
func (dfa *Dfa) NextState(from int, r rune) (int, bool) {
	next, ok := dfa.Transitions[from][r]
	return next, ok
}

// MatchString reports whether query, consumed in full, drives the DFA from
// its start state to an accepting state. This is the linear-time whole-
// string matcher from spec §4.4: no partial matches, no longest-match
// tracking, no streaming.
func (dfa *Dfa) MatchString(query string) bool {
	state := dfa.StartState
	for _, r := range norm.NFC.String(query) {
		next, ok := dfa.NextState(state, r)
		if !ok {
			return false
		}
		state = next
	}
	return dfa.AcceptStates[state]
}

// dfaBuilder incrementally constructs a Dfa with the minimum possible number
// of states (via partition-refinement minimization in build), the same
// two-phase approach as the teacher's DfaBuilder.
type dfaBuilder struct {
	states     []*dfaBuilderState
	startState int
}

type dfaBuilderState struct {
	inputTransitions map[rune]int
	accept           bool
}

func newDfaBuilder() *dfaBuilder {
	deadState := &dfaBuilderState{inputTransitions: make(map[rune]int)}
	startState := &dfaBuilderState{inputTransitions: make(map[rune]int)}
	return &dfaBuilder{states: []*dfaBuilderState{deadState, startState}, startState: 1}
}

func (b *dfaBuilder) addState() int {
	id := len(b.states)
	b.states = append(b.states, &dfaBuilderState{inputTransitions: make(map[rune]int)})
	return id
}

func (b *dfaBuilder) addTransition(from int, on rune, to int) {
	if to == DfaDeadState {
		delete(b.states[from].inputTransitions, on)
		return
	}
	b.states[from].inputTransitions[on] = to
}

func (b *dfaBuilder) markAccept(state int) {
	b.states[state].accept = true
}

// CompileDfa runs subset construction over nfa, producing a Dfa whose
// states are the reachable subsets of nfa's states, then minimizes it.
func (nfa *Nfa) CompileDfa() *Dfa {
	return nfa.subsetConstruct().build()
}

// compileDfaUnminimized runs subset construction only, skipping the
// minimization pass. It exists as a package-internal test seam (see
// automaton_test.go's TestMinimizationIsObservationallyTransparent) so the unminimized
// and minimized Dfa for the same Nfa can be compared on a query corpus,
// confirming minimization is purely an optimization never observable from
// MatchString.
func (nfa *Nfa) compileDfaUnminimized() *Dfa {
	return nfa.subsetConstruct().identityDfa()
}

// subsetConstruct runs subset construction over nfa and returns the
// resulting builder, before any minimization.
func (nfa *Nfa) subsetConstruct() *dfaBuilder {
	b := newDfaBuilder()
	km := &intSliceKeyMaker{}

	start := nfa.emptyTransitionsClosure([]int{0})
	subsetOf := map[int][]int{b.startState: start}
	dfaStateFor := map[string]int{km.makeKey(start): b.startState}

	stack := []int{b.startState}
	alphabet := nfa.alphabet()

	for len(stack) > 0 {
		dfaState := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		subset := subsetOf[dfaState]
		for _, nfaStateIdx := range subset {
			if nfa.states[nfaStateIdx].accept {
				b.markAccept(dfaState)
			}
		}

		for _, r := range alphabet {
			var next []int
			for _, nfaStateIdx := range subset {
				for _, t := range nfa.states[nfaStateIdx].inputTransitions[r] {
					next = insertUniqueSorted(next, t)
				}
			}
			if len(next) == 0 {
				continue
			}
			next = nfa.emptyTransitionsClosure(next)

			key := km.makeKey(next)
			nextDfaState, ok := dfaStateFor[key]
			if !ok {
				nextDfaState = b.addState()
				dfaStateFor[key] = nextDfaState
				subsetOf[nextDfaState] = next
				stack = append(stack, nextDfaState)
			}
			b.addTransition(dfaState, r, nextDfaState)
		}
	}

	return b
}

// build minimizes the constructed DFA via Moore-style partition refinement,
// the same fixpoint the teacher's DfaBuilder.Build runs: start by
// partitioning states by accept/non-accept, then repeatedly split any group
// whose members disagree on which group their transitions land in, until a
// fixpoint is reached.
func (b *dfaBuilder) build() *Dfa {
	groups := b.groupEquivalentStates()
	return b.dfaFromGroups(groups)
}

func (b *dfaBuilder) groupEquivalentStates() [][]int {
	km := &intSliceKeyMaker{}
	groups := b.initialGroups()
	for {
		prev := len(groups)
		groups = b.splitGroupsIfNecessary(groups, km)
		if len(groups) == prev {
			return groups
		}
	}
}

func (b *dfaBuilder) initialGroups() [][]int {
	groups := make([][]int, 0, len(b.states))
	groups = append(groups, []int{DfaDeadState})

	partitions := map[string][]int{"accept": nil, "reject": nil}
	for s := 1; s < len(b.states); s++ {
		if b.states[s].accept {
			partitions["accept"] = append(partitions["accept"], s)
		} else {
			partitions["reject"] = append(partitions["reject"], s)
		}
	}
	forEachPartitionInKeyOrder(partitions, func(states []int) {
		if len(states) > 0 {
			groups = append(groups, states)
		}
	})
	return groups
}

func (b *dfaBuilder) indexStatesByGroup(groups [][]int) []int {
	stateToGroup := make([]int, len(b.states))
	for g, states := range groups {
		for _, s := range states {
			stateToGroup[s] = g
		}
	}
	return stateToGroup
}

func (b *dfaBuilder) splitGroupsIfNecessary(groups [][]int, km *intSliceKeyMaker) [][]int {
	stateToGroup := b.indexStatesByGroup(groups)
	newGroups := make([][]int, 0, len(groups))

	for _, groupStates := range groups {
		if len(groupStates) == 1 {
			newGroups = append(newGroups, groupStates)
			continue
		}

		partitions := make(map[string][]int, len(groupStates))
		for _, s := range groupStates {
			sig := make([]int, 0, len(b.states[s].inputTransitions)*2)
			for r, next := range b.states[s].inputTransitions {
				sig = append(sig, int(r), stateToGroup[next])
			}
			key := km.makeKey(sortPairs(sig))
			partitions[key] = append(partitions[key], s)
		}

		if len(partitions) == 1 {
			newGroups = append(newGroups, groupStates)
			continue
		}

		forEachPartitionInKeyOrder(partitions, func(states []int) {
			newGroups = append(newGroups, states)
		})
	}

	return newGroups
}

// sortPairs sorts a flattened (rune, group) pair list by rune so that the
// signature key is independent of map iteration order.
func sortPairs(pairs []int) []int {
	n := len(pairs) / 2
	for i := 1; i < n; i++ {
		for j := i; j > 0 && pairs[2*j] < pairs[2*(j-1)]; j-- {
			pairs[2*j], pairs[2*(j-1)] = pairs[2*(j-1)], pairs[2*j]
			pairs[2*j+1], pairs[2*(j-1)+1] = pairs[2*(j-1)+1], pairs[2*j+1]
		}
	}
	return pairs
}

// identityDfa builds a Dfa directly from the builder's states, one group per
// state, so no two states are ever merged. Used by compileDfaUnminimized.
func (b *dfaBuilder) identityDfa() *Dfa {
	groups := make([][]int, len(b.states))
	for s := range b.states {
		groups[s] = []int{s}
	}
	return b.dfaFromGroups(groups)
}

func (b *dfaBuilder) dfaFromGroups(groups [][]int) *Dfa {
	stateToGroup := b.indexStatesByGroup(groups)

	dfa := &Dfa{
		NumStates:    len(groups),
		Transitions:  make([]map[rune]int, len(groups)),
		AcceptStates: make([]bool, len(groups)),
	}

	for g, groupStates := range groups {
		representative := groupStates[0]
		dfa.Transitions[g] = make(map[rune]int, len(b.states[representative].inputTransitions))
		for r, next := range b.states[representative].inputTransitions {
			dfa.Transitions[g][r] = stateToGroup[next]
		}
		dfa.AcceptStates[g] = b.states[representative].accept

		for _, s := range groupStates {
			if s == b.startState {
				dfa.StartState = g
			}
		}
	}

	return dfa
}
