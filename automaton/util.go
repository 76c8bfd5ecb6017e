package automaton

import "sort"

// insertUniqueSorted inserts v into a sorted slice of unique ints, returning
// the (possibly reallocated) sorted slice. Linear in the length of s, which
// is fine because ε-closures and DFA-state subsets are small in practice.
func insertUniqueSorted(s []int, v int) []int {
	insertIdx := sort.SearchInts(s, v)
	if insertIdx < len(s) && s[insertIdx] == v {
		return s
	}
	s = append(s, 0)
	copy(s[insertIdx+1:], s[insertIdx:])
	s[insertIdx] = v
	return s
}

// sortedKeys returns the keys of a set represented as map[int]struct{}, sorted ascending.
func sortedKeys(m map[int]struct{}) []int {
	result := make([]int, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	sort.Ints(result)
	return result
}

// intSliceKeyMaker builds a comparable, hashable key for a sorted slice of
// ints by packing each element into 8 bytes. Reusing the internal buffer
// across calls avoids an allocation per lookup, the same trick the teacher's
// subset-construction implementation uses to key sets of NFA states.
type intSliceKeyMaker struct {
	buf []byte
}

func (k *intSliceKeyMaker) makeKey(s []int) string {
	if len(s) == 0 {
		return ""
	}
	if k.buf != nil {
		k.buf = k.buf[:0]
	}
	for _, x := range s {
		y := int64(x)
		k.buf = append(k.buf,
			byte(y), byte(y>>8), byte(y>>16), byte(y>>24),
			byte(y>>32), byte(y>>40), byte(y>>48), byte(y>>56))
	}
	return string(k.buf)
}

// forEachPartitionInKeyOrder visits each partition in deterministic key
// order, so that repeated compiles of the same NFA produce identical DFA
// state numbering (useful for tests and for export/diagnostic output; the
// spec does not require this, but it costs nothing and removes a source of
// nondeterminism from golden-file tests).
func forEachPartitionInKeyOrder(partitions map[string][]int, f func(states []int)) {
	keys := make([]string, 0, len(partitions))
	for k := range partitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f(partitions[k])
	}
}
