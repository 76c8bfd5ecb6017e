package main

import (
	"bytes"
	"flag"
	"fmt"

	"github.com/google/renameio/v2"

	"github.com/fhur/regie"
	"github.com/fhur/regie/automaton"
	"github.com/fhur/regie/catalog"
)

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) != 3 {
		return fmt.Errorf("usage: export <library.yaml> <pattern-name> <dot-file>")
	}
	libPath, name, outPath := rest[0], rest[1], rest[2]

	lib, err := catalog.LoadOrCreate(libPath)
	if err != nil {
		return err
	}

	e, err := lib.Build(name)
	if err != nil {
		return err
	}

	dfa, err := regie.Compile(e)
	if err != nil {
		return err
	}

	data := []byte(dotGraph(name, dfa))

	// Write via renameio so a crash mid-write never leaves a truncated
	// export file at outPath, the same atomic-rename idiom used by
	// wordlist.CacheDerived for other on-disk artifacts.
	pf, err := renameio.NewPendingFile(outPath, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("renameio.NewPendingFile: %w", err)
	}
	defer pf.Cleanup()

	if _, err := pf.Write(data); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("renameio.CloseAtomicallyReplace: %w", err)
	}

	fmt.Printf("wrote %d states to %s\n", dfa.NumStates, outPath)
	return nil
}

// dotGraph renders dfa as a Graphviz digraph: accept states as doublecircle
// nodes, a synthetic "start" node pointing at the start state, and one edge
// per transition labeled with its input rune. This is a debug visualization,
// not a persistence format — the dot file cannot be read back into a Dfa.
func dotGraph(name string, dfa *automaton.Dfa) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "digraph %q {\n", name)
	fmt.Fprintf(&b, "\trankdir=LR;\n")
	fmt.Fprintf(&b, "\tstart [shape=point];\n")

	for s := 0; s < dfa.NumStates; s++ {
		shape := "circle"
		if dfa.AcceptStates[s] {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\ts%d [shape=%s,label=%q];\n", s, shape, fmt.Sprintf("%d", s))
	}

	fmt.Fprintf(&b, "\tstart -> s%d;\n", dfa.StartState)

	for s := 0; s < dfa.NumStates; s++ {
		for r, next := range dfa.Transitions[s] {
			fmt.Fprintf(&b, "\ts%d -> s%d [label=%q];\n", s, next, string(r))
		}
	}

	fmt.Fprintf(&b, "}\n")
	return b.String()
}
