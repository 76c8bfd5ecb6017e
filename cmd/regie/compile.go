package main

import (
	"flag"
	"fmt"

	"github.com/fhur/regie"
	"github.com/fhur/regie/catalog"
)

func runCompile(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	verbose := fs.Bool("v", false, "print the compiled DFA's state count")
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: compile [-v] <library.yaml> <pattern-name>")
	}
	libPath, name := rest[0], rest[1]

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

	fmt.Printf("compiled %q\n", name)
	if *verbose {
		fmt.Printf("states: %d\n", dfa.NumStates)
	}
	return nil
}
