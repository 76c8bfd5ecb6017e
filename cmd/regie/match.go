package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/fhur/regie"
	"github.com/fhur/regie/catalog"
)

// errNoMatch signals a well-formed, negative match result: main maps it to
// exit code 1 without printing an error message, since runMatch already
// printed "false" to stdout.
var errNoMatch = errors.New("no match")

func runMatch(args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) != 3 {
		return fmt.Errorf("usage: match <library.yaml> <pattern-name> <string>")
	}
	libPath, name, query := rest[0], rest[1], rest[2]

	lib, err := catalog.LoadOrCreate(libPath)
	if err != nil {
		return err
	}

	e, err := lib.Build(name)
	if err != nil {
		return err
	}

	ok, err := regie.MatchesExpr(e, query)
	if err != nil {
		return err
	}

	fmt.Println(ok)
	if !ok {
		return errNoMatch
	}
	return nil
}
