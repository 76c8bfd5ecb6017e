package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/shlex"

	"github.com/fhur/regie"
	"github.com/fhur/regie/catalog"
)

// runRepl loads a library once and then accepts interactive commands of the
// form:
//
//	match <pattern-name> <string>
//	list
//	quit
//
// Each line is tokenized with shlex so a query string can be quoted to
// contain spaces, mirroring how the teacher's shell command support splits
// a command line into argv before exec'ing it.
func runRepl(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: repl <library.yaml>")
	}

	lib, err := catalog.LoadOrCreate(rest[0])
	if err != nil {
		return err
	}

	return replLoop(os.Stdin, os.Stdout, lib)
}

func replLoop(in io.Reader, out io.Writer, lib catalog.Library) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "regie> ")
		if !scanner.Scan() {
			break
		}

		tokens, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		switch tokens[0] {
		case "quit", "exit":
			return nil

		case "list":
			for name := range lib.Patterns {
				fmt.Fprintln(out, name)
			}

		case "match":
			if len(tokens) != 3 {
				fmt.Fprintln(out, "usage: match <pattern-name> <string>")
				continue
			}
			e, err := lib.Build(tokens[1])
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			ok, err := regie.MatchesExpr(e, tokens[2])
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, ok)

		default:
			fmt.Fprintf(out, "unrecognized command %q\n", tokens[0])
		}
	}
	return scanner.Err()
}
