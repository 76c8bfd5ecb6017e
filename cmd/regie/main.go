package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"
)

// This variable is set automatically as part of the release process.
// Please do NOT modify the following line.
var version = "dev"

// These variables are initialized from runtime/debug.BuildInfo.
var (
	vcsRevision string
	vcsTime     time.Time
	vcsModified bool
	goVersion   string
)

func init() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	goVersion = buildInfo.GoVersion

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.time":
			vcsTime, _ = time.Parse(time.RFC3339, setting.Value)
		case "vcs.modified":
			vcsModified = (setting.Value == "true")
		}
	}
}

var logpath = flag.String("log", "", "log to file")
var versionFlag = flag.Bool("version", false, "print version")

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s @ %s\n", version, vcsRevision)
		return
	}

	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if *logpath != "" {
		logFile, err := os.Create(*logpath)
		if err != nil {
			exitWithError(err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	log.Printf("version: %s\n", version)
	log.Printf("go version: %s\n", goVersion)
	log.Printf("vcs.revision: %s\n", vcsRevision)
	log.Printf("vcs.time: %s\n", vcsTime)
	log.Printf("vcs.modified: %t\n", vcsModified)

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "compile":
		err = runCompile(args[1:])
	case "match":
		err = runMatch(args[1:])
	case "repl":
		err = runRepl(args[1:])
	case "export":
		err = runExport(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, errNoMatch) {
		// runMatch already printed "false"; a non-match is not a failure
		// worth an stderr message, just a non-zero exit code.
		os.Exit(1)
	}
	if err != nil {
		exitWithError(err)
	}
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...] <subcommand> [args...]\n", os.Args[0])
	fmt.Fprintf(f, "Subcommands:\n")
	fmt.Fprintf(f, "  compile [-v] <library.yaml> <pattern-name>   compile a pattern, report success/failure\n")
	fmt.Fprintf(f, "  match <library.yaml> <pattern-name> <str>    print true/false, exit 0/1\n")
	fmt.Fprintf(f, "  repl <library.yaml>                          interactively load, compile, and match patterns\n")
	fmt.Fprintf(f, "  export <library.yaml> <pattern-name> <dot>   write the DFA as a Graphviz dot file\n")
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
