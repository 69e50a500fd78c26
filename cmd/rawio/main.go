// rawio drives the raw-syscall stdio layer from the command line.
//
// Usage:
//
//	rawio run [flags]
//	rawio printf [--fd N] FORMAT [ARG...]
//	rawio version
package main

import (
	"errors"
	"log/slog"
	"os"

	"golang.org/x/term"

	"j5.nz/rawio/std/stdio"
	"j5.nz/rawio/std/sys"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

type environment struct {
	io            *stdio.Stdio
	logger        *slog.Logger
	stdinTerminal bool
}

// usageError marks errors caused by bad invocation; they exit with 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	logger := newLogger(os.Stderr, int(os.Stderr.Fd()))
	env := &environment{
		io:            stdio.New(stdio.Config{Logger: logger}),
		logger:        logger,
		stdinTerminal: term.IsTerminal(sys.Stdin),
	}
	env.io.Exit(env.report(dispatch(os.Args[1:], env)))
}

func dispatch(args []string, env *environment) error {
	if len(args) < 1 {
		return usageError{errors.New("no command given")}
	}

	command, rest := args[0], args[1:]
	switch command {
	case "run":
		return runCmd(rest, env)
	case "printf":
		return printfCmd(rest, env)
	case "version", "--version", "-v":
		return versionCmd(env)
	case "help", "--help", "-h":
		_, err := env.io.Printf("%s", usage)
		return err
	default:
		return usageError{errors.New("unknown command: " + command)}
	}
}

// report prints err and returns the process exit status for it.
func (env *environment) report(err error) int {
	if err == nil {
		return 0
	}
	env.io.Fprintf(sys.Stderr, "error: %s\n", err.Error())

	var usageErr usageError
	if errors.As(err, &usageErr) {
		env.io.Fprintf(sys.Stderr, "\n%s", usage)
		return 2
	}
	return 1
}

const usage = `rawio - formatted I/O over raw system calls

USAGE
    rawio <command> [flags]

COMMANDS
    run       Read a number, echo it, write a message to a file
    printf    Format arguments with the raw printf engine
    version   Show version and the compiled syscall table

EXAMPLES
    rawio run --output /tmp/out.txt --mode a --message "again"
    rawio printf "%s is %d\n" answer 42

ENVIRONMENT
    RAWIO_CONFIG   YAML config file for run (overridden by --config)
    RAWIO_DEBUG    Enable debug logging
`
