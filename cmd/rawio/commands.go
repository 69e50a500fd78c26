package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"j5.nz/rawio/std/conv"
	"j5.nz/rawio/std/sys"
)

func runCmd(args []string, env *environment) error {
	var (
		configPath string
		overrides  Config
	)
	flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "YAML config file")
	flagSet.StringVar(&overrides.Output, "output", "", "file to write the message to")
	flagSet.StringVar(&overrides.Mode, "mode", "", "fopen mode for the output file")
	flagSet.StringVar(&overrides.Message, "message", "", "text written to the output file")
	flagSet.StringVar(&overrides.RenameTo, "rename-to", "", "move the output file here after closing it")
	if err := flagSet.Parse(args); err != nil {
		return usageError{err}
	}
	if flagSet.NArg() > 0 {
		return usageError{errors.New("run takes no arguments")}
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("output") {
		cfg.Output = overrides.Output
	}
	if flagSet.Changed("mode") {
		cfg.Mode = overrides.Mode
	}
	if flagSet.Changed("message") {
		cfg.Message = overrides.Message
	}
	if flagSet.Changed("rename-to") {
		cfg.RenameTo = overrides.RenameTo
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	if strings.IndexByte(cfg.Prompt, '%') >= 0 {
		return usageError{errors.New("prompt must not contain '%'")}
	}

	// Piped input gets no prompt.
	format := "%d"
	if env.stdinTerminal {
		format = cfg.Prompt + format
	} else {
		env.logger.Debug("stdin is not a terminal, skipping the prompt")
	}

	var number int
	if _, err := env.io.Scanf(format, &number); err != nil {
		return err
	}
	if _, err := env.io.Printf("You entered: %d\n", number); err != nil {
		return err
	}

	file, err := env.io.Open(cfg.Output, cfg.Mode)
	if err != nil {
		return err
	}
	written, err := file.Write([]byte(cfg.Message))
	if err != nil {
		file.Close()
		return err
	}
	if _, err := env.io.Printf("Wrote to file %s: %d\n", cfg.Output, written); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	if cfg.RenameTo != "" {
		if err := env.io.Rename(cfg.Output, cfg.RenameTo); err != nil {
			return err
		}
		if _, err := env.io.Printf("Renamed %s to %s\n", cfg.Output, cfg.RenameTo); err != nil {
			return err
		}
	}

	env.logger.Info("run complete", "number", number, "output", cfg.Output, "bytes", written)
	return nil
}

func printfCmd(args []string, env *environment) error {
	var fd int
	flagSet := pflag.NewFlagSet("printf", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	// Negative numbers after the format are arguments, not flags.
	flagSet.SetInterspersed(false)
	flagSet.IntVar(&fd, "fd", sys.Stdout, "descriptor to write to")
	if err := flagSet.Parse(args); err != nil {
		return usageError{err}
	}
	if flagSet.NArg() < 1 {
		return usageError{errors.New("printf needs a format")}
	}

	format := unescape(flagSet.Arg(0))
	values := make([]any, 0, flagSet.NArg()-1)
	for _, arg := range flagSet.Args()[1:] {
		values = append(values, parseArg(arg))
	}

	_, err := env.io.Fprintf(fd, format, values...)
	return err
}

func versionCmd(env *environment) error {
	table := sys.Table
	if _, err := env.io.Printf("rawio %s\n", version); err != nil {
		return err
	}
	if !sys.Supported {
		_, err := env.io.Printf("backend: %s\n", table.Arch)
		return err
	}
	_, err := env.io.Printf("backend: %s (%s)\nread %d write %d open %d close %d exit %d rename %d\n",
		table.Arch, table.Trap, table.Read, table.Write, table.Open, table.Close, table.Exit, table.Rename)
	return err
}

// parseArg passes whole decimal integers as int64 and anything else as
// a string.
func parseArg(arg string) any {
	digits := strings.TrimLeft(arg, "+-")
	if len(arg)-len(digits) > 1 || digits == "" || strings.Trim(digits, "0123456789") != "" {
		return arg
	}
	n, err := conv.Atoi([]byte(arg))
	if err != nil {
		return arg
	}
	return n
}

// unescape turns the shell-friendly \n, \t and \\ into their bytes.
func unescape(format string) string {
	return strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t").Replace(format)
}
