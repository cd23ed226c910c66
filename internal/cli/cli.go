// Package cli implements the genmem command: a walkthrough of generational
// references (demo) and an interactive arena (repl).
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	genmem "github.com/TESTMECS/generatitonal-mem"
	"github.com/TESTMECS/generatitonal-mem/arena"
)

// Run executes the command described by args (args[0] is the program name)
// and returns the process exit code.
func Run(out, errOut io.Writer, args []string) int {
	if len(args) < 2 {
		printUsage(errOut)
		return 2
	}

	var err error
	switch args[1] {
	case "demo":
		err = runDemo(out, errOut, args[2:])
	case "repl":
		err = runREPL(out, errOut, args[2:])
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		printUsage(errOut)
		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  genmem demo [options]   Run the generational reference demonstrations
  genmem repl [options]   Start an interactive arena

Run 'genmem <command> --help' for options.
`)
}

type logFlags struct {
	level  string
	format string
}

func (lf *logFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&lf.level, "log-level", "warn", "log level: debug, info, warn, error")
	fs.StringVar(&lf.format, "log-format", "text", "log format: text or json")
}

func (lf *logFlags) logger(w io.Writer) (*genmem.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lf.level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", lf.level)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(lf.format) {
	case "text":
		return genmem.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return genmem.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", lf.format)
	}
}

func runDemo(out, errOut io.Writer, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(errOut)

	examples := fs.StringSlice("example", nil, "examples to run: "+strings.Join(AllExamples, ", ")+" (default all)")
	treePath := fs.String("tree", "", "JSONC file describing the tree for the tree example")
	outPath := fs.StringP("out", "o", "", "also write the transcript to this file (atomically)")
	var lf logFlags
	lf.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := lf.logger(errOut)
	if err != nil {
		return err
	}

	opts := DemoOptions{
		Examples: *examples,
		Logger:   logger,
	}
	if *treePath != "" {
		tree, err := LoadTree(*treePath)
		if err != nil {
			return err
		}
		opts.Tree = tree
	}

	var transcript bytes.Buffer
	if err := RunDemo(context.Background(), io.MultiWriter(out, &transcript), opts); err != nil {
		return err
	}

	if *outPath != "" {
		if err := atomic.WriteFile(*outPath, &transcript); err != nil {
			return fmt.Errorf("writing transcript: %w", err)
		}
		logger.Info("transcript written", "path", *outPath, "bytes", transcript.Len())
	}
	return nil
}

func runREPL(out, errOut io.Writer, args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(errOut)
	capacity := fs.Int("capacity", 0, "pre-size the arena for this many slots")
	var lf logFlags
	lf.register(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := lf.logger(errOut)
	if err != nil {
		return err
	}

	s := NewSession(out,
		arena.WithLogger(logger.WithArena("repl").Logger),
		arena.WithCapacity(*capacity),
	)
	return RunREPL(s)
}
