// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jcodec reads, rewrites, and converts JSON documents.
//
// Usage:
//
//	jcodec <command> [flags] [args...]
//
// Each command reads its input from standard input, or from the file named
// by --input, and writes to standard output.  Run "jcodec help" for a list
// of commands.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/creachadair/jcodec/cbor"
	"github.com/creachadair/jcodec/cursor"
	"github.com/creachadair/jcodec/jpath"
	"github.com/creachadair/jcodec/json"
	"github.com/creachadair/jcodec/yaml"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// A command is a subcommand of the program.
type command struct {
	Name    string
	Args    string // positional argument synopsis
	Summary string

	// Flags, if set, adds command-specific flags to fs.
	Flags func(fs *pflag.FlagSet, o *options)

	Run func(e *env, args []string) error
}

// options holds the values of command-line flags.
type options struct {
	Input   string
	Verbose bool
	Compact bool
	Indent  int
	From    string
	To      string
	Diag    bool
}

// env is the environment passed to a running command.
type env struct {
	opts   *options
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
}

var commands = []*command{
	{
		Name:    "fmt",
		Summary: "Reformat a JSON document",
		Flags:   outputFlags,
		Run:     runFmt,
	},
	{
		Name:    "events",
		Summary: "Print the parse events of a JSON document with their paths",
		Run:     runEvents,
	},
	{
		Name:    "select",
		Args:    "EXPR",
		Summary: "Print the values whose paths match a path expression",
		Run:     runSelect,
	},
	{
		Name:    "get",
		Args:    "KEY...",
		Summary: "Print the value reached by a sequence of keys and indexes",
		Flags:   outputFlags,
		Run:     runGet,
	},
	{
		Name:    "convert",
		Summary: "Convert a document between JSON, YAML, and CBOR",
		Flags: func(fs *pflag.FlagSet, o *options) {
			outputFlags(fs, o)
			fs.StringVar(&o.From, "from", "json", "input format (json, yaml, cbor)")
			fs.StringVar(&o.To, "to", "json", "output format (json, yaml, cbor)")
			fs.BoolVar(&o.Diag, "diag", false, "write CBOR output in diagnostic notation")
		},
		Run: runConvert,
	},
}

func outputFlags(fs *pflag.FlagSet, o *options) {
	fs.BoolVarP(&o.Compact, "compact", "c", false, "write compact JSON output")
	fs.IntVar(&o.Indent, "indent", 2, "indentation per level of JSON output")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errors.New("command required")
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		printUsage(stdout)
		return nil
	}
	cmd := findCommand(name)
	if cmd == nil {
		return fmt.Errorf("unknown command %q (run 'jcodec help' for usage)", name)
	}

	var opts options
	fs := pflag.NewFlagSet("jcodec "+cmd.Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&opts.Input, "input", "i", "", "read input from this file (default stdin)")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")
	if cmd.Flags != nil {
		cmd.Flags(fs, &opts)
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "Usage: jcodec %s [flags] %s\n\n%s.\n\nFlags:\n%s",
				cmd.Name, cmd.Args, cmd.Summary, fs.FlagUsages())
			return nil
		}
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	if opts.Compact && fs.Changed("indent") {
		return fmt.Errorf("%s: --compact and --indent cannot be combined", cmd.Name)
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	e := &env{
		opts:   &opts,
		stdin:  stdin,
		stdout: stdout,
		log: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: level,
		})).With("command", cmd.Name),
	}
	if err := cmd.Run(e, fs.Args()); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

func findCommand(name string) *command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jcodec <command> [flags] [args...]\n\nCommands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nRun 'jcodec <command> --help' for the flags of a command.")
}

// openInput returns a reader for the input selected by the options.
func (e *env) openInput() (io.ReadCloser, error) {
	if e.opts.Input == "" || e.opts.Input == "-" {
		e.log.Debug("reading standard input")
		return io.NopCloser(e.stdin), nil
	}
	e.log.Debug("reading input file", "path", e.opts.Input)
	return os.Open(e.opts.Input)
}

func (e *env) readInput() ([]byte, error) {
	rc, err := e.openInput()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	e.log.Debug("read input", "bytes", len(data))
	return data, nil
}

func (e *env) parseInput() (json.Value, error) {
	rc, err := e.openInput()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return json.Parse(rc)
}

// writeValue writes v as JSON in the layout selected by the options.
func (e *env) writeValue(v json.Value) error {
	var out string
	var err error
	if e.opts.Compact {
		out, err = json.Encode(v)
	} else {
		out, err = json.EncodePretty(v, e.opts.Indent)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, out)
	return err
}

func runFmt(e *env, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %q", args)
	}
	v, err := e.parseInput()
	if err != nil {
		return err
	}
	return e.writeValue(v)
}

func runEvents(e *env, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %q", args)
	}
	rc, err := e.openInput()
	if err != nil {
		return err
	}
	defer rc.Close()

	p := json.NewParser(rc)
	var n int
	for ev := range p.Events() {
		if ev.Kind == json.ErrorEvent {
			return ev.Err
		}
		n++
		if _, err := fmt.Fprintln(e.stdout, ev, p.Stack()); err != nil {
			return err
		}
	}
	e.log.Debug("parse complete", "events", n, "end", p.Pos())
	return nil
}

func runSelect(e *env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: select EXPR")
	}
	expr, err := jpath.Parse(args[0])
	if err != nil {
		return err
	}
	rc, err := e.openInput()
	if err != nil {
		return err
	}
	defer rc.Close()

	var n int
	if err := json.Select(json.NewParser(rc), expr, func(path string, v json.Value) error {
		n++
		_, err := fmt.Fprintln(e.stdout, path, v)
		return err
	}); err != nil {
		return err
	}
	e.log.Debug("selection complete", "expr", expr, "matches", n)
	return nil
}

func runGet(e *env, args []string) error {
	v, err := e.parseInput()
	if err != nil {
		return err
	}

	// Arguments that parse as integers are array offsets; others are keys.
	// A key that looks like an integer can be given as 'key.
	path := make([]any, len(args))
	for i, arg := range args {
		if key, ok := strings.CutPrefix(arg, "'"); ok {
			path[i] = key
		} else if n, err := strconv.Atoi(arg); err == nil {
			path[i] = n
		} else {
			path[i] = arg
		}
	}
	c := cursor.New(v).Down(path...)
	if err := c.Err(); err != nil {
		return err
	}
	return e.writeValue(c.Value())
}

func runConvert(e *env, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %q", args)
	}
	data, err := e.readInput()
	if err != nil {
		return err
	}

	var v json.Value
	switch e.opts.From {
	case "json":
		v, err = json.Parse(bytes.NewReader(data))
	case "yaml":
		v, err = yaml.Parse(data)
	case "cbor":
		v, err = cbor.Parse(data)
	default:
		return fmt.Errorf("unknown input format %q", e.opts.From)
	}
	if err != nil {
		return err
	}
	e.log.Debug("converting", "from", e.opts.From, "to", e.opts.To, "kind", v.Kind())

	switch e.opts.To {
	case "json":
		return e.writeValue(v)
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = e.stdout.Write(out)
		return err
	case "cbor":
		out, err := cbor.Marshal(v)
		if err != nil {
			return err
		}
		if e.opts.Diag {
			diag, err := cbor.Diagnose(out)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(e.stdout, diag)
			return err
		}
		_, err = e.stdout.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", e.opts.To)
	}
}
