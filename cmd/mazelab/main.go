// Command mazelab generates mazes, solves them with BFS, Dijkstra or A*,
// compares the engines and plays the chase game in the terminal.
//
// Usage:
//
//	mazelab <command> [flags]
//
// Settings come from MAZELAB_* environment variables, optionally loaded from
// a .env file, and can be overridden by flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

type command struct {
	summary string
	run     func(e *env, args []string) error
}

var commandOrder = []string{"generate", "solve", "compare", "export", "show", "play", "info"}

var commands = map[string]command{
	"generate": {"print a new maze", cmdGenerate},
	"solve":    {"solve a maze with -algo bfs|dijkstra|astar", cmdSolve},
	"compare":  {"run every engine on the same maze", cmdCompare},
	"export":   {"write a maze to -out as msgpack (zstd by default)", cmdExport},
	"show":     {"print a maze read from -in", cmdShow},
	"play":     {"play the chase game with w/a/s/d moves", cmdPlay},
	"info":     {"describe the algorithms", cmdInfo},
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

// env is the per-invocation state shared by commands.
type env struct {
	cfg    Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "mazelab: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}

	files := []string{".env"}
	if f := getenv(envFile); f != "" {
		files = []string{f}
	}
	cfg, err := loadConfig(getenv, files...)
	if err != nil {
		fmt.Fprintln(stderr, "mazelab:", err)
		return exitUsage
	}

	e := &env{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}
	err = cmd.run(e, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, errInvalidConfig):
		fmt.Fprintln(stderr, "mazelab:", err)
		return exitUsage
	default:
		if e.logger != nil {
			e.logger.Error("command failed", slog.String("command", args[0]), slog.String("error", err.Error()))
		} else {
			fmt.Fprintln(stderr, "mazelab:", err)
		}
		return exitError
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: mazelab <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "environment: %s %s %s %s %s %s\n", envWidth, envHeight, envSeed, envLogLevel, envDifficulty, envFile)
}

// flags returns a FlagSet whose defaults are the loaded config.
func (e *env) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.IntVar(&e.cfg.Width, "width", e.cfg.Width, "maze width, odd, 5..101")
	fs.IntVar(&e.cfg.Height, "height", e.cfg.Height, "maze height, odd, 5..101")
	fs.Int64Var(&e.cfg.Seed, "seed", e.cfg.Seed, "generator seed, 0 for the default")
	fs.StringVar(&e.cfg.LogLevel, "log-level", e.cfg.LogLevel, "debug, info, warn or error")
	return fs
}

// parse parses flags, validates the config and builds the logger.
func (e *env) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	e.logger = slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: e.cfg.SlogLevel()}))
	return nil
}
