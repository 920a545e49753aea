package main

import (
	"log/slog"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

func run(args []string) {
	app := cli.App{
		Name:  "sortbench",
		Usage: "generate inputs, sort them, and measure the go-sorting algorithms",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"SORTBENCH_LOG_LEVEL"},
			},
		},
	}

	app.Commands = []*cli.Command{
		benchCmd,
		compareCmd,
		sortCmd,
	}

	app.RunAndExitOnError()
}

// newLogger builds the diagnostic logger. Results print to stdout; all
// logging goes to stderr so the output stays pipeable.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
