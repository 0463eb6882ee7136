package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/Reaffith/quiz-builder/internal/client"
	"github.com/Reaffith/quiz-builder/internal/config"

	"github.com/lmittmann/tint"
)

const usage = `quizctl talks to the quiz builder API.

Usage:
  quizctl home
  quizctl create -f draft.yaml
  quizctl list [-offset N] [-limit N]
  quizctl browse [-limit N]
  quizctl show <id>
  quizctl delete [-y] <id>
  quizctl export [-format json|yaml|csv] [-o file] <id>
`

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelWarn,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	cfg := config.LoadClient()
	api := client.New(cfg.APIURL, cfg.Timeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli{api: api, in: os.Stdin, out: os.Stdout, baseURL: cfg.APIURL}
	if err := app.run(ctx, os.Args[1:]); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

type cli struct {
	api     *client.Client
	in      io.Reader
	out     io.Writer
	baseURL string
}

func (a *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.home()
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "home":
		return a.home()
	case "create":
		return a.create(ctx, rest)
	case "list":
		return a.list(ctx, rest)
	case "browse":
		return a.browse(ctx, rest)
	case "show":
		return a.show(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "export":
		return a.export(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *cli) home() error {
	fmt.Fprintln(a.out, "Welcome to Quiz Builder")
	fmt.Fprintln(a.out, "Create, manage and preview your custom quizzes easily.")
	fmt.Fprintf(a.out, "API: %s\n\n", a.baseURL)
	fmt.Fprintln(a.out, "  quizctl create -f draft.yaml   Create New Quiz")
	fmt.Fprintln(a.out, "  quizctl browse                 View All Quizzes")
	return nil
}
