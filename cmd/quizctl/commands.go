package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Reaffith/quiz-builder/internal/authoring"
	"github.com/Reaffith/quiz-builder/internal/views"
)

func (a *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func oneID(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s needs exactly one quiz id", fs.Name())
	}
	return fs.Arg(0), nil
}

func (a *cli) create(ctx context.Context, args []string) error {
	fs := a.flags("create")
	file := fs.String("f", "", "draft YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("create needs -f draft.yaml")
	}

	draft, err := authoring.LoadDraft(*file)
	if err != nil {
		return err
	}
	req, err := draft.Request()
	if err != nil {
		return err
	}

	quiz, err := a.api.CreateQuiz(ctx, req)
	if err != nil {
		return fmt.Errorf("create quiz: %w", err)
	}
	fmt.Fprintf(a.out, "Quiz created successfully! %s (%d questions)\n\n", quiz.ID, len(quiz.Questions))

	v := views.NewListView(a.api, views.DefaultPageSize)
	if err := v.Load(ctx); err != nil {
		return fmt.Errorf("load quizzes: %w", err)
	}
	views.RenderList(a.out, v)
	return nil
}

func (a *cli) list(ctx context.Context, args []string) error {
	fs := a.flags("list")
	offset := fs.Int("offset", 0, "items to skip")
	limit := fs.Int("limit", views.DefaultPageSize, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := views.NewListView(a.api, *limit)
	v.Offset = max(0, *offset)
	if err := v.Load(ctx); err != nil {
		return fmt.Errorf("load quizzes: %w", err)
	}
	views.RenderList(a.out, v)
	return nil
}

func (a *cli) show(ctx context.Context, args []string) error {
	fs := a.flags("show")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := oneID(fs)
	if err != nil {
		return err
	}

	quiz, err := a.api.GetQuiz(ctx, id)
	if err != nil {
		return err
	}
	views.RenderQuiz(a.out, quiz)
	return nil
}

func (a *cli) delete(ctx context.Context, args []string) error {
	fs := a.flags("delete")
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := oneID(fs)
	if err != nil {
		return err
	}

	if !*yes && !a.confirm(bufio.NewScanner(a.in), "Are you sure you want to delete this quiz?") {
		return nil
	}
	if err := a.api.DeleteQuiz(ctx, id); err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	fmt.Fprintln(a.out, "Quiz deleted")
	return nil
}

func (a *cli) export(ctx context.Context, args []string) error {
	fs := a.flags("export")
	format := fs.String("format", "json", "json, yaml or csv")
	output := fs.String("o", "", "write to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := oneID(fs)
	if err != nil {
		return err
	}

	body, err := a.api.ExportQuiz(ctx, id, *format)
	if err != nil {
		return fmt.Errorf("export quiz: %w", err)
	}
	if *output == "" {
		_, err = a.out.Write(body)
		return err
	}
	return os.WriteFile(*output, body, 0o644)
}

// browse is the interactive list: page through quizzes, open or delete one.
func (a *cli) browse(ctx context.Context, args []string) error {
	fs := a.flags("browse")
	limit := fs.Int("limit", views.DefaultPageSize, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := views.NewListView(a.api, *limit)
	if err := v.Load(ctx); err != nil {
		return fmt.Errorf("load quizzes: %w", err)
	}

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprintln(a.out)
		views.RenderList(a.out, v)
		fmt.Fprint(a.out, "[n]ext [p]rev [o]pen <#> [d]elete <#> [r]eload [q]uit > ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "n", "next":
			if !v.HasNext() {
				fmt.Fprintln(a.out, "Already on the last page")
				continue
			}
			err = v.Next(ctx)
		case "p", "prev":
			if !v.HasPrev() {
				fmt.Fprintln(a.out, "Already on the first page")
				continue
			}
			err = v.Prev(ctx)
		case "r", "reload":
			err = v.Load(ctx)
		case "o", "open":
			var id string
			if id, err = pick(v, fields); err == nil {
				err = a.show(ctx, []string{id})
			}
		case "d", "delete":
			var id string
			if id, err = pick(v, fields); err == nil && a.confirm(scanner, "Are you sure you want to delete this quiz?") {
				if err = v.Delete(ctx, id); err != nil {
					err = fmt.Errorf("error deleting quiz: %w", err)
				}
			}
		case "q", "quit":
			return nil
		default:
			err = fmt.Errorf("unknown action %q", fields[0])
		}
		if err != nil {
			fmt.Fprintln(a.out, err)
		}
	}
}

// pick resolves the list number shown next to a quiz to its id.
func pick(v *views.ListView, fields []string) (string, error) {
	if len(fields) < 2 {
		return "", errors.New("which quiz? give its number")
	}
	n, err := strconv.Atoi(fields[1])
	idx := n - 1 - v.Offset
	if err != nil || idx < 0 || idx >= len(v.Items) {
		return "", fmt.Errorf("no quiz number %s on this page", fields[1])
	}
	return v.Items[idx].ID.String(), nil
}

func (a *cli) confirm(scanner *bufio.Scanner, question string) bool {
	fmt.Fprintf(a.out, "%s [y/N] ", question)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
