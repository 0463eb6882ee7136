package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Reaffith/quiz-builder/internal/client"
	"github.com/Reaffith/quiz-builder/internal/database/dbtest"
	"github.com/Reaffith/quiz-builder/internal/handlers"
	"github.com/Reaffith/quiz-builder/internal/ws"

	"github.com/gin-gonic/gin"
)

const draftYAML = `title: Capitals
questions:
  - text: Capital of Ukraine?
    correctAnswer: Kyiv
  - type: SINGLEOPTION
    text: Capital of Peru?
    options:
      - {id: lima, value: Lima}
      - {id: cusco, value: Cusco}
    correctAnswer: lima
`

func newTestCLI(t *testing.T, stdin string) (*cli, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(handlers.NewRouter(handlers.RouterConfig{
		DB:     dbtest.Open(t),
		Hub:    ws.NewHub(logger),
		Logger: logger,
	}))
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	return &cli{
		api:     client.New(srv.URL, 5*time.Second),
		in:      strings.NewReader(stdin),
		out:     out,
		baseURL: srv.URL,
	}, out
}

func writeDraft(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.yaml")
	if err := os.WriteFile(path, []byte(draftYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateListShow(t *testing.T) {
	ctx := context.Background()
	app, out := newTestCLI(t, "")

	if err := app.run(ctx, []string{"create", "-f", writeDraft(t)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out.String(), "Quiz created successfully!") {
		t.Fatalf("create output: %q", out.String())
	}
	if !strings.Contains(out.String(), "All Quizzes") || !strings.Contains(out.String(), "Capitals (2 questions)") {
		t.Errorf("create should show the list afterwards: %q", out.String())
	}

	out.Reset()
	if err := app.run(ctx, []string{"list"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out.String(), "Capitals (2 questions)") {
		t.Fatalf("list output: %q", out.String())
	}

	page, err := app.api.ListQuizzes(ctx, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	id := page.Data[0].ID.String()

	out.Reset()
	if err := app.run(ctx, []string{"show", id}); err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Correct answer: Kyiv", "(*) Lima", "( ) Cusco"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("show output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := app.run(ctx, []string{"export", "-format", "yaml", id}); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out.String(), "title: Capitals") {
		t.Errorf("export output: %q", out.String())
	}
}

func TestBrowseDelete(t *testing.T) {
	ctx := context.Background()
	app, out := newTestCLI(t, "d 1\ny\nq\n")

	if err := app.run(ctx, []string{"create", "-f", writeDraft(t)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := app.run(ctx, []string{"browse"}); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if !strings.Contains(out.String(), "No quizzes yet") {
		t.Errorf("quiz was not removed from the list:\n%s", out.String())
	}

	page, err := app.api.ListQuizzes(ctx, 0, 20)
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 0 {
		t.Errorf("expected no quizzes on the server, got %d", page.Total)
	}
}

func TestDeleteUnknownQuiz(t *testing.T) {
	app, _ := newTestCLI(t, "")
	err := app.run(context.Background(), []string{"delete", "-y", "6f1c2a8e-2b7d-4f4e-9a51-0f3c4b1d2e3f"})
	if !client.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	app, _ := newTestCLI(t, "")
	if err := app.run(context.Background(), []string{"frobnicate"}); err == nil {
		t.Error("expected error")
	}
}
