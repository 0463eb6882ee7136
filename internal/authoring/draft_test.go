package authoring

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Reaffith/quiz-builder/internal/models"
)

func TestNewDraftHasOneInputQuestion(t *testing.T) {
	d := NewDraft()
	if len(d.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(d.Questions))
	}
	q := d.Questions[0]
	if q.Type != models.QuestionTypeInput || q.Order != 0 || !q.CorrectAnswer.IsNone() {
		t.Errorf("unexpected first question %+v", q)
	}
}

func TestRemoveQuestionRenumbers(t *testing.T) {
	d := NewDraft()
	d.AddQuestion()
	d.AddQuestion()
	d.SetText(0, "first")
	d.SetText(1, "second")
	d.SetText(2, "third")

	if err := d.RemoveQuestion(1); err != nil {
		t.Fatalf("RemoveQuestion: %v", err)
	}
	if len(d.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(d.Questions))
	}
	for i, want := range []string{"first", "third"} {
		if d.Questions[i].Text != want || d.Questions[i].Order != i {
			t.Errorf("questions[%d] = %q order %d", i, d.Questions[i].Text, d.Questions[i].Order)
		}
	}
}

func TestRemoveLastQuestionRefused(t *testing.T) {
	d := NewDraft()
	if err := d.RemoveQuestion(0); !errors.Is(err, ErrLastQuestion) {
		t.Errorf("expected ErrLastQuestion, got %v", err)
	}
	if err := d.RemoveQuestion(3); !errors.Is(err, ErrNoSuchQuestion) {
		t.Errorf("expected ErrNoSuchQuestion, got %v", err)
	}
	if len(d.Questions) != 1 {
		t.Errorf("question was removed")
	}
}

func TestToggleCorrectSingle(t *testing.T) {
	d := NewDraft()
	d.SetType(0, models.QuestionTypeSingleOption)
	a, _ := d.AddOption(0)
	b, _ := d.AddOption(0)

	d.ToggleCorrect(0, a)
	if got := d.Questions[0].CorrectAnswer; !got.Equal(models.TextAnswer(a)) {
		t.Fatalf("after selecting a: %+v", got)
	}
	d.ToggleCorrect(0, b)
	if got := d.Questions[0].CorrectAnswer; !got.Equal(models.TextAnswer(b)) {
		t.Fatalf("after selecting b: %+v", got)
	}
	d.ToggleCorrect(0, b)
	if !d.Questions[0].CorrectAnswer.IsNone() {
		t.Errorf("deselecting should clear the answer")
	}
	if err := d.ToggleCorrect(0, "missing"); !errors.Is(err, ErrNoSuchOption) {
		t.Errorf("expected ErrNoSuchOption, got %v", err)
	}
}

func TestToggleCorrectMultiple(t *testing.T) {
	d := NewDraft()
	d.SetType(0, models.QuestionTypeMultipleOption)
	a, _ := d.AddOption(0)
	b, _ := d.AddOption(0)

	d.ToggleCorrect(0, a)
	d.ToggleCorrect(0, b)
	if got := d.Questions[0].CorrectAnswer; !got.Equal(models.ChoicesAnswer(a, b)) {
		t.Fatalf("after selecting both: %+v", got)
	}
	d.ToggleCorrect(0, a)
	if got := d.Questions[0].CorrectAnswer; !got.Equal(models.ChoicesAnswer(b)) {
		t.Fatalf("after clearing a: %+v", got)
	}
	d.ToggleCorrect(0, b)
	if !d.Questions[0].CorrectAnswer.IsNone() {
		t.Errorf("empty selection should become no answer, got %+v", d.Questions[0].CorrectAnswer)
	}
}

func TestToggleCorrectIgnoredForInput(t *testing.T) {
	d := NewDraft()
	id, _ := d.AddOption(0)
	if err := d.ToggleCorrect(0, id); err != nil {
		t.Fatalf("ToggleCorrect: %v", err)
	}
	if !d.Questions[0].CorrectAnswer.IsNone() {
		t.Errorf("INPUT question should ignore toggles")
	}
}

func TestRemoveOptionDropsAnswer(t *testing.T) {
	d := NewDraft()
	d.SetType(0, models.QuestionTypeMultipleOption)
	a, _ := d.AddOption(0)
	b, _ := d.AddOption(0)
	d.ToggleCorrect(0, a)
	d.ToggleCorrect(0, b)

	if err := d.RemoveOption(0, 0); err != nil {
		t.Fatalf("RemoveOption: %v", err)
	}
	q := d.Questions[0]
	if len(q.Options) != 1 || q.Options[0].ID != b {
		t.Errorf("options = %+v", q.Options)
	}
	if !q.CorrectAnswer.Equal(models.ChoicesAnswer(b)) {
		t.Errorf("answer = %+v", q.CorrectAnswer)
	}
}

func TestSetTypeClearsAnswer(t *testing.T) {
	d := NewDraft()
	d.SetInputAnswer(0, "Kyiv")
	if err := d.SetType(0, models.QuestionTypeSingleOption); err != nil {
		t.Fatalf("SetType: %v", err)
	}
	if !d.Questions[0].CorrectAnswer.IsNone() {
		t.Errorf("answer should be cleared on type change")
	}
	if err := d.SetType(0, "ESSAY"); err == nil {
		t.Errorf("expected error for unknown type")
	}
	if err := d.SetInputAnswer(0, "x"); !errors.Is(err, ErrNotInputQuestion) {
		t.Errorf("expected ErrNotInputQuestion, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	d := NewDraft()
	d.SetText(0, "Q")
	if err := d.Validate(); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}

	d.Title = "Quiz"
	d.AddQuestion()
	d.SetText(1, "   ")
	if err := d.Validate(); !errors.Is(err, ErrQuestionText) {
		t.Errorf("expected ErrQuestionText, got %v", err)
	}

	d.SetText(1, "Q2")
	if err := d.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRequest(t *testing.T) {
	d := NewDraft()
	d.Title = "Capitals"
	d.SetText(0, "  Capital of Ukraine?  ")
	d.AddOption(0)
	d.SetInputAnswer(0, "Kyiv")

	i := d.AddQuestion()
	d.SetType(i, models.QuestionTypeSingleOption)
	d.SetText(i, "Capital of Peru?")
	lima, _ := d.AddOption(i)
	d.SetOptionValue(i, 0, "Lima")
	d.ToggleCorrect(i, lima)

	req, err := d.Request()
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if req.Title != "Capitals" || len(req.Questions) != 2 {
		t.Fatalf("request = %+v", req)
	}

	first := req.Questions[0]
	if first.Text != "Capital of Ukraine?" {
		t.Errorf("text not trimmed: %q", first.Text)
	}
	if first.Options != nil {
		t.Errorf("INPUT options should be nil, got %+v", first.Options)
	}
	if !first.CorrectAnswer.Equal(models.TextAnswer("Kyiv")) {
		t.Errorf("first answer = %+v", first.CorrectAnswer)
	}

	second := req.Questions[1]
	if second.Order != 1 || len(second.Options) != 1 || second.Options[0].Value != "Lima" {
		t.Errorf("second = %+v", second)
	}
	if !second.CorrectAnswer.Equal(models.TextAnswer(lima)) {
		t.Errorf("second answer = %+v", second.CorrectAnswer)
	}
}

func TestLoadDraft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.yaml")
	content := `title: Capitals
questions:
  - text: How many continents?
    correctAnswer: 7
  - type: MULTIPLEOPTION
    text: Pick European capitals
    options:
      - {id: kyiv, value: Kyiv}
      - {id: lima, value: Lima}
      - {value: Oslo}
    correctAnswer: [kyiv]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadDraft(path)
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if d.Title != "Capitals" || len(d.Questions) != 2 {
		t.Fatalf("draft = %+v", d)
	}

	first := d.Questions[0]
	if first.Type != models.QuestionTypeInput || !first.CorrectAnswer.Equal(models.TextAnswer("7")) {
		t.Errorf("first = %+v", first)
	}

	second := d.Questions[1]
	if second.Order != 1 || len(second.Options) != 3 {
		t.Fatalf("second = %+v", second)
	}
	if second.Options[2].ID == "" {
		t.Errorf("missing option id was not generated")
	}
	if !second.CorrectAnswer.Equal(models.ChoicesAnswer("kyiv")) {
		t.Errorf("second answer = %+v", second.CorrectAnswer)
	}
}

func TestParseDraftRejectsUnknownType(t *testing.T) {
	_, err := ParseDraft([]byte("title: T\nquestions:\n  - type: ESSAY\n    text: Q\n"))
	if err == nil {
		t.Fatal("expected error")
	}
}
