// Package authoring holds the in-memory quiz form used before a quiz is
// submitted to the service.
package authoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Reaffith/quiz-builder/internal/client"
	"github.com/Reaffith/quiz-builder/internal/models"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired    = errors.New("Quiz title is required")
	ErrQuestionText     = errors.New("All questions must have text")
	ErrLastQuestion     = errors.New("a quiz keeps at least one question")
	ErrNoSuchQuestion   = errors.New("no such question")
	ErrNoSuchOption     = errors.New("no such option")
	ErrNotInputQuestion = errors.New("only INPUT questions take a typed answer")
)

type QuestionDraft struct {
	Type          string
	Text          string
	Options       []models.Option
	CorrectAnswer models.CorrectAnswer
	Order         int
}

type Draft struct {
	Title     string
	Questions []QuestionDraft
}

// NewDraft starts a form with a single empty INPUT question.
func NewDraft() *Draft {
	return &Draft{Questions: []QuestionDraft{newQuestion(0)}}
}

func newQuestion(order int) QuestionDraft {
	return QuestionDraft{Type: models.QuestionTypeInput, Order: order}
}

func newOptionID() string {
	return "opt-" + uuid.NewString()[:8]
}

func (d *Draft) question(i int) (*QuestionDraft, error) {
	if i < 0 || i >= len(d.Questions) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchQuestion, i)
	}
	return &d.Questions[i], nil
}

// AddQuestion appends an empty INPUT question and returns its index.
func (d *Draft) AddQuestion() int {
	d.Questions = append(d.Questions, newQuestion(len(d.Questions)))
	return len(d.Questions) - 1
}

func (d *Draft) RemoveQuestion(i int) error {
	if _, err := d.question(i); err != nil {
		return err
	}
	if len(d.Questions) == 1 {
		return ErrLastQuestion
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
	for j := range d.Questions {
		d.Questions[j].Order = j
	}
	return nil
}

// SetType changes the question type. Options are kept so switching back
// does not lose them, but the answer is cleared since its shape differs.
func (d *Draft) SetType(i int, typ string) error {
	q, err := d.question(i)
	if err != nil {
		return err
	}
	if !models.IsQuestionType(typ) {
		return fmt.Errorf("unknown question type %q", typ)
	}
	if q.Type != typ {
		q.Type = typ
		q.CorrectAnswer = models.NoAnswer()
	}
	return nil
}

func (d *Draft) SetText(i int, text string) error {
	q, err := d.question(i)
	if err != nil {
		return err
	}
	q.Text = text
	return nil
}

// AddOption appends an empty option and returns its generated id.
func (d *Draft) AddOption(i int) (string, error) {
	q, err := d.question(i)
	if err != nil {
		return "", err
	}
	id := newOptionID()
	q.Options = append(q.Options, models.Option{ID: id})
	return id, nil
}

func (d *Draft) SetOptionValue(i, opt int, value string) error {
	q, err := d.question(i)
	if err != nil {
		return err
	}
	if opt < 0 || opt >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrNoSuchOption, opt)
	}
	q.Options[opt].Value = value
	return nil
}

// RemoveOption deletes the option and drops it from the correct answer.
func (d *Draft) RemoveOption(i, opt int) error {
	q, err := d.question(i)
	if err != nil {
		return err
	}
	if opt < 0 || opt >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrNoSuchOption, opt)
	}
	id := q.Options[opt].ID
	q.Options = append(q.Options[:opt], q.Options[opt+1:]...)

	switch q.CorrectAnswer.Kind {
	case models.AnswerText:
		if q.Type != models.QuestionTypeInput && q.CorrectAnswer.Text == id {
			q.CorrectAnswer = models.NoAnswer()
		}
	case models.AnswerChoices:
		q.CorrectAnswer = withoutChoice(q.CorrectAnswer, id)
	}
	return nil
}

// ToggleCorrect marks or unmarks an option as correct. A single choice
// question holds at most one selection, a multiple choice one collects
// them and falls back to no answer when the last one is cleared. INPUT
// questions ignore it.
func (d *Draft) ToggleCorrect(i int, optionID string) error {
	q, err := d.question(i)
	if err != nil {
		return err
	}
	if q.Type == models.QuestionTypeInput {
		return nil
	}
	if !hasOption(q.Options, optionID) {
		return fmt.Errorf("%w: %s", ErrNoSuchOption, optionID)
	}

	switch q.Type {
	case models.QuestionTypeSingleOption:
		if q.CorrectAnswer.Kind == models.AnswerText && q.CorrectAnswer.Text == optionID {
			q.CorrectAnswer = models.NoAnswer()
		} else {
			q.CorrectAnswer = models.TextAnswer(optionID)
		}
	case models.QuestionTypeMultipleOption:
		if q.CorrectAnswer.Contains(optionID) {
			q.CorrectAnswer = withoutChoice(q.CorrectAnswer, optionID)
		} else {
			ids := append(append([]string{}, q.CorrectAnswer.Choices...), optionID)
			q.CorrectAnswer = models.ChoicesAnswer(ids...)
		}
	}
	return nil
}

// SetInputAnswer sets the expected text of an INPUT question. An empty
// string clears it.
func (d *Draft) SetInputAnswer(i int, text string) error {
	q, err := d.question(i)
	if err != nil {
		return err
	}
	if q.Type != models.QuestionTypeInput {
		return ErrNotInputQuestion
	}
	if text == "" {
		q.CorrectAnswer = models.NoAnswer()
		return nil
	}
	q.CorrectAnswer = models.TextAnswer(text)
	return nil
}

func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	for _, q := range d.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return ErrQuestionText
		}
	}
	return nil
}

// Request validates the draft and builds the create payload.
func (d *Draft) Request() (client.CreateQuizRequest, error) {
	if err := d.Validate(); err != nil {
		return client.CreateQuizRequest{}, err
	}

	req := client.CreateQuizRequest{Title: d.Title}
	for _, q := range d.Questions {
		cq := client.CreateQuestion{
			Type:          q.Type,
			Text:          strings.TrimSpace(q.Text),
			CorrectAnswer: q.CorrectAnswer,
			Order:         q.Order,
		}
		if q.Type != models.QuestionTypeInput {
			cq.Options = make([]client.CreateOption, 0, len(q.Options))
			for _, o := range q.Options {
				cq.Options = append(cq.Options, client.CreateOption{ID: o.ID, Value: o.Value})
			}
		}
		req.Questions = append(req.Questions, cq)
	}
	return req, nil
}

func hasOption(options []models.Option, id string) bool {
	for _, o := range options {
		if o.ID == id {
			return true
		}
	}
	return false
}

func withoutChoice(answer models.CorrectAnswer, id string) models.CorrectAnswer {
	var ids []string
	for _, c := range answer.Choices {
		if c != id {
			ids = append(ids, c)
		}
	}
	if len(ids) == 0 {
		return models.NoAnswer()
	}
	return models.ChoicesAnswer(ids...)
}
