package services

import (
	"context"

	"github.com/Reaffith/quiz-builder/internal/models"
)

type ExportQuestion struct {
	Type          string               `json:"type" yaml:"type"`
	Text          string               `json:"text" yaml:"text"`
	Options       []models.Option      `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer models.CorrectAnswer `json:"correctAnswer" yaml:"correctAnswer"`
}

// ExportData is a quiz without ids or timestamps. Question order is the
// position in Questions.
type ExportData struct {
	Title     string           `json:"title" yaml:"title"`
	Questions []ExportQuestion `json:"questions" yaml:"questions"`
}

func (s *QuizService) ExportQuiz(ctx context.Context, id string) (*ExportData, error) {
	quiz, err := s.GetQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	data := ExportData{Title: quiz.Title}
	for _, q := range quiz.Questions {
		data.Questions = append(data.Questions, ExportQuestion{
			Type:          q.Type,
			Text:          q.Text,
			Options:       []models.Option(q.Options),
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return &data, nil
}

// ImportQuiz creates a new quiz from an export document.
func (s *QuizService) ImportQuiz(ctx context.Context, data ExportData) (*models.Quiz, error) {
	input := CreateQuizInput{Title: data.Title}
	for i, q := range data.Questions {
		input.Questions = append(input.Questions, QuestionInput{
			Type:          q.Type,
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Order:         i,
		})
	}
	return s.CreateQuiz(ctx, input)
}
