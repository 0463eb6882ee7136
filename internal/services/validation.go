package services

import (
	"strings"

	"github.com/Reaffith/quiz-builder/internal/models"
)

const maxTitleLength = 255

func validateQuiz(input CreateQuizInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return invalidf("title should not be empty")
	}
	if len([]rune(input.Title)) > maxTitleLength {
		return invalidf("title must be at most %d characters", maxTitleLength)
	}
	if len(input.Questions) == 0 {
		return invalidf("Quiz must have at least one question")
	}

	orders := make(map[int]int, len(input.Questions))
	for i, q := range input.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return invalidf("questions[%d]: text should not be empty", i)
		}
		if q.Order < 0 {
			return invalidf("questions[%d]: order must not be negative", i)
		}
		if prev, ok := orders[q.Order]; ok {
			return invalidf("questions[%d]: order %d is already used by questions[%d]", i, q.Order, prev)
		}
		orders[q.Order] = i

		if err := validateQuestionByType(q.Type, q.Options, q.CorrectAnswer); err != nil {
			return invalidf("questions[%d]: %s", i, err.Error())
		}
	}
	return nil
}

func validateQuestionByType(qType string, options []models.Option, answer models.CorrectAnswer) error {
	switch qType {
	case models.QuestionTypeInput:
		if len(options) > 0 {
			return invalidf("INPUT questions cannot have options")
		}
		if answer.Kind == models.AnswerChoices {
			return invalidf("correctAnswer of an INPUT question must be a string or null")
		}

	case models.QuestionTypeSingleOption:
		ids, err := optionIDs(options)
		if err != nil {
			return err
		}
		switch answer.Kind {
		case models.AnswerChoices:
			return invalidf("correctAnswer of a SINGLEOPTION question must be an option id or null")
		case models.AnswerText:
			if !ids[answer.Text] {
				return invalidf("correctAnswer %q does not match any option", answer.Text)
			}
		}

	case models.QuestionTypeMultipleOption:
		ids, err := optionIDs(options)
		if err != nil {
			return err
		}
		switch answer.Kind {
		case models.AnswerText:
			return invalidf("correctAnswer of a MULTIPLEOPTION question must be a list of option ids or null")
		case models.AnswerChoices:
			seen := make(map[string]bool, len(answer.Choices))
			for _, id := range answer.Choices {
				if !ids[id] {
					return invalidf("correctAnswer %q does not match any option", id)
				}
				if seen[id] {
					return invalidf("correctAnswer lists option %q twice", id)
				}
				seen[id] = true
			}
		}

	default:
		return invalidf("unknown question type: %q", qType)
	}
	return nil
}

func optionIDs(options []models.Option) (map[string]bool, error) {
	ids := make(map[string]bool, len(options))
	for i, o := range options {
		if strings.TrimSpace(o.ID) == "" {
			return nil, invalidf("options[%d]: id should not be empty", i)
		}
		if ids[o.ID] {
			return nil, invalidf("options[%d]: duplicate id %q", i, o.ID)
		}
		ids[o.ID] = true
	}
	return ids, nil
}
