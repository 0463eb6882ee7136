package authoring

import (
	"fmt"
	"os"

	"github.com/Reaffith/quiz-builder/internal/models"

	"gopkg.in/yaml.v3"
)

type draftFile struct {
	Title     string              `yaml:"title"`
	Questions []draftFileQuestion `yaml:"questions"`
}

type draftFileQuestion struct {
	Type          string               `yaml:"type"`
	Text          string               `yaml:"text"`
	Options       []models.Option      `yaml:"options"`
	CorrectAnswer models.CorrectAnswer `yaml:"correctAnswer"`
}

// LoadDraft reads a draft from a YAML file. Questions are numbered in file
// order, a missing type means INPUT and options without an id get one.
func LoadDraft(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	return ParseDraft(data)
}

func ParseDraft(data []byte) (*Draft, error) {
	var file draftFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse draft: %w", err)
	}

	d := &Draft{Title: file.Title}
	for i, fq := range file.Questions {
		q := QuestionDraft{
			Type:          fq.Type,
			Text:          fq.Text,
			CorrectAnswer: fq.CorrectAnswer,
			Order:         i,
		}
		if q.Type == "" {
			q.Type = models.QuestionTypeInput
		}
		if !models.IsQuestionType(q.Type) {
			return nil, fmt.Errorf("question %d: unknown type %q", i+1, q.Type)
		}
		for _, o := range fq.Options {
			if o.ID == "" {
				o.ID = newOptionID()
			}
			q.Options = append(q.Options, o)
		}
		d.Questions = append(d.Questions, q)
	}
	if len(d.Questions) == 0 {
		d.Questions = []QuestionDraft{newQuestion(0)}
	}
	return d, nil
}
