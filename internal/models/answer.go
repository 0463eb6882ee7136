package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerText
	AnswerChoices
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerText:
		return "text"
	case AnswerChoices:
		return "choices"
	default:
		return "none"
	}
}

// CorrectAnswer is the expected answer of a question. On the wire it is
// null, a string (INPUT text or SINGLEOPTION option id) or a list of option
// ids (MULTIPLEOPTION).
type CorrectAnswer struct {
	Kind    AnswerKind
	Text    string
	Choices []string
}

func NoAnswer() CorrectAnswer {
	return CorrectAnswer{}
}

func TextAnswer(text string) CorrectAnswer {
	return CorrectAnswer{Kind: AnswerText, Text: text}
}

func ChoicesAnswer(ids ...string) CorrectAnswer {
	if ids == nil {
		ids = []string{}
	}
	return CorrectAnswer{Kind: AnswerChoices, Choices: ids}
}

func (a CorrectAnswer) IsNone() bool {
	return a.Kind == AnswerNone
}

// Equal compares kind and payload; choice order matters.
func (a CorrectAnswer) Equal(b CorrectAnswer) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AnswerText:
		return a.Text == b.Text
	case AnswerChoices:
		if len(a.Choices) != len(b.Choices) {
			return false
		}
		for i := range a.Choices {
			if a.Choices[i] != b.Choices[i] {
				return false
			}
		}
	}
	return true
}

// Contains reports whether id is marked correct.
func (a CorrectAnswer) Contains(id string) bool {
	switch a.Kind {
	case AnswerText:
		return a.Text == id
	case AnswerChoices:
		for _, c := range a.Choices {
			if c == id {
				return true
			}
		}
	}
	return false
}

func (a CorrectAnswer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerText:
		return json.Marshal(a.Text)
	case AnswerChoices:
		choices := a.Choices
		if choices == nil {
			choices = []string{}
		}
		return json.Marshal(choices)
	default:
		return []byte("null"), nil
	}
}

var errAnswerShape = errors.New("correctAnswer must be null, a string or a list of strings")

func (a *CorrectAnswer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = NoAnswer()
		return nil
	}

	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return errAnswerShape
		}
		*a = TextAnswer(text)
	case '[':
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return errAnswerShape
		}
		*a = ChoicesAnswer(ids...)
	default:
		return errAnswerShape
	}
	return nil
}

// MarshalYAML and UnmarshalYAML keep export documents in the same shape as
// the JSON API.
func (a CorrectAnswer) MarshalYAML() (interface{}, error) {
	switch a.Kind {
	case AnswerText:
		return a.Text, nil
	case AnswerChoices:
		return a.Choices, nil
	default:
		return nil, nil
	}
}

func (a *CorrectAnswer) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*a = NoAnswer()
	case string:
		*a = TextAnswer(v)
	case []interface{}:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return errAnswerShape
			}
			ids = append(ids, s)
		}
		*a = ChoicesAnswer(ids...)
	case int, float64, bool:
		// unquoted scalars such as `correctAnswer: 4`
		var text string
		if err := unmarshal(&text); err != nil {
			return errAnswerShape
		}
		*a = TextAnswer(text)
	default:
		return errAnswerShape
	}
	return nil
}

// Value stores "no answer" as SQL NULL and everything else as JSON.
func (a CorrectAnswer) Value() (driver.Value, error) {
	if a.IsNone() {
		return nil, nil
	}
	data, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (a *CorrectAnswer) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*a = NoAnswer()
		return nil
	case []byte:
		return a.UnmarshalJSON(v)
	case string:
		return a.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("scan correct answer: unsupported type %T", value)
	}
}

func (CorrectAnswer) GormDataType() string {
	return "json"
}

func (CorrectAnswer) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	default:
		return "JSON"
	}
}
