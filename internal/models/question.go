package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeInput          = "INPUT"
	QuestionTypeSingleOption   = "SINGLEOPTION"
	QuestionTypeMultipleOption = "MULTIPLEOPTION"
)

var QuestionTypes = []string{
	QuestionTypeInput,
	QuestionTypeSingleOption,
	QuestionTypeMultipleOption,
}

func IsQuestionType(t string) bool {
	for _, known := range QuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Question struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID        uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_question_quiz_order" json:"quizId"`
	Type          string                      `gorm:"size:20;not null" json:"type"`
	Text          string                      `gorm:"type:text;not null" json:"text"`
	Options       datatypes.JSONSlice[Option] `json:"options"`
	CorrectAnswer CorrectAnswer               `json:"correctAnswer"`
	Order         int                         `gorm:"column:order_num;not null;uniqueIndex:idx_question_quiz_order" json:"order"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
