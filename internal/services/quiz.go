package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Reaffith/quiz-builder/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type QuestionInput struct {
	Type          string
	Text          string
	Options       []models.Option
	CorrectAnswer models.CorrectAnswer
	Order         int
}

type CreateQuizInput struct {
	Title     string
	Questions []QuestionInput
}

type QuizPage struct {
	Data    []models.QuizSummary `json:"data"`
	Total   int64                `json:"total"`
	Offset  int                  `json:"offset"`
	Limit   int                  `json:"limit"`
	HasMore bool                 `json:"hasMore"`
}

// CreateQuiz stores the quiz and all of its questions in one transaction.
func (s *QuizService) CreateQuiz(ctx context.Context, input CreateQuizInput) (*models.Quiz, error) {
	if err := validateQuiz(input); err != nil {
		return nil, err
	}

	quiz := models.Quiz{Title: input.Title}
	for _, q := range input.Questions {
		question := models.Question{
			ID:            uuid.New(),
			Type:          q.Type,
			Text:          q.Text,
			CorrectAnswer: q.CorrectAnswer,
			Order:         q.Order,
		}
		if q.Type != models.QuestionTypeInput {
			question.Options = datatypes.JSONSlice[models.Option](q.Options)
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&quiz).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	sortQuestions(quiz.Questions)
	return &quiz, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context, offset, limit int) (*QuizPage, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Quiz{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count quizzes: %w", err)
	}

	rows := []models.QuizSummary{}
	err := db.Model(&models.Quiz{}).
		Select("quizzes.id, quizzes.title, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id) AS questions_count").
		Order("quizzes.created_at DESC").
		Order("quizzes.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	return &QuizPage{
		Data:    rows,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
		HasMore: int64(offset+len(rows)) < total,
	}, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	quizID, err := uuid.Parse(id)
	if err != nil {
		return nil, quizNotFound(id)
	}

	var quiz models.Quiz
	err = s.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		First(&quiz, "id = ?", quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, quizNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz %s: %w", id, err)
	}
	return &quiz, nil
}

// DeleteQuiz removes the quiz together with its questions.
func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	quizID, err := uuid.Parse(id)
	if err != nil {
		return quizNotFound(id)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quiz models.Quiz
		if err := tx.Select("id").First(&quiz, "id = ?", quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return quizNotFound(id)
			}
			return fmt.Errorf("find quiz %s: %w", id, err)
		}

		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
			return fmt.Errorf("delete questions of quiz %s: %w", id, err)
		}

		result := tx.Delete(&models.Quiz{}, "id = ?", quizID)
		if result.Error != nil {
			return fmt.Errorf("delete quiz %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return quizNotFound(id)
		}
		return nil
	})
}

func sortQuestions(questions []models.Question) {
	sort.SliceStable(questions, func(a, b int) bool {
		return questions[a].Order < questions[b].Order
	})
}
