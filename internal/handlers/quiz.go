package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Reaffith/quiz-builder/internal/models"
	"github.com/Reaffith/quiz-builder/internal/services"
	"github.com/Reaffith/quiz-builder/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
	hub         *ws.Hub
	logger      *slog.Logger
}

func NewQuizHandler(quizService *services.QuizService, hub *ws.Hub, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{quizService: quizService, hub: hub, logger: logger}
}

type OptionRequest struct {
	ID    string `json:"id" binding:"required" example:"opt-1"`
	Value string `json:"value" example:"Kyiv"`
}

type CreateQuestionRequest struct {
	Type          string               `json:"type" binding:"required,questiontype" example:"SINGLEOPTION"`
	Text          string               `json:"text" binding:"required" example:"What is the capital of Ukraine?"`
	Options       []OptionRequest      `json:"options" binding:"omitempty,dive"`
	CorrectAnswer models.CorrectAnswer `json:"correctAnswer" swaggertype:"string" example:"opt-1"`
	Order         *int                 `json:"order" binding:"required,min=0" example:"0"`
}

type CreateQuizRequest struct {
	Title     string                  `json:"title" binding:"required,max=255" example:"Ukrainian History Basics"`
	Questions []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

type ListQuizzesQuery struct {
	Offset int `form:"offset" binding:"min=0"`
	Limit  int `form:"limit" binding:"min=0,max=100"`
}

func (r CreateQuizRequest) toInput() services.CreateQuizInput {
	input := services.CreateQuizInput{Title: r.Title}
	for _, q := range r.Questions {
		var options []models.Option
		for _, o := range q.Options {
			options = append(options, models.Option{ID: o.ID, Value: o.Value})
		}
		input.Questions = append(input.Questions, services.QuestionInput{
			Type:          q.Type,
			Text:          q.Text,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Order:         *q.Order,
		})
	}
	return input
}

// ListQuizzes godoc
// @Summary      List quizzes
// @Description  Newest first, with question counts instead of questions
// @Tags         quizzes
// @Produce      json
// @Param        offset query int false "Items to skip" default(0)
// @Param        limit  query int false "Page size" default(20)
// @Success      200 {object} QuizPage
// @Failure      400 {object} ErrorResponse
// @Router       /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	var query ListQuizzesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingMessage(err)})
		return
	}

	page, err := h.quizService.ListQuizzes(c.Request.Context(), query.Offset, query.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz together with its questions
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingMessage(err)})
		return
	}

	quiz, err := h.quizService.CreateQuiz(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.announceCreated(quiz)
	c.JSON(http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  Get a quiz with its questions ordered by order
// @Tags         quizzes
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Delete a quiz and all its questions
// @Tags         quizzes
// @Param        id path string true "Quiz ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id := c.Param("id")
	if err := h.quizService.DeleteQuiz(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.hub.Broadcast(ws.WSMessage{Type: ws.EventQuizDeleted, Data: gin.H{"id": id}})
	c.Status(http.StatusNoContent)
}

func (h *QuizHandler) announceCreated(quiz *models.Quiz) {
	h.hub.Broadcast(ws.WSMessage{
		Type: ws.EventQuizCreated,
		Data: models.QuizSummary{
			ID:             quiz.ID,
			Title:          quiz.Title,
			QuestionsCount: int64(len(quiz.Questions)),
		},
	})
}
