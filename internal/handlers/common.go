package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Reaffith/quiz-builder/internal/models"
	"github.com/Reaffith/quiz-builder/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Type aliases so swag can resolve models in annotations.
type Quiz = models.Quiz
type Question = models.Question
type QuizPage = services.QuizPage
type ExportData = services.ExportData

// respondError maps service errors onto status codes. Store failures are
// logged and hidden from the client.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrQuizNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
