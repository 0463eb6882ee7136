package handlers

import (
	"log/slog"

	"github.com/Reaffith/quiz-builder/internal/middleware"
	"github.com/Reaffith/quiz-builder/internal/services"
	"github.com/Reaffith/quiz-builder/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB          *gorm.DB
	Hub         *ws.Hub
	Logger      *slog.Logger
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	RegisterValidators()

	quizService := services.NewQuizService(cfg.DB)

	quizHandler := NewQuizHandler(quizService, cfg.Hub, cfg.Logger)
	wsHandler := NewWSHandler(cfg.Hub, cfg.Logger)
	healthHandler := NewHealthHandler(cfg.DB, cfg.Logger)

	r := gin.New()
	r.Use(middleware.Recover(cfg.Logger), middleware.Logger(cfg.Logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/healthz", healthHandler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/quizzes", wsHandler.HandleQuizFeed)

	quizzes := r.Group("/quizzes")
	{
		quizzes.GET("", quizHandler.ListQuizzes)
		quizzes.POST("", quizHandler.CreateQuiz)
		quizzes.POST("/import", quizHandler.ImportQuiz)
		quizzes.GET("/:id", quizHandler.GetQuiz)
		quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
		quizzes.GET("/:id/export", quizHandler.ExportQuiz)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
