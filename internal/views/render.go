package views

import (
	"fmt"
	"io"

	"github.com/Reaffith/quiz-builder/internal/models"
)

func RenderList(w io.Writer, v *ListView) {
	fmt.Fprintln(w, "All Quizzes")
	if len(v.Items) == 0 {
		fmt.Fprintln(w, "No quizzes yet. Create one!")
		return
	}

	for i, item := range v.Items {
		fmt.Fprintf(w, "%3d. %s (%s) %s\n", v.Offset+i+1, item.Title, plural(item.QuestionsCount, "question"), item.ID)
	}
	fmt.Fprintf(w, "Showing %d-%d of %d\n", v.Offset+1, v.Offset+len(v.Items), v.Total)
}

// RenderQuiz prints the read-only preview of a quiz with the correct
// answers marked.
func RenderQuiz(w io.Writer, quiz *models.Quiz) {
	fmt.Fprintln(w, quiz.Title)
	for _, q := range quiz.Questions {
		fmt.Fprintf(w, "\n#%d [%s] %s\n", q.Order+1, q.Type, q.Text)

		if q.Type == models.QuestionTypeInput {
			if q.CorrectAnswer.Kind == models.AnswerText && q.CorrectAnswer.Text != "" {
				fmt.Fprintf(w, "    Correct answer: %s\n", q.CorrectAnswer.Text)
			}
			continue
		}

		if len(q.Options) == 0 {
			fmt.Fprintln(w, "    No options defined")
			continue
		}
		for _, opt := range q.Options {
			fmt.Fprintf(w, "    %s %s\n", marker(q.Type, q.CorrectAnswer.Contains(opt.ID)), opt.Value)
		}
	}
}

func marker(questionType string, correct bool) string {
	switch {
	case questionType == models.QuestionTypeSingleOption && correct:
		return "(*)"
	case questionType == models.QuestionTypeSingleOption:
		return "( )"
	case correct:
		return "[x]"
	default:
		return "[ ]"
	}
}

func plural(n int64, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
