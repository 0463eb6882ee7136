package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Reaffith/quiz-builder/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", time.Second)
}

func TestCreateQuizSendsPayload(t *testing.T) {
	var got CreateQuizRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/quizzes" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"6f1c2a8e-2b7d-4f4e-9a51-0f3c4b1d2e3f","title":"T","questions":[{"type":"INPUT","text":"Q","options":null,"correctAnswer":"A","order":0}]}`)
	})

	quiz, err := c.CreateQuiz(context.Background(), CreateQuizRequest{
		Title: "T",
		Questions: []CreateQuestion{
			{Type: models.QuestionTypeInput, Text: "Q", CorrectAnswer: models.TextAnswer("A")},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if got.Title != "T" || len(got.Questions) != 1 || got.Questions[0].CorrectAnswer.Text != "A" {
		t.Errorf("server received %+v", got)
	}
	if quiz.Title != "T" || len(quiz.Questions) != 1 {
		t.Errorf("quiz = %+v", quiz)
	}
	if quiz.Questions[0].CorrectAnswer.Kind != models.AnswerText {
		t.Errorf("answer kind = %v", quiz.Questions[0].CorrectAnswer.Kind)
	}
}

func TestListQuizzesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") != "20" || r.URL.Query().Get("limit") != "10" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		io.WriteString(w, `{"data":[{"id":"6f1c2a8e-2b7d-4f4e-9a51-0f3c4b1d2e3f","title":"A","questionsCount":3}],"total":21,"offset":20,"limit":10,"hasMore":false}`)
	})

	page, err := c.ListQuizzes(context.Background(), 20, 10)
	if err != nil {
		t.Fatalf("ListQuizzes: %v", err)
	}
	if page.Total != 21 || len(page.Data) != 1 || page.Data[0].QuestionsCount != 3 {
		t.Errorf("page = %+v", page)
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"json error field", http.StatusNotFound, `{"error":"Quiz with ID x not found"}`, "Quiz with ID x not found"},
		{"plain body", http.StatusBadGateway, "upstream down\n", "upstream down"},
		{"json without error", http.StatusInternalServerError, `{"detail":"boom"}`, `{"detail":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.GetQuiz(context.Background(), "x")
			apiErr, ok := err.(*APIError)
			if !ok {
				t.Fatalf("expected *APIError, got %T (%v)", err, err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Message != tt.message {
				t.Errorf("got %d %q", apiErr.StatusCode, apiErr.Message)
			}
		})
	}
}

func TestDeleteQuiz(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodDelete || r.URL.Path != "/quizzes/abc" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if calls > 1 {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":"Quiz with ID abc not found"}`)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeleteQuiz(context.Background(), "abc"); err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}
	if err := c.DeleteQuiz(context.Background(), "abc"); !IsNotFound(err) {
		t.Errorf("second delete: %v", err)
	}
}

func TestExportQuiz(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quizzes/abc/export" || r.URL.Query().Get("format") != "csv" {
			t.Errorf("unexpected request %s", r.URL)
		}
		io.WriteString(w, "type,text,correct\n")
	})

	body, err := c.ExportQuiz(context.Background(), "abc", "csv")
	if err != nil {
		t.Fatalf("ExportQuiz: %v", err)
	}
	if string(body) != "type,text,correct\n" {
		t.Errorf("body = %q", body)
	}
}
