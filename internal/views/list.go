// Package views holds the client side state and text rendering of the quiz
// list and quiz preview.
package views

import (
	"context"

	"github.com/Reaffith/quiz-builder/internal/client"
	"github.com/Reaffith/quiz-builder/internal/models"
)

const DefaultPageSize = 20

// QuizAPI is the part of the service the list view talks to.
type QuizAPI interface {
	ListQuizzes(ctx context.Context, offset, limit int) (*client.QuizPage, error)
	DeleteQuiz(ctx context.Context, id string) error
}

// ListView is an offset paginated window over the quiz list.
type ListView struct {
	api    QuizAPI
	Limit  int
	Offset int
	Items  []models.QuizSummary
	Total  int64
}

func NewListView(api QuizAPI, limit int) *ListView {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return &ListView{api: api, Limit: limit}
}

// Load fetches the current page. On error the previous items stay.
func (v *ListView) Load(ctx context.Context) error {
	page, err := v.api.ListQuizzes(ctx, v.Offset, v.Limit)
	if err != nil {
		return err
	}
	v.Items = page.Data
	v.Total = page.Total
	return nil
}

func (v *ListView) HasNext() bool {
	return int64(v.Offset+v.Limit) < v.Total
}

func (v *ListView) HasPrev() bool {
	return v.Offset > 0
}

func (v *ListView) Next(ctx context.Context) error {
	if !v.HasNext() {
		return nil
	}
	return v.moveTo(ctx, v.Offset+v.Limit)
}

func (v *ListView) Prev(ctx context.Context) error {
	if !v.HasPrev() {
		return nil
	}
	return v.moveTo(ctx, max(0, v.Offset-v.Limit))
}

func (v *ListView) moveTo(ctx context.Context, offset int) error {
	prev := v.Offset
	v.Offset = offset
	if err := v.Load(ctx); err != nil {
		v.Offset = prev
		return err
	}
	return nil
}

// Delete removes the quiz on the server and then from the current page.
// When that empties a page other than the first, the view steps back one
// page and reloads.
func (v *ListView) Delete(ctx context.Context, id string) error {
	if err := v.api.DeleteQuiz(ctx, id); err != nil {
		return err
	}

	items := v.Items[:0:0]
	for _, item := range v.Items {
		if item.ID.String() != id {
			items = append(items, item)
		}
	}
	if len(items) < len(v.Items) && v.Total > 0 {
		v.Total--
	}
	v.Items = items

	if len(v.Items) == 0 && v.Offset > 0 {
		return v.moveTo(ctx, max(0, v.Offset-v.Limit))
	}
	return nil
}
