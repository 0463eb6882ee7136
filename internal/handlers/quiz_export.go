package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Reaffith/quiz-builder/internal/models"
	"github.com/Reaffith/quiz-builder/internal/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

const maxImportSize = 1 << 20

// ExportQuiz godoc
// @Summary      Export a quiz
// @Description  Download a quiz as json, yaml or csv
// @Tags         quizzes
// @Produce      json
// @Param        id path string true "Quiz ID"
// @Param        format query string false "json, yaml or csv" default(json)
// @Success      200 {object} ExportData
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id}/export [get]
func (h *QuizHandler) ExportQuiz(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "yaml" && format != "csv" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be json, yaml or csv"})
		return
	}

	data, err := h.quizService.ExportQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.%s\"", exportFilename(data.Title), format))

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := writeCSV(c.Writer, data); err != nil {
			h.logger.Error("csv export failed", "error", err)
		}
	case "yaml":
		c.YAML(http.StatusOK, data)
	default:
		c.JSON(http.StatusOK, data)
	}
}

// ImportQuiz godoc
// @Summary      Import a quiz
// @Description  Create a new quiz from an exported json, yaml or csv file
// @Tags         quizzes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Export file"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Router       /quizzes/import [post]
func (h *QuizHandler) ImportQuiz(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxImportSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
		return
	}
	if len(body) > maxImportSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large"})
		return
	}

	var data services.ExportData
	title := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		data, err = parseCSV(body, title)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(body, &data); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid YAML: " + err.Error()})
			return
		}
	default:
		if err := json.Unmarshal(body, &data); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
			return
		}
	}

	quiz, err := h.quizService.ImportQuiz(c.Request.Context(), data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.announceCreated(quiz)
	c.JSON(http.StatusCreated, quiz)
}

func exportFilename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ' ':
			return '_'
		case '"', '/', '\\':
			return -1
		}
		return r
	}, title)
	if name == "" {
		return "quiz"
	}
	return name
}

// CSV layout: one row per question with columns type, text, answer, correct,
// options and option1..optionN. answer is none, text or choices. correct
// holds the answer text for INPUT and 1-based option positions separated by
// ';' otherwise. options is the number of option cells that belong to the
// row, so blank option values survive a round trip. The title travels as the
// file name.
const (
	answerNone    = "none"
	answerText    = "text"
	answerChoices = "choices"
)

var csvHeader = []string{"type", "text", "answer", "correct", "options"}

func writeCSV(out io.Writer, data *services.ExportData) error {
	maxOptions := 1
	for _, q := range data.Questions {
		maxOptions = max(maxOptions, len(q.Options))
	}

	header := append([]string{}, csvHeader...)
	for i := 1; i <= maxOptions; i++ {
		header = append(header, "option"+strconv.Itoa(i))
	}

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, q := range data.Questions {
		row := make([]string, len(header))
		row[0] = q.Type
		row[1] = q.Text
		row[2], row[3] = answerColumns(q)
		row[4] = strconv.Itoa(len(q.Options))
		for i, o := range q.Options {
			row[len(csvHeader)+i] = o.Value
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func answerColumns(q services.ExportQuestion) (kind, correct string) {
	switch q.CorrectAnswer.Kind {
	case models.AnswerNone:
		return answerNone, ""
	case models.AnswerText:
		if q.Type == models.QuestionTypeInput {
			return answerText, q.CorrectAnswer.Text
		}
		kind = answerText
	default:
		kind = answerChoices
	}

	var positions []string
	for i, o := range q.Options {
		if q.CorrectAnswer.Contains(o.ID) {
			positions = append(positions, strconv.Itoa(i+1))
		}
	}
	return kind, strings.Join(positions, ";")
}

// csvColumns locates the columns of an import file by header name. Files
// without answer and options columns use the older layout, where trailing
// empty option cells are padding.
type csvColumns struct {
	typ, text, correct int
	answer, count      int
	options            []int
}

func readCSVHeader(header []string) (csvColumns, error) {
	cols := csvColumns{typ: -1, text: -1, correct: -1, answer: -1, count: -1}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch {
		case name == "type":
			cols.typ = i
		case name == "text":
			cols.text = i
		case name == "correct":
			cols.correct = i
		case name == "answer":
			cols.answer = i
		case name == "options":
			cols.count = i
		case strings.HasPrefix(name, "option"):
			cols.options = append(cols.options, i)
		}
	}
	if cols.typ < 0 || cols.text < 0 || cols.correct < 0 {
		return cols, fmt.Errorf("CSV header must contain type, text and correct columns")
	}
	return cols, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseCSV(body []byte, title string) (services.ExportData, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return services.ExportData{}, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) < 2 {
		return services.ExportData{}, fmt.Errorf("CSV must have header + at least 1 row")
	}
	cols, err := readCSVHeader(records[0])
	if err != nil {
		return services.ExportData{}, err
	}

	data := services.ExportData{Title: title}
	for n, row := range records[1:] {
		line := n + 2
		q := services.ExportQuestion{
			Type: strings.TrimSpace(cell(row, cols.typ)),
			Text: cell(row, cols.text),
		}
		if strings.TrimSpace(q.Text) == "" {
			continue
		}
		if q.Type != models.QuestionTypeInput {
			if q.Options, err = csvOptions(row, cols, line); err != nil {
				return services.ExportData{}, err
			}
		}
		if q.CorrectAnswer, err = csvAnswer(row, cols, q, line); err != nil {
			return services.ExportData{}, err
		}
		data.Questions = append(data.Questions, q)
	}
	return data, nil
}

func csvOptions(row []string, cols csvColumns, line int) ([]models.Option, error) {
	var values []string
	if cols.count >= 0 {
		count, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.count)))
		if err != nil || count < 0 || count > len(cols.options) {
			return nil, fmt.Errorf("line %d: invalid options count %q", line, cell(row, cols.count))
		}
		for _, i := range cols.options[:count] {
			values = append(values, cell(row, i))
		}
	} else {
		for _, i := range cols.options {
			values = append(values, strings.TrimSpace(cell(row, i)))
		}
		for len(values) > 0 && values[len(values)-1] == "" {
			values = values[:len(values)-1]
		}
	}

	options := make([]models.Option, 0, len(values))
	for i, v := range values {
		options = append(options, models.Option{ID: "opt-" + strconv.Itoa(i+1), Value: v})
	}
	return options, nil
}

func csvAnswer(row []string, cols csvColumns, q services.ExportQuestion, line int) (models.CorrectAnswer, error) {
	correct := cell(row, cols.correct)
	kind := strings.ToLower(strings.TrimSpace(cell(row, cols.answer)))

	if q.Type == models.QuestionTypeInput {
		switch {
		case kind == answerNone:
			return models.NoAnswer(), nil
		case kind == answerText:
			return models.TextAnswer(correct), nil
		case strings.TrimSpace(correct) == "":
			return models.NoAnswer(), nil
		default:
			return models.TextAnswer(strings.TrimSpace(correct)), nil
		}
	}

	var ids []string
	for _, pos := range strings.Split(correct, ";") {
		pos = strings.TrimSpace(pos)
		if pos == "" {
			continue
		}
		n, err := strconv.Atoi(pos)
		if err != nil || n < 1 || n > len(q.Options) {
			return models.CorrectAnswer{}, fmt.Errorf("line %d: invalid correct option %q", line, pos)
		}
		ids = append(ids, q.Options[n-1].ID)
	}

	switch kind {
	case answerNone:
		return models.NoAnswer(), nil
	case answerChoices:
		return models.ChoicesAnswer(ids...), nil
	case answerText:
		if len(ids) != 1 {
			return models.CorrectAnswer{}, fmt.Errorf("line %d: a text answer needs exactly one option", line)
		}
		return models.TextAnswer(ids[0]), nil
	}

	switch {
	case len(ids) == 0:
		return models.NoAnswer(), nil
	case q.Type == models.QuestionTypeSingleOption && len(ids) == 1:
		return models.TextAnswer(ids[0]), nil
	default:
		return models.ChoicesAnswer(ids...), nil
	}
}
