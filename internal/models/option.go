package models

// Option is one answer choice. The id is chosen by the client and is what
// CorrectAnswer refers to.
type Option struct {
	ID    string `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
}
