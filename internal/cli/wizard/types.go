// Package wizard asks the scaffolding questions with huh forms and collects
// the answers into a models.Session.
package wizard

import (
	"errors"

	"github.com/create-stack/create-stack/pkg/models"
)

// Question IDs, also the keys answers are stored under.
const (
	IDProjectName = "project_name"
	IDMode        = "mode"
	IDBoilerplate = "boilerplate"
	IDLibraries   = "libs"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a text input question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect
	// QuestionTypeMultiSelect lets the user pick any subset of the options.
	QuestionTypeMultiSelect
)

// String returns the prompt kind name.
func (t QuestionType) String() string {
	switch t {
	case QuestionTypeInput:
		return "input"
	case QuestionTypeSelect:
		return "select"
	case QuestionTypeMultiSelect:
		return "multiselect"
	}
	return "unknown"
}

// Question defines a single wizard question.
type Question struct {
	ID          string                     // Unique identifier
	Type        QuestionType               // Input, Select or MultiSelect
	Title       string                     // Question title
	Description string                     // Additional description
	Options     []Option                   // Options for select questions
	Default     string                     // Default value (input and select)
	Condition   func(*models.Session) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrNotInteractive is returned when stdin is not a terminal.
	ErrNotInteractive = errors.New("wizard requires an interactive terminal")
	// ErrUnknownQuestion is returned for an answer to an unrecognized question ID.
	ErrUnknownQuestion = errors.New("unknown question")
)
