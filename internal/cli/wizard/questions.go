package wizard

import (
	"github.com/create-stack/create-stack/internal/catalog"
	"github.com/create-stack/create-stack/pkg/models"
)

// DefaultQuestions returns the scaffolding questions in the order they are
// asked:
// 1. Project name
// 2. Project kind (frontend stack or boilerplate)
// 3. Boilerplate template (boilerplate only)
// 4. Frontend libraries (frontend only)
func DefaultQuestions(cat *catalog.Catalog) []Question {
	boilerplates := cat.Boilerplates()
	bpOpts := make([]Option, len(boilerplates))
	for i, bp := range boilerplates {
		bpOpts[i] = Option{Label: bp.Name, Value: bp.URL}
	}

	names := cat.LibraryNames()
	libOpts := make([]Option, len(names))
	for i, name := range names {
		libOpts[i] = Option{Label: name, Value: name}
	}

	return []Question{
		// 1. Project Name
		{
			ID:      IDProjectName,
			Type:    QuestionTypeInput,
			Title:   "Enter project name:",
			Default: models.DefaultProjectName,
		},
		// 2. Mode
		{
			ID:    IDMode,
			Type:  QuestionTypeSelect,
			Title: "Do you want a frontend stack or a boilerplate (full project)?",
			Options: []Option{
				{Label: "Frontend stack (React + libraries)", Value: string(models.ModeFrontend)},
				{Label: "Boilerplate from GitHub (full project)", Value: string(models.ModeBoilerplate)},
			},
		},
		// 3. Boilerplate (conditional)
		{
			ID:      IDBoilerplate,
			Type:    QuestionTypeSelect,
			Title:   "Select a boilerplate template:",
			Options: bpOpts,
			Condition: func(s *models.Session) bool {
				return s.Mode == models.ModeBoilerplate
			},
		},
		// 4. Libraries (conditional)
		{
			ID:      IDLibraries,
			Type:    QuestionTypeMultiSelect,
			Title:   "Select frontend libraries:",
			Options: libOpts,
			Condition: func(s *models.Session) bool {
				return s.Mode == models.ModeFrontend
			},
		},
	}
}

// FilteredQuestions returns the questions whose condition holds for s.
func FilteredQuestions(questions []Question, s *models.Session) []Question {
	var out []Question
	for _, q := range questions {
		if q.Condition == nil || q.Condition(s) {
			out = append(out, q)
		}
	}
	return out
}
