package models

import "slices"

// DefaultProjectName is offered when the user does not type a project name.
const DefaultProjectName = "my-app"

// ScaffoldMode selects how the project is materialized.
type ScaffoldMode string

const (
	// ModeFrontend generates a React project and installs selected libraries.
	ModeFrontend ScaffoldMode = "frontend"

	// ModeBoilerplate clones a complete project from a remote repository.
	ModeBoilerplate ScaffoldMode = "boilerplate"
)

// ValidScaffoldModes returns all valid scaffold mode values.
func ValidScaffoldModes() []ScaffoldMode {
	return []ScaffoldMode{ModeFrontend, ModeBoilerplate}
}

// IsValid checks if the scaffold mode is a valid value.
func (m ScaffoldMode) IsValid() bool {
	switch m {
	case ModeFrontend, ModeBoilerplate:
		return true
	}
	return false
}

// Session holds the answers of one interactive run.
type Session struct {
	ProjectName string       // Target directory name, relative to the base directory.
	Mode        ScaffoldMode // Selected branch.

	// BoilerplateURL is the repository to clone (ModeBoilerplate only).
	BoilerplateURL string

	// Libraries holds the selected library names (ModeFrontend only),
	// in the order the user picked them.
	Libraries []string
}

// HasLibrary reports whether the named library was selected.
func (s *Session) HasLibrary(name string) bool {
	return slices.Contains(s.Libraries, name)
}
