package config

import (
	"regexp"
)

// Unexpanded template variables must not reach exec as a binary name.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if !cfg.Clone.Backend.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "clone.backend",
			Message: "must be one of: auto, git, go-git",
			Value:   string(cfg.Clone.Backend),
			Wrapped: ErrInvalidCloneBackend,
		})
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "must be one of: debug, info, warn, error",
			Value:   cfg.Log.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateDynamicTokens rejects tool names that still carry template tokens.
func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError

	fields := []struct {
		name  string
		value string
	}{
		{"tools.git", cfg.Tools.Git},
		{"tools.npx", cfg.Tools.Npx},
		{"tools.npm", cfg.Tools.Npm},
	}

	for _, f := range fields {
		for _, pattern := range dynamicTokenPatterns {
			if pattern.MatchString(f.value) {
				errs = append(errs, ValidationError{
					Field:   f.name,
					Message: "contains unexpanded dynamic token",
					Value:   f.value,
					Wrapped: ErrDynamicToken,
				})
				break
			}
		}
	}

	return errs
}
