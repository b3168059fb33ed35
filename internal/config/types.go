package config

import (
	"log/slog"
	"slices"
)

// Config is the root of the configuration file.
type Config struct {
	Tools ToolsConfig `yaml:"tools"`
	Clone CloneConfig `yaml:"clone"`
	Log   LogConfig   `yaml:"log"`
	UI    UIConfig    `yaml:"ui"`
}

// ToolsConfig names the external binaries create-stack invokes.
type ToolsConfig struct {
	Git string `yaml:"git"`
	Npx string `yaml:"npx"`
	Npm string `yaml:"npm"`
}

// CloneBackend selects how boilerplate repositories are cloned.
type CloneBackend string

const (
	// CloneBackendAuto uses the git binary when it is on PATH, else go-git.
	CloneBackendAuto CloneBackend = "auto"
	// CloneBackendGit always runs the git binary.
	CloneBackendGit CloneBackend = "git"
	// CloneBackendGoGit always clones in-process.
	CloneBackendGoGit CloneBackend = "go-git"
)

// IsValid checks if the backend is a known value.
func (b CloneBackend) IsValid() bool {
	return slices.Contains([]CloneBackend{CloneBackendAuto, CloneBackendGit, CloneBackendGoGit}, b)
}

// CloneConfig represents the clone section.
type CloneConfig struct {
	Backend CloneBackend `yaml:"backend"`
}

// LogConfig represents the log section.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel maps Level to a slog.Level. Unknown values map to warn.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

// UIConfig represents the ui section.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}
