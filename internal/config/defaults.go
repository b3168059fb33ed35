package config

// Default value constants.
const (
	DefaultGitBinary = "git"
	DefaultNpxBinary = "npx"
	DefaultNpmBinary = "npm"

	DefaultCloneBackend = CloneBackendAuto
	DefaultLogLevel     = "warn"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			Git: DefaultGitBinary,
			Npx: DefaultNpxBinary,
			Npm: DefaultNpmBinary,
		},
		Clone: CloneConfig{Backend: DefaultCloneBackend},
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

// applyDefaults fills fields a config file explicitly left empty.
func applyDefaults(cfg *Config) {
	if cfg.Tools.Git == "" {
		cfg.Tools.Git = DefaultGitBinary
	}
	if cfg.Tools.Npx == "" {
		cfg.Tools.Npx = DefaultNpxBinary
	}
	if cfg.Tools.Npm == "" {
		cfg.Tools.Npm = DefaultNpmBinary
	}
	if cfg.Clone.Backend == "" {
		cfg.Clone.Backend = DefaultCloneBackend
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
