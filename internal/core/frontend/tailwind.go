package frontend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/create-stack/create-stack/internal/catalog"
	"github.com/create-stack/create-stack/internal/runner"
)

// Files written by the Tailwind setup, relative to the project root.
const (
	TailwindConfigFile = "tailwind.config.js"
	IndexCSSFile       = "src/index.css"
	AppCSSFile         = "src/App.css"
)

// TailwindConfig is the content of tailwind.config.js.
const TailwindConfig = `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [
    "./src/**/*.{js,jsx,ts,tsx}",
  ],
  theme: {
    extend: {},
  },
  plugins: [],
}`

// TailwindCSS is the content of src/index.css.
const TailwindCSS = `@tailwind base;
@tailwind components;
@tailwind utilities;`

// tailwindFiles lists the writes in order. App.css is emptied so the
// generator's default styles do not fight the utility classes.
var tailwindFiles = []struct {
	path    string
	content string
}{
	{TailwindConfigFile, TailwindConfig},
	{IndexCSSFile, TailwindCSS},
	{AppCSSFile, ""},
}

// setupTailwind installs the pinned toolchain as dev packages, runs the
// config initializer and overwrites the config and stylesheet files.
func (a *Assembler) setupTailwind(ctx context.Context, root string, lib catalog.Library, res *Result) error {
	if lib.Announce != "" {
		a.reporter.StepStart("\n" + lib.Announce)
	}

	args := []string{"install", "-D"}
	for _, p := range lib.SetupPackages {
		args = append(args, p.String())
	}
	if err := a.run.Run(ctx, runner.Command{Name: a.tools.Npm, Args: args, Dir: root}); err != nil {
		return err
	}

	a.reporter.StepStart("\nInitializing Tailwind configuration...")
	if err := a.run.Run(ctx, runner.Command{
		Name: a.tools.Npx,
		Args: []string{"tailwindcss", "init", "-p"},
		Dir:  root,
	}); err != nil {
		return err
	}

	for _, f := range tailwindFiles {
		path := filepath.Join(root, filepath.FromSlash(f.path))
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.path, err)
		}
		res.WrittenFiles = append(res.WrittenFiles, f.path)
		a.logger.Debug("wrote file", "path", path, "bytes", len(f.content))
	}

	a.reporter.Success("✓ Created Tailwind configuration files")
	return nil
}
