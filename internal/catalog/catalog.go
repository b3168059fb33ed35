// Package catalog holds the compiled-in option tables offered by the
// wizard: the frontend libraries and the boilerplate repositories.
// A Catalog is built once at startup and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidCatalog indicates a catalog table failed validation.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// Library display names.
const (
	LibReact         = "React"
	LibTailwind      = "Tailwind"
	LibTypeScript    = "TypeScript"
	LibFormik        = "Formik"
	LibReactHookForm = "React Hook Form"
	LibReactRouter   = "React Router"
	LibTanStackQuery = "TanStack Query"
	LibZustand       = "Zustand"
	LibReduxToolkit  = "Redux Toolkit"
)

// SetupKind names a side effect a library triggers besides package installs.
type SetupKind int

const (
	// SetupNone means the library only contributes packages (or nothing).
	SetupNone SetupKind = iota
	// SetupTypeScriptTemplate switches the generator to the typed template.
	SetupTypeScriptTemplate
	// SetupTailwind installs the pinned Tailwind toolchain and writes its config files.
	SetupTailwind
)

// String returns a short name for the setup kind.
func (k SetupKind) String() string {
	switch k {
	case SetupNone:
		return "none"
	case SetupTypeScriptTemplate:
		return "typescript-template"
	case SetupTailwind:
		return "tailwind"
	}
	return fmt.Sprintf("SetupKind(%d)", int(k))
}

// Package is an npm package, optionally pinned to an exact version.
type Package struct {
	Name    string
	Version string // Empty means unpinned.
}

// String returns the installer argument form: "name" or "name@version".
func (p Package) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// Library is one selectable entry of the frontend library list.
type Library struct {
	Name     string // Display name and selection key.
	Announce string // Message printed when the library is processed.

	// Dependencies are added to the single runtime install invocation.
	Dependencies []Package

	// DevDependencies are added to the dev install invocation.
	// No shipped entry populates it.
	DevDependencies []Package

	// Setup is the library's extra side effect, if any.
	Setup SetupKind

	// SetupPackages are installed as dev packages by the setup step.
	SetupPackages []Package
}

// Boilerplate is one selectable full-project template.
type Boilerplate struct {
	Name string // Display label.
	URL  string // Clone URL.
}

// Catalog is the immutable pair of option tables.
type Catalog struct {
	libraries    []Library
	boilerplates []Boilerplate
}

// New builds a Catalog from the given tables. The tables are copied.
func New(libraries []Library, boilerplates []Boilerplate) *Catalog {
	c := &Catalog{
		libraries:    make([]Library, len(libraries)),
		boilerplates: slices.Clone(boilerplates),
	}
	for i, lib := range libraries {
		c.libraries[i] = cloneLibrary(lib)
	}
	return c
}

// Libraries returns the library table in display (and checking) order.
func (c *Catalog) Libraries() []Library {
	out := make([]Library, len(c.libraries))
	for i, lib := range c.libraries {
		out[i] = cloneLibrary(lib)
	}
	return out
}

// LibraryNames returns the library display names in catalog order.
func (c *Catalog) LibraryNames() []string {
	names := make([]string, len(c.libraries))
	for i, lib := range c.libraries {
		names[i] = lib.Name
	}
	return names
}

// Library looks up a library by display name.
func (c *Catalog) Library(name string) (Library, bool) {
	for _, lib := range c.libraries {
		if lib.Name == name {
			return cloneLibrary(lib), true
		}
	}
	return Library{}, false
}

// Boilerplates returns the boilerplate table in display order.
func (c *Catalog) Boilerplates() []Boilerplate {
	return slices.Clone(c.boilerplates)
}

// BoilerplateByURL looks up a boilerplate by its clone URL.
func (c *Catalog) BoilerplateByURL(u string) (Boilerplate, bool) {
	for _, b := range c.boilerplates {
		if b.URL == u {
			return b, true
		}
	}
	return Boilerplate{}, false
}

// Validate checks that names are unique, clone URLs are https .git URLs and
// every pinned package version is a valid semantic version.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(c.libraries))
	for _, lib := range c.libraries {
		if lib.Name == "" {
			errs = append(errs, fmt.Errorf("%w: library with empty name", ErrInvalidCatalog))
			continue
		}
		if seen[lib.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate library %q", ErrInvalidCatalog, lib.Name))
		}
		seen[lib.Name] = true

		pkgs := slices.Concat(lib.Dependencies, lib.DevDependencies, lib.SetupPackages)
		for _, p := range pkgs {
			if err := validatePackage(p); err != nil {
				errs = append(errs, fmt.Errorf("%w: library %q: %w", ErrInvalidCatalog, lib.Name, err))
			}
		}
	}

	seenURL := make(map[string]bool, len(c.boilerplates))
	for _, b := range c.boilerplates {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("%w: boilerplate with empty name", ErrInvalidCatalog))
		}
		if seenURL[b.URL] {
			errs = append(errs, fmt.Errorf("%w: duplicate boilerplate URL %q", ErrInvalidCatalog, b.URL))
		}
		seenURL[b.URL] = true
		if err := validateCloneURL(b.URL); err != nil {
			errs = append(errs, fmt.Errorf("%w: boilerplate %q: %w", ErrInvalidCatalog, b.Name, err))
		}
	}

	return errors.Join(errs...)
}

func validatePackage(p Package) error {
	if p.Name == "" {
		return errors.New("package with empty name")
	}
	if p.Version == "" {
		return nil
	}
	if _, err := semver.StrictNewVersion(p.Version); err != nil {
		return fmt.Errorf("package %q: version %q: %w", p.Name, p.Version, err)
	}
	return nil
}

func validateCloneURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse URL %q: %w", raw, err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("URL %q must be an absolute https URL", raw)
	}
	if !strings.HasSuffix(u.Path, ".git") {
		return fmt.Errorf("URL %q must end in .git", raw)
	}
	return nil
}

func cloneLibrary(lib Library) Library {
	lib.Dependencies = slices.Clone(lib.Dependencies)
	lib.DevDependencies = slices.Clone(lib.DevDependencies)
	lib.SetupPackages = slices.Clone(lib.SetupPackages)
	return lib
}
