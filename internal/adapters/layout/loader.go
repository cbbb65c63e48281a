// Package layout resolves where generated artifacts go inside a project.
package layout

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/modgen/internal/ports/secondary"
)

// FileName is the project-local layout override, relative to the project root.
const FileName = ".modgen/layout.yaml"

// ErrInvalidLayout is returned when the layout file cannot be parsed.
var ErrInvalidLayout = errors.New("layout: invalid layout file")

// Defaults returns the conventional Laravel layout, relative to the project root.
func Defaults() secondary.Layout {
	return secondary.Layout{
		Controllers:  "app/Http/Controllers",
		Repositories: "app/Repositories",
		Requests:     "app/Http/Requests",
		Models:       "app/Models",
		Migrations:   "database/migrations",
		Views:        "resources/views",
		APIRoutes:    "routes/api.php",
		WebRoutes:    "routes/web.php",
		Settings:     "config/module-generator.php",
		Stubs:        "stubs/modgen",
		Journal:      ".modgen/journal.db",
	}
}

// Loader implements secondary.LayoutLoader from defaults plus an optional
// .modgen/layout.yaml.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load resolves every path of the layout to an absolute path under projectRoot.
// Relative entries in the layout file are relative to projectRoot.
func (l *Loader) Load(ctx context.Context, projectRoot string) (*secondary.Layout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	lay := Defaults()
	path := filepath.Join(root, filepath.FromSlash(FileName))
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		var y yamlLayout
		if err := yaml.Unmarshal(b, &y); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidLayout, path, err)
		}
		y.apply(&lay)
	}

	lay.Root = root
	for _, p := range []*string{
		&lay.Controllers, &lay.Repositories, &lay.Requests, &lay.Models,
		&lay.Migrations, &lay.Views, &lay.APIRoutes, &lay.WebRoutes,
		&lay.Settings, &lay.Stubs, &lay.Journal,
	} {
		*p = resolve(root, *p)
	}
	return &lay, nil
}

func resolve(root, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

type yamlLayout struct {
	Paths struct {
		Controllers  string `yaml:"controllers"`
		Repositories string `yaml:"repositories"`
		Requests     string `yaml:"requests"`
		Models       string `yaml:"models"`
		Migrations   string `yaml:"migrations"`
		Views        string `yaml:"views"`
	} `yaml:"paths"`

	Routes struct {
		API string `yaml:"api"`
		Web string `yaml:"web"`
	} `yaml:"routes"`

	Settings string `yaml:"settings"`
	Stubs    string `yaml:"stubs"`
	Journal  string `yaml:"journal"`
}

// apply copies every non-empty value on top of lay.
func (y yamlLayout) apply(lay *secondary.Layout) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&lay.Controllers, y.Paths.Controllers)
	set(&lay.Repositories, y.Paths.Repositories)
	set(&lay.Requests, y.Paths.Requests)
	set(&lay.Models, y.Paths.Models)
	set(&lay.Migrations, y.Paths.Migrations)
	set(&lay.Views, y.Paths.Views)
	set(&lay.APIRoutes, y.Routes.API)
	set(&lay.WebRoutes, y.Routes.Web)
	set(&lay.Settings, y.Settings)
	set(&lay.Stubs, y.Stubs)
	set(&lay.Journal, y.Journal)
}

// Ensure Loader implements the interface
var _ secondary.LayoutLoader = (*Loader)(nil)
