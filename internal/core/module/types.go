// Package module contains the pure planning logic for module generation.
// Nothing in this package touches the filesystem or reads the clock.
package module

import (
	"errors"
	"time"

	"github.com/example/modgen/internal/core/naming"
)

// ErrInvalidType is returned for any module type other than api or web.
var ErrInvalidType = errors.New("module: invalid type")

// Type is the module variant.
type Type string

const (
	TypeAPI Type = "api"
	TypeWeb Type = "web"
)

// Types lists the valid module types in prompt order.
func Types() []Type {
	return []Type{TypeAPI, TypeWeb}
}

// StubID is the logical identifier of a stub.
type StubID string

const (
	StubControllerAPI StubID = "controller.api"
	StubControllerWeb StubID = "controller.web"
	StubRepository    StubID = "repository"
	StubRequestStore  StubID = "request.store"
	StubRequestUpdate StubID = "request.update"
	StubMigration     StubID = "migration"
	StubModel         StubID = "model"
	StubViewIndex     StubID = "views.index"
	StubViewCreate    StubID = "views.create"
	StubViewEdit      StubID = "views.edit"
	StubRoutesAPI     StubID = "routes.api"
	StubRoutesWeb     StubID = "routes.web"
)

// Root names a logical output directory.
type Root string

const (
	RootControllers  Root = "controllers"
	RootRepositories Root = "repositories"
	RootRequests     Root = "requests"
	RootModels       Root = "models"
	RootMigrations   Root = "migrations"
	RootViews        Root = "views"
)

// Roots holds the resolved directories and route files for a project.
type Roots struct {
	Controllers  string
	Repositories string
	Requests     string
	Models       string
	Migrations   string
	Views        string
	APIRoutes    string
	WebRoutes    string
}

// Dir returns the directory for a logical root.
func (r Roots) Dir(root Root) string {
	switch root {
	case RootControllers:
		return r.Controllers
	case RootRepositories:
		return r.Repositories
	case RootRequests:
		return r.Requests
	case RootModels:
		return r.Models
	case RootMigrations:
		return r.Migrations
	case RootViews:
		return r.Views
	}
	return ""
}

// TemplateSpec pairs a stub with the path template it is rendered to.
// Target is slash-separated, relative to Root, and may contain the naming
// placeholders plus {timestamp}.
type TemplateSpec struct {
	StubID StubID
	Root   Root
	Target string
}

// PlanItem is a TemplateSpec with its resolved output path.
type PlanItem struct {
	Spec TemplateSpec
	Path string
}

// RouteAppendix is the route fragment appended to a routes file.
type RouteAppendix struct {
	StubID StubID
	Path   string
}

// PlanInput contains everything the planner needs. The caller reads the
// clock and resolves the roots.
type PlanInput struct {
	Name  naming.Name
	Type  string
	Roots Roots
	Now   time.Time
}

// Plan is the ordered set of files produced for one module.
type Plan struct {
	Name   naming.Name
	Type   Type
	Items  []PlanItem
	Routes RouteAppendix
}

// Paths returns the output paths of every plan item, in order.
func (p Plan) Paths() []string {
	paths := make([]string, len(p.Items))
	for i, item := range p.Items {
		paths[i] = item.Path
	}
	return paths
}
