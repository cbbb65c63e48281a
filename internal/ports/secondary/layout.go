package secondary

import "context"

// Layout maps the logical roots of a project to filesystem paths.
// Every path is absolute once returned by a LayoutLoader.
type Layout struct {
	Root         string
	Controllers  string
	Repositories string
	Requests     string
	Models       string
	Migrations   string
	Views        string
	APIRoutes    string
	WebRoutes    string
	Settings     string // settings document holding default_type
	Stubs        string // optional directory of stub overrides
	Journal      string // generation journal database
}

// LayoutLoader resolves the layout for a project root.
type LayoutLoader interface {
	Load(ctx context.Context, projectRoot string) (*Layout, error)
}
