package module

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/modgen/internal/core/render"
)

// MigrationTimestampLayout orders migrations lexically by creation second.
const MigrationTimestampLayout = "2006_01_02_150405"

const timestampToken = "{timestamp}"

// Specs returns the template specs for a module type, in generation order.
// Both types share the controller, repository, requests, migration and model;
// web adds the three views.
func Specs(t Type) []TemplateSpec {
	controller := StubControllerAPI
	if t == TypeWeb {
		controller = StubControllerWeb
	}

	specs := []TemplateSpec{
		{StubID: controller, Root: RootControllers, Target: "{{studly}}Controller.php"},
		{StubID: StubRepository, Root: RootRepositories, Target: "{{studly}}Repository.php"},
		{StubID: StubRequestStore, Root: RootRequests, Target: "{{studly}}Request.php"},
		{StubID: StubRequestUpdate, Root: RootRequests, Target: "Update{{studly}}Request.php"},
		{StubID: StubMigration, Root: RootMigrations, Target: timestampToken + "_create_{{pluralLower}}_table.php"},
		{StubID: StubModel, Root: RootModels, Target: "{{studly}}.php"},
	}

	if t == TypeWeb {
		specs = append(specs,
			TemplateSpec{StubID: StubViewIndex, Root: RootViews, Target: "{{pluralLower}}/index.blade.php"},
			TemplateSpec{StubID: StubViewCreate, Root: RootViews, Target: "{{pluralLower}}/create.blade.php"},
			TemplateSpec{StubID: StubViewEdit, Root: RootViews, Target: "{{pluralLower}}/edit.blade.php"},
		)
	}

	return specs
}

// Routes returns the route appendix for a module type.
func Routes(t Type, roots Roots) RouteAppendix {
	if t == TypeWeb {
		return RouteAppendix{StubID: StubRoutesWeb, Path: roots.WebRoutes}
	}
	return RouteAppendix{StubID: StubRoutesAPI, Path: roots.APIRoutes}
}

// MigrationTimestamp formats now for a migration filename.
func MigrationTimestamp(now time.Time) string {
	return now.Format(MigrationTimestampLayout)
}

// GeneratePlan computes every output path for a module.
// This is a pure function - the type is validated before any path is built.
func GeneratePlan(input PlanInput) (Plan, error) {
	t, err := ParseType(input.Type)
	if err != nil {
		return Plan{}, err
	}

	timestamp := MigrationTimestamp(input.Now)
	plan := Plan{Name: input.Name, Type: t}

	for _, spec := range Specs(t) {
		dir := input.Roots.Dir(spec.Root)
		if dir == "" {
			return Plan{}, fmt.Errorf("no directory configured for %s", spec.Root)
		}
		target := strings.ReplaceAll(spec.Target, timestampToken, timestamp)
		target = render.Render(target, input.Name)
		plan.Items = append(plan.Items, PlanItem{
			Spec: spec,
			Path: filepath.Join(dir, filepath.FromSlash(target)),
		})
	}

	plan.Routes = Routes(t, input.Roots)
	if plan.Routes.Path == "" {
		return Plan{}, fmt.Errorf("no routes file configured for %s", t)
	}

	return plan, nil
}
