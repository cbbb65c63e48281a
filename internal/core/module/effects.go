package module

import (
	"fmt"
	"path/filepath"

	"github.com/example/modgen/internal/core/effects"
	"github.com/example/modgen/internal/core/render"
)

// RenderedFile is a plan item with its substituted content.
type RenderedFile struct {
	Path    string
	StubID  StubID
	Content string
}

// Materialization is the rendered form of a plan, ready for execution.
type Materialization struct {
	Files       []RenderedFile
	RoutesPath  string
	RouteSource string
}

// Render substitutes the name into every stub the plan needs.
// stubs must hold the raw text of each StubID referenced by the plan.
func Render(plan Plan, stubs map[StubID]string) (Materialization, error) {
	var m Materialization

	for _, item := range plan.Items {
		raw, ok := stubs[item.Spec.StubID]
		if !ok {
			return Materialization{}, fmt.Errorf("stub %s not loaded", item.Spec.StubID)
		}
		m.Files = append(m.Files, RenderedFile{
			Path:    item.Path,
			StubID:  item.Spec.StubID,
			Content: render.Render(raw, plan.Name),
		})
	}

	raw, ok := stubs[plan.Routes.StubID]
	if !ok {
		return Materialization{}, fmt.Errorf("stub %s not loaded", plan.Routes.StubID)
	}
	m.RoutesPath = plan.Routes.Path
	m.RouteSource = render.Render(raw, plan.Name)

	return m, nil
}

// StubIDs returns every stub a plan needs, in plan order.
func (p Plan) StubIDs() []StubID {
	ids := make([]StubID, 0, len(p.Items)+1)
	for _, item := range p.Items {
		ids = append(ids, item.Spec.StubID)
	}
	return append(ids, p.Routes.StubID)
}

// Effects returns the effects that write f: its directory, then the file.
func (f RenderedFile) Effects() []effects.Effect {
	return []effects.Effect{
		effects.FileEffect{Operation: effects.OpMkdir, Path: filepath.Dir(f.Path), Mode: 0755},
		effects.FileEffect{Operation: effects.OpWrite, Path: f.Path, Content: []byte(f.Content), Mode: 0644},
	}
}

// RouteEffects returns the effects that append the route fragment.
func (m Materialization) RouteEffects() []effects.Effect {
	return []effects.Effect{
		effects.FileEffect{Operation: effects.OpMkdir, Path: filepath.Dir(m.RoutesPath), Mode: 0755},
		effects.FileEffect{Operation: effects.OpAppend, Path: m.RoutesPath, Content: []byte(m.RouteSource), Mode: 0644},
	}
}

// Effects returns every effect that materializes m, in creation order:
// each file's directory then the file itself, then the route append.
func (m Materialization) Effects() []effects.Effect {
	result := make([]effects.Effect, 0, 2*len(m.Files)+2)
	for _, f := range m.Files {
		result = append(result, f.Effects()...)
	}
	return append(result, m.RouteEffects()...)
}
