package pipeline

import (
	"log/slog"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
)

// Stage transforms a table in place.
type Stage interface {
	Name() string
	Apply(t *data.Table) error
}

// Dependent is implemented by stages that must run after other stages.
type Dependent interface {
	After() []string
}

// Pipeline chains stages. Stages run in registration order unless a
// prerequisite declared through Dependent forces a later position.
type Pipeline struct {
	order []Stage
}

// NewPipeline orders the stages and fails on duplicate names, unknown
// prerequisites or cycles.
func NewPipeline(stages ...Stage) (*Pipeline, error) {
	index := make(map[string]int, len(stages))
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	for i, s := range stages {
		if _, dup := index[s.Name()]; dup {
			return nil, errors.Errorf("duplicate stage %q", s.Name())
		}
		index[s.Name()] = i
		if err := g.AddVertex(s.Name()); err != nil {
			return nil, errors.Wrapf(err, "add stage %q", s.Name())
		}
	}
	for _, s := range stages {
		dep, ok := s.(Dependent)
		if !ok {
			continue
		}
		for _, before := range dep.After() {
			if _, known := index[before]; !known {
				return nil, errors.Errorf("stage %q runs after unknown stage %q", s.Name(), before)
			}
			if err := g.AddEdge(before, s.Name()); err != nil {
				if errors.Is(err, graph.ErrEdgeCreatesCycle) {
					return nil, errors.Errorf("stage %q after %q creates a cycle", s.Name(), before)
				}
				return nil, errors.Wrapf(err, "order %q after %q", s.Name(), before)
			}
		}
	}

	names, err := graph.StableTopologicalSort(g, func(a, b string) bool {
		return index[a] < index[b]
	})
	if err != nil {
		return nil, errors.Wrap(err, "order stages")
	}
	p := &Pipeline{order: make([]Stage, len(names))}
	for i, name := range names {
		p.order[i] = stages[index[name]]
	}
	return p, nil
}

// Order returns the stage names in execution order.
func (p *Pipeline) Order() []string {
	names := make([]string, len(p.order))
	for i, s := range p.order {
		names[i] = s.Name()
	}
	return names
}

// Run applies every stage to t and stops at the first failure. Errors are
// returned as-is so callers can match data.ErrIO and data.ErrData.
func (p *Pipeline) Run(t *data.Table) error {
	for _, s := range p.order {
		before := t.Schema()
		start := time.Now()
		if err := s.Apply(t); err != nil {
			slog.Error("Stage failed", slog.String("stage", s.Name()), slog.Any("error", err))
			return err
		}
		after := t.Schema()
		added, removed := before.Diff(after)
		slog.Info("Stage complete",
			slog.String("stage", s.Name()),
			slog.Duration("elapsed", time.Since(start)),
			slog.Int("rows", t.Rows()),
			slog.Int("columns", t.Width()),
			slog.Any("added", added),
			slog.Any("removed", removed))
		slog.Debug("Schema after stage", slog.String("stage", s.Name()), slog.String("schema", after.String()))
	}
	return nil
}
