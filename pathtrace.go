package pathtrace

import (
	"context"
	"errors"

	"github.com/nvardanyan/pathtrace/graphmanager"
	"github.com/nvardanyan/pathtrace/registry"
	"github.com/nvardanyan/pathtrace/search"
)

// ErrMissingField is returned when a Request omits a field required for
// the named algorithm.
var ErrMissingField = errors.New("pathtrace: missing required field")

// Kernel binds a graph store and the built-in algorithm/heuristic
// registries behind one entry point. A session/HTTP façade embeds a
// Kernel rather than wiring graphmanager and registry itself.
type Kernel struct {
	Graphs     *graphmanager.Manager
	Algorithms *registry.AlgorithmRegistry
	Heuristics *registry.HeuristicRegistry
}

// NewKernel constructs a Kernel with a fresh, empty graph store and the
// built-in algorithm/heuristic registries loaded from the embedded
// manifest.
func NewKernel() (*Kernel, error) {
	algos, heuristics, err := registry.New()
	if err != nil {
		return nil, err
	}

	return &Kernel{
		Graphs:     graphmanager.New(),
		Algorithms: algos,
		Heuristics: heuristics,
	}, nil
}

// Request is the boundary's search request shape: select a graph, an
// algorithm, optionally a heuristic (required iff the algorithm declares
// RequiresHeuristic), and a start/goal node pair. Node ids are resolved
// through graphmanager.FindNode before the search runs, so callers may
// supply either the canonical in-graph id or any of its normalized forms.
type Request struct {
	GraphID   string
	Algorithm string
	Heuristic string
	StartNode string
	GoalNode  string
	Ctx       context.Context
	Observer  search.Observer
}

// Run resolves a Request against the Kernel's graph store and registries,
// then executes the chosen algorithm, returning its path result.
func (k *Kernel) Run(req Request) (registry.PathResult, error) {
	if req.GraphID == "" || req.Algorithm == "" || req.StartNode == "" || req.GoalNode == "" {
		return registry.PathResult{}, ErrMissingField
	}

	g, _, err := k.Graphs.Get(req.GraphID)
	if err != nil {
		return registry.PathResult{}, err
	}

	info, err := k.Algorithms.Info(req.Algorithm)
	if err != nil {
		return registry.PathResult{}, err
	}
	if info.RequiresHeuristic && req.Heuristic == "" {
		return registry.PathResult{}, ErrMissingField
	}

	startID, err := k.Graphs.FindNode(req.GraphID, req.StartNode)
	if err != nil {
		return registry.PathResult{}, err
	}
	goalID, err := k.Graphs.FindNode(req.GraphID, req.GoalNode)
	if err != nil {
		return registry.PathResult{}, err
	}

	opts := registry.RunOptions{Ctx: req.Ctx, Observer: req.Observer}
	if req.Heuristic != "" {
		twoPoint, err := k.Heuristics.Build(req.Heuristic, g)
		if err != nil {
			return registry.PathResult{}, err
		}
		opts.Heuristic = registry.ForGoal(twoPoint, goalID)
		opts.TwoPointHeuristic = twoPoint
	}
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if opts.Observer == nil {
		opts.Observer = search.NopObserver
	}

	return k.Algorithms.Run(req.Algorithm, g, startID, goalID, opts)
}
