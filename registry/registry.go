package registry

import (
	"github.com/nvardanyan/pathtrace/astar"
	"github.com/nvardanyan/pathtrace/bfs"
	"github.com/nvardanyan/pathtrace/bidirectional"
	"github.com/nvardanyan/pathtrace/dfs"
	"github.com/nvardanyan/pathtrace/dstarlite"
	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/heuristic"
	"github.com/nvardanyan/pathtrace/ucs"
)

// AlgorithmRegistry maps algorithm names to metadata and a runnable factory.
type AlgorithmRegistry struct {
	infos map[string]AlgorithmInfo
	funcs map[string]AlgorithmFunc
	order []string
}

// HeuristicRegistry maps heuristic names to metadata and a builder.
type HeuristicRegistry struct {
	infos    map[string]HeuristicInfo
	builders map[string]HeuristicFunc
	order    []string
}

// New parses the embedded manifest and wires each named entry to its
// concrete implementation. An unrecognized manifest entry (one with no
// matching factory below) is a programmer error, not a runtime one, since
// the manifest ships inside this module.
func New() (*AlgorithmRegistry, *HeuristicRegistry, error) {
	m, err := loadManifest()
	if err != nil {
		return nil, nil, err
	}

	algoFactories := map[string]AlgorithmFunc{
		"bfs_tree":      runBFSTree,
		"bfs_graph":     runBFSGraph,
		"dfs_tree":      runDFSTree,
		"dfs_graph":     runDFSGraph,
		"ucs":           runUCS,
		"astar":         runAStar,
		"bidirectional": runBidirectional,
		"dstar_lite":    runDStarLite,
	}
	heuristicBuilders := map[string]HeuristicFunc{
		"haversine": buildHaversine,
		"zero":      buildZero,
	}

	ar := &AlgorithmRegistry{infos: make(map[string]AlgorithmInfo), funcs: make(map[string]AlgorithmFunc)}
	for _, a := range m.Algorithms {
		fn, ok := algoFactories[a.Name]
		if !ok {
			continue
		}
		ar.infos[a.Name] = a
		ar.funcs[a.Name] = fn
		ar.order = append(ar.order, a.Name)
	}

	hr := &HeuristicRegistry{infos: make(map[string]HeuristicInfo), builders: make(map[string]HeuristicFunc)}
	for _, h := range m.Heuristics {
		fn, ok := heuristicBuilders[h.Name]
		if !ok {
			continue
		}
		hr.infos[h.Name] = h
		hr.builders[h.Name] = fn
		hr.order = append(hr.order, h.Name)
	}

	return ar, hr, nil
}

// Info returns the metadata for a registered algorithm.
func (r *AlgorithmRegistry) Info(name string) (AlgorithmInfo, error) {
	info, ok := r.infos[name]
	if !ok {
		return AlgorithmInfo{}, ErrUnknownAlgorithm
	}

	return info, nil
}

// List returns all registered algorithm names, manifest order.
func (r *AlgorithmRegistry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Run executes the named algorithm. If the algorithm requires a heuristic
// and none is set in opts, Run builds one from the registered "haversine"
// heuristic over g's own coordinates as a sane default.
func (r *AlgorithmRegistry) Run(name string, g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return PathResult{}, ErrUnknownAlgorithm
	}
	info := r.infos[name]
	if info.RequiresHeuristic && opts.Heuristic == nil && opts.TwoPointHeuristic == nil {
		two := buildHaversine(g)
		opts.Heuristic = ForGoal(two, goalID)
		opts.TwoPointHeuristic = two
	}

	return fn(g, startID, goalID, opts)
}

// Info returns the metadata for a registered heuristic.
func (r *HeuristicRegistry) Info(name string) (HeuristicInfo, error) {
	info, ok := r.infos[name]
	if !ok {
		return HeuristicInfo{}, ErrUnknownHeuristic
	}

	return info, nil
}

// List returns all registered heuristic names, manifest order.
func (r *HeuristicRegistry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Build returns the named heuristic as a TwoPointHeuristic over g.
func (r *HeuristicRegistry) Build(name string, g *geograph.Graph) (TwoPointHeuristic, error) {
	fn, ok := r.builders[name]
	if !ok {
		return nil, ErrUnknownHeuristic
	}

	return fn(g), nil
}

func buildHaversine(g *geograph.Graph) TwoPointHeuristic {
	return heuristic.BuildGreatCircleTwoPoint(coordLookup(g))
}

func buildZero(_ *geograph.Graph) TwoPointHeuristic {
	return func(a, _ string) float64 { return heuristic.Zero(a) }
}

func runBFSTree(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	res, err := bfs.Search(g, startID, goalID, bfs.WithContext(opts.Ctx), bfs.WithObserver(opts.Observer))
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Found: res.Found, PathIDs: res.PathIDs, Cost: res.Cost}, nil
}

func runBFSGraph(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	res, err := bfs.Search(g, startID, goalID, bfs.WithContext(opts.Ctx), bfs.WithObserver(opts.Observer), bfs.WithGraphMode())
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Found: res.Found, PathIDs: res.PathIDs, Cost: res.Cost}, nil
}

func runDFSTree(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	res, err := dfs.Search(g, startID, goalID, dfs.WithContext(opts.Ctx), dfs.WithObserver(opts.Observer))
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Found: res.Found, PathIDs: res.PathIDs, Cost: res.Cost}, nil
}

func runDFSGraph(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	res, err := dfs.Search(g, startID, goalID, dfs.WithContext(opts.Ctx), dfs.WithObserver(opts.Observer), dfs.WithGraphMode())
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Found: res.Found, PathIDs: res.PathIDs, Cost: res.Cost}, nil
}

func runUCS(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	res, err := ucs.Search(g, startID, goalID, ucs.WithContext(opts.Ctx), ucs.WithObserver(opts.Observer))
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Found: res.Found, PathIDs: res.PathIDs, Cost: res.Cost}, nil
}

func runAStar(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	h := opts.Heuristic
	if h == nil {
		h = ForGoal(buildHaversine(g), goalID)
	}
	res, err := astar.Search(g, startID, goalID, astar.WithContext(opts.Ctx), astar.WithObserver(opts.Observer), astar.WithHeuristic(h))
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Found: res.Found, PathIDs: res.PathIDs, Cost: res.Cost}, nil
}

func runBidirectional(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	res, err := bidirectional.Search(g, startID, goalID, bidirectional.WithContext(opts.Ctx), bidirectional.WithObserver(opts.Observer))
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Found: res.Found, PathIDs: res.PathIDs, Cost: res.Cost}, nil
}

func runDStarLite(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error) {
	two := opts.TwoPointHeuristic
	if two == nil {
		two = buildHaversine(g)
	}
	p, err := dstarlite.New(g, startID, goalID, dstarlite.Heuristic(two))
	if err != nil {
		return PathResult{}, err
	}
	path, cost, found := p.Path()

	return PathResult{Found: found, PathIDs: path, Cost: cost}, nil
}
