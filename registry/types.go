// Package registry loads the built-in algorithm and heuristic catalog from
// an embedded YAML manifest and pairs each entry with the concrete factory
// function that runs it, so callers can select a pathfinding algorithm or
// heuristic by name at runtime instead of importing every package
// directly.
package registry

import (
	"context"
	"embed"
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/nvardanyan/pathtrace/geograph"
	"github.com/nvardanyan/pathtrace/heuristic"
	"github.com/nvardanyan/pathtrace/search"
)

//go:embed manifest.yaml
var manifestFS embed.FS

// Sentinel errors returned by the registries.
var (
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")
	ErrUnknownHeuristic = errors.New("registry: unknown heuristic")
)

// AlgorithmInfo describes one registered algorithm's metadata.
type AlgorithmInfo struct {
	Name              string `yaml:"name"`
	Description       string `yaml:"description"`
	RequiresHeuristic bool   `yaml:"requiresHeuristic"`
}

// HeuristicInfo describes one registered heuristic's metadata.
type HeuristicInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type manifest struct {
	Algorithms []AlgorithmInfo `yaml:"algorithms"`
	Heuristics []HeuristicInfo `yaml:"heuristics"`
}

func loadManifest() (manifest, error) {
	raw, err := manifestFS.ReadFile("manifest.yaml")
	if err != nil {
		return manifest{}, err
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return manifest{}, err
	}

	return m, nil
}

// PathResult is the uniform outcome of running any registered algorithm.
type PathResult struct {
	Found   bool
	PathIDs []string
	Cost    float64
}

// RunOptions bundles the inputs every algorithm factory may use, though
// not all algorithms consult every field (e.g. bfs ignores either
// heuristic field). Heuristic is the goal-curried, single-argument shape
// astar.WithHeuristic expects; TwoPointHeuristic is the same underlying
// heuristic in the two-argument shape dstarlite needs, since its start
// vertex moves and a goal-curried function can't be re-curried cheaply.
type RunOptions struct {
	Ctx               context.Context
	Observer          search.Observer
	Heuristic         func(id string) float64
	TwoPointHeuristic TwoPointHeuristic
}

// AlgorithmFunc runs one registered algorithm from startID to goalID over g.
type AlgorithmFunc func(g *geograph.Graph, startID, goalID string, opts RunOptions) (PathResult, error)

// TwoPointHeuristic estimates the cost between any two vertex ids — the
// shape dstarlite needs, since its heuristic is re-evaluated against a
// moving start vertex rather than a single fixed goal.
type TwoPointHeuristic func(a, b string) float64

// HeuristicFunc builds a TwoPointHeuristic over g's vertex coordinates.
type HeuristicFunc func(g *geograph.Graph) TwoPointHeuristic

// ForGoal curries a TwoPointHeuristic against a fixed goal, yielding the
// single-argument shape astar.WithHeuristic expects.
func ForGoal(h TwoPointHeuristic, goalID string) func(id string) float64 {
	return func(id string) float64 { return h(id, goalID) }
}

func coordLookup(g *geograph.Graph) heuristic.CoordLookup {
	return func(id string) (lat, lon float64, err error) {
		v, err := g.GetVertex(id)
		if err != nil {
			return 0, 0, err
		}

		return v.Lat, v.Lon, nil
	}
}
