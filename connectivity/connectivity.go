// Package connectivity is a secondary structural oracle over a model's
// connection graph, using gonum.org/v1/gonum/graph rather than the
// hand-rolled BFS model.Assemble performs: the connection-pair set is
// mirrored into a simple.UndirectedGraph so graph/topo's component
// analysis can cross-check reachability, and an edge count can
// corroborate the realizability-driven isCyclic tag. This package never
// makes the authoritative determination — it is a structural sanity
// check the engine runs before the expensive angle-mapping phases.
package connectivity

import (
	"errors"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/brickcount/model"
)

// ErrDisconnected is returned by BuildGraph when the connection-pair set
// does not reach every block — a malformed input, not a numerical
// ambiguity, so it is reported as an ordinary error rather than a
// ProblematicReport.
var ErrDisconnected = errors.New("connectivity: connection set does not reach every block")

// BuildGraph mirrors a model's block/connection pair into a
// simple.UndirectedGraph, validates that it reaches every block, and
// returns the graph for further gonum/graph analysis.
func BuildGraph(blockCount int, connections []model.Connection) (*simple.UndirectedGraph, error) {
	g := simple.NewUndirectedGraph()
	for i := 0; i < blockCount; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, c := range connections {
		g.SetEdge(g.NewEdge(simple.Node(c.BlockA), simple.Node(c.BlockB)))
	}

	components := topo.ConnectedComponents(g)
	if len(components) != 1 {
		return g, ErrDisconnected
	}

	return g, nil
}

// HasCycle reports whether g's connection graph contains any cycle,
// corroborating (but never overriding) the realizability-based isCyclic
// tag model.IsCyclicAt computes — the geometric check stays
// authoritative; this is purely a structural sanity check run alongside
// it. A connected undirected graph has a cycle iff
// it has strictly more edges than (nodeCount - 1); topo.ConnectedComponents
// establishes connectedness, so the edge/node count comparison alone
// decides cyclicity once connectivity is confirmed.
func HasCycle(g *simple.UndirectedGraph) bool {
	nodeCount := g.Nodes().Len()
	edgeCount := 0
	it := g.Edges()
	for it.Next() {
		edgeCount++
	}

	return edgeCount > nodeCount-1
}
