package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/connectivity"
	"github.com/katalvlaran/brickcount/model"
)

func conn(t *testing.T, a, b int) model.Connection {
	t.Helper()
	cpa := brick.ConnectionPoint{BrickIndex: 0, Corner: brick.SE, StudUp: true}
	cpb := brick.ConnectionPoint{BrickIndex: 0, Corner: brick.NW, StudUp: false}
	c, err := model.NewConnection(a, b, cpa, cpb, 0, 1)
	require.NoError(t, err)

	return c
}

// TestBuildGraph_ConnectedSpanningTree_NoError checks the normal case: a
// three-block path connection-pair set reaches every block.
func TestBuildGraph_ConnectedSpanningTree_NoError(t *testing.T) {
	conns := []model.Connection{conn(t, 0, 1), conn(t, 1, 2)}

	g, err := connectivity.BuildGraph(3, conns)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nodes().Len())
}

// TestBuildGraph_Disconnected_ErrDisconnected checks that a connection-pair
// set leaving a block unreached is reported as ErrDisconnected rather than
// a numerical ambiguity.
func TestBuildGraph_Disconnected_ErrDisconnected(t *testing.T) {
	conns := []model.Connection{conn(t, 0, 1)}

	_, err := connectivity.BuildGraph(3, conns)
	assert.ErrorIs(t, err, connectivity.ErrDisconnected)
}

// TestHasCycle_SpanningTree_NoCycle checks that a connected graph with
// exactly nodeCount-1 edges is reported cycle-free.
func TestHasCycle_SpanningTree_NoCycle(t *testing.T) {
	conns := []model.Connection{conn(t, 0, 1), conn(t, 1, 2)}
	g, err := connectivity.BuildGraph(3, conns)
	require.NoError(t, err)

	assert.False(t, connectivity.HasCycle(g))
}

// TestHasCycle_ExtraClosingEdge_True checks that one edge beyond a spanning
// tree (closing a loop back to block 0) is detected as a cycle.
func TestHasCycle_ExtraClosingEdge_True(t *testing.T) {
	conns := []model.Connection{conn(t, 0, 1), conn(t, 1, 2), conn(t, 2, 0)}
	g, err := connectivity.BuildGraph(3, conns)
	require.NoError(t, err)

	assert.True(t, connectivity.HasCycle(g))
}
