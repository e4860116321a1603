// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, MaxDistance, InfEdgeThreshold, path
// reconstruction, and edge cases such as single-vertex and self-loop graphs.
package dijkstra_test

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fibheap/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := dijkstra.NewAdjacency(false)
	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("A", "B", 1)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := dijkstra.NewAdjacency(true)
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", -5) // unreachable from A, still rejected
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "C→D")
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness without and with ReturnPath.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle_NoPath(t *testing.T) {
	// Graph: A—B(1), B—C(2), A—C(5), undirected.
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	// Distance from A to C should be 3 via A→B→C; C is first queued at 5 and
	// then lowered by decrease-key.
	assert.Equal(t, int64(3), dist["C"])
	assert.Nil(t, prev, "prev should be nil when ReturnPath=false")
}

func TestDijkstra_ChainWithPath(t *testing.T) {
	// Graph:
	// A—B—C—D—E
	//         |
	//         F—G
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("D", "E", 1)
	g.AddEdge("D", "F", 1)
	g.AddEdge("F", "G", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{
		"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5,
	}, dist)
	assert.Equal(t, "", prev["A"])
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, "D", prev["F"])

	path, err := dijkstra.PathTo(prev, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "F", "G"}, path)
}

// ------------------------------------------------------------------------
// 3. Directed Graph Tests: Ensure correct handling of one-way edges.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := dijkstra.NewAdjacency(true)
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["C"])
	assert.Equal(t, int64(2), dist["B"])
	assert.Equal(t, int64(5), dist["D"])

	// Edges are one-way: nothing leads back to A from D.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("D"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["A"])
}

// ------------------------------------------------------------------------
// 4. MaxDistance and InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Linear graph: A—B(1)—C(1)—D(1)
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(math.MaxInt64), dist["C"])
	assert.Equal(t, int64(math.MaxInt64), dist["D"])
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("A", "B", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(math.MaxInt64), dist["B"])
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// Graph: A—B(2), B—C(4), A—C(10)
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 4)
	g.AddEdge("A", "C", 10)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), dist["C"])
}

func TestDijkstra_InfObstacle_Grid(t *testing.T) {
	// 3×3 grid where the only edges into "1,1" weigh the threshold.
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("0,0", "0,1", 1)
	g.AddEdge("0,0", "1,0", 1)
	g.AddEdge("0,1", "0,2", 1)
	g.AddEdge("1,0", "2,0", 1)
	g.AddEdge("2,1", "2,2", 1)
	threshold := int64(5)
	g.AddEdge("1,0", "1,1", threshold)
	g.AddEdge("1,1", "1,2", threshold)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("0,0"), dijkstra.WithInfEdgeThreshold(threshold))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["1,1"])
	assert.Equal(t, int64(2), dist["2,0"])
}

// ------------------------------------------------------------------------
// 5. Edge Cases: Single vertex, Self-loop, PathTo errors.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	g := dijkstra.NewAdjacency(false)
	g.AddVertex("Solo")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["Solo"])
	assert.Equal(t, "", prev["Solo"])

	path, err := dijkstra.PathTo(prev, "Solo", "Solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Solo"}, path)
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("X", "X", 0)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["X"])
	assert.Equal(t, "", prev["X"])
}

func TestDijkstra_HugeWeightDoesNotWrap(t *testing.T) {
	// s→a is cheap, a→b and a→s are finite but too heavy to add to dist[a].
	g := dijkstra.NewAdjacency(true)
	g.AddEdge("s", "a", 10)
	g.AddEdge("a", "b", math.MaxInt64-5)
	g.AddEdge("a", "s", math.MaxInt64-5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("s"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["s"])
	assert.Equal(t, int64(10), dist["a"])
	assert.Equal(t, int64(math.MaxInt64), dist["b"], "b is beyond int64 and stays unreachable")
	assert.Equal(t, "", prev["b"])

	// An edge that fits exactly is still taken.
	g2 := dijkstra.NewAdjacency(true)
	g2.AddEdge("s", "a", 10)
	g2.AddEdge("a", "b", math.MaxInt64-11)
	dist, _, err = dijkstra.Dijkstra(g2, dijkstra.Source("s"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), dist["b"])
}

func TestPathTo_Errors(t *testing.T) {
	g := dijkstra.NewAdjacency(true)
	g.AddEdge("A", "B", 1)
	g.AddVertex("C")

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	_, err = dijkstra.PathTo(prev, "A", "C")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, err = dijkstra.PathTo(prev, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 6. Cross-check against Floyd–Warshall on random graphs.
// ------------------------------------------------------------------------

func TestDijkstra_MatchesFloydWarshall(t *testing.T) {
	const inf = int64(math.MaxInt64)
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		n := 5 + r.Intn(20)
		g := dijkstra.NewAdjacency(true)
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("V%d", i)
			g.AddVertex(ids[i])
		}

		fw := make([][]int64, n)
		for i := range fw {
			fw[i] = make([]int64, n)
			for j := range fw[i] {
				fw[i][j] = inf
			}
			fw[i][i] = 0
		}
		for k := 0; k < n*3; k++ {
			u, v, w := r.Intn(n), r.Intn(n), int64(r.Intn(50))
			g.AddEdge(ids[u], ids[v], w)
			fw[u][v] = min(fw[u][v], w)
		}
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if fw[i][k] != inf && fw[k][j] != inf && fw[i][k]+fw[k][j] < fw[i][j] {
						fw[i][j] = fw[i][k] + fw[k][j]
					}
				}
			}
		}

		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(ids[0]), dijkstra.WithReturnPath())
		require.NoError(t, err)
		for j, id := range ids {
			require.Equal(t, fw[0][j], dist[id], "round %d vertex %s", round, id)
			if dist[id] == inf || j == 0 {
				continue
			}
			path, err := dijkstra.PathTo(prev, ids[0], id)
			require.NoError(t, err)
			assert.Equal(t, ids[0], path[0])
			assert.Equal(t, id, path[len(path)-1])
		}
	}
}

// ------------------------------------------------------------------------
// 7. Logging.
// ------------------------------------------------------------------------

func TestDijkstra_LoggerTracesDecreaseKey(t *testing.T) {
	g := dijkstra.NewAdjacency(false)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, `"message":"settle"`))
	assert.Contains(t, out, `"message":"decrease-key"`)
	assert.Contains(t, out, `"vertex":"C","dist":3`)
}
