package analysis

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/ZanzyTHEbar/team-gravity/internal/types"
)

// strongTieThreshold bounds the subgraph used for cluster detection. Bridges
// and isolates are computed over the full graph regardless of this threshold.
const strongTieThreshold = 0.6

// AnalyzeNetworkStructure computes the graph-global view of the connection
// list: density, strong-tie clusters, bridge members, isolates, and
// normalized weighted-degree centrality. Connections referencing members
// absent from the member list are ignored rather than reported.
func (a *Analyzer) AnalyzeNetworkStructure(conns []Connection, members []types.Member) NetworkStructure {
	mg := newMemberGraph(conns, members)

	clusters := mg.clusters()
	return NetworkStructure{
		Density:    mg.density(),
		Clusters:   clusters,
		Bridges:    mg.bridges(clusters),
		Isolates:   mg.isolates(),
		Centrality: mg.centrality(),
	}
}

// memberGraph holds the full and strong-tie projections of one analysis run.
// Member IDs map to dense gonum node IDs in input order, which pins every
// derived ordering to the caller's member order and keeps runs deterministic.
type memberGraph struct {
	full    *simple.WeightedUndirectedGraph
	strong  *simple.WeightedUndirectedGraph
	nodeFor map[string]int64
	idFor   map[int64]string
	order   map[string]int
	ids     []string // unique member IDs, input order
	conns   []Connection
}

func newMemberGraph(conns []Connection, members []types.Member) *memberGraph {
	mg := &memberGraph{
		full:    simple.NewWeightedUndirectedGraph(0, 0),
		strong:  simple.NewWeightedUndirectedGraph(0, 0),
		nodeFor: make(map[string]int64, len(members)),
		idFor:   make(map[int64]string, len(members)),
		order:   make(map[string]int, len(members)),
	}

	for _, m := range members {
		if _, dup := mg.nodeFor[m.ID]; dup {
			continue
		}
		id := int64(len(mg.ids))
		mg.nodeFor[m.ID] = id
		mg.idFor[id] = m.ID
		mg.order[m.ID] = len(mg.ids)
		mg.ids = append(mg.ids, m.ID)
		mg.full.AddNode(simple.Node(id))
		mg.strong.AddNode(simple.Node(id))
	}

	seen := make(map[string]bool, len(conns))
	for _, c := range conns {
		u, okU := mg.nodeFor[c.SourceID]
		v, okV := mg.nodeFor[c.TargetID]
		if !okU || !okV || u == v {
			continue
		}
		key := PairID(c.SourceID, c.TargetID)
		if seen[key] {
			continue
		}
		seen[key] = true

		edge := simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: c.Strength}
		mg.full.SetWeightedEdge(edge)
		if c.Strength >= strongTieThreshold {
			mg.strong.SetWeightedEdge(edge)
		}
		mg.conns = append(mg.conns, c)
	}
	return mg
}

// density is the realized share of the n*(n-1)/2 possible edges.
func (mg *memberGraph) density() float64 {
	n := float64(len(mg.ids))
	if n <= 1 {
		return 0
	}
	return float64(len(mg.conns)) / (n * (n - 1) / 2)
}

// clusters are the connected components of the strong-tie subgraph.
// Single-member components are not clusters and are discarded.
func (mg *memberGraph) clusters() [][]string {
	var out [][]string
	for _, comp := range topo.ConnectedComponents(mg.strong) {
		if len(comp) < 2 {
			continue
		}
		ids := make([]string, 0, len(comp))
		for _, n := range comp {
			ids = append(ids, mg.idFor[n.ID()])
		}
		sort.Slice(ids, func(i, j int) bool { return mg.order[ids[i]] < mg.order[ids[j]] })
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return mg.order[out[i][0]] < mg.order[out[j][0]] })
	return out
}

// bridges are members whose own connections, at any strength, join two
// members assigned to different clusters. Both endpoints of such a
// connection join the bridge set.
func (mg *memberGraph) bridges(clusters [][]string) []string {
	clusterOf := make(map[string]int)
	for ci, cluster := range clusters {
		for _, id := range cluster {
			clusterOf[id] = ci
		}
	}

	set := make(map[string]bool)
	for _, c := range mg.conns {
		cu, okU := clusterOf[c.SourceID]
		cv, okV := clusterOf[c.TargetID]
		if okU && okV && cu != cv {
			set[c.SourceID] = true
			set[c.TargetID] = true
		}
	}

	bridges := make([]string, 0, len(set))
	for _, id := range mg.ids {
		if set[id] {
			bridges = append(bridges, id)
		}
	}
	return bridges
}

// isolates are members with zero connections at any strength.
func (mg *memberGraph) isolates() []string {
	isolates := []string{}
	for _, id := range mg.ids {
		if mg.full.From(mg.nodeFor[id]).Len() == 0 {
			isolates = append(isolates, id)
		}
	}
	return isolates
}

// centrality is the per-member weighted degree normalized by the maximum
// weighted degree. All zeros when the graph has no edges at all.
func (mg *memberGraph) centrality() map[string]float64 {
	degree := make(map[string]float64, len(mg.ids))
	for _, c := range mg.conns {
		degree[c.SourceID] += c.Strength
		degree[c.TargetID] += c.Strength
	}

	maxDegree := 0.0
	for _, id := range mg.ids {
		if degree[id] > maxDegree {
			maxDegree = degree[id]
		}
	}

	centrality := make(map[string]float64, len(mg.ids))
	for _, id := range mg.ids {
		if maxDegree == 0 {
			centrality[id] = 0
			continue
		}
		centrality[id] = degree[id] / maxDegree
	}
	return centrality
}
