package analysis

import (
	"math"
	"sort"
)

const (
	// triangleThreshold bounds the strong subgraph scanned for 3-cliques.
	triangleThreshold = 0.7
	// hubFraction of connected members (ceiling) counts as communication hubs.
	hubFraction = 0.2
)

// IdentifyPatterns surfaces higher-level collaboration patterns from the
// connection list. Groupings are caller-defined and consumed as opaque ID
// sets; the detector never interprets them.
func (a *Analyzer) IdentifyPatterns(conns []Connection, groupings ExternalGroupings) PatternReport {
	return PatternReport{
		MentorshipPairs:   mentorshipPairs(conns),
		InnovationCluster: innovationCluster(conns, groupings.Innovators),
		QualityTriangles:  qualityTriangles(conns),
		CommunicationHubs: communicationHubs(conns),
	}
}

// mentorshipPairs are strong_gravity connections with lopsided activity:
// a strong tie flowing mostly one way reads as mentoring.
func mentorshipPairs(conns []Connection) []MentorshipPair {
	pairs := []MentorshipPair{}
	for _, c := range conns {
		if c.Type == StrongGravity && c.Reciprocity < 0.5 {
			pairs = append(pairs, MentorshipPair{
				ConnectionID: c.ID,
				SourceID:     c.SourceID,
				TargetID:     c.TargetID,
				Strength:     c.Strength,
				Reciprocity:  c.Reciprocity,
			})
		}
	}
	return pairs
}

// innovationCluster is the deduplicated set of members on quantum_entangle
// connections whose endpoints both belong to the caller's innovator grouping,
// in order of first appearance.
func innovationCluster(conns []Connection, innovators []string) []string {
	grouping := make(map[string]bool, len(innovators))
	for _, id := range innovators {
		grouping[id] = true
	}

	seen := make(map[string]bool)
	cluster := []string{}
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			cluster = append(cluster, id)
		}
	}

	for _, c := range conns {
		if c.Type == QuantumEntangle && grouping[c.SourceID] && grouping[c.TargetID] {
			add(c.SourceID)
			add(c.TargetID)
		}
	}
	return cluster
}

// qualityTriangles enumerates fully-connected member triples over connections
// stronger than the triangle threshold. The triple scan is O(k^3) in the
// strong-edge count, which is fine for tens to low hundreds of members; swap
// in an adjacency-based counter before pointing this at larger graphs.
func qualityTriangles(conns []Connection) []Triangle {
	strong := make([]Connection, 0, len(conns))
	for _, c := range conns {
		if c.Strength > triangleThreshold {
			strong = append(strong, c)
		}
	}

	triangles := []Triangle{}
	for i := 0; i < len(strong); i++ {
		for j := i + 1; j < len(strong); j++ {
			for k := j + 1; k < len(strong); k++ {
				if tri, ok := closedTriple(strong[i], strong[j], strong[k]); ok {
					triangles = append(triangles, tri)
				}
			}
		}
	}
	return triangles
}

// closedTriple reports whether three edges share exactly three distinct
// endpoints, i.e. form a triangle.
func closedTriple(a, b, c Connection) (Triangle, bool) {
	seen := make(map[string]bool, 6)
	var tri Triangle
	n := 0
	for _, id := range []string{a.SourceID, a.TargetID, b.SourceID, b.TargetID, c.SourceID, c.TargetID} {
		if seen[id] {
			continue
		}
		seen[id] = true
		if n == 3 {
			return Triangle{}, false
		}
		tri[n] = id
		n++
	}
	return tri, n == 3
}

// communicationHubs ranks members by raw connection count, not strength, and
// keeps the top 20% (ceiling). The stable sort resolves boundary ties by
// first appearance in the connection list.
func communicationHubs(conns []Connection) []Hub {
	counts := make(map[string]int)
	order := []string{}
	touch := func(id string) {
		if _, ok := counts[id]; !ok {
			order = append(order, id)
		}
		counts[id]++
	}
	for _, c := range conns {
		touch(c.SourceID)
		touch(c.TargetID)
	}

	hubs := make([]Hub, 0, len(order))
	for _, id := range order {
		hubs = append(hubs, Hub{MemberID: id, Connections: counts[id]})
	}
	sort.SliceStable(hubs, func(i, j int) bool { return hubs[i].Connections > hubs[j].Connections })

	top := int(math.Ceil(hubFraction * float64(len(hubs))))
	return hubs[:top]
}
