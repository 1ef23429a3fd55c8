package analysis

import (
	"fmt"

	"github.com/ZanzyTHEbar/team-gravity/internal/types"
)

// Recommendation rule thresholds.
const (
	lowDensity           = 0.3
	mentoringReciprocity = 0.3
	mentoringStrength    = 0.5
)

// GenerateRecommendations evaluates each rule independently and emits its
// text when the condition holds, in fixed rule order. The list may be empty.
func (a *Analyzer) GenerateRecommendations(conns []Connection, members []types.Member, structure NetworkStructure) []string {
	recs := []string{}

	if structure.Density < lowDensity {
		recs = append(recs, "Network density is low. Encourage cross-group collaboration through shared projects or pairing rotations to create more connection paths.")
	}

	if n := len(structure.Isolates); n > 0 {
		recs = append(recs, fmt.Sprintf("%d member(s) have no recorded collaborations. Adopt inclusive practices such as onboarding buddies and rotating review assignments to bring them into the network.", n))
	}

	if len(structure.Bridges) > 0 {
		recs = append(recs, "A small set of members bridges otherwise separate clusters. Strengthen those ties and grow backups for them so no single person carries the cross-cluster load.")
	}

	if hasMentoringCandidate(conns) {
		recs = append(recs, "Some strong connections are highly one-directional. Consider a structured mentoring program to make that knowledge transfer explicit.")
	}

	if n := countByType(conns, QuantumEntangle); n > 0 {
		recs = append(recs, fmt.Sprintf("%d pair(s) show high synergy despite infrequent contact. Formalize these quantum-entangled pairs into shared initiatives to capture the latent potential.", n))
	}

	return recs
}

// hasMentoringCandidate reports a strong but one-sided connection.
func hasMentoringCandidate(conns []Connection) bool {
	for _, c := range conns {
		if c.Reciprocity < mentoringReciprocity && c.Strength > mentoringStrength {
			return true
		}
	}
	return false
}

func countByType(conns []Connection, kind ConnectionType) int {
	n := 0
	for _, c := range conns {
		if c.Type == kind {
			n++
		}
	}
	return n
}
