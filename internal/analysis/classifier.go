package analysis

import "github.com/ZanzyTHEbar/team-gravity/internal/types"

// Strength weighting over the metrics vector.
var strengthWeights = struct {
	frequency, reciprocity, consistency, impact, synergy float64
}{
	frequency:   0.25,
	reciprocity: 0.20,
	consistency: 0.20,
	impact:      0.20,
	synergy:     0.15,
}

// Strength collapses a metrics vector into the scalar connection strength.
func Strength(m GravitationalMetrics) float64 {
	return strengthWeights.frequency*m.Frequency +
		strengthWeights.reciprocity*m.Reciprocity +
		strengthWeights.consistency*m.Consistency +
		strengthWeights.impact*m.Impact +
		strengthWeights.synergy*m.Synergy
}

// Classify maps a metrics vector plus the two member profiles to a strength
// score and a connection category. The rule chain is a priority cascade, not
// a set of exclusive predicates: the first matching rule wins, so an edge
// satisfying both strong_gravity and orbital_sync is strong_gravity.
func Classify(m GravitationalMetrics, src, dst types.Member) (float64, ConnectionType) {
	strength := Strength(m)

	switch {
	case strength > 0.8 && m.Reciprocity > 0.7 && m.Consistency > 0.7:
		return strength, StrongGravity
	case m.Frequency > 0.6 && m.Consistency < 0.5 && m.Synergy > 0.7:
		return strength, TidalForce
	case m.Synergy > 0.8 && m.Frequency < 0.5 && strength > 0.6:
		return strength, QuantumEntangle
	case lensCandidates(src, dst):
		return strength, GravitationalLens
	case m.Reciprocity > 0.8 && m.Consistency > 0.6:
		return strength, OrbitalSync
	case m.Frequency < 0.3 && strength > 0.5:
		return strength, CometTrajectory
	default:
		return strength, TidalForce
	}
}

// lensCandidates: at least one connector archetype and strong communication
// on both sides.
func lensCandidates(a, b types.Member) bool {
	connector := a.Archetype == types.ArchetypeConnector || b.Archetype == types.ArchetypeConnector
	return connector &&
		a.Contributions.Communication > 0.7 &&
		b.Contributions.Communication > 0.7
}
