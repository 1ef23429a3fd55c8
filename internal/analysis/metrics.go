package analysis

import "github.com/ZanzyTHEbar/team-gravity/internal/types"

// ComputeMetrics turns one collaboration record plus both member profiles
// into the gravitational metrics vector. Pure function, no side effects.
func ComputeMetrics(rec types.CollaborationRecord, src, dst types.Member) GravitationalMetrics {
	days := rec.DaysActive()

	frequency := capAtOne(float64(rec.Interactions.Total()) / days / 10)

	codeActivity := float64(rec.Interactions.Commits + rec.Interactions.PullRequests + rec.Interactions.CodeReviews)
	consistency := capAtOne(codeActivity / days / 5)

	// Impact and synergy stay unclamped on purpose; see GravitationalMetrics.
	impact := 0.4*rec.Quality.PRMergeRate +
		0.3*rec.Quality.ReviewQuality +
		0.3*float64(len(rec.SharedProjects))

	synergy := 0.4*ArchetypeSynergy(src.Archetype, dst.Archetype) +
		0.3*complementarity(src.Languages, dst.Languages) +
		0.3*complementarity(src.Expertise, dst.Expertise)

	deliveryRate := float64(rec.Interactions.Commits + rec.Interactions.PullRequests + rec.Interactions.Issues)
	velocity := capAtOne(deliveryRate / days * rec.Quality.PRMergeRate * rec.Quality.ReviewQuality / 10)

	return GravitationalMetrics{
		Frequency:   frequency,
		Reciprocity: contributionBalance(src, dst),
		Consistency: consistency,
		Impact:      impact,
		Synergy:     synergy,
		Velocity:    velocity,
	}
}

// contributionBalance is min/max over the two members' commit+review totals.
// Two fully inactive members are scored 1: a balanced absence of activity,
// which keeps the ratio defined without poisoning downstream comparisons.
func contributionBalance(a, b types.Member) float64 {
	ca := float64(a.Contributions.Commits + a.Contributions.Reviews)
	cb := float64(b.Contributions.Commits + b.Contributions.Reviews)
	lo, hi := ca, cb
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 1
	}
	return lo / hi
}

func capAtOne(x float64) float64 {
	if x > 1 {
		return 1
	}
	return x
}
