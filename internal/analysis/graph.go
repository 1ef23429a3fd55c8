package analysis

import "github.com/ZanzyTHEbar/team-gravity/internal/types"

// materialityThreshold filters out connections too weak to matter. A strength
// of exactly 0.1 is excluded; anything above it is kept.
const materialityThreshold = 0.1

// aboveMateriality reports whether a strength clears the materiality cut.
func aboveMateriality(strength float64) bool {
	return strength > materialityThreshold
}

// PairID derives the stable connection ID from the unordered member pair, so
// records (A,B) and (B,A) always map to the same edge.
func PairID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "::" + b
}

// recordOutcome is the per-record result of the metrics+classification step,
// prior to deduplication.
type recordOutcome struct {
	pairID       string
	conn         Connection
	materialized bool
	skipped      bool
}

// evaluateRecord scores one record against the member index. Records that
// reference an unknown member, or pair a member with itself, are skipped
// rather than failing the run.
func evaluateRecord(rec types.CollaborationRecord, index map[string]types.Member) recordOutcome {
	src, srcOK := index[rec.SourceID]
	dst, dstOK := index[rec.TargetID]
	if !srcOK || !dstOK || rec.SourceID == rec.TargetID {
		return recordOutcome{skipped: true}
	}

	metrics := ComputeMetrics(rec, src, dst)
	strength, kind := Classify(metrics, src, dst)

	out := recordOutcome{pairID: PairID(rec.SourceID, rec.TargetID)}
	if !aboveMateriality(strength) {
		return out
	}

	out.materialized = true
	out.conn = Connection{
		ID:              out.pairID,
		SourceID:        rec.SourceID,
		TargetID:        rec.TargetID,
		Strength:        strength,
		Type:            kind,
		Frequency:       metrics.Frequency,
		Reciprocity:     metrics.Reciprocity,
		Energy:          metrics.Velocity,
		DurationDays:    rec.PeriodEnd.Sub(rec.PeriodStart).Hours() / 24,
		LastInteraction: rec.PeriodEnd,
		Projects:        append([]string(nil), rec.SharedProjects...),
	}
	return out
}

// dedupeOutcomes walks outcomes in record order and keeps the first one seen
// per unordered pair. There is no merging: a later record for the same pair
// is dropped even if the first one fell below the materiality threshold.
func dedupeOutcomes(outcomes []recordOutcome) (conns []Connection, skipped int) {
	seen := make(map[string]bool, len(outcomes))
	conns = make([]Connection, 0, len(outcomes))

	for _, out := range outcomes {
		if out.skipped {
			skipped++
			continue
		}
		if seen[out.pairID] {
			continue
		}
		seen[out.pairID] = true
		if out.materialized {
			conns = append(conns, out.conn)
		}
	}
	return conns, skipped
}

// memberIndex builds an ID lookup. The first entry wins for duplicate IDs,
// which are an input contract violation we tolerate rather than report.
func memberIndex(members []types.Member) map[string]types.Member {
	index := make(map[string]types.Member, len(members))
	for _, m := range members {
		if _, dup := index[m.ID]; dup {
			continue
		}
		index[m.ID] = m
	}
	return index
}
