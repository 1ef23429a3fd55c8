package analysis

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ZanzyTHEbar/team-gravity/internal/types"
)

// Analyzer runs the collaboration pipeline. It holds no per-run state, so a
// single instance is safe for concurrent use across independent runs.
type Analyzer struct {
	workers int
}

// NewAnalyzer creates an analyzer sized to the available cores.
func NewAnalyzer() *Analyzer {
	return &Analyzer{workers: runtime.GOMAXPROCS(0)}
}

// AnalyzeCollaboration derives the deduplicated connection list from raw
// records. Per-record scoring is independent, so it fans out across workers;
// deduplication runs after the join, in record order, keeping reruns on
// identical input byte-identical. The second return value counts records
// skipped for referencing unknown members. Nothing here is fatal: the worst
// outcome is an empty list.
func (a *Analyzer) AnalyzeCollaboration(records []types.CollaborationRecord, members []types.Member) ([]Connection, int) {
	index := memberIndex(members)
	outcomes := make([]recordOutcome, len(records))

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i := range records {
		g.Go(func() error {
			outcomes[i] = evaluateRecord(records[i], index)
			return nil
		})
	}
	// Workers never return errors; the group is only the fan-out/join barrier.
	_ = g.Wait()

	return dedupeOutcomes(outcomes)
}

// Run executes the full pipeline over one input batch and returns the
// complete report. Zero members, zero records, or a fully disconnected graph
// are valid inputs producing empty or zero-valued sections, never an error.
func (a *Analyzer) Run(records []types.CollaborationRecord, members []types.Member, groupings ExternalGroupings) Report {
	conns, skipped := a.AnalyzeCollaboration(records, members)
	structure := a.AnalyzeNetworkStructure(conns, members)
	patterns := a.IdentifyPatterns(conns, groupings)

	return Report{
		Connections:     conns,
		Structure:       structure,
		Patterns:        patterns,
		Recommendations: a.GenerateRecommendations(conns, members, structure),
		SkippedRecords:  skipped,
	}
}
