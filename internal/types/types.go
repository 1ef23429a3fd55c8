package types

import "time"

// Archetype is the categorical role assigned to a member. The set is closed;
// values outside it are tolerated by the engine and scored neutrally.
type Archetype string

const (
	ArchetypePioneer    Archetype = "pioneer"
	ArchetypeGuardian   Archetype = "guardian"
	ArchetypeConnector  Archetype = "connector"
	ArchetypeInnovator  Archetype = "innovator"
	ArchetypeSpecialist Archetype = "specialist"
	ArchetypeMentor     Archetype = "mentor"
)

// Archetypes lists the known archetypes in canonical order.
var Archetypes = []Archetype{
	ArchetypePioneer,
	ArchetypeGuardian,
	ArchetypeConnector,
	ArchetypeInnovator,
	ArchetypeSpecialist,
	ArchetypeMentor,
}

// Contributions holds a member's aggregate contribution counters.
type Contributions struct {
	Commits       int     `json:"commits"`
	Reviews       int     `json:"reviews"`
	Communication float64 `json:"communication"` // normalized to [0,1]
}

// Member describes one participant. Supplied by the caller; the engine never
// mutates it and only ever references members by ID.
type Member struct {
	ID            string        `json:"id"`
	Archetype     Archetype     `json:"archetype"`
	Languages     []string      `json:"languages"`
	Expertise     []string      `json:"expertise"`
	Contributions Contributions `json:"contributions"`
}

// QualityMetrics are the per-record quality sub-metrics of a collaboration.
type QualityMetrics struct {
	PRMergeRate         float64       `json:"pr_merge_rate"`  // [0,1]
	ReviewQuality       float64       `json:"review_quality"` // [0,1]
	IssueResolutionTime time.Duration `json:"issue_resolution_time"`
}

// InteractionCounts are the raw pairwise interaction counters of a record.
type InteractionCounts struct {
	Commits      int `json:"commits"`
	PullRequests int `json:"pull_requests"`
	CodeReviews  int `json:"code_reviews"`
	Issues       int `json:"issues"`
	Comments     int `json:"comments"`
}

// Total returns the sum of all interaction counters.
func (c InteractionCounts) Total() int {
	return c.Commits + c.PullRequests + c.CodeReviews + c.Issues + c.Comments
}

// CollaborationRecord is one raw pairwise interaction record. Source/target
// order carries no meaning: (A,B) and (B,A) describe the same relationship.
type CollaborationRecord struct {
	SourceID       string            `json:"source_id"`
	TargetID       string            `json:"target_id"`
	Interactions   InteractionCounts `json:"interactions"`
	SharedProjects []string          `json:"shared_projects"`
	PeriodStart    time.Time         `json:"period_start"`
	PeriodEnd      time.Time         `json:"period_end"`
	Quality        QualityMetrics    `json:"quality"`
}

// DaysActive returns the record's time window in days, floored at 1 so that
// ratio features stay defined for sub-day windows.
func (r CollaborationRecord) DaysActive() float64 {
	days := r.PeriodEnd.Sub(r.PeriodStart).Hours() / 24
	if days < 1 {
		return 1
	}
	return days
}

// AnalyzeRequest is the request body for the full-pipeline endpoint.
type AnalyzeRequest struct {
	Members    []Member              `json:"members" binding:"required"`
	Records    []CollaborationRecord `json:"records" binding:"required"`
	Innovators []string              `json:"innovators,omitempty"`
}
