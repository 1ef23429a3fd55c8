package analysis

import "time"

// GravitationalMetrics is the six-dimensional feature vector derived from a
// single collaboration record. Frequency, consistency and velocity are capped
// at 1 in the computation and reciprocity is <=1 by construction; impact and
// synergy are intentionally left unclamped and may exceed 1. The strength
// weighting downstream was tuned with occasional >1 values, so do not cap them.
type GravitationalMetrics struct {
	Frequency   float64 `json:"frequency"`
	Reciprocity float64 `json:"reciprocity"`
	Consistency float64 `json:"consistency"`
	Impact      float64 `json:"impact"`
	Synergy     float64 `json:"synergy"`
	Velocity    float64 `json:"velocity"`
}

// ConnectionType is the qualitative category of a relationship.
type ConnectionType string

const (
	StrongGravity     ConnectionType = "strong_gravity"
	TidalForce        ConnectionType = "tidal_force"
	QuantumEntangle   ConnectionType = "quantum_entangle"
	GravitationalLens ConnectionType = "gravitational_lens"
	OrbitalSync       ConnectionType = "orbital_sync"
	CometTrajectory   ConnectionType = "comet_trajectory"
)

// Connection is one weighted, undirected graph edge between two members.
// At most one Connection exists per unordered member pair, and connections
// with strength <= 0.1 are never materialized.
type Connection struct {
	ID              string         `json:"id"`
	SourceID        string         `json:"source_id"`
	TargetID        string         `json:"target_id"`
	Strength        float64        `json:"strength"`
	Type            ConnectionType `json:"type"`
	Frequency       float64        `json:"frequency"`
	Reciprocity     float64        `json:"reciprocity"`
	Energy          float64        `json:"energy"` // velocity metric
	DurationDays    float64        `json:"duration_days"`
	LastInteraction time.Time      `json:"last_interaction"`
	Projects        []string       `json:"projects"`
}

// Touches reports whether the connection is incident to the given member.
func (c Connection) Touches(memberID string) bool {
	return c.SourceID == memberID || c.TargetID == memberID
}

// NetworkStructure is the graph-global analysis result.
type NetworkStructure struct {
	Density    float64            `json:"density"`
	Clusters   [][]string         `json:"clusters"`
	Bridges    []string           `json:"bridges"`
	Isolates   []string           `json:"isolates"`
	Centrality map[string]float64 `json:"centrality"`
}

// ExternalGroupings carries caller-defined member groupings that the pattern
// detector consumes as opaque ID sets.
type ExternalGroupings struct {
	Innovators []string `json:"innovators"`
}

// MentorshipPair is a one-directional strong tie: a strong_gravity connection
// whose activity is lopsided enough to look like mentoring.
type MentorshipPair struct {
	ConnectionID string  `json:"connection_id"`
	SourceID     string  `json:"source_id"`
	TargetID     string  `json:"target_id"`
	Strength     float64 `json:"strength"`
	Reciprocity  float64 `json:"reciprocity"`
}

// Triangle is a fully-connected triple of members over strong connections.
type Triangle [3]string

// Hub is a member ranked by raw connection count.
type Hub struct {
	MemberID    string `json:"member_id"`
	Connections int    `json:"connections"`
}

// PatternReport aggregates the higher-level patterns detected on a graph.
type PatternReport struct {
	MentorshipPairs   []MentorshipPair `json:"mentorship_pairs"`
	InnovationCluster []string         `json:"innovation_cluster"`
	QualityTriangles  []Triangle       `json:"quality_triangles"`
	CommunicationHubs []Hub            `json:"communication_hubs"`
}

// Report is the output of a full pipeline run.
type Report struct {
	Connections     []Connection     `json:"connections"`
	Structure       NetworkStructure `json:"structure"`
	Patterns        PatternReport    `json:"patterns"`
	Recommendations []string         `json:"recommendations"`
	SkippedRecords  int              `json:"skipped_records"`
}
