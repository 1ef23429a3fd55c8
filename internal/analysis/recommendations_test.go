package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRecommendations_AllRulesFireInOrder(t *testing.T) {
	a := NewAnalyzer()
	conns := []Connection{
		typedConn("a", "b", 0.6, 0.2, TidalForce),
		typedConn("c", "d", 0.65, 0.8, QuantumEntangle),
		typedConn("e", "f", 0.65, 0.8, QuantumEntangle),
	}
	structure := NetworkStructure{
		Density:  0.2,
		Isolates: []string{"x"},
		Bridges:  []string{"y"},
	}

	recs := a.GenerateRecommendations(conns, nil, structure)

	assert.Len(t, recs, 5)
	assert.Contains(t, recs[0], "Network density is low")
	assert.Contains(t, recs[1], "1 member(s) have no recorded collaborations")
	assert.Contains(t, recs[2], "bridges otherwise separate clusters")
	assert.Contains(t, recs[3], "structured mentoring program")
	assert.Contains(t, recs[4], "2 pair(s) show high synergy")
}

func TestGenerateRecommendations_HealthyNetwork(t *testing.T) {
	a := NewAnalyzer()
	conns := []Connection{
		typedConn("a", "b", 0.9, 0.9, StrongGravity),
	}
	structure := NetworkStructure{Density: 0.5}

	recs := a.GenerateRecommendations(conns, nil, structure)

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestGenerateRecommendations_DensityBoundary(t *testing.T) {
	a := NewAnalyzer()

	atCutoff := a.GenerateRecommendations(nil, nil, NetworkStructure{Density: 0.3})
	assert.Empty(t, atCutoff, "density exactly at the cutoff is not low")

	below := a.GenerateRecommendations(nil, nil, NetworkStructure{Density: 0.29})
	assert.Len(t, below, 1)
}

func TestHasMentoringCandidate(t *testing.T) {
	tests := []struct {
		name     string
		conns    []Connection
		expected bool
	}{
		{
			name:     "strong one-sided connection qualifies",
			conns:    []Connection{typedConn("a", "b", 0.6, 0.2, StrongGravity)},
			expected: true,
		},
		{
			name:     "reciprocity exactly at the cutoff does not qualify",
			conns:    []Connection{typedConn("a", "b", 0.6, 0.3, StrongGravity)},
			expected: false,
		},
		{
			name:     "strength exactly at the cutoff does not qualify",
			conns:    []Connection{typedConn("a", "b", 0.5, 0.2, StrongGravity)},
			expected: false,
		},
		{
			name:     "no connections",
			conns:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasMentoringCandidate(tt.conns))
		})
	}
}

func TestCountByType(t *testing.T) {
	conns := []Connection{
		typedConn("a", "b", 0.6, 0.8, QuantumEntangle),
		typedConn("c", "d", 0.9, 0.9, StrongGravity),
		typedConn("e", "f", 0.6, 0.8, QuantumEntangle),
	}

	assert.Equal(t, 2, countByType(conns, QuantumEntangle))
	assert.Equal(t, 1, countByType(conns, StrongGravity))
	assert.Equal(t, 0, countByType(conns, CometTrajectory))
}
