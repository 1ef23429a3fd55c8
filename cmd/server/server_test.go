package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ZanzyTHEbar/team-gravity/internal/analysis"
	"github.com/ZanzyTHEbar/team-gravity/internal/types"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return setupRouter(time.Minute)
}

func testMembers() []types.Member {
	return []types.Member{
		{
			ID:        "alice",
			Archetype: types.ArchetypePioneer,
			Languages: []string{"go"},
			Expertise: []string{"backend"},
			Contributions: types.Contributions{
				Commits:       50,
				Reviews:       50,
				Communication: 0.5,
			},
		},
		{
			ID:        "bob",
			Archetype: types.ArchetypeGuardian,
			Languages: []string{"rust"},
			Expertise: []string{"frontend"},
			Contributions: types.Contributions{
				Commits:       50,
				Reviews:       50,
				Communication: 0.5,
			},
		},
		{
			ID:        "carol",
			Archetype: types.ArchetypeSpecialist,
			Languages: []string{"rust"},
			Expertise: []string{"frontend"},
		},
	}
}

func testRecords() []types.CollaborationRecord {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []types.CollaborationRecord{
		{
			SourceID: "alice",
			TargetID: "bob",
			Interactions: types.InteractionCounts{
				Commits:      400,
				PullRequests: 100,
				CodeReviews:  100,
			},
			SharedProjects: []string{"apollo", "zephyr"},
			PeriodStart:    start,
			PeriodEnd:      start.AddDate(0, 0, 10),
			Quality: types.QualityMetrics{
				PRMergeRate:   1.0,
				ReviewQuality: 1.0,
			},
		},
		{
			SourceID:     "bob",
			TargetID:     "carol",
			Interactions: types.InteractionCounts{Comments: 1},
			PeriodStart:  start,
			PeriodEnd:    start.AddDate(0, 0, 100),
		},
	}
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter()

	tests := []struct {
		name           string
		method         string
		expectedStatus int
	}{
		{
			name:           "GET /health returns OK status",
			method:         "GET",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /health is not routed",
			method:         "POST",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, "/health", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "ok", response["status"])
				assert.Contains(t, response, "metrics")
			}
		})
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := testRouter()

	w := postJSON(r, "/analyze", types.AnalyzeRequest{
		Members: testMembers(),
		Records: testRecords(),
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var report analysis.Report
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	assert.Len(t, report.Connections, 1)
	assert.Equal(t, "alice::bob", report.Connections[0].ID)
	assert.Equal(t, analysis.StrongGravity, report.Connections[0].Type)
	assert.Equal(t, 0, report.SkippedRecords)

	assert.InDelta(t, 1.0/3.0, report.Structure.Density, 1e-9)
	assert.Equal(t, [][]string{{"alice", "bob"}}, report.Structure.Clusters)
	assert.Equal(t, []string{"carol"}, report.Structure.Isolates)

	assert.Len(t, report.Recommendations, 1)
}

func TestAnalyzeEndpoint_InvalidRequests(t *testing.T) {
	r := testRouter()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed JSON",
			body: `{"members": [`,
		},
		{
			name: "missing members",
			body: `{"records": [{"source_id": "alice", "target_id": "bob"}]}`,
		},
		{
			name: "missing records",
			body: `{"members": [{"id": "alice"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/analyze", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "validation", response["category"])
		})
	}
}

func TestStageEndpoints_InvalidRequests(t *testing.T) {
	r := testRouter()

	paths := []string{
		"/analyze/connections",
		"/analyze/structure",
		"/analyze/patterns",
		"/analyze/recommendations",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", path, bytes.NewBufferString(`{"members": [`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response),
				"error response must be a single JSON document")
			assert.Equal(t, "validation", response["category"])
		})
	}
}

func TestConnectionsEndpoint(t *testing.T) {
	r := testRouter()

	w := postJSON(r, "/analyze/connections", types.AnalyzeRequest{
		Members: testMembers(),
		Records: testRecords(),
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Connections    []analysis.Connection `json:"connections"`
		SkippedRecords int                   `json:"skipped_records"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Connections, 1)
	assert.Equal(t, 0, response.SkippedRecords)
}

func TestStructureEndpoint(t *testing.T) {
	r := testRouter()

	w := postJSON(r, "/analyze/structure", connectionsRequest{
		Members: testMembers(),
		Connections: []analysis.Connection{
			{ID: "alice::bob", SourceID: "alice", TargetID: "bob", Strength: 0.9},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var structure analysis.NetworkStructure
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &structure))
	assert.InDelta(t, 1.0/3.0, structure.Density, 1e-9)
	assert.Equal(t, []string{"carol"}, structure.Isolates)
}

func TestPatternsEndpoint(t *testing.T) {
	r := testRouter()

	w := postJSON(r, "/analyze/patterns", patternsRequest{
		Connections: []analysis.Connection{
			{
				ID:          "alice::bob",
				SourceID:    "alice",
				TargetID:    "bob",
				Strength:    0.67,
				Type:        analysis.QuantumEntangle,
				Reciprocity: 0.8,
			},
		},
		Innovators: []string{"alice", "bob"},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var patterns analysis.PatternReport
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &patterns))
	assert.Equal(t, []string{"alice", "bob"}, patterns.InnovationCluster)
}

func TestRecommendationsEndpoint(t *testing.T) {
	r := testRouter()

	w := postJSON(r, "/analyze/recommendations", recommendationsRequest{
		Members: testMembers(),
		Structure: analysis.NetworkStructure{
			Density:  0.2,
			Isolates: []string{"carol"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Recommendations []string `json:"recommendations"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Recommendations, 2)
	assert.Contains(t, response.Recommendations[0], "Network density is low")
}

func TestMetricsEndpoint(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Contains(t, stats, "total_requests")
	assert.Contains(t, stats, "cache_hit_rate_percent")
}

func TestAnalyzeEndpoint_ResponseCaching(t *testing.T) {
	r := testRouter()
	body := types.AnalyzeRequest{Members: testMembers(), Records: testRecords()}

	first := postJSON(r, "/analyze", body)
	second := postJSON(r, "/analyze", body)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String(), "cached response is byte-identical")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cache/stats", nil)
	r.ServeHTTP(w, req)

	var stats map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(1), stats["total_items"])
}

func TestRequestIDHeader(t *testing.T) {
	r := testRouter()

	t.Run("generates an ID when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("echoes the caller's ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("X-Request-ID", "trace-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))
	})
}
