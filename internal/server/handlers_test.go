package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ldnexus/match-engine/internal/matching"
	"github.com/ldnexus/match-engine/internal/matching/uae"
	"github.com/ldnexus/match-engine/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)

	matcher := matching.NewMatcher(nil, nil, zap.NewNop())
	regional := uae.NewMatcher(zap.NewNop())
	ranker := ranking.New(matcher, zap.NewNop())

	return New(matcher, regional, ranker, nil, zap.NewNop())
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthReportsHeuristicOnlyOperation(t *testing.T) {
	router := newTestServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["embedding_available"])
}

func TestMatchReturnsBoundedScore(t *testing.T) {
	router := newTestServer().Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/match", map[string]any{
		"profile": map[string]any{
			"title": "Learning and Development Manager",
			"bio":   "Corporate training programs and leadership development",
		},
		"job": map[string]any{
			"title":       "L&D Manager",
			"description": "Own corporate training strategy",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Score float64 `json:"score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.Score, 0.0)
	assert.LessOrEqual(t, resp.Score, 1.0)
}

func TestMatchRejectsIncompleteRequest(t *testing.T) {
	router := newTestServer().Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/match", map[string]any{
		"profile": map[string]any{"title": "Trainer"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchRejectsMalformedBody(t *testing.T) {
	router := newTestServer().Router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchUAEReturnsFullBreakdown(t *testing.T) {
	router := newTestServer().Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/match/uae", map[string]any{
		"profile": map[string]any{
			"title":    "Corporate Trainer",
			"bio":      "Fluent in Arabic, delivering workshops across Dubai",
			"location": "Dubai, UAE",
		},
		"job": map[string]any{
			"title":       "Training Lead",
			"description": "Banking and finance training, Arabic required",
			"location":    "Dubai",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result uae.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	for name, score := range map[string]float64{
		"overall":  result.Overall,
		"sector":   result.Sector,
		"language": result.Language,
		"format":   result.Format,
		"cultural": result.Cultural,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 1.0, name)
	}
	assert.NotEmpty(t, result.Recommendations)
}

func TestMatchUAEAppliesContextOverrides(t *testing.T) {
	router := newTestServer().Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/match/uae", map[string]any{
		"profile": map[string]any{"title": "Trainer", "location": "Abu Dhabi, UAE", "bio": "Government training programs in the UAE"},
		"job":     map[string]any{"title": "Learning Lead", "description": "Public sector learning programs"},
		"context": map[string]any{"company_type": "government", "emirate": "Abu Dhabi"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result uae.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Greater(t, result.Cultural, 0.5)
}

func TestMatchUAERejectsBadOverrides(t *testing.T) {
	router := newTestServer().Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/match/uae", map[string]any{
		"profile": map[string]any{"title": "Trainer"},
		"job":     map[string]any{"title": "Lead"},
		"context": map[string]any{"compliance": 42},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRankOrdersAndLimits(t *testing.T) {
	router := newTestServer().Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/rank", map[string]any{
		"job": map[string]any{
			"title":       "Learning and Development Manager",
			"description": "Corporate training and curriculum design",
		},
		"profiles": []map[string]any{
			{"title": "Learning and Development Manager", "bio": "Corporate training and curriculum design"},
			{"title": "Accountant", "bio": "Bookkeeping"},
			{"title": "Corporate Trainer", "bio": "Training delivery and curriculum"},
		},
		"limit": 2,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Candidates []*ranking.Candidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Candidates, 2)
	assert.GreaterOrEqual(t, resp.Candidates[0].Score, resp.Candidates[1].Score)
}

func TestRankRequiresProfiles(t *testing.T) {
	router := newTestServer().Router()

	w := doJSON(t, router, http.MethodPost, "/api/v1/rank", map[string]any{
		"job": map[string]any{"title": "Trainer"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
