package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/talentsift/core"
	"github.com/talentsift/talentsift/query"
)

// stubEngine returns canned recommendations and records the last query.
type stubEngine struct {
	rec       *query.Recommendation
	err       error
	lastQuery string
}

func (s *stubEngine) ProcessQuery(ctx context.Context, queryText string, maxResults int) (*query.Recommendation, error) {
	s.lastQuery = queryText
	if s.err != nil {
		return nil, s.err
	}
	return s.rec, nil
}

func sampleRecommendation() *query.Recommendation {
	return &query.Recommendation{
		Results: []*core.SearchResult{
			{
				Assessment: &core.Assessment{
					Name:          "Java Programming Test",
					URL:           "https://example.com/java",
					RemoteTesting: core.FlagYes,
					Duration:      "40 minutes",
					TestType:      "Technical",
				},
				Score: 0.9,
			},
			{
				Assessment: &core.Assessment{Name: "Verify Numerical Reasoning"},
				Score:      0.8,
			},
		},
	}
}

func newTestServer(t *testing.T, engine Recommender, opts ...Option) *Server {
	t.Helper()
	s, err := New(engine, opts...)
	require.NoError(t, err)
	return s
}

func postRecommend(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEngineRequired)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRecommend_ReturnsViews(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()})

	rr := postRecommend(t, s, `{"query": "java developers under 45 minutes"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp recommendResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 2)

	first := resp.Recommendations[0]
	assert.Equal(t, "Java Programming Test", first.Name)
	assert.Equal(t, "https://example.com/java", first.URL)
	assert.Equal(t, core.FlagYes, first.RemoteTesting)

	// Missing fields come out as defaults, not empty strings.
	second := resp.Recommendations[1]
	assert.Equal(t, "#", second.URL)
	assert.Equal(t, "Unknown", second.AdaptiveIRT)
	assert.Equal(t, "Unknown", second.Duration)
	assert.Equal(t, "Unknown", second.TestType)
}

func TestRecommend_ShortQueryRejected(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()})

	rr := postRecommend(t, s, `{"query": "ab"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Query must be at least 3 characters long.", resp.Detail)
}

func TestRecommend_MalformedBody(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()})

	rr := postRecommend(t, s, `{"query": `)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecommend_EmptyResultsIs404(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: &query.Recommendation{}})

	rr := postRecommend(t, s, `{"query": "underwater basket weaving"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "No relevant assessments found", resp.Detail)
}

func TestRecommend_EngineErrorIs500(t *testing.T) {
	s := newTestServer(t, &stubEngine{err: errors.New("backend closed")})

	rr := postRecommend(t, s, `{"query": "java developers"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRecommend_AppendsPageText(t *testing.T) {
	engine := &stubEngine{rec: sampleRecommendation()}
	s := newTestServer(t, engine, WithPageText(func(ctx context.Context, pageURL string) (string, error) {
		return "Senior Java Developer position", nil
	}))

	rr := postRecommend(t, s, `{"query": "find a test", "url": "https://example.com/job"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "find a test Senior Java Developer position", engine.lastQuery)
}

func TestRecommend_URLOnlyQuery(t *testing.T) {
	engine := &stubEngine{rec: sampleRecommendation()}
	s := newTestServer(t, engine, WithPageText(func(ctx context.Context, pageURL string) (string, error) {
		return "Senior Java Developer position", nil
	}))

	rr := postRecommend(t, s, `{"url": "https://example.com/job"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Senior Java Developer position", engine.lastQuery)
}

func TestRecommend_PageTextFailureIs400(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()}, WithPageText(
		func(ctx context.Context, pageURL string) (string, error) {
			return "", errors.New("connection refused")
		}))

	rr := postRecommend(t, s, `{"query": "java", "url": "https://example.com/job"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail, "URL error")
}

func TestRecommend_InvalidURLRejected(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()})

	rr := postRecommend(t, s, `{"query": "java developers", "url": "not a url"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()})

	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestDashboard_RendersForm(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Assessment Recommender")
	assert.Contains(t, rr.Body.String(), "<form")
}

func TestDashboard_RendersResults(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: sampleRecommendation()})

	req := httptest.NewRequest(http.MethodGet, "/?query=java+developers", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Java Programming Test")
	assert.Contains(t, rr.Body.String(), "Recommended Assessments")
}

func TestDashboard_NoResultsMessage(t *testing.T) {
	s := newTestServer(t, &stubEngine{rec: &query.Recommendation{}})

	req := httptest.NewRequest(http.MethodGet, "/?query=nothing+matches", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No relevant assessments found")
}
