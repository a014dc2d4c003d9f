package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/team"
)

const testToken = "judge-token-123"

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(Config{
		BaseURL: srv.URL,
		Token:   testToken,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return client, srv
}

func TestNewHTTPClient_FailsClosed(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing token", Config{BaseURL: "http://localhost:8000"}},
		{"whitespace token", Config{BaseURL: "http://localhost:8000", Token: "  "}},
		{"missing base URL", Config{Token: "tok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewHTTPClient(tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestHTTPClient_AuthAndCorrelationHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]*team.Team{})
	}))

	_, err := client.Teams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer "+testToken, gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestHTTPClient_Teams(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/teams", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]*team.Team{
			{ID: "T-1", Name: "Alpha"},
			{ID: "T-2", Name: "Beta"},
		})
	}))

	teams, err := client.Teams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Alpha", teams[0].Name)
}

func TestHTTPClient_Evaluation_Found(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/evaluations/T-42", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"problem_solution_fit": 9,
			"personalized_feedback": "saved feedback"
		}`))
	}))

	saved, err := client.Evaluation(context.Background(), "T-42")
	require.NoError(t, err)
	require.NotNil(t, saved.ProblemSolutionFit)
	assert.Equal(t, 9, *saved.ProblemSolutionFit)
	require.NotNil(t, saved.PersonalizedFeedback)
	assert.Equal(t, "saved feedback", *saved.PersonalizedFeedback)
	assert.Nil(t, saved.UserExperience)
}

func TestHTTPClient_Evaluation_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
	}))

	saved, err := client.Evaluation(context.Background(), "T-42")
	assert.ErrorIs(t, err, ErrNoEvaluation)
	assert.Nil(t, saved)
}

func TestHTTPClient_Report(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ppt-report/Null Pointers", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"team_name": "Null Pointers",
			"summary": "Well structured deck.",
			"scores": {
				"Innovation & Uniqueness": 82,
				"Technical Feasibility": 74,
				"total_raw": 156,
				"total_weighted": 78.5
			},
			"feedback_positive": "Clear problem framing.",
			"feedback_criticism": "Thin on validation.",
			"feedback_technical": "Stack is realistic.",
			"feedback_suggestions": "Add a rollout plan."
		}`))
	}))

	report, err := client.Report(context.Background(), "Null Pointers")
	require.NoError(t, err)

	assert.Equal(t, "Well structured deck.", report.Summary)

	weighted, ok := report.TotalWeighted()
	require.True(t, ok)
	assert.InDelta(t, 78.5, weighted, 0.001)

	raw, ok := report.TotalRaw()
	require.True(t, ok)
	assert.InDelta(t, 156, raw, 0.001)

	cats := report.CategoryScores()
	require.Len(t, cats, 2)
	assert.Equal(t, "Innovation & Uniqueness", cats[0].Name)
	assert.Equal(t, "Technical Feasibility", cats[1].Name)
}

func TestHTTPClient_Report_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"PPT report not found for the given team name"}`))
	}))

	report, err := client.Report(context.Background(), "Ghost Team")
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "PPT report not found")
}

func TestHTTPClient_Submit_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"total_score": 82, "average_score": 8.2}`))
	}))

	tm := &team.Team{ID: "T-7", Name: "Gophers"}
	d := evaluation.NewDraft()
	d.PersonalizedFeedback = "nice work"
	sub := evaluation.NewSubmission(tm, d, "Round 1")

	result, err := client.Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, "/api/evaluations/submit", gotPath)
	assert.Equal(t, "T-7", gotBody["team_id"])
	assert.Equal(t, "Round 1", gotBody["round"])
	assert.InDelta(t, 82, result.TotalScore, 0.001)
	assert.InDelta(t, 8.2, result.AverageScore, 0.001)
}

func TestHTTPClient_SaveDraft_UsesDraftEndpoint(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"total_score": 40, "average_score": 5}`))
	}))

	tm := &team.Team{ID: "T-7", Name: "Gophers"}
	sub := evaluation.NewSubmission(tm, evaluation.NewDraft(), "Round 1")

	_, err := client.SaveDraft(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "/api/evaluations/draft", gotPath)
}

func TestHTTPClient_Submit_ServerDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"evaluation window closed"}`))
	}))

	tm := &team.Team{ID: "T-7", Name: "Gophers"}
	sub := evaluation.NewSubmission(tm, evaluation.NewDraft(), "Round 1")

	result, err := client.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "evaluation window closed")
}

func TestHTTPClient_Submit_GenericFallback(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))

	tm := &team.Team{ID: "T-7", Name: "Gophers"}
	sub := evaluation.NewSubmission(tm, evaluation.NewDraft(), "Round 1")

	_, err := client.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPClient_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Teams(ctx)
	assert.Error(t, err)
}
