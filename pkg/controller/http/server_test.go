package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/secmon-lab/remedy/pkg/controller/http"
	"github.com/secmon-lab/remedy/pkg/repository/memory"
	"github.com/secmon-lab/remedy/pkg/usecase"
)

func newTestServer() *httpctrl.Server {
	return httpctrl.New(usecase.New(memory.New()))
}

func postJSON(t *testing.T, srv *httpctrl.Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	gt.NoError(t, err).Required()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	t.Run("returns a diagnosis with a session id", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/chat", map[string]any{
			"message": "My Wi-Fi won't connect on my Windows laptop",
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			SessionID     string `json:"session_id"`
			Response      string `json:"response"`
			ReasoningType string `json:"reasoning_type"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.SessionID).NotEqual("")
		gt.Value(t, resp.ReasoningType).Equal("rag+deterministic_fallback+no_follow_up")
		gt.String(t, resp.Response).Contains("Restart your Wi-Fi router")
	})

	t.Run("session continues across requests", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/chat", map[string]any{"message": "my printer won't print at all"})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var first struct {
			SessionID string `json:"session_id"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first)).Required()

		rec = postJSON(t, srv, "/api/chat", map[string]any{
			"message":    "it is still not printing anything",
			"session_id": first.SessionID,
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+first.SessionID, nil)
		getRec := httptest.NewRecorder()
		srv.ServeHTTP(getRec, req)
		gt.Number(t, getRec.Code).Equal(http.StatusOK)

		var session struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		gt.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &session)).Required()
		gt.Array(t, session.Messages).Length(4)
	})

	t.Run("empty message is a bad request", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/chat", map[string]any{"message": ""})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("invalid technical level is a bad request", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/chat", map[string]any{
			"message":         "my wifi is down",
			"technical_level": "wizard",
		})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer()

	rec := postJSON(t, srv, "/api/analyze", map[string]any{
		"problem": "my computer is so slow",
	})
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		ProblemCategory     string `json:"problem_category"`
		Severity            string `json:"severity"`
		EstimatedComplexity string `json:"estimated_complexity"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Value(t, resp.ProblemCategory).Equal("performance")
	gt.Value(t, resp.EstimatedComplexity).Equal("simple")
}

func TestSearchEndpoint(t *testing.T) {
	t.Run("ranked results for a query", func(t *testing.T) {
		srv := newTestServer()

		req := httptest.NewRequest(http.MethodGet, "/api/solutions/search?q=wifi+cannot+connect+network+error", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Results []struct {
				ID string `json:"id"`
			} `json:"results"`
			Count int `json:"count"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp.Count > 0).True()
		gt.Value(t, resp.Results[0].ID).Equal("wifi_1")
	})

	t.Run("missing query is a bad request", func(t *testing.T) {
		srv := newTestServer()

		req := httptest.NewRequest(http.MethodGet, "/api/solutions/search", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("filter narrows by os", func(t *testing.T) {
		srv := newTestServer()

		req := httptest.NewRequest(http.MethodGet, "/api/solutions/search?q=slow+freezing&os=macos", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Results []struct {
				OS string `json:"os"`
			} `json:"results"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, len(resp.Results) > 0).True()
		for _, hit := range resp.Results {
			gt.Value(t, hit.OS).Equal("macos")
		}
	})
}

func TestKnowledgeEndpoint(t *testing.T) {
	srv := newTestServer()

	record := map[string]any{
		"id":          "custom_1",
		"problem":     "External monitor not detected",
		"description": "Second display stays black after connecting HDMI",
		"device_type": "laptop",
		"os":          "windows",
		"category":    "peripherals",
		"symptoms":    []string{"no signal", "monitor black"},
		"causes": []map[string]any{
			{"cause": "Loose cable", "likelihood": "high"},
		},
		"solutions": []map[string]any{
			{"step": 1, "action": "Reseat the HDMI cable", "why": "Loose connectors drop the signal", "risk_level": "safe"},
		},
	}

	rec := postJSON(t, srv, "/api/solutions", record)
	gt.Number(t, rec.Code).Equal(http.StatusCreated)

	// Duplicate IDs conflict
	rec = postJSON(t, srv, "/api/solutions", record)
	gt.Number(t, rec.Code).Equal(http.StatusConflict)

	// The new record is immediately searchable
	req := httptest.NewRequest(http.MethodGet, "/api/solutions/search?q=external+monitor+not+detected", nil)
	searchRec := httptest.NewRecorder()
	srv.ServeHTTP(searchRec, req)
	gt.String(t, searchRec.Body.String()).Contains("custom_1")
}

func TestSessionEndpoints(t *testing.T) {
	t.Run("unknown session is not found", func(t *testing.T) {
		srv := newTestServer()

		req := httptest.NewRequest(http.MethodGet, "/api/sessions/no-such-session", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/chat", map[string]any{"message": "my wifi is broken"})
		var resp struct {
			SessionID string `json:"session_id"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()

		req := httptest.NewRequest(http.MethodDelete, "/api/sessions/"+resp.SessionID, nil)
		delRec := httptest.NewRecorder()
		srv.ServeHTTP(delRec, req)
		gt.Number(t, delRec.Code).Equal(http.StatusOK)

		req = httptest.NewRequest(http.MethodGet, "/api/sessions/"+resp.SessionID, nil)
		getRec := httptest.NewRecorder()
		srv.ServeHTTP(getRec, req)
		gt.Number(t, getRec.Code).Equal(http.StatusNotFound)
	})
}

func TestFeedbackEndpoint(t *testing.T) {
	t.Run("valid feedback is accepted", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/feedback", map[string]any{
			"session_id": "abc",
			"rating":     4,
			"helpful":    true,
		})
		gt.Number(t, rec.Code).Equal(http.StatusAccepted)
	})

	t.Run("invalid rating is rejected", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/feedback", map[string]any{"rating": 9})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Status         string `json:"status"`
		KnowledgeCount int    `json:"knowledge_count"`
		LLMConfigured  bool   `json:"llm_configured"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Value(t, resp.Status).Equal("healthy")
	gt.Number(t, resp.KnowledgeCount).Equal(8)
	gt.Bool(t, resp.LLMConfigured).False()

	gt.Bool(t, strings.Contains(rec.Header().Get("Content-Type"), "application/json")).True()
}

func TestSafetyEndpoints(t *testing.T) {
	t.Run("dangerous command is flagged", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/safety/command", map[string]any{"command": "rm -rf / --no-preserve-root"})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			IsSafe               bool     `json:"is_safe"`
			RiskLevel            string   `json:"risk_level"`
			Warnings             []string `json:"warnings"`
			RequiresConfirmation bool     `json:"requires_confirmation"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp.IsSafe).False()
		gt.Value(t, resp.RiskLevel).Equal("dangerous")
		gt.Bool(t, resp.RequiresConfirmation).True()
		gt.Array(t, resp.Warnings).Length(1)
	})

	t.Run("benign command passes", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/safety/command", map[string]any{"command": "ipconfig /all"})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			IsSafe    bool   `json:"is_safe"`
			RiskLevel string `json:"risk_level"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp.IsSafe).True()
		gt.Value(t, resp.RiskLevel).Equal("safe")
	})

	t.Run("empty command is rejected", func(t *testing.T) {
		srv := newTestServer()
		rec := postJSON(t, srv, "/api/safety/command", map[string]any{})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("opening the case yields warranty warning", func(t *testing.T) {
		srv := newTestServer()

		rec := postJSON(t, srv, "/api/safety/action", map[string]any{"action": "I want to open my laptop case"})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Approved        bool     `json:"approved"`
			Warnings        []string `json:"warnings"`
			Recommendations []string `json:"recommendations"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp.Approved).True()
		gt.Array(t, resp.Warnings).Length(1)
		gt.String(t, resp.Warnings[0]).Contains("warranty")
	})

	t.Run("empty action is rejected", func(t *testing.T) {
		srv := newTestServer()
		rec := postJSON(t, srv, "/api/safety/action", map[string]any{})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
