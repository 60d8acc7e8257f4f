// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package api

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/creatorpulse/creatorpulse/internal/config"
	"github.com/creatorpulse/creatorpulse/internal/tuning"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	if err := tuning.Store(tuning.Defaults()); err != nil {
		t.Fatalf("store tuning defaults: %v", err)
	}

	cfg := config.Default()
	cfg.Server.RateLimitDisabled = true
	return NewRouter(&cfg.Server).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthEndpoints(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("live status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Status        string `json:"status"`
		TuningVersion string `json:"tuning_version"`
	}
	decodeBody(t, rec, &resp)
	if resp.Status != "ok" {
		t.Errorf("ready status = %q, want %q", resp.Status, "ok")
	}
	if resp.TuningVersion == "" {
		t.Error("ready response missing tuning version")
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q, want %q", got, "client-supplied-id")
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/health/live", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID header")
	}
}

func TestCompositeScoreEndpoint(t *testing.T) {
	h := newTestHandler(t)

	body := `{"platform":"youtube","followers":1000000,"engagement_rate":5,"monthly_revenue":5000}`
	rec := doJSON(t, h, http.MethodPost, "/api/v1/scores/composite", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Platform  string  `json:"platform"`
		Overall   float64 `json:"overall"`
		SubScores struct {
			Followers float64 `json:"followers"`
		} `json:"sub_scores"`
	}
	decodeBody(t, rec, &resp)
	if resp.Platform != "youtube" {
		t.Errorf("platform = %q, want %q", resp.Platform, "youtube")
	}
	if math.Abs(resp.SubScores.Followers-60) > 1e-9 {
		t.Errorf("followers sub-score = %v, want 60", resp.SubScores.Followers)
	}
	if resp.Overall <= 0 || resp.Overall > 100 {
		t.Errorf("overall = %v, want within (0, 100]", resp.Overall)
	}
}

func TestCrossPlatformEndpoint(t *testing.T) {
	h := newTestHandler(t)

	body := `{"snapshots":[
		{"platform":"youtube","followers":1000000,"engagement_rate":5,"monthly_revenue":5000},
		{"platform":"tiktok","followers":500000,"engagement_rate":9,"monthly_revenue":1500}
	]}`
	rec := doJSON(t, h, http.MethodPost, "/api/v1/scores/cross-platform", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Overall     float64           `json:"overall"`
		PerPlatform []json.RawMessage `json:"per_platform"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.PerPlatform) != 2 {
		t.Errorf("per_platform count = %d, want 2", len(resp.PerPlatform))
	}
	if resp.Overall <= 0 || resp.Overall > 100 {
		t.Errorf("overall = %v, want within (0, 100]", resp.Overall)
	}
}

func TestKFactorEndpoint(t *testing.T) {
	h := newTestHandler(t)

	body := `{"invitations":8,"conversion_rate":0.20,"platform":"tiktok"}`
	rec := doJSON(t, h, http.MethodPost, "/api/v1/virality/k-factor", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		KFactor    float64 `json:"k_factor"`
		GrowthType string  `json:"growth_type"`
	}
	decodeBody(t, rec, &resp)
	if math.Abs(resp.KFactor-2.08) > 1e-9 {
		t.Errorf("k_factor = %v, want 2.08", resp.KFactor)
	}
	if resp.GrowthType != "viral" {
		t.Errorf("growth_type = %q, want %q", resp.GrowthType, "viral")
	}
}

func TestValidationFailure(t *testing.T) {
	h := newTestHandler(t)

	// Missing platform and out-of-range engagement rate.
	body := `{"followers":1000,"engagement_rate":250,"monthly_revenue":100}`
	rec := doJSON(t, h, http.MethodPost, "/api/v1/scores/composite", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}

	var resp struct {
		Error struct {
			Code   string `json:"code"`
			Fields []struct {
				Field string `json:"field"`
			} `json:"fields"`
		} `json:"error"`
	}
	decodeBody(t, rec, &resp)
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want %q", resp.Error.Code, "VALIDATION_ERROR")
	}
	if len(resp.Error.Fields) < 2 {
		t.Errorf("fields count = %d, want at least 2", len(resp.Error.Fields))
	}
}

func TestUnknownPlatformRejected(t *testing.T) {
	h := newTestHandler(t)

	body := `{"platform":"myspace","followers":1000,"engagement_rate":5,"monthly_revenue":100}`
	rec := doJSON(t, h, http.MethodPost, "/api/v1/scores/composite", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestMalformedJSON(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"truncated object", `{"platform":`},
		{"empty body", ""},
		{"wrong type", `{"platform":"youtube","followers":"many"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/v1/scores/composite", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
			var resp struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			decodeBody(t, rec, &resp)
			if resp.Error.Code != "MALFORMED_JSON" {
				t.Errorf("code = %q, want %q", resp.Error.Code, "MALFORMED_JSON")
			}
		})
	}
}

func TestInsufficientDataMapped(t *testing.T) {
	h := newTestHandler(t)

	// Three points pass request validation but four are required by the
	// default churn forecast history floor.
	body := `{"history":[20,22,24]}`
	rec := doJSON(t, h, http.MethodPost, "/api/v1/stability/churn-forecast", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, rec, &resp)
	if resp.Error.Code != "INSUFFICIENT_DATA" {
		t.Errorf("code = %q, want %q", resp.Error.Code, "INSUFFICIENT_DATA")
	}
}

func TestRiskAssessmentEndpoint(t *testing.T) {
	h := newTestHandler(t)

	body := `{
		"monthly_revenue":[5000,5200,4900,5100],
		"platform_revenue":{"youtube":4000,"tiktok":1100},
		"stream_revenue":{"ads":3000,"sponsorship":1500,"memberships":600}
	}`
	rec := doJSON(t, h, http.MethodPost, "/api/v1/risk/assessment", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		OverallRiskScore float64 `json:"overall_risk_score"`
		RiskLevel        string  `json:"risk_level"`
		Axes             []struct {
			Name string `json:"name"`
		} `json:"axes"`
	}
	decodeBody(t, rec, &resp)
	if resp.RiskLevel == "" {
		t.Error("missing risk_level")
	}
	if len(resp.Axes) != 3 {
		t.Errorf("axes count = %d, want 3", len(resp.Axes))
	}
	if resp.OverallRiskScore < 0 || resp.OverallRiskScore > 100 {
		t.Errorf("overall_risk_score = %v, want within [0, 100]", resp.OverallRiskScore)
	}
}

func TestRiskForecastEndpoint(t *testing.T) {
	h := newTestHandler(t)

	body := `{
		"monthly_revenue":[5000,5200,4900,5100],
		"platform_revenue":{"youtube":4000,"tiktok":1100},
		"stream_revenue":{"ads":3000,"sponsorship":1500,"memberships":600},
		"baseline":5000,
		"monthly_std_dev":120
	}`
	rec := doJSON(t, h, http.MethodPost, "/api/v1/risk/forecast", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Assessment struct {
			RiskLevel string `json:"risk_level"`
		} `json:"assessment"`
		Forecast struct {
			AdjustedForecast float64 `json:"adjusted_forecast"`
		} `json:"forecast"`
	}
	decodeBody(t, rec, &resp)
	if resp.Assessment.RiskLevel == "" {
		t.Error("missing assessment risk_level")
	}
	if resp.Forecast.AdjustedForecast <= 0 || resp.Forecast.AdjustedForecast >= 5000 {
		t.Errorf("adjusted_forecast = %v, want within (0, 5000)", resp.Forecast.AdjustedForecast)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	// Generate at least one instrumented request first.
	doJSON(t, h, http.MethodPost, "/api/v1/virality/k-factor", `{"invitations":5,"conversion_rate":0.1}`)

	rec := doJSON(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("metrics output missing api_requests_total")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/scores/composite", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
