package http

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freerider-study/internal/domain"
	"freerider-study/internal/study"
)

const tolerance = 1e-6

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	params, err := study.DefaultParameters()
	if err != nil {
		t.Fatal(err)
	}
	logger := zap.NewNop()
	svc := study.NewReportService(params, logger)
	handler := NewReportHandler(logger, params, svc)
	return NewRouter(logger, handler)
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestGetReport(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/report")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var report domain.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if len(report.Participation) != 3 || report.Collective == nil || report.EffectSizes == nil {
		t.Fatalf("incomplete report: %+v", report)
	}
	if math.Abs(report.Collective.DiversityBenefit-0.25) > tolerance {
		t.Fatalf("diversity benefit = %v; want 0.25", report.Collective.DiversityBenefit)
	}
}

func TestGetReportSectionFilter(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/report?sections=collective")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var report domain.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.Collective == nil || report.Participation != nil || report.EffectSizes != nil {
		t.Fatalf("filter not applied: %+v", report)
	}
}

func TestGetReportUnknownSection(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/report?sections=simulation")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestGetReportYAML(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/report?format=yaml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Fatalf("content type = %q; want application/yaml", ct)
	}
}

func TestGetReportUnknownFormat(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/report?format=xml")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestGetProfile(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/profiles/free_rider")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body struct {
		Profile domain.AgentProfile `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Profile.Type != domain.AgentFreeRider {
		t.Fatalf("profile type = %s; want free_rider", body.Profile.Type)
	}
	if math.Abs(body.Profile.IncentiveBoost()-0.40) > tolerance {
		t.Fatalf("boost = %v; want 0.40", body.Profile.IncentiveBoost())
	}
}

func TestGetProfileUnknownType(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/profiles/lurker")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
}

func TestListProfiles(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/profiles")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var body struct {
		Profiles []domain.AgentProfile `json:"profiles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Profiles) != 3 {
		t.Fatalf("profiles = %d; want 3", len(body.Profiles))
	}
}

func TestGetDerivedMetrics(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/metrics/derived")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var body struct {
		IncentiveBoost    map[string]float64       `json:"incentive_boost"`
		AccuracyAdvantage float64                  `json:"accuracy_advantage"`
		DiversityBenefit  float64                  `json:"diversity_benefit"`
		EffectSizes       domain.EffectSizeSection `json:"effect_sizes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}

	if math.Abs(body.IncentiveBoost["intrinsic"]-0.10) > tolerance {
		t.Fatalf("intrinsic boost = %v; want 0.10", body.IncentiveBoost["intrinsic"])
	}
	if math.Abs(body.IncentiveBoost["free_rider"]-0.40) > tolerance {
		t.Fatalf("free rider boost = %v; want 0.40", body.IncentiveBoost["free_rider"])
	}
	if boost := body.IncentiveBoost["opt_out"]; boost != 0 {
		t.Fatalf("opt out boost = %v; want 0", boost)
	}
	if math.Abs(body.AccuracyAdvantage-0.17) > tolerance {
		t.Fatalf("accuracy advantage = %v; want 0.17", body.AccuracyAdvantage)
	}
	if math.Abs(body.DiversityBenefit-0.25) > tolerance {
		t.Fatalf("diversity benefit = %v; want 0.25", body.DiversityBenefit)
	}
	if math.Abs(body.EffectSizes.ParticipationEffect-3.0) > tolerance {
		t.Fatalf("participation effect = %v; want 3.0", body.EffectSizes.ParticipationEffect)
	}
}
