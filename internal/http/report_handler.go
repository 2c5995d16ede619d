package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freerider-study/internal/domain"
	"freerider-study/internal/render"
	"freerider-study/internal/study"
)

// ReportHandler expone la tabla de parametros y las metricas derivadas.
type ReportHandler struct {
	logger *zap.Logger
	params *study.Parameters
	svc    *study.ReportService
}

// NewReportHandler crea el handler con sus dependencias.
func NewReportHandler(logger *zap.Logger, params *study.Parameters, svc *study.ReportService) *ReportHandler {
	return &ReportHandler{logger: logger, params: params, svc: svc}
}

// Health maneja GET /healthz.
func (h *ReportHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReport maneja GET /report. Acepta ?sections=a,b y ?format=json|yaml.
func (h *ReportHandler) GetReport(c *gin.Context) {
	var sections []string
	if raw := c.Query("sections"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				sections = append(sections, s)
			}
		}
	}

	report, err := h.svc.BuildReport(sections)
	if err != nil {
		h.logger.Warn("invalid report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, report)
	case "yaml":
		body, err := render.YAML(report)
		if err != nil {
			h.logger.Error("yaml encode failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode report"})
			return
		}
		c.Data(http.StatusOK, "application/yaml", body)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format, use json or yaml"})
	}
}

// ListProfiles maneja GET /profiles.
func (h *ReportHandler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": h.params.Profiles()})
}

// GetProfile maneja GET /profiles/:type.
func (h *ReportHandler) GetProfile(c *gin.Context) {
	agentType, err := domain.ParseAgentType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	profile, ok := h.params.Profile(agentType)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetDerivedMetrics maneja GET /metrics/derived: las tres metricas de
// comparacion mas los tamaños de efecto.
func (h *ReportHandler) GetDerivedMetrics(c *gin.Context) {
	intrinsic, _ := h.params.Profile(domain.AgentIntrinsic)
	freeRider, _ := h.params.Profile(domain.AgentFreeRider)
	optOut, _ := h.params.Profile(domain.AgentOptOut)

	c.JSON(http.StatusOK, gin.H{
		"incentive_boost": gin.H{
			string(domain.AgentIntrinsic): intrinsic.IncentiveBoost(),
			string(domain.AgentFreeRider): freeRider.IncentiveBoost(),
			string(domain.AgentOptOut):    optOut.IncentiveBoost(),
		},
		"accuracy_advantage": study.AccuracyAdvantage(freeRider, intrinsic),
		"diversity_benefit":  h.params.Comparison().DiversityBenefit(),
		"effect_sizes":       h.params.EffectSizes(),
	})
}
