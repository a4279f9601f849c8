package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/climate_risk_grid/internal/config"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	riskService service.RiskService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(riskService service.RiskService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		riskService: riskService,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Assess climate risk
// @Description Multi-hazard risk assessment for a municipality (IBGE code) or a "lat,lon" point.
// @Tags Risk
// @Produce json
// @Param location query string true "IBGE code or lat,lon"
// @Param scenario query string false "low | moderate | high (RCP/SSP aliases accepted)" default(moderate)
// @Param year query int false "Reference year, defaults to the current year"
// @Success 200 {object} models.RiskAssessment
// @Failure 400 {object} ErrorResponse "Invalid location or scenario"
// @Failure 404 {object} ErrorResponse "Unknown location"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /risk-assessment [get]
func (h *Handler) assessRisk(c *gin.Context) {
	var input AssessmentRequest
	log := h.logger.WithField("method", "assessRisk")

	if !h.bindQuery(c, log, &input) {
		return
	}

	assessment, err := h.riskService.AssessRisk(c.Request.Context(), DTOToAssessmentQuery(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// @Summary Build a hexagonal risk grid
// @Description H3 grid of risk scores around a location. format=heatmap returns the export envelope, format=geojson returns a FeatureCollection.
// @Tags Risk
// @Produce json
// @Param location query string true "IBGE code or lat,lon"
// @Param resolution query int false "H3 resolution 5..9" default(7)
// @Param rings query int false "Ring count 1..5" default(2)
// @Param scenario query string false "Scenario" default(moderate)
// @Param format query string false "heatmap | geojson" default(heatmap)
// @Param band query string false "Minimum risk band of returned cells: low | moderate | high | critical"
// @Param year query int false "Reference year"
// @Success 200 {object} grid.Export
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Unknown location"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /risk-grid [get]
func (h *Handler) riskGrid(c *gin.Context) {
	var input GridRequest
	log := h.logger.WithField("method", "riskGrid")

	if !h.bindQuery(c, log, &input) {
		return
	}
	input.Format = strings.ToLower(input.Format)

	export, err := h.riskService.RiskGrid(c.Request.Context(), DTOToGridQuery(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if export.Format == models.FormatGeoJSON {
		c.Data(http.StatusOK, "application/geo+json", export.Payload)
		return
	}
	c.JSON(http.StatusOK, export)
}

// @Summary Hazard indicators of a municipality
// @Description Per-hazard current and projected risk for an IBGE municipality, optionally a single hazard type.
// @Tags Risk
// @Produce json
// @Param code path string true "IBGE code"
// @Param scenario query string false "Scenario" default(moderate)
// @Param hazard_type query string false "flood | drought | heat_stress | landslide | coastal_inundation"
// @Param year query int false "Reference year"
// @Success 200 {array} models.HazardIndicator
// @Failure 400 {object} ErrorResponse "Invalid code, scenario or hazard type"
// @Failure 404 {object} ErrorResponse "Municipality not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hazards/{code} [get]
func (h *Handler) hazardIndicators(c *gin.Context) {
	var input HazardRequest
	code := c.Param("code")
	log := h.logger.WithField("method", "hazardIndicators").WithField("code", code)

	if !h.bindQuery(c, log, &input) {
		return
	}

	hazards, err := h.riskService.HazardIndicators(c.Request.Context(), DTOToHazardQuery(code, input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, hazards)
}

// @Summary Compare emission scenarios
// @Description Assess the same location under several scenarios. An empty list compares all scenarios.
// @Tags Risk
// @Accept json
// @Produce json
// @Param comparison body ComparisonRequest true "Comparison request"
// @Success 200 {object} models.ScenarioComparison
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Unknown location"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scenario-comparison [post]
func (h *Handler) compareScenarios(c *gin.Context) {
	var input ComparisonRequest
	log := h.logger.WithField("method", "compareScenarios")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "invalid_request"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	comparison, err := h.riskService.CompareScenarios(c.Request.Context(), DTOToComparisonQuery(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// @Summary Risk band thresholds
// @Description Band thresholds, hazard types and scenarios used in every response.
// @Tags Risk
// @Produce json
// @Success 200 {object} RiskBandsResponse
// @Router /risk-bands [get]
func (h *Handler) riskBands(c *gin.Context) {
	c.JSON(http.StatusOK, riskBands())
}

// @Summary List municipalities
// @Description Municipalities known to the registry, optionally filtered by name substring or state.
// @Tags Municipalities
// @Produce json
// @Param name query string false "Name substring"
// @Param state query string false "Two-letter state code"
// @Success 200 {array} models.Municipality
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /municipalities [get]
func (h *Handler) listMunicipalities(c *gin.Context) {
	var input MunicipalityListRequest
	log := h.logger.WithField("method", "listMunicipalities")

	if !h.bindQuery(c, log, &input) {
		return
	}

	list, err := h.riskService.ListMunicipalities(c.Request.Context(), models.MunicipalityFilter{
		Name:  input.Name,
		State: strings.ToUpper(input.State),
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get municipality by IBGE code
// @Tags Municipalities
// @Produce json
// @Param code path string true "IBGE code"
// @Success 200 {object} models.Municipality
// @Failure 400 {object} ErrorResponse "Invalid code"
// @Failure 404 {object} ErrorResponse "Municipality not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /municipalities/{code} [get]
func (h *Handler) getMunicipality(c *gin.Context) {
	code := c.Param("code")
	log := h.logger.WithField("method", "getMunicipality").WithField("code", code)

	m, err := h.riskService.GetMunicipality(c.Request.Context(), code)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Cache statistics
// @Description Hit and miss counters of the result cache. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CacheStatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cache/stats [get]
func (h *Handler) cacheStats(c *gin.Context) {
	log := h.logger.WithField("method", "cacheStats")

	stats, err := h.riskService.CacheStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Clear the result cache
// @Description Remove every cached assessment and grid. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CacheClearResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cache [delete]
func (h *Handler) clearCache(c *gin.Context) {
	log := h.logger.WithField("method", "clearCache")

	removed, err := h.riskService.ClearCache(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	log.WithField("removed", removed).Info("Cache cleared")
	c.JSON(http.StatusOK, CacheClearResponse{Removed: removed})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindQuery связывает и валидирует query-параметры, при ошибке отвечает 400
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters", Code: "invalid_request"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return false
	}
	return true
}

// respondError сопоставляет доменную ошибку HTTP-статусу
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	code := models.ErrorCode(err)
	switch {
	case errors.Is(err, models.ErrUnknownLocation):
		log.WithError(err).Warn("Location not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: code})
	case strings.HasPrefix(code, "invalid_"):
		log.WithError(err).Warn("Invalid request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: code})
	default:
		log.WithError(err).Error("Request failed")
		if code == "" {
			code = "internal"
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: code})
	}
}
