package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
)

// HTTPSource - адаптер живого поставщика базовых значений угроз
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *logrus.Logger
}

// NewHTTPSource создаёт клиента живого поставщика
func NewHTTPSource(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *logrus.Logger) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

type baselineResponse struct {
	Value  *float64 `json:"value"`
	Source string   `json:"source"`
}

// FetchBaseline запрашивает GET {base}/v1/baseline?lat=&lon=&hazard=.
// Любая ошибка оборачивает models.ErrDataSourceUnavailable.
func (s *HTTPSource) FetchBaseline(ctx context.Context, loc models.Location, hazard models.HazardType) (Baseline, error) {
	params := url.Values{
		"lat":    {strconv.FormatFloat(loc.Latitude, 'f', 5, 64)},
		"lon":    {strconv.FormatFloat(loc.Longitude, 'f', 5, 64)},
		"hazard": {string(hazard)},
	}
	fullURL := s.baseURL + "/v1/baseline?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return Baseline{}, fmt.Errorf("%w: create request: %v", models.ErrDataSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	s.metrics.DataSourceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return Baseline{}, fmt.Errorf("%w: baseline request: %v", models.ErrDataSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Baseline{}, fmt.Errorf("%w: status %d: %s", models.ErrDataSourceUnavailable, resp.StatusCode, body)
	}

	var payload baselineResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Baseline{}, fmt.Errorf("%w: decode response: %v", models.ErrDataSourceUnavailable, err)
	}
	if payload.Value == nil {
		return Baseline{}, fmt.Errorf("%w: response has no value", models.ErrDataSourceUnavailable)
	}

	source := payload.Source
	if source == "" {
		source = "live"
	}
	s.logger.WithFields(logrus.Fields{
		"service": "HTTPSource",
		"method":  "FetchBaseline",
		"hazard":  hazard,
		"source":  source,
	}).Debug("Baseline fetched from live provider")

	return Baseline{
		Value:   models.Clamp01(*payload.Value),
		Quality: models.QualityLive,
		Source:  source,
	}, nil
}
