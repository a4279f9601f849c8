package grid

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/uber/h3-go/v4"
)

// Параметры пространственного затухания
const (
	decayPerRing          = 0.08
	minDecay              = 0.6
	perturbationAmplitude = 0.035
)

// AnchorFunc возвращает оценку риска центральной локации
type AnchorFunc func(ctx context.Context, loc models.Location, scenario models.Scenario, year int) (*models.RiskAssessment, error)

// Request - параметры построения сетки
type Request struct {
	Location   models.Location
	Resolution int
	RingCount  int
	Scenario   models.Scenario
	Year       int
}

// Validate проверяет параметры сетки
func (r Request) Validate() error {
	if r.Resolution < models.MinResolution || r.Resolution > models.MaxResolution {
		return fmt.Errorf("%w: %d not in [%d, %d]", models.ErrInvalidResolution, r.Resolution, models.MinResolution, models.MaxResolution)
	}
	if r.RingCount < models.MinRingCount || r.RingCount > models.MaxRingCount {
		return fmt.Errorf("%w: %d not in [%d, %d]", models.ErrInvalidRingCount, r.RingCount, models.MinRingCount, models.MaxRingCount)
	}
	return r.Scenario.Validate()
}

// Service строит гексагональные сетки риска
type Service struct {
	metrics *observability.Metrics
	logger  *logrus.Logger
}

// NewService создаёт сервис сеток
func NewService(metrics *observability.Metrics, logger *logrus.Logger) *Service {
	return &Service{metrics: metrics, logger: logger}
}

// BuildGrid строит сетку вокруг локации. Оценка центра запрашивается ровно один раз,
// её ошибка возвращается без изменений.
func (s *Service) BuildGrid(ctx context.Context, req Request, anchor AnchorFunc) (*models.Grid, error) {
	logger := s.logger.WithFields(logrus.Fields{
		"service":    "GridService",
		"method":     "BuildGrid",
		"location":   req.Location.Key(),
		"resolution": req.Resolution,
		"rings":      req.RingCount,
	})

	if err := req.Validate(); err != nil {
		return nil, err
	}

	assessment, err := anchor(ctx, req.Location, req.Scenario, req.Year)
	if err != nil {
		return nil, err
	}

	center := h3.LatLngToCell(h3.NewLatLng(req.Location.Latitude, req.Location.Longitude), req.Resolution)
	rings := center.GridDiskDistances(req.RingCount)

	anchorHazards := make(map[models.HazardType]float64, len(assessment.Hazards))
	for _, h := range assessment.Hazards {
		anchorHazards[h.HazardType] = h.ValueAt(assessment.Horizon)
	}

	cells := make([]models.GridCell, 0, CellCount(req.RingCount))
	for distance, ring := range rings {
		for _, cell := range ring {
			factor := 1.0
			if distance > 0 {
				factor = Decay(distance) * (1 + Perturbation(cell))
			}
			hazards := make(map[models.HazardType]float64, len(anchorHazards))
			for h, v := range anchorHazards {
				hazards[h] = scale(v, factor, distance)
			}
			score := scale(assessment.OverallRiskScore, factor, distance)
			cells = append(cells, models.GridCell{
				H3Index:    cell.String(),
				Resolution: req.Resolution,
				Distance:   distance,
				RiskScore:  score,
				RiskBand:   models.BandFor(score),
				Hazards:    hazards,
			})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Distance != cells[j].Distance {
			return cells[i].Distance < cells[j].Distance
		}
		return cells[i].H3Index < cells[j].H3Index
	})

	grid := &models.Grid{
		LocationKey: req.Location.Key(),
		Location:    req.Location,
		CenterCell:  center.String(),
		Resolution:  req.Resolution,
		RingCount:   req.RingCount,
		Scenario:    assessment.Scenario,
		Horizon:     assessment.Horizon,
		Cells:       cells,
		Stats:       Stats(cells),
	}

	s.metrics.GridsBuilt.WithLabelValues(strconv.Itoa(req.Resolution)).Inc()
	s.metrics.GridCells.Observe(float64(len(cells)))
	logger.WithField("cells", len(cells)).Info("Risk grid built")

	return grid, nil
}

// центральная ячейка повторяет оценку якоря без изменений
func scale(v, factor float64, distance int) float64 {
	if distance == 0 {
		return v
	}
	return models.Clamp01(v * factor)
}

// CellCount - число ячеек в диске радиуса k
func CellCount(k int) int {
	return 1 + 3*k*(k+1)
}

// Decay - множитель затухания риска на расстоянии d колец от центра
func Decay(d int) float64 {
	v := 1 - decayPerRing*float64(d)
	if v < minDecay {
		return minDecay
	}
	return v
}

// Perturbation - детерминированное отклонение ячейки в [-0.035, 0.035)
func Perturbation(cell h3.Cell) float64 {
	h := xxhash.Sum64String(cell.String())
	unit := float64(h>>11)/(1<<53)*2 - 1
	return unit * perturbationAmplitude
}
