package grid

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/uber/h3-go/v4"
)

// Export - сериализованное представление сетки в одном из форматов
type Export struct {
	Format      models.GridFormat `json:"format"`
	LocationKey string            `json:"location_key"`
	CenterCell  string            `json:"center_cell"`
	Resolution  int               `json:"resolution"`
	RingCount   int               `json:"ring_count"`
	Scenario    models.Scenario   `json:"scenario"`
	Horizon     models.Horizon    `json:"horizon"`
	MinBand     models.RiskBand   `json:"min_band,omitempty"`
	Stats       models.GridStats  `json:"stats"`
	Payload     json.RawMessage   `json:"payload"`
}

// Render сериализует сетку. Для одинаковой сетки результат побайтно совпадает.
func Render(g *models.Grid, format models.GridFormat) (*Export, error) {
	var (
		payload []byte
		err     error
	)
	switch format {
	case models.FormatHeatmap:
		payload, err = json.Marshal(Heatmap(g))
	case models.FormatGeoJSON:
		payload, err = GeoJSON(g).MarshalJSON()
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("grid: could not encode %s: %w", format, err)
	}
	return &Export{
		Format:      format,
		LocationKey: g.LocationKey,
		CenterCell:  g.CenterCell,
		Resolution:  g.Resolution,
		RingCount:   g.RingCount,
		Scenario:    g.Scenario,
		Horizon:     g.Horizon,
		Stats:       g.Stats,
		Payload:     payload,
	}, nil
}

// FilterByBand возвращает копию сетки только с ячейками не ниже уровня minBand.
// Статистика остаётся посчитанной по всей сетке.
func FilterByBand(g *models.Grid, minBand models.RiskBand) *models.Grid {
	threshold := minBand.Threshold()
	if threshold == 0 {
		return g
	}
	out := *g
	out.Cells = make([]models.GridCell, 0, len(g.Cells))
	for _, c := range g.Cells {
		if c.RiskScore >= threshold {
			out.Cells = append(out.Cells, c)
		}
	}
	return &out
}

// Heatmap - отображение индекса ячейки в общий риск
func Heatmap(g *models.Grid) map[string]float64 {
	out := make(map[string]float64, len(g.Cells))
	for _, c := range g.Cells {
		out[c.H3Index] = c.RiskScore
	}
	return out
}

// GeoJSON строит FeatureCollection с полигонами границ ячеек
func GeoJSON(g *models.Grid) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range g.Cells {
		f := geojson.NewFeature(cellPolygon(h3.Cell(h3.IndexFromString(c.H3Index))))
		hazards := make(map[string]float64, len(c.Hazards))
		for h, v := range c.Hazards {
			hazards[string(h)] = v
		}
		f.Properties = geojson.Properties{
			"h3_index":   c.H3Index,
			"distance":   c.Distance,
			"risk_score": c.RiskScore,
			"risk_band":  string(c.RiskBand),
			"hazards":    hazards,
		}
		fc.Append(f)
	}
	return fc
}

func cellPolygon(cell h3.Cell) orb.Polygon {
	boundary := cell.Boundary()
	ring := make(orb.Ring, 0, len(boundary)+1)
	for _, ll := range boundary {
		ring = append(ring, orb.Point{ll.Lng, ll.Lat})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}
