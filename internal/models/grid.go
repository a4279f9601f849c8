package models

// Пределы параметров сетки
const (
	MinResolution = 5
	MaxResolution = 9
	MinRingCount  = 1
	MaxRingCount  = 5
)

// GridFormat - формат экспорта сетки
type GridFormat string

const (
	FormatGeoJSON GridFormat = "geojson"
	FormatHeatmap GridFormat = "heatmap"
)

// ParseGridFormat разбирает формат экспорта, пустая строка означает heatmap
func ParseGridFormat(s string) (GridFormat, error) {
	switch GridFormat(s) {
	case "", FormatHeatmap:
		return FormatHeatmap, nil
	case FormatGeoJSON:
		return FormatGeoJSON, nil
	}
	return "", ErrInvalidFormat
}

// GridCell - ячейка H3 с оценкой риска
type GridCell struct {
	H3Index    string                 `json:"h3_index"`
	Resolution int                    `json:"resolution"`
	Distance   int                    `json:"distance"`
	RiskScore  float64                `json:"risk_score"`
	RiskBand   RiskBand               `json:"risk_band"`
	Hazards    map[HazardType]float64 `json:"hazards,omitempty"`
}

// GridStats - агрегированная статистика сетки
type GridStats struct {
	CellCount     int     `json:"cell_count"`
	MinRisk       float64 `json:"min_risk"`
	MaxRisk       float64 `json:"max_risk"`
	AvgRisk       float64 `json:"avg_risk"`
	LowCells      int     `json:"low_cells"`
	ModerateCells int     `json:"moderate_cells"`
	HighCells     int     `json:"high_cells"`
	CriticalCells int     `json:"critical_cells"`
}

// Grid - гексагональная сетка риска вокруг центральной локации
type Grid struct {
	LocationKey string     `json:"location_key"`
	Location    Location   `json:"location"`
	CenterCell  string     `json:"center_cell"`
	Resolution  int        `json:"resolution"`
	RingCount   int        `json:"ring_count"`
	Scenario    Scenario   `json:"scenario"`
	Horizon     Horizon    `json:"horizon"`
	Cells       []GridCell `json:"cells"`
	Stats       GridStats  `json:"stats"`
}
