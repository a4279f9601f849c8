package grid

import "github.com/shenikar/climate_risk_grid/internal/models"

// Stats считает агрегаты по ячейкам сетки
func Stats(cells []models.GridCell) models.GridStats {
	stats := models.GridStats{CellCount: len(cells)}
	if len(cells) == 0 {
		return stats
	}
	stats.MinRisk = cells[0].RiskScore
	stats.MaxRisk = cells[0].RiskScore
	var sum float64
	for _, c := range cells {
		sum += c.RiskScore
		if c.RiskScore < stats.MinRisk {
			stats.MinRisk = c.RiskScore
		}
		if c.RiskScore > stats.MaxRisk {
			stats.MaxRisk = c.RiskScore
		}
		switch c.RiskBand {
		case models.BandLow:
			stats.LowCells++
		case models.BandModerate:
			stats.ModerateCells++
		case models.BandHigh:
			stats.HighCells++
		case models.BandCritical:
			stats.CriticalCells++
		}
	}
	stats.AvgRisk = sum / float64(len(cells))
	return stats
}
