package models

// AssessmentQuery - запрос оценки риска в терминах внешнего API
type AssessmentQuery struct {
	Location string // код IBGE или "lat,lon"
	Scenario string // пусто - moderate
	Year     int    // 0 - текущий год
}

// GridQuery - запрос сетки риска
type GridQuery struct {
	Location   string
	Scenario   string
	Year       int
	Resolution int
	Rings      int
	Format     string
	MinBand    string // пусто - все ячейки
}

// HazardQuery - запрос показателей угроз муниципалитета
type HazardQuery struct {
	Code     string // код IBGE
	Scenario string
	Hazard   string // пусто - все угрозы
	Year     int
}

// ComparisonQuery - запрос сравнения сценариев. Пустой список означает все сценарии.
type ComparisonQuery struct {
	Location  string
	Scenarios []string
	Year      int
}
