package models

import "errors"

// Ошибки доменного уровня. Сервисы оборачивают их через %w, хэндлер сопоставляет через errors.Is.
var (
	ErrUnknownLocation         = errors.New("unknown location")
	ErrInvalidLocation         = errors.New("invalid location")
	ErrInvalidScenario         = errors.New("invalid scenario")
	ErrInvalidResolution       = errors.New("invalid resolution")
	ErrInvalidRingCount        = errors.New("invalid ring count")
	ErrInvalidFormat           = errors.New("invalid grid format")
	ErrInvalidHazard           = errors.New("invalid hazard type")
	ErrInvalidBand             = errors.New("invalid risk band")
	ErrDataSourceUnavailable   = errors.New("data source unavailable")
	ErrCacheBackendUnavailable = errors.New("cache backend unavailable")
)

// ErrorCode возвращает стабильный машинный код для ошибки (или пустую строку)
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUnknownLocation):
		return "unknown_location"
	case errors.Is(err, ErrInvalidLocation):
		return "invalid_location"
	case errors.Is(err, ErrInvalidScenario):
		return "invalid_scenario"
	case errors.Is(err, ErrInvalidResolution):
		return "invalid_resolution"
	case errors.Is(err, ErrInvalidRingCount):
		return "invalid_ring_count"
	case errors.Is(err, ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ErrInvalidHazard):
		return "invalid_hazard"
	case errors.Is(err, ErrInvalidBand):
		return "invalid_band"
	case errors.Is(err, ErrDataSourceUnavailable):
		return "data_source_unavailable"
	case errors.Is(err, ErrCacheBackendUnavailable):
		return "cache_backend_unavailable"
	}
	return ""
}
