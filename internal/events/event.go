package events

//go:generate mockgen -source=event.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Type - тип структурного события
type Type string

const (
	TypeAssessmentComputed Type = "assessment.computed"
	TypeGridBuilt          Type = "grid.built"
	TypeFallbackUsed       Type = "datasource.fallback_used"
	TypeCriticalRisk       Type = "risk.critical"
)

// Event - структурное событие движка оценки риска
type Event struct {
	ID          uuid.UUID      `json:"id"`
	Type        Type           `json:"type"`
	LocationKey string         `json:"location_key"`
	Scenario    string         `json:"scenario,omitempty"`
	Hazard      string         `json:"hazard,omitempty"`
	RiskScore   float64        `json:"risk_score,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// New создаёт событие с новым ID. Время передаёт вызывающий (обычно из clockwork.Clock).
func New(t Type, locationKey string, at time.Time) Event {
	return Event{
		ID:          uuid.New(),
		Type:        t,
		LocationKey: locationKey,
		Timestamp:   at.UTC(),
	}
}

// PublishWithin публикует событие с ограничением по времени. Отмена ctx не прерывает
// публикацию, но её длительность не превышает timeout.
func PublishWithin(ctx context.Context, p Publisher, event Event, timeout time.Duration) error {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	return p.Publish(pubCtx, event)
}

// Publisher - интерфейс доставки событий внешним коллабораторам
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher пишет события в структурный лог
type LogPublisher struct {
	logger *logrus.Logger
}

// NewLogPublisher создаёт LogPublisher
func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish логирует событие
func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	fields := logrus.Fields{
		"event_id":     event.ID,
		"event_type":   event.Type,
		"location_key": event.LocationKey,
	}
	if event.Scenario != "" {
		fields["scenario"] = event.Scenario
	}
	if event.Hazard != "" {
		fields["hazard"] = event.Hazard
	}
	if event.RiskScore != 0 {
		fields["risk_score"] = event.RiskScore
	}
	for k, v := range event.Attributes {
		fields[k] = v
	}
	p.logger.WithFields(fields).Info("Risk event")
	return nil
}

// Fanout рассылает событие всем издателям и собирает ошибки
type Fanout []Publisher

// Publish вызывает каждого издателя, даже если предыдущий вернул ошибку
func (f Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
