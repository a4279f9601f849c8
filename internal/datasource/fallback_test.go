package datasource_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_risk_grid/internal/datasource"
	"github.com/shenikar/climate_risk_grid/internal/datasource/mocks"
	"github.com/shenikar/climate_risk_grid/internal/events"
	eventmocks "github.com/shenikar/climate_risk_grid/internal/events/mocks"
	"github.com/shenikar/climate_risk_grid/internal/models"
	"github.com/shenikar/climate_risk_grid/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testClock = clockwork.NewFakeClockAt(time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC))

var recife = models.Location{Latitude: -8.0476, Longitude: -34.877, AreaCode: "2611606"}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFallbackSource_PrimarySuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockHazardDataSource(ctrl)
	fallback := mocks.NewMockHazardDataSource(ctrl)
	publisher := eventmocks.NewMockPublisher(ctrl)

	live := datasource.Baseline{Value: 0.7, Quality: models.QualityLive, Source: "cemaden"}
	primary.EXPECT().FetchBaseline(gomock.Any(), recife, models.HazardFlood).Return(live, nil)

	src := datasource.NewFallbackSource(primary, fallback, time.Second, publisher, testClock, observability.NewMetricsForTesting(), newLogger())
	got, err := src.FetchBaseline(context.Background(), recife, models.HazardFlood)
	require.NoError(t, err)
	assert.Equal(t, live, got)
}

func TestFallbackSource_DegradesOnPrimaryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockHazardDataSource(ctrl)
	publisher := eventmocks.NewMockPublisher(ctrl)

	primary.EXPECT().
		FetchBaseline(gomock.Any(), recife, models.HazardLandslide).
		Return(datasource.Baseline{}, models.ErrDataSourceUnavailable)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			assert.Equal(t, events.TypeFallbackUsed, e.Type)
			assert.Equal(t, "ibge:2611606", e.LocationKey)
			assert.Equal(t, "landslide", e.Hazard)
			assert.Equal(t, testClock.Now(), e.Timestamp)
			return nil
		})

	synthetic := datasource.NewSyntheticSource()
	want, err := synthetic.FetchBaseline(context.Background(), recife, models.HazardLandslide)
	require.NoError(t, err)

	src := datasource.NewFallbackSource(primary, synthetic, time.Second, publisher, testClock, observability.NewMetricsForTesting(), newLogger())
	got, err := src.FetchBaseline(context.Background(), recife, models.HazardLandslide)
	require.NoError(t, err)

	assert.Equal(t, want.Value, got.Value)
	assert.Equal(t, models.QualityDegraded, got.Quality)
}

func TestFallbackSource_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockHazardDataSource(ctrl)
	publisher := eventmocks.NewMockPublisher(ctrl)

	primary.EXPECT().FetchBaseline(gomock.Any(), gomock.Any(), gomock.Any()).Return(datasource.Baseline{}, errors.New("boom"))
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))

	src := datasource.NewFallbackSource(primary, datasource.NewSyntheticSource(), time.Second, publisher, testClock, observability.NewMetricsForTesting(), newLogger())
	got, err := src.FetchBaseline(context.Background(), recife, models.HazardDrought)
	require.NoError(t, err)
	assert.Equal(t, models.QualityDegraded, got.Quality)
}

func TestFallbackSource_PrimaryTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockHazardDataSource(ctrl)
	publisher := eventmocks.NewMockPublisher(ctrl)

	primary.EXPECT().
		FetchBaseline(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.Location, _ models.HazardType) (datasource.Baseline, error) {
			<-ctx.Done()
			return datasource.Baseline{}, ctx.Err()
		})
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	src := datasource.NewFallbackSource(primary, datasource.NewSyntheticSource(), 20*time.Millisecond, publisher, testClock, observability.NewMetricsForTesting(), newLogger())
	got, err := src.FetchBaseline(context.Background(), recife, models.HazardHeatStress)
	require.NoError(t, err)
	assert.Equal(t, models.QualityDegraded, got.Quality)
}

func TestFallbackSource_CallerCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockHazardDataSource(ctrl)
	publisher := eventmocks.NewMockPublisher(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	primary.EXPECT().
		FetchBaseline(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Location, models.HazardType) (datasource.Baseline, error) {
			cancel()
			return datasource.Baseline{}, context.Canceled
		})

	src := datasource.NewFallbackSource(primary, datasource.NewSyntheticSource(), time.Second, publisher, testClock, observability.NewMetricsForTesting(), newLogger())
	_, err := src.FetchBaseline(ctx, recife, models.HazardFlood)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFallbackSource_SlowPublisherDoesNotStallFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockHazardDataSource(ctrl)
	publisher := eventmocks.NewMockPublisher(ctrl)

	primary.EXPECT().FetchBaseline(gomock.Any(), gomock.Any(), gomock.Any()).Return(datasource.Baseline{}, models.ErrDataSourceUnavailable)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ events.Event) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(3 * time.Second):
				return nil
			}
		})

	src := datasource.NewFallbackSource(primary, datasource.NewSyntheticSource(), time.Second, publisher, testClock, observability.NewMetricsForTesting(), newLogger())

	start := time.Now()
	got, err := src.FetchBaseline(context.Background(), recife, models.HazardFlood)
	require.NoError(t, err)
	assert.Equal(t, models.QualityDegraded, got.Quality)
	assert.Less(t, time.Since(start), datasource.EventPublishTimeout+time.Second)
}
