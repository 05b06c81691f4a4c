package dashboard

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kheobs/labsite/pkg/model"
)

func TestRangeHours(t *testing.T) {
	assert.Equal(t, 24, RangeHours(Range24Hours))
	assert.Equal(t, 168, RangeHours(Range7Days))
	assert.Equal(t, 720, RangeHours(Range30Days))
	assert.Equal(t, 24, RangeHours("1y"))
}

func TestReadings(t *testing.T) {
	g := NewGenerator(42)
	now := time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC)

	points := g.Readings(now, 24)
	require.Len(t, points, 25)
	assert.Equal(t, now.Add(-24*time.Hour), points[0].Time)
	assert.Equal(t, now, points[24].Time)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Temperature, 28.0)
		assert.Less(t, p.Temperature, 36.0)
		assert.GreaterOrEqual(t, p.Humidity, 60.0)
		assert.Less(t, p.Humidity, 80.0)
		assert.GreaterOrEqual(t, p.Pressure, 1010.0)
		assert.Less(t, p.Pressure, 1020.0)
	}

	assert.Len(t, g.Readings(now, 0), 1)
	assert.Len(t, g.Readings(now, -3), 1)
}

func TestReadingsRerandomize(t *testing.T) {
	g := NewGenerator(7)
	now := time.Now()
	assert.NotEqual(t, g.Readings(now, 24), g.Readings(now, 24))
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]Point{
		{Temperature: 30, Humidity: 70, Pressure: 1012},
		{Temperature: 34, Humidity: 60, Pressure: 1016},
	})
	assert.Equal(t, Summary{AvgTemperature: 32, MaxTemperature: 34, MinTemperature: 30, AvgHumidity: 65, AvgPressure: 1014}, summary)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestFindStation(t *testing.T) {
	stations := []model.Station{{ID: "phnom-penh"}, {ID: "siem-reap"}}

	s, ok := FindStation(stations, "siem-reap")
	assert.True(t, ok)
	assert.Equal(t, "siem-reap", s.ID)

	s, ok = FindStation(stations, "unknown")
	assert.False(t, ok)
	assert.Equal(t, "phnom-penh", s.ID)

	_, ok = FindStation(nil, "unknown")
	assert.False(t, ok)
}

func TestStreamStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := NewGenerator(1)
	ctx, cancel := context.WithCancel(context.Background())

	var count atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- g.Stream(ctx, 2*time.Millisecond, "koh-kong", func(r Reading) error {
			assert.Equal(t, "koh-kong", r.StationID)
			count.Add(1)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, 2*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestStreamInvalidInterval(t *testing.T) {
	assert.Error(t, NewGenerator(1).Stream(context.Background(), 0, "", nil))
}
