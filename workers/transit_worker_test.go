package workers

import (
	"math"
	"testing"
	"time"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/models"
)

// stubEphemeris advances sidereal time at the true rate from a fixed
// epoch. When gate is non-nil every call waits for it to close, letting
// tests hold a batch in flight.
type stubEphemeris struct {
	epoch time.Time
	gate  chan struct{}
}

func (s stubEphemeris) SunPosition(t time.Time) (astro.EquatorialPosition, error) {
	return astro.EquatorialPosition{}, nil
}

func (s stubEphemeris) MoonPosition(t time.Time) (astro.EquatorialPosition, error) {
	return astro.EquatorialPosition{}, nil
}

func (s stubEphemeris) ApparentSiderealTime(t time.Time) (float64, error) {
	if s.gate != nil {
		<-s.gate
	}
	gast := math.Mod(t.Sub(s.epoch).Seconds()*24/86164.0905, 24)
	if gast < 0 {
		gast += 24
	}
	return gast, nil
}

func floatPtr(v float64) *float64 { return &v }

func waitForBatch(t *testing.T, s *TransitScheduler, id string) *TransitBatch {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if batch := s.Latest(); batch != nil && batch.ID == id {
			return batch
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("batch %s never completed", id)
	return nil
}

func TestTransitSchedulerComputesBatch(t *testing.T) {
	t.Parallel()

	epoch := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s := NewTransitScheduler(stubEphemeris{epoch: epoch})
	defer s.Stop()

	objects := []models.CelestialObject{
		{Name: "M42", RAHours: floatPtr(5.588), DecDegrees: floatPtr(-5.39)},
		{Name: "M31", RAHours: floatPtr(0.712), DecDegrees: floatPtr(41.27)},
		{Name: "unresolved", RAHours: nil, DecDegrees: nil},
	}

	id := s.Submit(objects, 42, -71, 100, epoch)
	batch := waitForBatch(t, s, id)

	if len(batch.Results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(batch.Results), batch.Results)
	}
	if batch.SkippedNoRA != 1 {
		t.Errorf("SkippedNoRA = %d, want 1", batch.SkippedNoRA)
	}
	for _, res := range batch.Results {
		if res.TransitUTC.Before(epoch) {
			t.Errorf("%s transits at %v, before the search start", res.ObjectName, res.TransitUTC)
		}
	}
}

func TestTransitSchedulerSupersedesInFlightBatch(t *testing.T) {
	t.Parallel()

	epoch := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	gate := make(chan struct{})
	s := NewTransitScheduler(stubEphemeris{epoch: epoch, gate: gate})
	defer s.Stop()

	objects := []models.CelestialObject{
		{Name: "M42", RAHours: floatPtr(5.588), DecDegrees: floatPtr(-5.39)},
	}

	first := s.Submit(objects, 42, -71, 100, epoch)
	second := s.Submit(objects, 42, -71, 100, epoch)
	close(gate)

	batch := waitForBatch(t, s, second)
	if batch.ID == first {
		t.Fatal("superseded batch was published")
	}

	// the first batch must not surface later either
	time.Sleep(50 * time.Millisecond)
	if got := s.Latest(); got.ID != second {
		t.Errorf("Latest switched to %s, want %s", got.ID, second)
	}
}

func TestTransitSchedulerLatestStartsNil(t *testing.T) {
	t.Parallel()
	s := NewTransitScheduler(stubEphemeris{epoch: time.Now()})
	defer s.Stop()
	if s.Latest() != nil {
		t.Error("expected no batch before the first Submit")
	}
}
