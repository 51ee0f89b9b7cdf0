package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skyfell/obslogbackend/astro"
	"github.com/skyfell/obslogbackend/models"
)

// TransitResult is the computed meridian transit for one object. Objects
// without stored coordinates are skipped and never appear in the batch.
type TransitResult struct {
	ObjectName string    `json:"object_name"`
	TransitUTC time.Time `json:"transit_utc"`
}

// TransitBatch is the output of one background computation run
type TransitBatch struct {
	ID          string          `json:"id"`
	ComputedAt  time.Time       `json:"computed_at"`
	Results     []TransitResult `json:"results"`
	SkippedNoRA int             `json:"skipped_without_coordinates"`
}

// TransitScheduler computes meridian transits off the request path. A
// new Submit cancels any in-flight run, so only the most recently
// requested batch ever lands in Latest.
type TransitScheduler struct {
	Eph astro.Ephemeris

	mu     sync.Mutex
	cancel context.CancelFunc
	latest *TransitBatch
	wg     sync.WaitGroup
}

// NewTransitScheduler creates a scheduler backed by the given ephemeris
func NewTransitScheduler(eph astro.Ephemeris) *TransitScheduler {
	return &TransitScheduler{Eph: eph}
}

// Submit starts computing transits for the given objects at the given
// site, superseding any batch still running. It returns the ID the
// finished batch will carry.
func (s *TransitScheduler) Submit(objects []models.CelestialObject, latDeg, lonDeg, elevM float64, after time.Time) string {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	batchID := uuid.New().String()
	s.wg.Add(1)
	go s.run(ctx, batchID, objects, latDeg, lonDeg, elevM, after)
	return batchID
}

func (s *TransitScheduler) run(ctx context.Context, batchID string, objects []models.CelestialObject, latDeg, lonDeg, elevM float64, after time.Time) {
	defer s.wg.Done()

	batch := &TransitBatch{ID: batchID, Results: make([]TransitResult, 0, len(objects))}
	for _, obj := range objects {
		select {
		case <-ctx.Done():
			log.Printf("Transit batch %s superseded after %d object(s)", batchID, len(batch.Results))
			return
		default:
		}

		if obj.RAHours == nil || obj.DecDegrees == nil {
			batch.SkippedNoRA++
			continue
		}
		transit, err := astro.NextMeridianTransit(s.Eph, *obj.RAHours, *obj.DecDegrees, latDeg, lonDeg, elevM, after)
		if err != nil {
			log.Printf("Transit batch %s: skipping %q: %v", batchID, obj.Name, err)
			continue
		}
		batch.Results = append(batch.Results, TransitResult{ObjectName: obj.Name, TransitUTC: transit})
	}
	batch.ComputedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	// a later Submit may have cancelled us between the last object and
	// here; a superseded batch must not overwrite the newer one
	select {
	case <-ctx.Done():
		return
	default:
	}
	s.latest = batch
}

// Latest returns the most recently completed batch, or nil if no batch
// has finished yet
func (s *TransitScheduler) Latest() *TransitBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Stop cancels any in-flight batch and waits for the worker goroutine
func (s *TransitScheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
	log.Println("Transit scheduler stopped")
}
