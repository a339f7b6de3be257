package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/booklore/booklore/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// ProfileDispatcher decouples profile creation from the registration call:
// it implements ports.ProfileRepository by enqueueing the user id to a fixed
// set of workers that write through the real repository. Registration only
// pays for a channel send; a full queue or a failed write is logged and
// dropped, matching the best-effort contract of profile creation.
type ProfileDispatcher struct {
	workers  []chan string
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

// NewProfileDispatcher creates a dispatcher with numWorkers workers writing
// through profiles. If numWorkers <= 0, defaultWorkers is used.
func NewProfileDispatcher(numWorkers int, profiles ports.ProfileRepository, log zerolog.Logger) *ProfileDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ProfileDispatcher{
		workers:  make([]chan string, numWorkers),
		profiles: profiles,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ProfileDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Create enqueues a profile write for userID. It never blocks and never
// returns an error for a full queue; the dropped write is logged instead.
func (d *ProfileDispatcher) Create(_ context.Context, userID string) error {
	select {
	case d.workers[d.shardIndex(userID)] <- userID:
	default:
		d.log.Warn().Str("user_id", userID).Msg("profile queue full, write dropped")
	}
	return nil
}

// shardIndex maps a user id deterministically to a worker index, so retries
// for the same user never interleave across workers.
func (d *ProfileDispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ProfileDispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case userID, ok := <-ch:
			if !ok {
				return
			}
			if err := d.profiles.Create(ctx, userID); err != nil {
				d.log.Error().Err(err).
					Str("user_id", userID).
					Int("worker_id", id).
					Msg("profile creation failed")
			}
		}
	}
}
