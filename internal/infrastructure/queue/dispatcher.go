package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/api/metrics"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher writes contractor history entries asynchronously through a
// fixed set of workers, sharded by contractor id so one contractor's
// timeline stays ordered. It satisfies ports.HistoryRecorder, so services
// record history without blocking on the write.
type Dispatcher struct {
	workers []chan ports.HistoryEntryInput
	sink    ports.HistoryRecorder
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers around
// a synchronous recorder. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.HistoryRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.HistoryEntryInput, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.HistoryEntryInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for the worker responsible for its contractor.
// The call is non-blocking up to channelBuffer capacity. Entries without a
// timestamp are stamped at enqueue time so ordering reflects arrival.
func (d *Dispatcher) Record(_ context.Context, entry ports.HistoryEntryInput) error {
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	idx := d.shardIndex(entry.ContractorID)
	d.workers[idx] <- entry
	metrics.HistoryQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a contractor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(contractorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(contractorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.HistoryEntryInput) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.HistoryQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.sink.Record(ctx, entry); err != nil {
				metrics.HistoryWriteErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("contractor_id", entry.ContractorID).
					Str("kind", entry.Kind).
					Int("worker_id", id).
					Msg("history write failed")
			}
		}
	}
}
