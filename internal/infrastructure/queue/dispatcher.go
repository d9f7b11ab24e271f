package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
	"github.com/tradeco/board/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256

	// processTimeout bounds one event, including its cascade writes.
	processTimeout = 30 * time.Second
)

// Dispatcher routes account events to a fixed set of workers using consistent
// hashing on the account, so events for one account are processed in order.
//
// Deletion events are never dropped: they carry the job cascade. Publish blocks for
// them when the shard is full, and runs them inline once the dispatcher is closed.
// Close stops intake and lets the workers drain what is already queued.
type Dispatcher struct {
	workers []chan domain.AccountEvent
	service ports.EventService
	log     zerolog.Logger
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ ports.EventPublisher = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.EventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AccountEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AccountEvent, channelBuffer)
	}
	return d
}

// Start launches the workers. They run until Close and drain their queue before exiting.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go func(id int, ch <-chan domain.AccountEvent) {
			defer d.wg.Done()
			d.runWorker(id, ch)
		}(i, ch)
	}
}

// Close stops accepting queued events. Call Wait afterwards to let the workers finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
}

// Wait blocks until every worker has drained its queue and returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Publish hands the event to the worker owning its account. Audit-only events never
// block the request: when that worker is saturated they are dropped and counted.
func (d *Dispatcher) Publish(event domain.AccountEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		if mustDeliver(event) {
			d.process(-1, event)
			return
		}
		d.drop(event, -1, "dispatcher closed, dropping event")
		return
	}

	idx := d.shardIndex(shardKey(event))
	if mustDeliver(event) {
		d.workers[idx] <- event
		metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return
	}

	select {
	case d.workers[idx] <- event:
		metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.drop(event, idx, "event queue full, dropping event")
	}
}

// mustDeliver reports whether losing the event would leave other data inconsistent.
func mustDeliver(event domain.AccountEvent) bool {
	return event.Type == domain.EventDeleted
}

func (d *Dispatcher) drop(event domain.AccountEvent, idx int, msg string) {
	metrics.EventsDroppedTotal.Inc()
	d.log.Warn().
		Str("type", string(event.Type)).
		Str("account_id", event.AccountID).
		Int("worker_id", idx).
		Msg(msg)
}

// failed logins carry no account id
func shardKey(event domain.AccountEvent) string {
	if event.AccountID != "" {
		return event.AccountID
	}
	return string(event.Role) + ":" + event.Identifier
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(id int, ch <-chan domain.AccountEvent) {
	label := strconv.Itoa(id)
	for event := range ch {
		metrics.EventsQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		d.process(id, event)
	}
	metrics.EventsQueueDepth.WithLabelValues(label).Set(0)
}

// process runs one event on its own deadline, detached from any request or shutdown signal.
func (d *Dispatcher) process(workerID int, event domain.AccountEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	start := time.Now()
	if err := d.service.Process(ctx, event); err != nil {
		d.log.Error().Err(err).
			Str("type", string(event.Type)).
			Str("account_id", event.AccountID).
			Int("worker_id", workerID).
			Msg("event processing failed")
	}
	metrics.EventProcessingDuration.WithLabelValues(string(event.Type)).Observe(time.Since(start).Seconds())
}
