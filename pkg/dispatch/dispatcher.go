// Package dispatch runs chat work on a fixed set of workers. Tasks for the same
// key always land on the same worker, so they run one at a time in submit order.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"storefront-bot/internal/pkg/logger"
)

var ErrStopped = errors.New("dispatcher stopped")

// Task is one unit of work for a key.
type Task func(ctx context.Context)

const defaultQueueSize = 64

type Dispatcher struct {
	shards []chan Task
	logger logger.ILogger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// New starts workers goroutines, each with a FIFO buffer of queueSize tasks.
// Workers exit once Stop is called and their buffer is drained.
func New(ctx context.Context, workers, queueSize int, log logger.ILogger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	d := &Dispatcher{
		shards: make([]chan Task, workers),
		logger: log,
	}
	for i := range d.shards {
		d.shards[i] = make(chan Task, queueSize)
		d.wg.Add(1)
		go d.run(ctx, i)
	}
	return d
}

// Workers reports the number of shards.
func (d *Dispatcher) Workers() int {
	return len(d.shards)
}

func (d *Dispatcher) shard(key int64) int {
	n := int64(len(d.shards))
	idx := key % n
	if idx < 0 {
		idx += n
	}
	return int(idx)
}

// Submit queues task behind every earlier task for key. It blocks while the
// shard buffer is full, until ctx is done.
func (d *Dispatcher) Submit(ctx context.Context, key int64, task Task) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.shards[d.shard(key)] <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop refuses new tasks and waits for the queued ones to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for _, ch := range d.shards {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run(ctx context.Context, id int) {
	defer d.wg.Done()
	for task := range d.shards[id] {
		d.exec(ctx, id, task)
	}
}

// exec keeps the worker alive when a task panics.
func (d *Dispatcher) exec(ctx context.Context, id int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Dispatch", "Recovered from panic in worker", map[string]interface{}{
				"worker": id,
				"panic":  fmt.Sprint(r),
				"stack":  string(debug.Stack()),
			})
		}
	}()
	task(ctx)
}
