package pump

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vinhphu93/go-conc/pkg/datastructs/queue"
	pkgRuntime "github.com/vinhphu93/go-conc/pkg/runtime"
)

const (
	defaultBatchSize = 256
	defaultWorkers   = 1
)

// Pump drains a BlockingQueue into a Consumer in batches.
//
// Behavior:
//   - Each worker blocks in Next until an item arrives, then tops the
//     batch up opportunistically with Poll (adaptive spin before giving
//     up) so bursts are delivered as full batches.
//   - A partial batch is flushed before the worker blocks again, so no
//     item lingers while the source sits idle.
//   - Workers exit once the source is closed and drained. Cancelling the
//     Run context closes the source: the pump delivers what is already
//     buffered, then returns.
type Pump[T any] struct {
	src  queue.BlockingQueue[T]
	cons Consumer[T]
	cfg  Config
	log  *zap.Logger
}

// New creates a Pump draining src into cons.
func New[T any](src queue.BlockingQueue[T], cons Consumer[T], cfg Config, log *zap.Logger) *Pump[T] {
	// Default config
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Pump[T]{
		src:  src,
		cons: cons,
		cfg:  cfg,
		log:  log,
	}
}

// Run drains the source until it is closed and empty, then returns the
// accumulated Consumer errors, if any. Cancelling ctx closes the source,
// so Run still delivers everything buffered before it returns.
func (p *Pump[T]) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			p.src.Close()
		case <-done:
		}
	}()

	p.log.Debug("pump started",
		zap.Int("workers", p.cfg.Workers),
		zap.Int("batch_size", p.cfg.BatchSize))

	g := new(errgroup.Group)
	for i := 0; i < p.cfg.Workers; i++ {
		id := i
		g.Go(func() error {
			return p.drain(id)
		})
	}
	return g.Wait()
}

// drain is a single worker loop. It returns once the source reports
// end-of-stream, carrying every Consumer error seen along the way.
func (p *Pump[T]) drain(id int) error {
	batch := make([]T, 0, p.cfg.BatchSize)
	var spinner pkgRuntime.Spinner
	var errs error

	for {
		item, ok, more := p.src.Next()
		if !ok {
			errs = multierr.Append(errs, p.flush(id, &batch))
			p.log.Debug("source drained", zap.Int("worker", id))
			return errs
		}
		batch = append(batch, item)

		// Top up without blocking while the batch has room.
		if more {
			spinner.Reset()
			for len(batch) < p.cfg.BatchSize {
				it, polled := p.src.Poll()
				if polled {
					batch = append(batch, it)
					spinner.Reset()
					continue
				}
				if !spinner.Spin() {
					break
				}
			}
		}

		errs = multierr.Append(errs, p.flush(id, &batch))
	}
}

// flush hands the current batch to the Consumer and resets it.
// The Consumer owns the delivered slice.
func (p *Pump[T]) flush(id int, batch *[]T) error {
	if len(*batch) == 0 {
		return nil
	}

	delivered := *batch
	*batch = make([]T, 0, p.cfg.BatchSize)

	if err := p.cons.Consume(delivered); err != nil {
		p.log.Error("consume failed",
			zap.Int("worker", id),
			zap.Int("batch_len", len(delivered)),
			zap.Error(err))
		return errors.Wrap(err, "pump: consume batch")
	}

	p.log.Debug("batch flushed",
		zap.Int("worker", id),
		zap.Int("batch_len", len(delivered)))
	return nil
}
