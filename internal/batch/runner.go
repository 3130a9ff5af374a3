package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/papapumpkin/astrolabe/internal/natal"
)

// DefaultWorkers is the concurrency used when none is configured.
const DefaultWorkers = 4

// Runner computes the charts of a batch file concurrently.
type Runner struct {
	Emitter  *Emitter
	Workers  int
	Logger   *zap.Logger
	Fallback natal.Input
	Chart    []natal.Option

	now func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the maximum number of charts computed at once. Values
// below 1 are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.Workers = n
		}
	}
}

// WithLogger sets the logger. A nil logger is replaced by a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.Logger = l
		}
	}
}

// WithFallback sets the input whose location, offset and house system
// fill fields that neither an entry nor the file defaults give.
func WithFallback(in natal.Input) Option {
	return func(r *Runner) { r.Fallback = in }
}

// WithChartOptions passes options through to natal.Compute.
func WithChartOptions(opts ...natal.Option) Option {
	return func(r *Runner) { r.Chart = append(r.Chart, opts...) }
}

// NewRunner creates a Runner writing to em.
func NewRunner(em *Emitter, opts ...Option) *Runner {
	r := &Runner{
		Emitter: em,
		Workers: DefaultWorkers,
		Logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Summary reports the outcome of one Run.
type Summary struct {
	RunID  string `json:"run"`
	Total  int    `json:"total"`
	Failed int    `json:"failed"`
}

// Run computes every chart in f and emits one record per entry in file
// order. A chart that fails to compute is recorded with its error and does
// not stop the run; cancellation of ctx does.
func (r *Runner) Run(ctx context.Context, f *File) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	inputs, err := f.Inputs(r.Fallback)
	if err != nil {
		return sum, err
	}
	sum.Total = len(inputs)
	log := r.Logger.With(zap.String("run", sum.RunID))
	log.Debug("batch started", zap.String("file", f.Path), zap.Int("charts", len(inputs)), zap.Int("workers", r.Workers))

	records := make([]Record, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec := Record{RunID: sum.RunID, Index: i, Name: in.Name}
			c, err := natal.Compute(in, r.Chart...)
			if err != nil {
				log.Warn("chart failed", zap.String("name", in.Name), zap.Error(err))
				rec.Error = err.Error()
			} else {
				rec.Chart = c
				if c.ZiWei == nil {
					log.Debug("zi wei chart unavailable", zap.String("name", in.Name), zap.String("date", in.Date))
				}
			}
			rec.Timestamp = r.now()
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}
	if err := ctx.Err(); err != nil {
		return sum, err
	}

	for _, rec := range records {
		if rec.Error != "" {
			sum.Failed++
		}
		if err := r.Emitter.Emit(rec); err != nil {
			return sum, err
		}
	}
	log.Debug("batch finished", zap.Int("failed", sum.Failed))
	return sum, nil
}
