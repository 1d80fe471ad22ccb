// Package batch generates many models concurrently and writes their outputs.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"mc-icons/internal/export"
	"mc-icons/internal/itemgen"
	"mc-icons/internal/meshing"
	"mc-icons/internal/metrics"
	"mc-icons/internal/profiling"
	"mc-icons/pkg/blockmodel"

	"go.uber.org/zap"
)

// Output formats.
const (
	FormatGLB = "glb"
	FormatPNG = "png"
)

type Options struct {
	OutputDir string
	Workers   int
	QueueSize int
}

// Runner generates models with a worker pool. A failing model is logged and
// counted; it never stops the others.
type Runner struct {
	gen     *itemgen.Generator
	opts    Options
	metrics *metrics.Recorder
	log     *zap.Logger
}

func NewRunner(gen *itemgen.Generator, opts Options, rec *metrics.Recorder, log *zap.Logger) *Runner {
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{gen: gen, opts: opts, metrics: rec, log: log}
}

// Summary reports the outcome of a run.
type Summary struct {
	Generated int
	Failed    int
	// Outputs maps a model name to the file written for it.
	Outputs map[string]string
	// Errors maps a model name to the reason it was skipped.
	Errors map[string]error
}

// FailedModels returns the names of skipped models, sorted.
func (s Summary) FailedModels() []string {
	names := make([]string, 0, len(s.Errors))
	for name := range s.Errors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run generates every named model. It returns ctx.Err() when cancelled before
// all models were processed; the summary then covers the finished ones.
func (r *Runner) Run(ctx context.Context, names []string) (Summary, error) {
	summary := Summary{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	pool := NewWorkerPool(ctx, r.opts.Workers, r.opts.QueueSize, r.process)
	defer pool.Shutdown()
	go r.submit(pool, names)

	for res := range pool.Results() {
		if res.Err != nil {
			summary.Failed++
			summary.Errors[res.Name] = res.Err
			r.log.Warn("skipping model", zap.String("model", res.Name), zap.String("kind", Kind(res.Err)), zap.Error(res.Err))
			continue
		}
		summary.Generated++
		summary.Outputs[res.Name] = res.Output
		r.log.Debug("wrote model", zap.String("model", res.Name), zap.String("path", res.Output), zap.Int("quads", res.Quads))
	}

	if err := ctx.Err(); err != nil && summary.Generated+summary.Failed < len(names) {
		return summary, err
	}
	return summary, nil
}

// submit queues every name, then closes the pool. It stops early when the pool
// is cancelled.
func (r *Runner) submit(pool *WorkerPool, names []string) {
	defer pool.Close()
	for _, name := range names {
		job := Job{Name: name}
		if pool.SubmitJob(job) {
			continue
		}
		r.log.Debug("job queue full, waiting", zap.String("model", name), zap.Int("queued", pool.GetQueueLength()))
		if !pool.SubmitJobBlocking(job) {
			return
		}
	}
}

func (r *Runner) process(job Job) JobResult {
	start := time.Now()
	res := r.generate(job.Name)
	if res.Err != nil {
		r.metrics.Failed(Kind(res.Err), time.Since(start))
		return res
	}
	r.metrics.Generated(res.Format, time.Since(start))
	r.metrics.Quads(res.Quads)
	return res
}

func (r *Runner) generate(name string) JobResult {
	result := JobResult{Name: name}

	stop := profiling.Track("itemgen.Generate")
	out, err := r.gen.Generate(name)
	stop()
	if err != nil {
		result.Err = err
		return result
	}

	switch {
	case out.Mesh != nil:
		result.Format = FormatGLB
		result.Quads = len(out.Mesh.Quads)
		result.Output = export.OutputPath(r.opts.OutputDir, out.Model, FormatGLB)
		defer profiling.Track("export.WriteGLB")()
		err = export.WriteGLB(result.Output, out.Mesh)
	case out.Image != nil:
		result.Format = FormatPNG
		result.Output = export.OutputPath(r.opts.OutputDir, out.Model, FormatPNG)
		defer profiling.Track("export.WritePNG")()
		err = export.WritePNG(result.Output, out.Image)
	default:
		err = fmt.Errorf("model %s produced no output", out.Model)
	}
	if err != nil {
		result.Err = fmt.Errorf("write %s: %w", name, err)
	}
	return result
}

// Kind classifies err for the failure metric.
func Kind(err error) string {
	switch {
	case errors.Is(err, blockmodel.ErrModelNotFound):
		return metrics.KindNotFound
	case errors.Is(err, blockmodel.ErrCyclicReference):
		return metrics.KindCyclic
	case errors.Is(err, blockmodel.ErrMalformedModel):
		return metrics.KindMalformed
	case errors.Is(err, itemgen.ErrUnsupportedBuiltin):
		return metrics.KindUnsupported
	case errors.Is(err, meshing.ErrMissingDisplay):
		return metrics.KindDisplay
	default:
		return metrics.KindOther
	}
}
