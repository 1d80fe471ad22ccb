// Package metrics exposes Prometheus counters for a generation run.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "mcicons"

// Failure kinds used as the "kind" label of the failure counter.
const (
	KindNotFound    = "not_found"
	KindCyclic      = "cyclic"
	KindMalformed   = "malformed"
	KindUnsupported = "unsupported_builtin"
	KindDisplay     = "missing_display"
	KindOther       = "other"
)

// Recorder holds the run's metrics on its own registry.
type Recorder struct {
	registry  *prometheus.Registry
	generated *prometheus.CounterVec
	failed    *prometheus.CounterVec
	duration  prometheus.Histogram
	quads     prometheus.Counter
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "models_generated_total",
			Help:      "Models written successfully, by output format.",
		}, []string{"format"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "models_failed_total",
			Help:      "Models skipped because of an error, by error kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_generation_seconds",
			Help:      "Time to resolve, generate and write one model.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		quads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quads_total",
			Help:      "Quads emitted across all meshes.",
		}),
	}
	r.registry.MustRegister(r.generated, r.failed, r.duration, r.quads)
	return r
}

func (r *Recorder) Generated(format string, took time.Duration) {
	r.generated.WithLabelValues(format).Inc()
	r.duration.Observe(took.Seconds())
}

func (r *Recorder) Failed(kind string, took time.Duration) {
	r.failed.WithLabelValues(kind).Inc()
	r.duration.Observe(took.Seconds())
}

func (r *Recorder) Quads(n int) {
	r.quads.Add(float64(n))
}

// Registry is the registry the recorder's collectors live on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve starts a /metrics endpoint on addr. The returned stop function shuts it down.
func (r *Recorder) Serve(addr string, log *zap.Logger) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("serving metrics", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
