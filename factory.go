package gendelaunay

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

// Factory chooses a back-end for a point set and runs it, falling back to
// the general exact back-end if the first choice fails.
type Factory struct {
	cfg      Config
	logger   *slog.Logger
	metrics  *Metrics
	backends map[Kind]Backend
}

// NewFactory returns a factory using the default back-ends. cfg, logger and
// metrics may be nil.
func NewFactory(cfg *Config, logger *slog.Logger, metrics *Metrics) *Factory {
	if cfg == nil {
		cfg = NewConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	f := &Factory{
		cfg:      *cfg,
		logger:   logger,
		metrics:  metrics,
		backends: make(map[Kind]Backend, len(kindNames)),
	}
	for k := range kindNames {
		b, _ := NewBackend(Kind(k), &f.cfg.Backend)
		f.backends[Kind(k)] = b
	}
	return f
}

// SetBackend replaces the implementation used for b.Kind().
func (f *Factory) SetBackend(b Backend) {
	f.backends[b.Kind()] = b
}

// Select returns the back-end the factory would use for samples.
func (f *Factory) Select(samples [][]float64, exact bool) (Kind, error) {
	dim, nrs, err := checkSamples(samples)
	if err != nil {
		return 0, err
	}
	switch {
	case dim > 3:
		return KindGeneralDimExact, nil
	case dim == 2 && !exact && nrs > f.cfg.Factory.FastThreshold:
		return KindFastApprox, nil
	case nrs > f.cfg.Factory.ClarksonThreshold:
		return KindClarksonExact, nil
	}
	return KindWatsonExact, nil
}

// Triangulate constructs a finished triangulation of samples. If exact is
// false, a fast approximate algorithm may be used for large 2-D inputs; its
// output is refined with FastImprovePasses sweeps of Improve.
func (f *Factory) Triangulate(samples [][]float64, exact bool) (*Triangulation, error) {
	kind, err := f.Select(samples, exact)
	if err != nil {
		return nil, err
	}
	dim, nrs := len(samples), NumSamples(samples)
	f.metrics.selected(kind)
	f.logger.Debug("selected back-end", "backend", kind, "dim", dim, "points", nrs, "exact", exact)

	t, err := f.run(kind, samples)
	if err == nil {
		return t, nil
	}
	if kind == KindGeneralDimExact || !f.cfg.Factory.Fallback {
		f.metrics.failed()
		f.logger.Error("triangulation failed", "backend", kind, "dim", dim, "points", nrs, "err", err)
		return nil, errors.Wrapf(ErrNoTriangulation, "%v: %v", kind, err)
	}

	f.metrics.fellBack()
	f.logger.Warn("back-end failed, retrying", "backend", kind, "fallback", KindGeneralDimExact, "err", err)
	t, ferr := f.run(KindGeneralDimExact, samples)
	if ferr != nil {
		f.metrics.failed()
		f.logger.Error("triangulation failed", "backend", KindGeneralDimExact, "dim", dim, "points", nrs, "err", ferr)
		return nil, errors.Wrapf(ErrNoTriangulation, "%v: %v; %v: %v", kind, err, KindGeneralDimExact, ferr)
	}
	return t, nil
}

// Run constructs a finished triangulation with back-end kind, bypassing the
// selection heuristic and the fallback.
func (f *Factory) Run(kind Kind, samples [][]float64) (*Triangulation, error) {
	if _, _, err := checkSamples(samples); err != nil {
		return nil, err
	}
	return f.run(kind, samples)
}

func (f *Factory) run(kind Kind, samples [][]float64) (t *Triangulation, err error) {
	b, ok := f.backends[kind]
	if !ok || b == nil {
		return nil, errors.Errorf("no implementation for back-end %v", kind)
	}
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = errors.Errorf("back-end %v panicked: %v", kind, r)
		}
	}()

	start := time.Now()
	t, err = b.Triangulate(samples)
	if err != nil {
		return nil, err
	}
	if err := t.Finish(samples); err != nil {
		return nil, err
	}
	f.metrics.observe(kind, time.Since(start))
	f.logger.Debug("triangulated", "backend", kind, "simplices", len(t.Tri), "duration", time.Since(start))

	if kind == KindFastApprox && f.cfg.Factory.FastImprovePasses > 0 {
		n, err := t.Improve(samples, f.cfg.Factory.FastImprovePasses)
		if err != nil {
			return nil, err
		}
		f.metrics.flipped(n)
		f.logger.Debug("refined", "flips", n)
	}
	return t, nil
}

// Triangulate constructs a triangulation of samples with a default factory.
func Triangulate(samples [][]float64, exact bool) (*Triangulation, error) {
	return NewFactory(nil, nil, nil).Triangulate(samples, exact)
}
