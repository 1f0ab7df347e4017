package main

import (
	"context"
	"math"
	"sync"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/game"
	"github.com/pthm-cable/plexus/telemetry"
)

// Targets are the visual densities the tuner aims for.
type Targets struct {
	LinksPerParticle float64 // mean links touching each particle
	LinkAlpha        float64 // mean alpha of drawn links
}

// FitnessEvaluator runs headless fields and scores how far their link
// density is from the targets.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	seeds      []int64
	baseConfig *config.Config
	targets    Targets

	mu   sync.Mutex
	last Measurement // from the most recent Evaluate call
}

// Measurement holds link statistics averaged over seeds and windows.
type Measurement struct {
	LinksPerParticle float64
	LinkAlpha        float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
		targets:    targets,
	}
}

// Last returns the measurement from the most recent evaluation.
func (fe *FitnessEvaluator) Last() Measurement {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]Measurement, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runField(x, s)
		}(i, seed)
	}
	wg.Wait()

	var m Measurement
	for _, r := range results {
		m.LinksPerParticle += r.LinksPerParticle
		m.LinkAlpha += r.LinkAlpha
	}
	n := float64(len(results))
	m.LinksPerParticle /= n
	m.LinkAlpha /= n

	fe.mu.Lock()
	fe.last = m
	fe.mu.Unlock()

	return fe.computeFitness(m)
}

// computeFitness is the sum of squared relative errors against the targets.
func (fe *FitnessEvaluator) computeFitness(m Measurement) float64 {
	return relErrSq(m.LinksPerParticle, fe.targets.LinksPerParticle) +
		relErrSq(m.LinkAlpha, fe.targets.LinkAlpha)
}

func relErrSq(got, want float64) float64 {
	if want == 0 {
		return got * got
	}
	d := (got - want) / want
	return d * d
}

// runField runs one headless field and averages its stats windows.
func (fe *FitnessEvaluator) runField(x []float64, seed int64) Measurement {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	opts := game.OptionsFromConfig(cfg)
	opts.Seed = seed
	opts.Config = nil

	host := game.NewHeadlessHost(opts.Width, opts.Height, 0)
	defer host.Close()
	host.SetMaxFrames(fe.maxTicks)

	g, err := game.NewGame(host.Surface(), opts)
	if err != nil {
		return Measurement{LinksPerParticle: math.Inf(1), LinkAlpha: math.Inf(1)}
	}
	defer g.Unload()

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(s telemetry.WindowStats) {
		windows = append(windows, s)
	})
	_ = g.Run(context.Background(), host)

	var m Measurement
	if len(windows) == 0 {
		return m
	}
	for _, w := range windows {
		m.LinksPerParticle += w.LinksPerParticle
		m.LinkAlpha += w.LinkAlphaMean
	}
	m.LinksPerParticle /= float64(len(windows))
	m.LinkAlpha /= float64(len(windows))
	return m
}

// copyConfig returns a shallow copy of the base config with its own
// render slices, so runs never share mutable state.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Render.Accent = append([]int(nil), fe.baseConfig.Render.Accent...)
	cfg.Render.Background = append([]int(nil), fe.baseConfig.Render.Background...)
	return &cfg
}
