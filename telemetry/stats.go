package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Field shape at window end
	Particles   int `csv:"particles"`
	Width       int `csv:"width"`
	Height      int `csv:"height"`
	OutOfBounds int `csv:"out_of_bounds"`

	// Links between particles at the window's last tick, drawn or not
	Links            int     `csv:"links"`
	LinksPerParticle float64 `csv:"links_per_particle"`
	LinkDistMean     float64 `csv:"link_dist_mean"`
	LinkDistP50      float64 `csv:"link_dist_p50"`
	LinkDistP90      float64 `csv:"link_dist_p90"`
	LinkAlphaMean    float64 `csv:"link_alpha_mean"`

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`

	// Events during window
	Bounces     int `csv:"bounces"`
	HiddenTicks int `csv:"hidden_ticks"`
	PausedTicks int `csv:"paused_ticks"`
	FramesDrawn int `csv:"frames_drawn"`
	Reseeds     int `csv:"reseeds"`
	Resizes     int `csv:"resizes"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDistribution returns the mean, median and 90th percentile of values.
func ComputeDistribution(values []float64) (mean, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	mean = stat.Mean(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return mean, Percentile(sorted, 0.50), Percentile(sorted, 0.90)
}

// ComputeMeanStd returns the mean and sample standard deviation of values.
// The deviation is zero for fewer than two values.
func ComputeMeanStd(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("particles", s.Particles),
		slog.Int("width", s.Width),
		slog.Int("height", s.Height),
		slog.Int("out_of_bounds", s.OutOfBounds),
		slog.Int("links", s.Links),
		slog.Float64("links_per_particle", s.LinksPerParticle),
		slog.Float64("link_dist_mean", s.LinkDistMean),
		slog.Float64("link_dist_p50", s.LinkDistP50),
		slog.Float64("link_dist_p90", s.LinkDistP90),
		slog.Float64("link_alpha_mean", s.LinkAlphaMean),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Int("bounces", s.Bounces),
		slog.Int("hidden_ticks", s.HiddenTicks),
		slog.Int("paused_ticks", s.PausedTicks),
		slog.Int("frames_drawn", s.FramesDrawn),
		slog.Int("reseeds", s.Reseeds),
		slog.Int("resizes", s.Resizes),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
