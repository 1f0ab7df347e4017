package telemetry

// FieldSample is a snapshot of the field taken at the end of a window.
type FieldSample struct {
	Particles     int
	Width, Height int
	OutOfBounds   int
	Speeds        []float64
	LinkDistances []float64
	LinkAlphas    []float64
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	bounces     int
	hiddenTicks int
	pausedTicks int
	framesDrawn int
	reseeds     int
	resizes     int
}

// NewCollector creates a new stats collector.
// windowTicks: driver ticks per stats window, at least 1
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int64, dt float64) *Collector {
	return &Collector{
		windowDurationTicks: max(windowTicks, 1),
		dt:                  dt,
	}
}

// RecordTick records one driver tick and its gate state.
func (c *Collector) RecordTick(visible, paused bool) {
	if !visible {
		c.hiddenTicks++
	} else {
		c.framesDrawn++
	}
	if paused {
		c.pausedTicks++
	}
}

// RecordBounces adds velocity reflections from one update.
func (c *Collector) RecordBounces(n int) {
	c.bounces += n
}

// RecordReseed records a field reconfiguration.
func (c *Collector) RecordReseed() {
	c.reseeds++
}

// RecordResize records a surface size change.
func (c *Collector) RecordResize() {
	c.resizes++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, sample FieldSample) WindowStats {
	distMean, distP50, distP90 := ComputeDistribution(sample.LinkDistances)
	alphaMean, _, _ := ComputeDistribution(sample.LinkAlphas)
	speedMean, speedStd := ComputeMeanStd(sample.Speeds)

	var perParticle float64
	if sample.Particles > 0 {
		// Each link touches two particles.
		perParticle = 2 * float64(len(sample.LinkDistances)) / float64(sample.Particles)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Particles:   sample.Particles,
		Width:       sample.Width,
		Height:      sample.Height,
		OutOfBounds: sample.OutOfBounds,

		Links:            len(sample.LinkDistances),
		LinksPerParticle: perParticle,
		LinkDistMean:     distMean,
		LinkDistP50:      distP50,
		LinkDistP90:      distP90,
		LinkAlphaMean:    alphaMean,

		SpeedMean: speedMean,
		SpeedStd:  speedStd,

		Bounces:     c.bounces,
		HiddenTicks: c.hiddenTicks,
		PausedTicks: c.pausedTicks,
		FramesDrawn: c.framesDrawn,
		Reseeds:     c.reseeds,
		Resizes:     c.resizes,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.bounces = 0
	c.hiddenTicks = 0
	c.pausedTicks = 0
	c.framesDrawn = 0
	c.reseeds = 0
	c.resizes = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
