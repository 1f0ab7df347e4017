package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseUpdate)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.PhaseAvg[PhaseUpdate] <= 0 {
		t.Error("expected update phase to be tracked")
	}
	if stats.PhaseAvg[PhaseDraw] <= 0 {
		t.Error("expected draw phase to be tracked")
	}
	if stats.PhaseAvg[PhaseTelemetry] != 0 {
		t.Errorf("telemetry phase = %v, want 0", stats.PhaseAvg[PhaseTelemetry])
	}
	if stats.MinTickDuration > stats.AvgTickDuration || stats.AvgTickDuration > stats.MaxTickDuration {
		t.Errorf("min/avg/max out of order: %v %v %v", stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseUpdate)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseUpdate)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct[PhaseDraw] <= stats.PhasePct[PhaseUpdate] {
		t.Errorf("expected draw (%v%%) > update (%v%%)", stats.PhasePct[PhaseDraw], stats.PhasePct[PhaseUpdate])
	}
	if stats.PhasePct[PhaseDraw] > 100 {
		t.Errorf("draw pct = %v, want <= 100", stats.PhasePct[PhaseDraw])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.TicksPerSecond != 0 {
		t.Error("expected zero ticks per second for empty collector")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("FPS = %v, want (0, 70]", stats.FPS)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseUpdate.String() != "update" || PhaseDraw.String() != "draw" {
		t.Errorf("unexpected phase names %q %q", PhaseUpdate, PhaseDraw)
	}
	if Phase(99).String() != "unknown" {
		t.Errorf("Phase(99) = %q, want unknown", Phase(99))
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{AvgTickDuration: 1500 * time.Microsecond}
	s.PhasePct[PhaseDraw] = 80
	row := s.ToCSV(120)
	if row.WindowEnd != 120 || row.AvgTickUS != 1500 || row.DrawPct != 80 {
		t.Errorf("ToCSV = %+v", row)
	}
}
