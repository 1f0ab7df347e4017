package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pthm-cable/plexus/systems"
	"github.com/pthm-cable/plexus/telemetry"
)

// waitForStatus polls the host until cond holds for the last presented status.
func waitForStatus(t *testing.T, host *HeadlessHost, cond func(Status) bool) Status {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s := host.LastStatus(); cond(s) {
			return s
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("status condition not reached, last status %+v", host.LastStatus())
	return Status{}
}

func TestHeadlessHostPacesAndStops(t *testing.T) {
	host := NewHeadlessHost(400, 300, 200)
	defer host.Close()
	host.SetMaxFrames(12)

	g := newTestGame(t, host.Surface(), testOptions())
	if err := g.Run(context.Background(), host); err != nil {
		t.Fatal(err)
	}

	if host.Frames() != 12 || g.Ticks() != 12 {
		t.Errorf("frames = %d, ticks = %d, want 12 each", host.Frames(), g.Ticks())
	}
	if host.Recorder().Clears != 12 {
		t.Errorf("frames drawn = %d, want 12", host.Recorder().Clears)
	}
	if last := host.LastStatus(); last.Tick != 12 || last.Particles != 30 {
		t.Errorf("last status = %+v, want tick 12 with 30 particles", last)
	}

	perf := g.PerfStats()
	if perf.FrameDuration <= 0 || perf.FPS <= 0 {
		t.Errorf("frame duration = %v, fps = %v, want both > 0", perf.FrameDuration, perf.FPS)
	}
}

func TestHeadlessHostControlsFromAnotherGoroutine(t *testing.T) {
	host := NewHeadlessHost(400, 300, 500)
	defer host.Close()

	g := newTestGame(t, host.Surface(), testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- g.Run(ctx, host) }()

	waitForStatus(t, host, func(s Status) bool { return s.Tick >= 3 })

	host.SetSize(500, 350)
	host.SetVisible(false)
	host.Send(Command{Kind: CmdTogglePause})
	host.Send(Command{Kind: CmdSetSpeed, Value: 4})

	changed := waitForStatus(t, host, func(s Status) bool {
		return s.Width == 500 && !s.Visible && s.Paused && s.Speed == 4
	})
	if changed.Height != 350 {
		t.Errorf("height = %d, want 350", changed.Height)
	}
	drawn := host.Recorder().Clears

	later := waitForStatus(t, host, func(s Status) bool { return s.Tick >= changed.Tick+5 })
	if later.Steps != changed.Steps {
		t.Errorf("steps moved from %d to %d while paused", changed.Steps, later.Steps)
	}
	if later.Width != 500 || later.Visible || !later.Paused {
		t.Errorf("state drifted: %+v", later)
	}

	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}

	if host.Recorder().Clears != drawn {
		t.Errorf("frames drawn while hidden: %d -> %d", drawn, host.Recorder().Clears)
	}
	if w, h := g.Simulator().Size(); w != 500 || h != 350 {
		t.Errorf("simulator size = %dx%d, want 500x350", w, h)
	}
}

func TestHiddenStatusCountsCurrentLinks(t *testing.T) {
	opts := testOptions()
	opts.StatsWindowTicks = 50

	frames := visibleFrames(400, 400, 300)
	for i := 1; i < len(frames); i++ {
		frames[i].Visible = false
	}
	host := newScriptedHost(frames)
	g := newTestGame(t, host.Surface(), opts)

	var last telemetry.WindowStats
	g.SetStatsCallback(func(s telemetry.WindowStats) { last = s })
	if err := g.Run(context.Background(), host); err != nil {
		t.Fatal(err)
	}

	p := g.Simulator().Params()
	want := len(systems.NewLinkSystem(p.LinkDistance, p.LinkMaxAlpha).Find(g.Simulator().Positions(nil)))

	if got := host.presented[len(host.presented)-1].Links; got != want {
		t.Errorf("status links = %d, want %d", got, want)
	}
	if last.WindowEndTick != 400 || last.Links != want {
		t.Errorf("last window ends at %d with %d links, want 400 with %d", last.WindowEndTick, last.Links, want)
	}
}

func TestNegativeFrameSizeResizesOnce(t *testing.T) {
	opts := testOptions()
	opts.StatsWindowTicks = 6

	frames := visibleFrames(6, -10, -5)
	host := newScriptedHost(frames)
	g := newTestGame(t, host.Surface(), opts)

	var windows []telemetry.WindowStats
	g.SetStatsCallback(func(s telemetry.WindowStats) { windows = append(windows, s) })
	if err := g.Run(context.Background(), host); err != nil {
		t.Fatal(err)
	}

	if len(windows) != 1 {
		t.Fatalf("windows = %d, want 1", len(windows))
	}
	if windows[0].Resizes != 1 {
		t.Errorf("resizes = %d, want 1", windows[0].Resizes)
	}
	if w, h := g.Simulator().Size(); w != 0 || h != 0 {
		t.Errorf("size = %dx%d, want 0x0", w, h)
	}
}
