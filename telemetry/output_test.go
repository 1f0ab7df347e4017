package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/plexus/config"
)

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\"): %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Errorf("WriteStats on nil: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("WritePerf on nil: %v", err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Errorf("WriteConfig on nil: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir() = %q, want empty", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := int64(1); i <= 3; i++ {
		if err := om.WriteStats(WindowStats{WindowEndTick: i * 600, Particles: 80, Links: int(i)}); err != nil {
			t.Fatalf("WriteStats: %v", err)
		}
		if err := om.WritePerf(PerfStats{AvgTickDuration: time.Millisecond}, i*600); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var rows []WindowStats
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		t.Fatalf("reading stats.csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("stats rows = %d, want 3 (header written once)", len(rows))
	}
	for i, r := range rows {
		if r.WindowEndTick != int64(i+1)*600 || r.Links != i+1 || r.Particles != 80 {
			t.Errorf("row %d = %+v", i, r)
		}
	}

	pf, err := os.Open(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer pf.Close()

	var perf []PerfStatsCSV
	if err := gocsv.UnmarshalFile(pf, &perf); err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}
	if len(perf) != 3 || perf[2].WindowEnd != 1800 || perf[0].AvgTickUS != 1000 {
		t.Errorf("perf rows = %+v", perf)
	}
}

func TestOutputManagerWritesConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	reloaded, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if reloaded.Field.Count != cfg.Field.Count {
		t.Errorf("field.count = %d, want %d", reloaded.Field.Count, cfg.Field.Count)
	}
}
