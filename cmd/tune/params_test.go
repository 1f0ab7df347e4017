package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/plexus/config"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: got %v, want %v", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestParamVectorClamp(t *testing.T) {
	pv := NewParamVector()
	got := pv.Clamp([]float64{-5, 10})
	if got[0] != pv.Specs[0].Min || got[1] != pv.Specs[1].Max {
		t.Errorf("Clamp = %v, want [%v %v]", got, pv.Specs[0].Min, pv.Specs[1].Max)
	}
}

func TestApplyAndExtract(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()

	if got := pv.ExtractFromConfig(cfg); got[0] != 120 || got[1] != 0.15 {
		t.Errorf("defaults = %v, want [120 0.15]", got)
	}

	pv.ApplyToConfig(cfg, []float64{90, 1})
	if cfg.Links.Distance != 90 {
		t.Errorf("links.distance = %v, want 90", cfg.Links.Distance)
	}
	if cfg.Links.MaxAlpha != pv.Specs[1].Max {
		t.Errorf("links.max_alpha = %v, want clamped %v", cfg.Links.MaxAlpha, pv.Specs[1].Max)
	}
}

func TestComputeFitness(t *testing.T) {
	fe := &FitnessEvaluator{targets: Targets{LinksPerParticle: 4, LinkAlpha: 0.05}}

	if got := fe.computeFitness(Measurement{LinksPerParticle: 4, LinkAlpha: 0.05}); got > 1e-12 {
		t.Errorf("fitness at target = %v, want 0", got)
	}
	// Half the target links: relative error 0.5, squared 0.25.
	if got := fe.computeFitness(Measurement{LinksPerParticle: 2, LinkAlpha: 0.05}); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("fitness = %v, want 0.25", got)
	}
}

func TestEvaluateMoreDistanceMoreLinks(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Field.Count = 40
	cfg.Derived.StatsTicks = 30

	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 60, []int64{1, 2}, cfg, Targets{LinksPerParticle: 4, LinkAlpha: 0.05})

	fe.Evaluate([]float64{60, 0.15})
	short := fe.Last()
	fe.Evaluate([]float64{300, 0.15})
	long := fe.Last()

	if short.LinksPerParticle <= 0 {
		t.Fatalf("links per particle at 60px = %v, want > 0", short.LinksPerParticle)
	}
	if long.LinksPerParticle <= short.LinksPerParticle {
		t.Errorf("links per particle: 300px = %v, 60px = %v; want more at the longer distance",
			long.LinksPerParticle, short.LinksPerParticle)
	}
}
