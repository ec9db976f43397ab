package trail

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/sparkle-cursor/config"
	"github.com/automoto/sparkle-cursor/settings"
)

func newTestEngine(cfg config.SimulationConfig) *Engine {
	return NewEngine(cfg, rand.New(rand.NewPCG(1, 2)))
}

func sparkles(intensity float64) settings.Settings {
	s := settings.Defaults()
	s.Trail = settings.TrailSparkles
	s.Intensity = intensity
	return s
}

func TestFiftyPixelMoveSpawnsCap(t *testing.T) {
	e := newTestEngine(config.Page)
	e.Tick(100, 100, sparkles(5))

	if got := e.Tick(150, 100, sparkles(5)); got != 5 {
		t.Fatalf("spawned %d, want 5", got)
	}
	if e.Len() != 5 {
		t.Fatalf("live set = %d, want 5", e.Len())
	}
}

func TestSpawnCountBounds(t *testing.T) {
	hosts := []struct {
		name string
		cfg  config.SimulationConfig
	}{
		{"page", config.Page},
		{"preview", config.Preview},
	}
	for _, h := range hosts {
		for intensity := 0.0; intensity <= 10; intensity++ {
			for _, d := range []float64{0.5, 1.5, 2.5, 10, 40, 500} {
				n := SpawnCount(h.cfg, intensity, d)
				if d <= h.cfg.MovementThreshold {
					if n != 0 {
						t.Errorf("%s: intensity %v distance %v spawned %d below threshold", h.name, intensity, d, n)
					}
					continue
				}
				if n < 1 || n > h.cfg.SpawnCap {
					t.Errorf("%s: intensity %v distance %v spawned %d, want 1..%d", h.name, intensity, d, n, h.cfg.SpawnCap)
				}
			}
		}
	}
}

func TestPreviewCapIsThree(t *testing.T) {
	if got := SpawnCount(config.Preview, 10, 200); got != 3 {
		t.Fatalf("preview spawn = %d, want 3", got)
	}
	if got := SpawnCount(config.Page, 10, 200); got != 5 {
		t.Fatalf("page spawn = %d, want 5", got)
	}
}

func TestNoTrailNeverSpawns(t *testing.T) {
	e := newTestEngine(config.Page)
	s := settings.Defaults()
	s.Trail = settings.TrailNone

	for i := 0; i < 50; i++ {
		e.Tick(float64(i*40), float64(i*13), s)
		if e.Len() != 0 {
			t.Fatalf("tick %d: %d particles with no trail", i, e.Len())
		}
	}
}

func TestUnknownTrailTreatedAsNone(t *testing.T) {
	e := newTestEngine(config.Page)
	s := settings.Defaults()
	s.Trail = "confetti"

	e.Tick(0, 0, s)
	if got := e.Tick(300, 300, s); got != 0 || e.Len() != 0 {
		t.Fatalf("unknown trail spawned %d (live %d)", got, e.Len())
	}
}

func TestLifeStrictlyDecreasesUntilRetired(t *testing.T) {
	e := newTestEngine(config.Page)
	s := sparkles(5)
	e.Tick(0, 0, s)
	e.Tick(60, 0, s)

	// Stationary pointer: nothing spawns, survivors keep their order and each
	// loses exactly its decay.
	for tick := 0; tick < 200 && e.Len() > 0; tick++ {
		before := append([]Particle(nil), e.Particles()...)
		e.Tick(60, 0, s)

		if e.Len() > len(before) {
			t.Fatalf("tick %d: count grew from %d to %d while stationary", tick, len(before), e.Len())
		}
		i := 0
		for _, p := range e.Particles() {
			if p.Life <= 0 {
				t.Fatalf("tick %d: retired particle still live (life %v)", tick, p.Life)
			}
			for i < len(before) && before[i].Decay != p.Decay {
				i++
			}
			if i == len(before) {
				t.Fatalf("tick %d: survivor not found in previous set", tick)
			}
			if !(p.Life < before[i].Life) {
				t.Fatalf("tick %d: life %v did not drop below %v", tick, p.Life, before[i].Life)
			}
			i++
		}
	}
}

func TestStationaryPointerEmptiesWithinDecayBound(t *testing.T) {
	e := newTestEngine(config.Page)
	s := sparkles(10)
	e.Tick(0, 0, s)
	e.Tick(80, 0, s)
	if e.Len() == 0 {
		t.Fatal("expected particles after movement")
	}

	// Slowest particle decays at DecayBase per tick.
	bound := int(1/config.Page.DecayBase) + 1
	for i := 0; i < bound; i++ {
		e.Tick(80, 0, s)
	}
	if e.Len() != 0 {
		t.Fatalf("%d particles survive after %d stationary ticks", e.Len(), bound)
	}
}

func TestTrailChangeClearsImmediately(t *testing.T) {
	e := newTestEngine(config.Page)
	s := sparkles(5)
	e.Tick(0, 0, s)
	e.Tick(60, 0, s)
	if e.Len() == 0 {
		t.Fatal("expected particles")
	}

	e.SetTrail(settings.TrailHearts)
	if e.Len() != 0 {
		t.Fatalf("trail switch left %d particles", e.Len())
	}

	s.Trail = settings.TrailHearts
	e.Tick(120, 0, s)
	for _, p := range e.Particles() {
		if p.Kind != settings.TrailHearts {
			t.Fatalf("stale particle kind %q after switch", p.Kind)
		}
	}
}

func TestTickClearsOnSettingsSwap(t *testing.T) {
	e := newTestEngine(config.Page)
	s := sparkles(5)
	e.Tick(0, 0, s)
	e.Tick(60, 0, s)

	s.Trail = settings.TrailNone
	e.Tick(60, 0, s)
	if e.Len() != 0 {
		t.Fatalf("switch to none left %d particles", e.Len())
	}
}

func TestSameTrailKeepsParticles(t *testing.T) {
	e := newTestEngine(config.Page)
	s := sparkles(5)
	e.Tick(0, 0, s)
	e.Tick(60, 0, s)
	n := e.Len()

	e.SetTrail(settings.TrailSparkles)
	if e.Len() != n {
		t.Fatalf("re-applying the same trail changed count %d -> %d", n, e.Len())
	}
}

func TestParticleColors(t *testing.T) {
	e := newTestEngine(config.Page)
	s := sparkles(5)
	s.Color = "#00ff00"
	e.Tick(0, 0, s)
	e.Tick(60, 0, s)
	for _, p := range e.Particles() {
		if p.Color.R != 0 || p.Color.G != 255 || p.Color.B != 0 {
			t.Fatalf("particle colour = %+v, want settings colour", p.Color)
		}
	}
}

func TestRainbowAdvancesHuePerParticle(t *testing.T) {
	e := newTestEngine(config.Page)
	s := sparkles(5)
	s.Trail = settings.TrailRainbow
	e.Tick(0, 0, s)
	n := e.Tick(60, 0, s)

	if want := float64(n) * config.Page.HueStep; e.Hue() != want {
		t.Fatalf("hue = %v after %d spawns, want %v", e.Hue(), n, want)
	}
	seen := map[string]bool{}
	for _, p := range e.Particles() {
		key := string([]byte{p.Color.R, p.Color.G, p.Color.B})
		seen[key] = true
	}
	if len(seen) < 2 {
		t.Fatal("rainbow particles should not share one colour")
	}
}

func TestResetClearsAndForgetsPointer(t *testing.T) {
	e := newTestEngine(config.Page)
	s := sparkles(5)
	e.Tick(0, 0, s)
	e.Tick(60, 0, s)
	e.Reset()
	if e.Len() != 0 {
		t.Fatalf("reset left %d particles", e.Len())
	}
	// First tick after reset only seeds the pointer history.
	if got := e.Tick(500, 500, s); got != 0 {
		t.Fatalf("first tick after reset spawned %d", got)
	}
}
