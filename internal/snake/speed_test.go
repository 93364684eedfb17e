package snake

import (
	"testing"

	"github.com/vovakirdan/snake-plus/internal/config"
)

func TestSpeedRamp(t *testing.T) {
	cfg := config.SpeedConfig{BaseRate: 8, RampEnabled: true, RampEveryTicks: 3, BoostDurationTicks: 4, BoostRateIncrease: 5}
	s := newSpeed(cfg)

	for age := 1; age <= 6; age++ {
		s.tick(cfg, age)
	}
	if s.BaseRate != 10 || s.Rate != 10 {
		t.Errorf("after 6 ticks: base %d rate %d, want 10/10", s.BaseRate, s.Rate)
	}
}

func TestSpeedRampDisabled(t *testing.T) {
	cfg := config.SpeedConfig{BaseRate: 8, RampEveryTicks: 1, BoostDurationTicks: 4}
	s := newSpeed(cfg)
	for age := 1; age <= 10; age++ {
		s.tick(cfg, age)
	}
	if s.Rate != 8 {
		t.Errorf("rate = %d, want 8", s.Rate)
	}
}

func TestBoostHoldsRateThroughRamp(t *testing.T) {
	cfg := config.SpeedConfig{BaseRate: 8, RampEnabled: true, RampEveryTicks: 2, BoostDurationTicks: 3, BoostRateIncrease: 4}
	s := newSpeed(cfg)
	s.boost(cfg)
	if s.Rate != 12 || !s.Boosted() {
		t.Fatalf("boosted rate %d", s.Rate)
	}

	s.tick(cfg, 1)
	s.tick(cfg, 2) // ramp while boosted
	if s.BaseRate != 9 || s.Rate != 12 {
		t.Errorf("during boost: base %d rate %d, want 9/12", s.BaseRate, s.Rate)
	}

	s.tick(cfg, 3) // boost expires
	if s.Boosted() || s.Rate != 9 {
		t.Errorf("after boost: rate %d boosted=%v, want 9", s.Rate, s.Boosted())
	}
}
