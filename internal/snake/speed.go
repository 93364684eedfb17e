package snake

import "github.com/vovakirdan/snake-plus/internal/config"

// Speed is the frame rate state. Rate equals BaseRate unless a boost is
// active.
type Speed struct {
	BaseRate       int
	Rate           int
	BoostRemaining int // Ticks left on the active boost
}

func newSpeed(cfg config.SpeedConfig) Speed {
	return Speed{BaseRate: cfg.BaseRate, Rate: cfg.BaseRate}
}

// Boosted reports whether a boost is active.
func (s Speed) Boosted() bool {
	return s.BoostRemaining > 0
}

// tick runs the ramp and the boost countdown for the tick numbered age.
func (s *Speed) tick(cfg config.SpeedConfig, age int) {
	if cfg.RampEnabled && cfg.RampEveryTicks > 0 && age%cfg.RampEveryTicks == 0 {
		s.BaseRate++
		if !s.Boosted() {
			s.Rate = s.BaseRate
		}
	}

	if s.Boosted() {
		s.BoostRemaining--
		if s.BoostRemaining == 0 {
			s.Rate = s.BaseRate
		}
	}
}

// boost starts (or restarts) a boost on top of the current base rate.
func (s *Speed) boost(cfg config.SpeedConfig) {
	s.BoostRemaining = cfg.BoostDurationTicks
	s.Rate = s.BaseRate + cfg.BoostRateIncrease
}
