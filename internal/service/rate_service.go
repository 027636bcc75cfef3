package service

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"crypto-wallet-client/config"

	"github.com/rs/zerolog"
)

// RateService maintains the simulated ETH/USD exchange rate: a bounded
// symmetric random walk around a fixed base, clamped to a floor and rounded
// to cent precision. The value exists purely so the UI can show a plausible
// USD equivalent; it has no bearing on backend accounting. The ticker runs
// independent of authentication state until the context is canceled.
type RateService struct {
	base     float64
	floor    float64
	drift    float64
	interval time.Duration
	log      zerolog.Logger

	// randFn returns a value in [0, 1); injectable for tests.
	randFn func() float64

	mu      sync.RWMutex
	current float64
}

// NewRateService creates a ticker seeded at the base rate.
func NewRateService(cfg config.RateConfig, log zerolog.Logger) *RateService {
	return &RateService{
		base:     cfg.Base,
		floor:    cfg.Floor,
		drift:    cfg.Drift,
		interval: cfg.Interval,
		log:      log.With().Str("component", "rate_ticker").Logger(),
		randFn:   rand.Float64,
		current:  cfg.Base,
	}
}

// Start runs the perturbation loop until ctx is canceled.
func (s *RateService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

// tick perturbs the rate by a symmetric percentage of the base, clamped to
// the floor and rounded to cents.
func (s *RateService) tick() {
	deviation := (s.randFn()*2 - 1) * s.drift
	next := s.base * (1 + deviation)
	if next < s.floor {
		next = s.floor
	}
	next = roundCents(next)

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	s.log.Debug().Float64("rate", next).Msg("exchange rate ticked")
}

// Current returns the cached rate.
func (s *RateService) Current() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reset snaps the rate back to the base value. Called on logout so a fresh
// session starts from a known rate.
func (s *RateService) Reset() {
	s.mu.Lock()
	s.current = s.base
	s.mu.Unlock()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
