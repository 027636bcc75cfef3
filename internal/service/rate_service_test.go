package service

import (
	"math"
	"testing"
	"time"

	"crypto-wallet-client/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRate(randFn func() float64) *RateService {
	svc := NewRateService(config.RateConfig{
		Base:     3000,
		Floor:    100,
		Drift:    0.02,
		Interval: time.Second,
	}, zerolog.Nop())
	if randFn != nil {
		svc.randFn = randFn
	}
	return svc
}

func TestRateService_StartsAtBase(t *testing.T) {
	assert.Equal(t, 3000.0, newTestRate(nil).Current())
}

func TestRateService_Tick_Bounds(t *testing.T) {
	tests := []struct {
		name string
		rand float64
		want float64
	}{
		{"max upward drift", 1.0, 3060.0},
		{"max downward drift", 0.0, 2940.0},
		{"midpoint holds base", 0.5, 3000.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestRate(func() float64 { return tt.rand })
			svc.tick()
			assert.Equal(t, tt.want, svc.Current())
		})
	}
}

func TestRateService_Tick_RoundsToCents(t *testing.T) {
	svc := newTestRate(func() float64 { return 0.123456 })
	svc.tick()

	got := svc.Current()
	assert.Equal(t, math.Round(got*100)/100, got)
	assert.Greater(t, got, 2940.0)
	assert.Less(t, got, 3000.0)
}

func TestRateService_Tick_ClampsToFloor(t *testing.T) {
	svc := NewRateService(config.RateConfig{
		Base:     101,
		Floor:    100,
		Drift:    0.5,
		Interval: time.Second,
	}, zerolog.Nop())
	svc.randFn = func() float64 { return 0.0 }

	svc.tick()
	assert.Equal(t, 100.0, svc.Current())
}

func TestRateService_Reset(t *testing.T) {
	svc := newTestRate(func() float64 { return 1.0 })
	svc.tick()
	assert.NotEqual(t, 3000.0, svc.Current())

	svc.Reset()
	assert.Equal(t, 3000.0, svc.Current())
}
