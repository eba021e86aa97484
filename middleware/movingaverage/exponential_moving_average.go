// Package movingaverage computes time-weighted exponential moving averages.
package movingaverage

import (
	"math"
	"sync"
	"time"
)

// ExponentialMovingAverage computes the moving average of a value, weighting each update by the time elapsed
// since the previous one.
type ExponentialMovingAverage struct {
	mu     sync.Mutex
	v      float64
	t      time.Time
	period float64
	now    func() time.Time
}

// New creates an ExponentialMovingAverage for a given period
func New(period time.Duration) *ExponentialMovingAverage {
	return &ExponentialMovingAverage{
		t:      time.Now(),
		period: period.Seconds(),
		now:    time.Now,
	}
}

// Update folds value into the average and returns the new average
func (ema *ExponentialMovingAverage) Update(value float64) float64 {
	ema.mu.Lock()
	defer ema.mu.Unlock()

	now := ema.now()
	a := 1.0 - math.Exp(ema.t.Sub(now).Seconds()/ema.period)
	ema.v = a*value + (1.0-a)*ema.v
	ema.t = now

	return ema.v
}

// Value gets the current average
func (ema *ExponentialMovingAverage) Value() float64 {
	ema.mu.Lock()
	defer ema.mu.Unlock()

	return ema.v
}
