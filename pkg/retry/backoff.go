package retry

import (
	"math"
	"math/rand"
	"time"
)

// Strategy calculates the delay before a retry.
// Implementations should be safe for concurrent use.
type Strategy interface {
	// Next returns the delay before retry number n; n starts at 1.
	Next(n int) time.Duration
}

// Exponential grows the delay by Multiplier per retry, optionally with jitter.
// Formula: min(Initial * Multiplier^(n-1) * (1 ± Jitter), Max)
type Exponential struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64
}

func (e Exponential) Next(n int) time.Duration {
	if n <= 0 {
		return 0
	}

	initial := e.Initial
	if initial == 0 {
		initial = time.Second
	}
	maxDelay := e.Max
	if maxDelay == 0 {
		maxDelay = 30 * time.Second
	}
	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(n-1))
	if e.Jitter > 0 {
		interval *= 1 + (rand.Float64()*2-1)*e.Jitter
	}
	if interval > float64(maxDelay) {
		interval = float64(maxDelay)
	}
	return time.Duration(interval)
}

// Linear waits Interval * n, capped at Max.
type Linear struct {
	Interval time.Duration
	Max      time.Duration
}

func (l Linear) Next(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	interval := l.Interval
	if interval == 0 {
		interval = time.Second
	}
	maxDelay := l.Max
	if maxDelay == 0 {
		maxDelay = 30 * time.Second
	}
	return min(interval*time.Duration(n), maxDelay)
}

// Fixed waits the same interval before every retry.
type Fixed struct {
	Interval time.Duration
}

func (f Fixed) Next(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return f.Interval
}

// None retries immediately.
type None struct{}

func (None) Next(int) time.Duration { return 0 }

// DefaultStrategy doubles from one second up to thirty, without jitter.
func DefaultStrategy() Strategy {
	return Exponential{
		Initial:    time.Second,
		Max:        30 * time.Second,
		Multiplier: 2,
	}
}
