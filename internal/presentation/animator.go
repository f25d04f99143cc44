package presentation

import (
	"math"
	"time"

	"studioo/internal/domain/entities"
)

// Animator produces the successive values shown while a number counts up
// from zero. The last frame is always exactly the end value.
type Animator interface {
	Frames(end float64) []float64
	Interval() time.Duration
}

// EaseOutExpo counts up fast and settles slowly. Delay frames show zero.
type EaseOutExpo struct {
	Duration time.Duration
	Delay    time.Duration
	FPS      int
}

// DefaultAnimator matches the site animation: 1.5s after a 200ms delay.
func DefaultAnimator() EaseOutExpo {
	return EaseOutExpo{Duration: 1500 * time.Millisecond, Delay: 200 * time.Millisecond, FPS: 60}
}

func (a EaseOutExpo) Interval() time.Duration {
	if a.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(a.FPS)
}

func (a EaseOutExpo) Frames(end float64) []float64 {
	interval := a.Interval()
	if interval <= 0 || a.Duration <= 0 {
		return []float64{end}
	}
	delay := int(a.Delay / interval)
	steps := int(a.Duration / interval)
	if steps < 1 {
		steps = 1
	}

	out := make([]float64, 0, delay+steps)
	for range delay {
		out = append(out, 0)
	}
	for i := 1; i <= steps; i++ {
		out = append(out, end*easeOutExpo(float64(i)/float64(steps)))
	}
	out[len(out)-1] = end
	return out
}

func easeOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Static shows the final value immediately.
type Static struct{}

func (Static) Frames(end float64) []float64 { return []float64{end} }
func (Static) Interval() time.Duration      { return 0 }

// CountUp returns one quote per animation frame with every amount eased
// towards its final value. The last snapshot equals q.
func CountUp(q entities.Quote, a Animator) []entities.Quote {
	grand := a.Frames(q.GrandTotal)
	n := len(grand)
	if n == 0 {
		return []entities.Quote{q}
	}

	type itemFrames struct{ qty, rate, total []float64 }
	items := make([]itemFrames, len(q.LineItems))
	for i, it := range q.LineItems {
		items[i] = itemFrames{a.Frames(it.Quantity), a.Frames(it.Rate), a.Frames(it.Total)}
	}

	out := make([]entities.Quote, n)
	for f := range n {
		snap := q
		snap.GrandTotal = grand[f]
		snap.LineItems = make([]entities.LineItem, len(q.LineItems))
		for i, it := range q.LineItems {
			it.Quantity = frameAt(items[i].qty, f, it.Quantity)
			it.Rate = frameAt(items[i].rate, f, it.Rate)
			it.Total = frameAt(items[i].total, f, it.Total)
			snap.LineItems[i] = it
		}
		out[f] = snap
	}
	out[n-1] = q
	return out
}

func frameAt(frames []float64, i int, final float64) float64 {
	if len(frames) == 0 {
		return final
	}
	if i >= len(frames) {
		return frames[len(frames)-1]
	}
	return frames[i]
}
