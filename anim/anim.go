// seehuhn.de/go/calligraphy - animated calligraphic letterforms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package anim drives the drawing animation of a letter.
//
// A Tween moves the phase offset from one value to another over time.
// Frames samples a tween deterministically, for exporting animations,
// and Run calls a function at regular intervals, for live display.
package anim

import (
	"context"
	"math"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'calligraphy.anim'
func tracer() tracing.Trace {
	return tracing.Select("calligraphy.anim")
}

// MillisPerUnit is the animation time per unit of unscaled stroke length.
const MillisPerUnit = 2

// ResumeDelay is the pause between releasing the pointer and resuming the
// animation.
const ResumeDelay = 500 * time.Millisecond

// An Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// QuadraticOut starts fast and decelerates towards the end.
func QuadraticOut(t float64) float64 {
	return t * (2 - t)
}

// QuadraticInOut accelerates during the first half and decelerates during
// the second half.
func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Tween describes the change of a value over time.
type Tween struct {
	From, To float64

	// Duration is the time taken to move from From to To, not including
	// the Delay.
	Duration time.Duration

	// Delay is the time before the value starts to change.
	Delay time.Duration

	// Easing is applied to the progress.  Nil means Linear.
	Easing Easing
}

// Start returns a tween which draws a letter from start to end.
func Start(duration time.Duration) Tween {
	return Tween{From: 0, To: 1, Duration: duration, Easing: Linear}
}

// Resume returns a tween which continues drawing from the given offset
// after the pointer has been released.  The remaining duration is the
// remaining fraction of full.
func Resume(offset float64, full time.Duration) Tween {
	offset = max(0, min(offset, 1))
	return Tween{
		From:     offset,
		To:       1,
		Duration: time.Duration(float64(full) * (1 - offset)),
		Delay:    ResumeDelay,
		Easing:   Linear,
	}
}

// DurationFor returns the animation time for a letter of the given length.
// The length is measured at the given scale factor, so that the animation
// speed does not depend on the display size.
func DurationFor(length, scale float64) time.Duration {
	if !(scale > 0) {
		scale = 1
	}
	ms := length / scale * MillisPerUnit
	if !(ms > 0) || math.IsInf(ms, 0) {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// PointerOffset converts a horizontal pointer position into a phase
// offset.  The middle three quarters of the width span the whole letter.
// The result is not clamped.
func PointerOffset(x, width float64) float64 {
	if !(width > 0) {
		return 0
	}
	return x/width*1.5 - 0.25
}

// Total returns the time until the tween reaches its final value.
func (tw Tween) Total() time.Duration {
	return tw.Delay + max(tw.Duration, 0)
}

// At returns the value of the tween after the given time has elapsed.
func (tw Tween) At(elapsed time.Duration) float64 {
	elapsed -= tw.Delay
	if elapsed < 0 {
		return tw.From
	}
	if tw.Duration <= 0 || elapsed >= tw.Duration {
		return tw.To
	}
	return tw.value(float64(elapsed) / float64(tw.Duration))
}

func (tw Tween) value(progress float64) float64 {
	ease := tw.Easing
	if ease == nil {
		ease = Linear
	}
	return tw.From + (tw.To-tw.From)*ease(progress)
}

// Frames returns n values sampled at equal time steps from the start to
// the end of the tween, both included.  The delay is ignored.
func (tw Tween) Frames(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{tw.To}
	}
	res := make([]float64, n)
	for i := range n {
		res[i] = tw.value(float64(i) / float64(n-1))
	}
	res[n-1] = tw.To
	return res
}

// Run calls fn with the current value of the tween once per interval,
// until the final value has been delivered or the context is cancelled.
// On cancellation the context's error is returned.
func (tw Tween) Run(ctx context.Context, interval time.Duration, fn func(value float64)) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	tracer().Debugf("tween %.3f -> %.3f in %s (delay %s)", tw.From, tw.To, tw.Duration, tw.Delay)

	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		elapsed := time.Since(start)
		if elapsed >= tw.Total() {
			fn(tw.To)
			return nil
		}
		if elapsed >= tw.Delay {
			fn(tw.At(elapsed))
		}
	}
}
