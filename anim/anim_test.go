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

package anim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasings(t *testing.T) {
	for name, ease := range map[string]Easing{
		"linear":    Linear,
		"quad-out":  QuadraticOut,
		"quad-both": QuadraticInOut,
	} {
		assert.InDelta(t, 0, ease(0), 1e-12, name)
		assert.InDelta(t, 1, ease(1), 1e-12, name)
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := ease(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev, name)
			prev = v
		}
	}
	assert.InDelta(t, 0.75, QuadraticOut(0.5), 1e-12)
	assert.InDelta(t, 0.5, QuadraticInOut(0.5), 1e-12)
}

func TestTweenAt(t *testing.T) {
	tw := Tween{From: 0.2, To: 1, Duration: time.Second, Delay: 100 * time.Millisecond}

	assert.Equal(t, 0.2, tw.At(0))
	assert.Equal(t, 0.2, tw.At(100*time.Millisecond))
	assert.InDelta(t, 0.6, tw.At(600*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, tw.At(1100*time.Millisecond))
	assert.Equal(t, 1.0, tw.At(time.Hour))
	assert.Equal(t, 1100*time.Millisecond, tw.Total())

	zero := Tween{From: 0, To: 1}
	assert.Equal(t, 1.0, zero.At(0))
}

func TestFrames(t *testing.T) {
	tw := Start(time.Second)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, tw.Frames(5))
	assert.Equal(t, []float64{1}, tw.Frames(1))
	assert.Nil(t, tw.Frames(0))

	tw.Easing = QuadraticOut
	frames := tw.Frames(11)
	require.Len(t, frames, 11)
	assert.Equal(t, 0.0, frames[0])
	assert.Equal(t, 1.0, frames[10])
	assert.Greater(t, frames[1]-frames[0], frames[10]-frames[9])
}

func TestResume(t *testing.T) {
	tw := Resume(0.25, 4*time.Second)
	assert.Equal(t, 0.25, tw.From)
	assert.Equal(t, 1.0, tw.To)
	assert.Equal(t, 3*time.Second, tw.Duration)
	assert.Equal(t, ResumeDelay, tw.Delay)

	tw = Resume(1.5, 4*time.Second)
	assert.Equal(t, time.Duration(0), tw.Duration)
	assert.Equal(t, 1.0, tw.At(tw.Total()))
}

func TestDurationFor(t *testing.T) {
	assert.Equal(t, 2*time.Second, DurationFor(1000, 1))
	assert.Equal(t, 2*time.Second, DurationFor(500, 0.5))
	assert.Equal(t, 2*time.Second, DurationFor(1000, 0))
	assert.Equal(t, time.Duration(0), DurationFor(0, 1))
	assert.Equal(t, time.Duration(0), DurationFor(-5, 1))
}

func TestPointerOffset(t *testing.T) {
	assert.InDelta(t, -0.25, PointerOffset(0, 800), 1e-12)
	assert.InDelta(t, 0.5, PointerOffset(400, 800), 1e-12)
	assert.InDelta(t, 1.25, PointerOffset(800, 800), 1e-12)
	assert.Equal(t, 0.0, PointerOffset(10, 0))
}

func TestRun(t *testing.T) {
	tw := Start(20 * time.Millisecond)
	var values []float64
	err := tw.Run(context.Background(), time.Millisecond, func(v float64) {
		values = append(values, v)
	})
	require.NoError(t, err)
	require.NotEmpty(t, values)
	assert.Equal(t, 1.0, values[len(values)-1])
	for i := 1; i < len(values); i++ {
		assert.GreaterOrEqual(t, values[i], values[i-1])
	}
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tw := Start(time.Hour)
	err := tw.Run(ctx, time.Millisecond, func(float64) {})
	assert.ErrorIs(t, err, context.Canceled)
}
