package main

import (
	"bytes"
	"math"

	"vector2d/vec2"
)

// panFor maps a horizontal screen fraction to per-channel gains. The gains
// form a unit vector, so loudness stays constant as a sound moves across.
func panFor(frac float32) vec2.Vector2D {
	gains := vec2.Lerp(vec2.New(1, 0.2), vec2.New(0.2, 1), frac)
	gains.Normalize()
	return gains
}

// generateBlipPCM creates a short blip as 16-bit little-endian stereo PCM.
// The tone has a cosine attack, exponential decay and a slight downward
// glide; pan.X and pan.Y are the left and right channel gains.
func generateBlipPCM(sampleRate int, seconds, freqHz float64, pan vec2.Vector2D) []byte {
	n := int(float64(sampleRate) * seconds)
	if n <= 1 {
		return nil
	}
	var b bytes.Buffer
	b.Grow(n * 4)

	const (
		amp    = 0.3
		decay  = 6.9 // ~-60dB by the last sample
		attack = 0.004
	)
	attackN := int(math.Min(attack, seconds*0.2) * float64(sampleRate))
	startFreq, endFreq := freqHz*1.04, freqHz*0.9

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)

		env := amp * math.Exp(-decay*t)
		if i < attackN {
			env *= 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(attackN))
		}

		phase += 2 * math.Pi * (startFreq * math.Pow(endFreq/startFreq, t)) / float64(sampleRate)
		mono := (math.Sin(phase) + 0.15*math.Sin(2*phase)) * env

		frame := vec2.Scaled(pan, float32(mono))
		writeSample(&b, frame.X)
		writeSample(&b, frame.Y)
	}
	return b.Bytes()
}

func writeSample(b *bytes.Buffer, v float32) {
	s := int16(max(-1, min(1, v)) * 32767)
	b.WriteByte(byte(s))
	b.WriteByte(byte(s >> 8))
}
