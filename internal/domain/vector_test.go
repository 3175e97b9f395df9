package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDefaultVector(t *testing.T) {
	v := DefaultVector()
	assert.Equal(t, Vector{Strategic: 0.5, Creative: 0.5, Social: 0.5, Competitive: 0.5, Quick: 0.5}, v)
}

func TestVector_Blend(t *testing.T) {
	v := Vector{Strategic: 0.5, Creative: 0.5, Social: 0.5, Competitive: 0.5, Quick: 0.5}
	target := Vector{Strategic: 1, Creative: 0, Social: 1, Competitive: 0, Quick: 1}

	got := v.Blend(target, 0.05)
	assert.InDelta(t, 0.525, got.Strategic, 1e-9)
	assert.InDelta(t, 0.475, got.Creative, 1e-9)
	assert.InDelta(t, 0.525, got.Social, 1e-9)
	assert.InDelta(t, 0.475, got.Competitive, 1e-9)
	assert.InDelta(t, 0.525, got.Quick, 1e-9)

	// alpha 0 keeps the vector, alpha 1 adopts the target
	assert.Equal(t, v, v.Blend(target, 0))
	assert.Equal(t, target, v.Blend(target, 1))
}

func TestVector_Dot(t *testing.T) {
	a := Vector{Strategic: 1, Creative: 0.5, Social: 0, Competitive: 0.2, Quick: 0.1}
	b := Vector{Strategic: 0.5, Creative: 1, Social: 1, Competitive: 0, Quick: 0.1}

	assert.InDelta(t, 1.01, a.Dot(b), 1e-9)
	assert.InDelta(t, a.Dot(b), b.Dot(a), 1e-9)
	assert.Equal(t, 0.0, Vector{}.Dot(a))
}

func drawVector(t *rapid.T, label string) Vector {
	gen := rapid.Float64Range(0, 1)
	return Vector{
		Strategic:   gen.Draw(t, label+"_strategic"),
		Creative:    gen.Draw(t, label+"_creative"),
		Social:      gen.Draw(t, label+"_social"),
		Competitive: gen.Draw(t, label+"_competitive"),
		Quick:       gen.Draw(t, label+"_quick"),
	}
}

// Blending two vectors with components in [0,1] must never leave [0,1],
// no matter how many times it is applied.
func TestVector_BlendStaysInRangeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawVector(t, "v")
		target := drawVector(t, "target")
		alpha := rapid.Float64Range(0, 1).Draw(t, "alpha")
		steps := rapid.IntRange(1, 50).Draw(t, "steps")

		for i := 0; i < steps; i++ {
			v = v.Blend(target, alpha)
		}

		for name, c := range map[string]float64{
			"strategic":   v.Strategic,
			"creative":    v.Creative,
			"social":      v.Social,
			"competitive": v.Competitive,
			"quick":       v.Quick,
		} {
			if c < 0 || c > 1 {
				t.Fatalf("component %s out of range after %d blends: %v", name, steps, c)
			}
		}
	})
}

// Repeated blending toward a fixed target converges to that target.
func TestVector_BlendConvergesProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawVector(t, "v")
		target := drawVector(t, "target")

		for i := 0; i < 2000; i++ {
			v = v.Blend(target, 0.05)
		}

		if diff := v.Dot(v) - 2*v.Dot(target) + target.Dot(target); diff > 1e-6 {
			t.Fatalf("vector did not converge to target, squared distance %v", diff)
		}
	})
}
