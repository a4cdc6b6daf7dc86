package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleOf(t *testing.T) {
	assert.Equal(t, StyleHappy, StyleOf("happy"))
	assert.Equal(t, StyleSad, StyleOf("sad"))
	assert.Equal(t, StyleRobot, StyleOf("robot"))
	assert.Equal(t, StyleFallback, StyleOf(NeutralLabel))
	assert.Equal(t, StyleFallback, StyleOf("Happy"), "labels are case sensitive")
	assert.Equal(t, "fallback", StyleOf("dragon").String())
}

func TestVec3DistanceTo(t *testing.T) {
	a := Vec3{X: 0, Y: 1, Z: -0.5}
	assert.InDelta(t, 0, a.DistanceTo(a), 1e-12)
	assert.InDelta(t, 5, Vec3{X: 3, Y: 4}.DistanceTo(Vec3{}), 1e-12)
}
