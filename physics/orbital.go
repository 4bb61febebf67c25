package physics

import (
	"math"

	"github.com/lixenwraith/stardrift/vmath"
)

// OrbitPoint returns the position of a body at angle on a circle around center
func OrbitPoint(center vmath.Vec2, radius, angle float64) vmath.Vec2 {
	return center.Add(vmath.FromAngle(angle).Scale(radius))
}

// SpreadAngle returns the angle of body i of n evenly spaced around a base angle
func SpreadAngle(base float64, i, n int) float64 {
	if n <= 0 {
		return base
	}
	return base + float64(i)*2*math.Pi/float64(n)
}
