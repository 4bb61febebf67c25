package physics

import "github.com/lixenwraith/stardrift/vmath"

// Seek returns the velocity that carries pos toward target at speed
// Zero when the target coincides with pos
func Seek(pos, target vmath.Vec2, speed float64) vmath.Vec2 {
	return target.Sub(pos).Normalize().Scale(speed)
}

// Pull returns the displacement that draws pos toward center for one step
// Strength falls off linearly to zero at radius
func Pull(pos, center vmath.Vec2, radius, strength, dt float64) vmath.Vec2 {
	d := center.Sub(pos)
	dist := d.Len()
	if dist == 0 || dist >= radius {
		return vmath.Vec2{}
	}
	return d.Scale(1 / dist).Scale((1 - dist/radius) * strength * dt)
}
