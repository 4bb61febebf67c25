package input

import (
	"time"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Direction is one of the four held movement axes
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	dirCount
)

var dirVectors = [dirCount]vmath.Vec2{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// State tracks held directions
// A direction counts as held until KeyHoldWindow passes without a repeat
type State struct {
	until [dirCount]time.Time
}

// Press marks d held from now
func (s *State) Press(d Direction, now time.Time) {
	if d == DirNone || d >= dirCount {
		return
	}
	s.until[d] = now.Add(parameter.KeyHoldWindow)
	// Opposite direction is released immediately
	s.until[opposite(d)] = time.Time{}
}

// Release drops every held direction
func (s *State) Release() {
	s.until = [dirCount]time.Time{}
}

// Held reports whether d is held at now
func (s *State) Held(d Direction, now time.Time) bool {
	return d < dirCount && now.Before(s.until[d])
}

// Vector returns the movement input at now with magnitude ≤ 1
func (s *State) Vector(now time.Time) vmath.Vec2 {
	var v vmath.Vec2
	for d := DirUp; d < dirCount; d++ {
		if s.Held(d, now) {
			v = v.Add(dirVectors[d])
		}
	}
	if v.IsZero() {
		return v
	}
	return v.Normalize()
}

func opposite(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}
