package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityField                     // Wells and pulses under bodies
	PriorityEntities
	PriorityPlayer
	PriorityEffects
	PriorityUI
	PriorityOverlay
)
