package parameter

// Pickup
const (
	// PickupPadding widens the pull trigger beyond pickup radius
	PickupPadding = 8.0

	// CollectRadius is the distance at which an orb is consumed
	CollectRadius = 12.0

	// PullSpeedBase is orb speed once pulled
	PullSpeedBase = 120.0

	// PullSpeedPerPickup adds orb speed per point of pickup radius bonus
	PullSpeedPerPickup = 4.0

	// CollectorPickupMult widens pickup under Collector Drones
	CollectorPickupMult = 1.35

	// VacuumPullSpeed is orb speed during a vacuum pulse
	VacuumPullSpeed = 120.0
)
