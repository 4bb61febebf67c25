package parameter

import "time"

// Layout & Margins
const (
	// TopMargin holds the HUD status line
	TopMargin = 1

	// BottomMargin holds the key hint line
	BottomMargin = 1

	// OverlayWidth is the choice box width in cells
	OverlayWidth = 56
)

// Camera
const (
	// CellWorldX and CellWorldY are world units per terminal cell, cells are about twice as tall as wide
	CellWorldX = 8.0
	CellWorldY = 16.0

	// StarSpacing is the background grid pitch in world units
	StarSpacing = 96.0
)

// Input
const (
	// KeyHoldWindow keeps a direction held after its last press or repeat, terminals report no key release
	KeyHoldWindow = 180 * time.Millisecond

	// InputQueueSize buffers terminal events between the poller and the game loop
	InputQueueSize = 256
)

// FrameInterval is the host loop cadence
const FrameInterval = 16 * time.Millisecond
