package game

import (
	"math"
	"time"
)

// Play field and entity geometry, in pixels. The field matches the
// handheld's 400x240 screen; the walls sit just outside its edges so the
// ball bounces exactly at the border.
const (
	DisplayWidth  = 400
	DisplayHeight = 240

	BallSize     = 8
	PaddleWidth  = 8
	PaddleHeight = 48

	PlayerPaddleX = 8
	CPUPaddleX    = DisplayWidth - PaddleWidth - 8
	PaddleStartY  = (DisplayHeight - PaddleHeight) / 2

	BallResetX = DisplayWidth / 2
	BallResetY = 10

	wallThickness = 16
)

const (
	// initialBearingDeg is the serve direction at game start, up and to
	// the right from the top spawn.
	initialBearingDeg = -30
	// minReturnAngleDeg keeps paddle returns off the vertical on both
	// sides, leaving a 140 degree usable fan.
	minReturnAngleDeg = 20
)

// initialBallSpeed is the serve speed. With the default paddle speeds the
// capped serve works out to exactly (±4, 5).
var initialBallSpeed = math.Hypot(4, 5)

// The single audio cue for every non-scoring bounce.
const (
	hitNoteFreq   = 220.0
	hitNoteVolume = 0.7
	hitNoteLen    = 100 * time.Millisecond
)
