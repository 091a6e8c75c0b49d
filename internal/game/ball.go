package game

import (
	"math"

	"github.com/diegok/crankpong/internal/geom"
	"github.com/diegok/crankpong/internal/physics"
)

// Ball is the single long-lived ball. It owns its velocity and a bounce
// counter the computer paddle uses to spot the start of a rally leg.
type Ball struct {
	entity
	velocity    geom.Vector2
	bounceCount int
}

func newBall(world *physics.World) *Ball {
	b := &Ball{
		entity: entity{body: &physics.Body{
			Rect:     geom.Rect{X: BallResetX, Y: BallResetY, W: BallSize, H: BallSize},
			Response: physics.ResponseSlide,
		}},
		velocity: geom.UnitFromRadians(geom.DegToRad(initialBearingDeg)).Scale(initialBallSpeed),
	}
	b.body.Owner = b
	world.Add(b.body)
	return b
}

// update advances the ball one frame and resolves whatever it hit:
// scoring walls award the point and re-serve, everything else reflects
// the ball and counts the bounce.
func (b *Ball) update(g *Game) {
	goal := b.pos().Add(b.velocity)
	_, collisions := g.world.MoveWithCollisions(b.body, goal)

	for _, col := range collisions {
		switch col.Other.Owner {
		case g.leftWall:
			g.score.CPU++
			b.reset(g)
			g.checkWin()
		case g.rightWall:
			g.score.Player++
			b.reset(g)
			g.checkWin()
		default:
			g.notes.PlayNote(hitNoteFreq, hitNoteVolume, hitNoteLen)
			if col.Normal.X != 0 {
				p := collisionPoint(col.MoverRect, col.OtherRect)
				b.velocity = returnVelocity(p, b.velocity.Length(), b.velocity.X > 0)
			}
			if col.Normal.Y != 0 {
				b.velocity.Y = -b.velocity.Y
			}
			b.bounceCount++
		}
	}
}

// reset re-serves after a point: back to the spawn, downward at the
// initial speed, horizontal direction drawn from the game RNG. The
// vertical speed is kept at least one unit under the slower paddle's
// speed so the serve always stays returnable; the horizontal component is
// rebuilt to preserve the speed exactly.
func (b *Ball) reset(g *Game) {
	b.body.Rect.X = BallResetX
	b.body.Rect.Y = BallResetY

	v := b.velocity
	v.Y = math.Abs(v.Y)
	v.X = math.Abs(v.X)
	if g.rng.Intn(2) == 0 {
		v.X = -v.X
	}
	v = v.Normalized().Scale(initialBallSpeed)

	maxY := math.Min(g.playerSpeed, g.cpuSpeed) - 1
	if clamped := geom.ClampToRange(v.Y, 1, maxY); clamped != v.Y {
		v.Y = clamped
		x := math.Sqrt(initialBallSpeed*initialBallSpeed - v.Y*v.Y)
		if v.X < 0 {
			x = -x
		}
		v.X = x
	}

	b.velocity = v
	b.bounceCount = 0
}

// predictInterceptY extrapolates the ball's straight-line path to targetX
// and returns the y it would reach, clamped to the display. angleError
// perturbs the bearing and speedError scales the time estimate, modeling
// an imperfect read of the ball. Wall bounces are not modeled.
func (b *Ball) predictInterceptY(targetX, angleError, speedError float64) float64 {
	dx := targetX - b.body.Rect.X
	slope := geom.UnitFromRadians(b.velocity.Radians() + angleError)
	if slope.X == 0 {
		return geom.ClampToRange(b.body.Rect.Y, 0, DisplayHeight)
	}
	t := dx / slope.X * (1 + speedError)
	return geom.ClampToRange(b.body.Rect.Y+slope.Y*t, 0, DisplayHeight)
}

// collisionPoint maps where the ball met the paddle into [0, 1]: 1 with
// the ball's center at the top extreme of the contact range, 0 at the
// bottom extreme.
func collisionPoint(ballRect, paddleRect geom.Rect) float64 {
	distance := paddleRect.Center().Y - ballRect.Center().Y
	p := (distance + ballRect.H/2 + paddleRect.H/2) / (ballRect.H + paddleRect.H)
	return geom.ClampToRange(p, 0, 1)
}

// returnVelocity computes the velocity after a paddle hit. The bearing
// fans from steep-down to steep-up as the contact point moves up the
// paddle, staying minReturnAngleDeg off the vertical, and the x direction
// flips so the ball heads back where it came from. Speed is preserved.
func returnVelocity(collisionPoint, speed float64, movingRight bool) geom.Vector2 {
	usable := float64(180 - 2*minReturnAngleDeg)
	bearing := geom.DegToRad(90 - minReturnAngleDeg - collisionPoint*usable)
	v := geom.UnitFromRadians(bearing).Scale(speed)
	if movingRight {
		v.X = -v.X
	}
	return v
}
