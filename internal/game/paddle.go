package game

import (
	"math"

	"github.com/diegok/crankpong/internal/geom"
	"github.com/diegok/crankpong/internal/physics"
)

// paddle is the body handling shared by both paddle kinds.
type paddle struct {
	entity
	speed float64
}

func newPaddle(world *physics.World, x, speed float64) paddle {
	p := paddle{
		entity: entity{body: &physics.Body{
			Rect:     geom.Rect{X: x, Y: PaddleStartY, W: PaddleWidth, H: PaddleHeight},
			Response: physics.ResponseSlide,
		}},
		speed: speed,
	}
	world.Add(p.body)
	return p
}

// moveToY requests a collision-aware vertical move toward y, clamped to
// the display.
func (p *paddle) moveToY(g *Game, y float64) {
	goal := geom.Vector2{
		X: p.body.Rect.X,
		Y: geom.ClampToRange(y, 0, DisplayHeight-PaddleHeight),
	}
	g.world.MoveWithCollisions(p.body, goal)
}

// PlayerPaddle is driven by the d-pad while the crank is docked, and by
// the crank's absolute angle otherwise.
type PlayerPaddle struct {
	paddle
}

func newPlayerPaddle(world *physics.World, speed float64) *PlayerPaddle {
	p := &PlayerPaddle{paddle: newPaddle(world, PlayerPaddleX, speed)}
	p.body.Owner = p
	return p
}

func (p *PlayerPaddle) update(g *Game) {
	angle, docked := g.input.Crank()
	if docked {
		y := p.body.Rect.Y
		if g.input.ButtonHeld(ButtonUp) {
			y -= p.speed
		}
		if g.input.ButtonHeld(ButtonDown) {
			y += p.speed
		}
		p.moveToY(g, y)
		return
	}

	// Fold the crank angle around 180 so a full turn sweeps the paddle
	// down and back up, then map the fraction to an absolute position.
	folded := 180 - math.Abs(angle-180)
	p.moveToY(g, folded/180*(DisplayHeight-PaddleHeight))
}

// ComputerPaddle chases a predicted intercept while the ball approaches,
// re-reading the prediction once per rally leg with fresh random error,
// and falls back toward center at half speed while the ball moves away.
type ComputerPaddle struct {
	paddle
	targetY         float64
	lastBounceCount int
}

func newComputerPaddle(world *physics.World, speed float64) *ComputerPaddle {
	p := &ComputerPaddle{paddle: newPaddle(world, CPUPaddleX, speed)}
	p.body.Owner = p
	return p
}

func (c *ComputerPaddle) update(g *Game) {
	ball := g.ball
	toPaddle := c.body.Rect.X - ball.body.Rect.X

	if ball.velocity.X*toPaddle <= 0 {
		center := float64(DisplayHeight-PaddleHeight) / 2
		delta := geom.ClampToRange(center-c.body.Rect.Y, -c.speed/2, c.speed/2)
		c.moveToY(g, c.body.Rect.Y+delta)
		return
	}

	if ball.bounceCount == 0 || ball.bounceCount != c.lastBounceCount {
		angleErr := geom.DegToRad((g.rng.Float64()*2 - 1) * g.maxAngleErrDeg)
		speedErr := (g.rng.Float64()*2 - 1) * g.maxSpeedErr
		predicted := ball.predictInterceptY(c.body.Rect.X, angleErr, speedErr)
		// Center the paddle on the predicted ball contact.
		c.targetY = geom.ClampToRange(predicted-(PaddleHeight-BallSize)/2, 0, DisplayHeight-PaddleHeight)
		c.lastBounceCount = ball.bounceCount
	}

	delta := geom.ClampToRange(c.targetY-c.body.Rect.Y, -c.speed, c.speed)
	c.moveToY(g, c.body.Rect.Y+delta)
}
