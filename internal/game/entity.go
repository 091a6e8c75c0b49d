package game

import (
	"github.com/diegok/crankpong/internal/geom"
	"github.com/diegok/crankpong/internal/physics"
)

// updater is the per-frame behavior attached to an entity kind. The
// orchestrator passes itself in so entities read game state explicitly
// instead of holding back-references.
type updater interface {
	update(g *Game)
}

// entity is the part every game object shares: a collision body
// registered with the world. Position and bounds live on the body.
type entity struct {
	body *physics.Body
}

func (e *entity) rect() geom.Rect {
	return e.body.Rect
}

func (e *entity) pos() geom.Vector2 {
	return geom.Vector2{X: e.body.Rect.X, Y: e.body.Rect.Y}
}

// Wall is a static bound of the play field. The left and right walls
// score for the opposite side; top and bottom reflect the ball.
type Wall struct {
	entity
}

func newWall(world *physics.World, r geom.Rect) *Wall {
	w := &Wall{entity: entity{body: &physics.Body{Rect: r}}}
	w.body.Owner = w
	world.Add(w.body)
	return w
}
