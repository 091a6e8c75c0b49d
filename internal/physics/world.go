package physics

import "github.com/diegok/crankpong/internal/geom"

// Response selects how a moving body resolves contact with other bodies.
type Response int

const (
	// ResponseSlide deflects the mover along the contacted surface,
	// keeping its motion on the free axis.
	ResponseSlide Response = iota
	// ResponseFreeze stops the whole move at first contact.
	ResponseFreeze
	// ResponseOverlap records contacts without resolving them.
	ResponseOverlap
)

// Body is a collideable rectangle registered with a World. Owner carries
// the entity the body belongs to, so collision handlers can identify
// what they hit.
type Body struct {
	Rect     geom.Rect
	Response Response
	Owner    any
}

// Collision describes one contact produced by MoveWithCollisions.
type Collision struct {
	// Other is the body the mover contacted.
	Other *Body
	// Normal is an axis-aligned unit vector pointing from Other toward
	// the mover at contact.
	Normal geom.Vector2
	// MoverRect and OtherRect are the two rectangles at the moment of
	// overlap, before any push-back.
	MoverRect geom.Rect
	OtherRect geom.Rect
}

// World tracks bodies and resolves their movement against each other.
type World struct {
	bodies []*Body
}

func NewWorld() *World {
	return &World{}
}

// Add registers a body. Bodies that never move still block movers.
func (w *World) Add(b *Body) {
	w.bodies = append(w.bodies, b)
}

// MoveWithCollisions moves b toward goal one axis at a time (x, then y),
// resolving contacts according to b.Response. It returns the position
// actually reached and the contacts found, in resolution order.
// A single move must stay shorter than the thinnest obstacle, or the
// mover can step through it.
func (w *World) MoveWithCollisions(b *Body, goal geom.Vector2) (geom.Vector2, []Collision) {
	var collisions []Collision

	if dx := goal.X - b.Rect.X; dx != 0 {
		b.Rect.X = goal.X
		hit := w.resolveAxis(b, dx, true, &collisions)
		if hit && b.Response == ResponseFreeze {
			return geom.Vector2{X: b.Rect.X, Y: b.Rect.Y}, collisions
		}
	}

	if dy := goal.Y - b.Rect.Y; dy != 0 {
		b.Rect.Y = goal.Y
		w.resolveAxis(b, dy, false, &collisions)
	}

	return geom.Vector2{X: b.Rect.X, Y: b.Rect.Y}, collisions
}

// resolveAxis checks b against every other body after a single-axis move
// by delta (horizontal when xAxis) and records contacts. Unless the
// response is Overlap, b is pushed back to the contact line.
func (w *World) resolveAxis(b *Body, delta float64, xAxis bool, collisions *[]Collision) bool {
	hit := false
	for _, other := range w.bodies {
		if other == b || !b.Rect.Intersects(other.Rect) {
			continue
		}
		hit = true

		*collisions = append(*collisions, Collision{
			Other:     other,
			Normal:    axisNormal(b.Rect, other.Rect, xAxis),
			MoverRect: b.Rect,
			OtherRect: other.Rect,
		})

		if b.Response == ResponseOverlap {
			continue
		}
		if xAxis {
			if delta > 0 {
				b.Rect.X = other.Rect.X - b.Rect.W
			} else {
				b.Rect.X = other.Rect.X + other.Rect.W
			}
		} else {
			if delta > 0 {
				b.Rect.Y = other.Rect.Y - b.Rect.H
			} else {
				b.Rect.Y = other.Rect.Y + other.Rect.H
			}
		}
	}
	return hit
}

// axisNormal picks the contact normal on the moved axis, its sign taken
// from the relative center positions of the two rectangles.
func axisNormal(mover, other geom.Rect, xAxis bool) geom.Vector2 {
	if xAxis {
		if mover.Center().X < other.Center().X {
			return geom.Vector2{X: -1}
		}
		return geom.Vector2{X: 1}
	}
	if mover.Center().Y < other.Center().Y {
		return geom.Vector2{Y: -1}
	}
	return geom.Vector2{Y: 1}
}
