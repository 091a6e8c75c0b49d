package geom

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector, used both as a position and as a velocity.
type Vector2 struct {
	X, Y float64
}

// Add returns the vector sum a + b.
func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vector2) Sub(b Vector2) Vector2 {
	return Vector2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vector2) Scale(s float64) Vector2 {
	return Vector2{a.X * s, a.Y * s}
}

// Length returns the magnitude of the vector.
func (a Vector2) Length() float64 {
	return math.Hypot(a.X, a.Y)
}

// Normalized returns the unit vector, or the zero vector for zero input.
func (a Vector2) Normalized() Vector2 {
	l := a.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{a.X / l, a.Y / l}
}

// Radians returns the bearing of the vector in radians (-π, π].
func (a Vector2) Radians() float64 {
	return math.Atan2(a.Y, a.X)
}

// UnitFromRadians returns the unit vector pointing along the given bearing.
func UnitFromRadians(rad float64) Vector2 {
	return Vector2{math.Cos(rad), math.Sin(rad)}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ClampToRange clamps n into [low, high]. An inverted range is a
// programming error and panics.
func ClampToRange(n, low, high float64) float64 {
	if low > high {
		panic(fmt.Sprintf("geom: inverted clamp range [%v, %v]", low, high))
	}
	if n < low {
		return low
	}
	if n > high {
		return high
	}
	return n
}
