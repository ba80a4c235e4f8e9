package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Epsilon is the tolerance used when comparing world coordinates.
const Epsilon = 1e-9

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearlyEqual compares two floats with a tolerance relative to their magnitude.
func NearlyEqual(a, b, eps float64) bool {
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	return diff <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// VecNearlyEqual compares two points component-wise with NearlyEqual.
func VecNearlyEqual(a, b cp.Vector, eps float64) bool {
	return NearlyEqual(a.X, b.X, eps) && NearlyEqual(a.Y, b.Y, eps)
}

// Div divides both components of v by s.
func Div(v cp.Vector, s float64) cp.Vector {
	return cp.Vector{X: v.X / s, Y: v.Y / s}
}
