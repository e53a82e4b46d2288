package mathutil

import "math"

// Translate returns a translation by (x, y).
func Translate(x, y float64) Mat3 {
	return Mat3{
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	}
}

// Scale returns a uniform scale about the origin.
func Scale(s float64) Mat3 {
	return Mat3{
		s, 0, 0,
		0, s, 0,
		0, 0, 1,
	}
}

// Rot returns a clockwise rotation in screen space (y down). Angle in radians.
func Rot(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
