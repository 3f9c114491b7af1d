package common

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axes follow an X forward, Y left, Z up convention.
var (
	Forward = r3.Vec{X: 1}
	Left    = r3.Vec{Y: 1}
	Up      = r3.Vec{Z: 1}
)

var IdentityOrientation = quat.Number{Real: 1}

// AxisAngle builds a unit quaternion rotating radians about axis.
func AxisAngle(axis r3.Vec, radians float64) quat.Number {
	n := r3.Norm(axis)
	if n == 0 {
		return IdentityOrientation
	}
	axis = r3.Scale(1/n, axis)
	s, c := math.Sincos(radians / 2)
	return quat.Number{Real: c, Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

func FromYaw(radians float64) quat.Number {
	return AxisAngle(Up, radians)
}

// Rotate returns v rotated by the unit quaternion q.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

func ForwardOf(q quat.Number) r3.Vec { return Rotate(q, Forward) }
func LeftOf(q quat.Number) r3.Vec    { return Rotate(q, Left) }
func UpOf(q quat.Number) r3.Vec      { return Rotate(q, Up) }

// Yaw is the heading of q's forward vector projected onto the ground plane.
func Yaw(q quat.Number) float64 {
	f := ForwardOf(q)
	return math.Atan2(f.Y, f.X)
}

// Normalize returns q scaled to unit length.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return IdentityOrientation
	}
	return quat.Scale(1/n, q)
}

// RotateTowards turns from toward to by at most maxRadians.
func RotateTowards(from, to quat.Number, maxRadians float64) quat.Number {
	dot := from.Real*to.Real + from.Imag*to.Imag + from.Jmag*to.Jmag + from.Kmag*to.Kmag
	if dot < 0 {
		to = quat.Scale(-1, to)
		dot = -dot
	}
	dot = Clamp(dot, -1, 1)
	angle := 2 * math.Acos(dot)
	if angle <= maxRadians || angle == 0 {
		return to
	}
	return slerp(from, to, maxRadians/angle, dot)
}

func slerp(a, b quat.Number, t, dot float64) quat.Number {
	if dot > 0.9995 {
		return Normalize(quat.Add(a, quat.Scale(t, quat.Sub(b, a))))
	}
	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return quat.Add(quat.Scale(wa, a), quat.Scale(wb, b))
}

func LerpVec(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
