// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

// Rotation-vector to matrix conversions (Rodrigues formula). Both
// functions branch at AlphaMin: the closed forms divide by the rotation
// magnitude, so near zero rotation a linearized form is substituted.

package goins

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Skew returns the 3x3 skew-symmetric cross-product matrix of v,
// satisfying Skew(v) * x == v x x
func Skew(v *mat.VecDense) *mat.Dense {
	x, y, z := v.AtVec(0), v.AtVec(1), v.AtVec(2)
	return mat.NewDense(3, 3, []float64{
		0, -z, y,
		z, 0, -x,
		-y, x, 0,
	})
}

// Eye3 returns a fresh 3x3 identity matrix
func Eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// RotExact converts the rotation vector alpha to the rotation matrix it
// represents:
//   - |alpha| >  AlphaMin: I + sin(m)/m * [a^] + (1-cos(m))/m^2 * [a^]^2
//   - |alpha| <= AlphaMin: I + [a^]   (first order)
func RotExact(alpha *mat.VecDense) *mat.Dense {
	m := mat.Norm(alpha, 2)
	ax := Skew(alpha)
	r := Eye3()
	if m > AlphaMin {
		var ax2, t1, t2 mat.Dense
		ax2.Mul(ax, ax)
		t1.Scale(math.Sin(m)/m, ax)
		t2.Scale((1-math.Cos(m))/(m*m), &ax2)
		r.Add(r, &t1)
		r.Add(r, &t2)
	} else {
		r.Add(r, ax)
	}
	return r
}

// RotAverage converts the rotation vector alpha to the averaging factor
// used to build the mean attitude over the interval:
//   - |alpha| >  AlphaMin: I + (1-cos(m))/m^2 * [a^] + (1-sin(m)/m)/m^2 * [a^]^2
//   - |alpha| <= AlphaMin: I
func RotAverage(alpha *mat.VecDense) *mat.Dense {
	m := mat.Norm(alpha, 2)
	r := Eye3()
	if m > AlphaMin {
		ax := Skew(alpha)
		var ax2, t1, t2 mat.Dense
		ax2.Mul(ax, ax)
		t1.Scale((1-math.Cos(m))/(m*m), ax)
		t2.Scale((1-math.Sin(m)/m)/(m*m), &ax2)
		r.Add(r, &t1)
		r.Add(r, &t2)
	}
	return r
}
