// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

// WGS84 earth models: radii of curvature, earth rotation and transport
// rate resolved in NED axes, and the local gravity vector.

package goins

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CurvatureRadii returns the meridian (rn) and transverse (re) radii of
// curvature of the WGS84 ellipsoid at the given latitude [rad]
func CurvatureRadii(lat float64) (rn, re float64) {
	e2 := Fe * (2 - Fe) // Squared eccentricity
	s2 := SQ(math.Sin(lat))
	rn = Re0 * (1 - e2) / math.Pow(1-e2*s2, 1.5)
	re = Re0 / math.Sqrt(1-e2*s2)
	return
}

// EarthRate returns the rotation rate of the ECEF frame relative to
// inertial space, resolved in NED axes [rad/s]
func EarthRate(lat float64) *mat.VecDense {
	return mat.NewVecDense(3, []float64{
		OmegaE * math.Cos(lat),
		0,
		-OmegaE * math.Sin(lat),
	})
}

// TransportRate returns the rotation rate of the local NED frame caused
// by motion over the curved earth, resolved in NED axes [rad/s].
// rn and re are the curvature radii at lat.
func TransportRate(lat, hei, vn, ve, rn, re float64) *mat.VecDense {
	return mat.NewVecDense(3, []float64{
		ve / (re + hei),
		-vn / (rn + hei),
		-ve * math.Tan(lat) / (re + hei),
	})
}

// GravityNED returns the local gravity vector in NED axes [m/s^2] for the
// given latitude [rad] and ellipsoidal height [m]. Surface gravity follows
// the Somigliana model; the height dependence and the small north
// component follow Groves (2013), eq. 2.139-2.140.
func GravityNED(lat, hei float64) *mat.VecDense {
	s2 := SQ(math.Sin(lat))
	e2 := Fe * (2 - Fe)

	// Somigliana gravity at the ellipsoid surface
	g0 := 9.7803253359 * (1 + 0.001931853*s2) / math.Sqrt(1-e2*s2)

	gn := -8.08e-9 * hei * math.Sin(2*lat)
	gd := g0 * (1 -
		(2.0/Re0)*(1+Fe*(1-2*s2)+SQ(OmegaE)*SQ(Re0)*(Re0*(1-Fe))/MuE)*hei +
		(3.0/SQ(Re0))*SQ(hei))
	return mat.NewVecDense(3, []float64{gn, 0, gd})
}
