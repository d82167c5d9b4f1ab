// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

package goins

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCurvatureRadii(t *testing.T) {
	tests := []struct {
		name   string
		lat    float64
		rn, re float64
		tol    float64
	}{
		// WGS84 literature values
		{"equator", 0, 6335439.327, 6378137.000, 1e-2},
		{"45 deg", ToRad(45), 6367381.816, 6388838.290, 1e-1},
		{"pole", ToRad(90), 6399593.626, 6399593.626, 1e-2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rn, re := CurvatureRadii(tt.lat)
			if !scalar.EqualWithinAbs(rn, tt.rn, tt.tol) {
				t.Errorf("Rn(%s) = %.3f, want %.3f", tt.name, rn, tt.rn)
			}
			if !scalar.EqualWithinAbs(re, tt.re, tt.tol) {
				t.Errorf("Re(%s) = %.3f, want %.3f", tt.name, re, tt.re)
			}
		})
	}
}

func TestEarthRate(t *testing.T) {
	// At the equator the rate is all north, at the pole all (negative) down,
	// and the magnitude is OmegaE everywhere
	eq := EarthRate(0)
	if !scalar.EqualWithinAbs(eq.AtVec(0), OmegaE, 1e-18) || eq.AtVec(1) != 0 || !scalar.EqualWithinAbs(eq.AtVec(2), 0, 1e-18) {
		t.Errorf("EarthRate(0) = %v, want (%g, 0, 0)", eq.RawVector().Data, OmegaE)
	}
	pole := EarthRate(PI / 2)
	if !scalar.EqualWithinAbs(pole.AtVec(2), -OmegaE, 1e-18) || !scalar.EqualWithinAbs(pole.AtVec(0), 0, 1e-18) {
		t.Errorf("EarthRate(pi/2) = %v, want (0, 0, %g)", pole.RawVector().Data, -OmegaE)
	}
	for _, lat := range []float64{-1.2, -0.3, 0.5, 1.0} {
		w := EarthRate(lat)
		m := math.Hypot(w.AtVec(0), w.AtVec(2))
		if !scalar.EqualWithinAbs(m, OmegaE, 1e-18) {
			t.Errorf("|EarthRate(%.2f)| = %g, want %g", lat, m, OmegaE)
		}
	}
}

func TestTransportRate(t *testing.T) {
	lat, hei := ToRad(45), 1000.0
	rn, re := CurvatureRadii(lat)
	w := TransportRate(lat, hei, 100, 50, rn, re)

	if want := 50 / (re + hei); !scalar.EqualWithinAbs(w.AtVec(0), want, 1e-15) {
		t.Errorf("transport north = %g, want %g", w.AtVec(0), want)
	}
	if want := -100 / (rn + hei); !scalar.EqualWithinAbs(w.AtVec(1), want, 1e-15) {
		t.Errorf("transport east = %g, want %g", w.AtVec(1), want)
	}
	if want := -50 * math.Tan(lat) / (re + hei); !scalar.EqualWithinAbs(w.AtVec(2), want, 1e-15) {
		t.Errorf("transport down = %g, want %g", w.AtVec(2), want)
	}

	// Zero velocity means the NED frame is not transported at all
	z := TransportRate(lat, hei, 0, 0, rn, re)
	if z.AtVec(0) != 0 || z.AtVec(1) != 0 || z.AtVec(2) != 0 {
		t.Errorf("TransportRate with zero velocity = %v, want zero", z.RawVector().Data)
	}
}

func TestGravityNED(t *testing.T) {
	// WGS84 Somigliana values at the surface
	eq := GravityNED(0, 0)
	if !scalar.EqualWithinAbs(eq.AtVec(2), 9.7803253359, 1e-9) {
		t.Errorf("gD(equator, 0) = %.10f, want 9.7803253359", eq.AtVec(2))
	}
	if eq.AtVec(0) != 0 || eq.AtVec(1) != 0 {
		t.Errorf("g(equator, 0) has horizontal components: %v", eq.RawVector().Data)
	}

	pole := GravityNED(PI/2, 0)
	if !scalar.EqualWithinAbs(pole.AtVec(2), 9.8321849378, 1e-6) {
		t.Errorf("gD(pole, 0) = %.10f, want 9.8321849378", pole.AtVec(2))
	}

	// Gravity decreases with height at roughly 3.086e-6 (m/s^2)/m
	g0 := GravityNED(ToRad(45), 0).AtVec(2)
	g1k := GravityNED(ToRad(45), 1000).AtVec(2)
	drop := g0 - g1k
	if drop < 0.00300 || drop > 0.00315 {
		t.Errorf("gravity drop over 1 km = %.6f, want about 0.00308", drop)
	}

	// North component per Groves eq. 2.140
	gn := GravityNED(ToRad(45), 1000).AtVec(0)
	if !scalar.EqualWithinAbs(gn, -8.08e-6, 1e-12) {
		t.Errorf("gN(45 deg, 1 km) = %g, want -8.08e-6", gn)
	}
}
