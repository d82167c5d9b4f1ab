// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

// Implements one step of strapdown inertial navigation (NED mechanization):
// rotation-vector attitude integration, Coriolis-corrected velocity update,
// trapezoidal curvilinear position update and DCM renormalization.
// The equations follow Groves, "Principles of GNSS, Inertial, and
// Multisensor Integrated Navigation Systems", ch. 5.

package goins

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrFrameTag marks a precondition failure: the previous attitude was
	// not declared (BODY -> NED). Recoverable by fixing the input.
	ErrFrameTag = errors.New("attitude frame tag mismatch")

	// ErrNumInstability marks a failure inside the linear algebra
	// (degenerate determinant, invalid matrix operation). Deterministic
	// for given inputs; retrying is never useful.
	ErrNumInstability = errors.New("navigation failed due to numerical instability")
)

// Propagate performs one strapdown mechanization step in canonical SI
// units. It is the single entry point behind every unit-typed adapter.
//
// Parameters:
//   - dt: propagation interval [s]
//   - lat, lon, hei: old geodetic position [rad, rad, m]
//   - att: old body-to-NED attitude; must be tagged (BODY -> NED)
//   - vn, ve, vd: old NED velocity [m/s]
//   - fx, fy, fz: specific force, body axes, averaged over dt [m/s^2]
//   - wx, wy, wz: angular rate, body axes, averaged over dt [rad/s]
//
// Returns:
//   - NavSol: the propagated state (fresh instance; inputs are not touched)
//   - error: ErrFrameTag before any arithmetic, or ErrNumInstability
func Propagate(dt, lat, lon, hei float64, att *CTM, vn, ve, vd, fx, fy, fz, wx, wy, wz float64) (*NavSol, error) {
	if !IsValidBodyToNED(att) {
		if att == nil || att.Mat == nil {
			return nil, fmt.Errorf("%w: no attitude matrix", ErrFrameTag)
		}
		return nil, fmt.Errorf("%w: attitude tagged (%s -> %s), want (BODY -> NED)", ErrFrameTag, att.From, att.To)
	}
	return mechanize(dt, lat, lon, hei, att.Mat, vn, ve, vd, fx, fy, fz, wx, wy, wz)
}

// CalcNav propagates a whole state by one IMU sample. States carry a
// (BODY -> NED) attitude by construction (NewNavSol enforces it), so this
// path skips the tag gate and cannot fail with ErrFrameTag.
func CalcNav(dt float64, prev *NavSol, imu *ImuS) (*NavSol, error) {
	return mechanize(dt, prev.Pos.Lat, prev.Pos.Lon, prev.Pos.Hei, prev.Att.Mat,
		prev.Vel.N, prev.Vel.E, prev.Vel.D,
		imu.F[0], imu.F[1], imu.F[2], imu.W[0], imu.W[1], imu.W[2])
}

// mechanize runs the mechanization proper on a tag-validated attitude.
func mechanize(dt, lat, lon, hei float64, oldC *mat.Dense, vn, ve, vd, fx, fy, fz, wx, wy, wz float64) (sol *NavSol, err error) {
	// gonum/mat signals misuse (shape mismatch, singular factorization)
	// by panicking; surface any of those as the one opaque failure so
	// library internals never leak past the kernel boundary.
	defer func() {
		if r := recover(); r != nil {
			sol = nil
			err = fmt.Errorf("%w: %v", ErrNumInstability, r)
		}
	}()

	// Rotation undergone by the body over the interval
	alpha := mat.NewVecDense(3, []float64{wx * dt, wy * dt, wz * dt})

	// Earth rate and transport rate at the old state
	rnOld, reOld := CurvatureRadii(lat)
	wie := EarthRate(lat)
	wen := TransportRate(lat, hei, vn, ve, rnOld, reOld)

	// Attitude averaged over the interval, corrected to first order for
	// the rotation of the NED frame itself during the step
	var avgC mat.Dense
	avgC.Mul(oldC, RotAverage(alpha))
	var wSum mat.VecDense
	wSum.AddVec(wen, wie)
	var navCorr mat.Dense
	navCorr.Mul(Skew(&wSum), oldC)
	navCorr.Scale(0.5*dt, &navCorr)
	avgC.Sub(&avgC, &navCorr)

	// Velocity update with Coriolis/centripetal correction. Gravity is
	// evaluated at the old position only (see DESIGN.md).
	fb := mat.NewVecDense(3, []float64{fx, fy, fz})
	var fn mat.VecDense
	fn.MulVec(&avgC, fb)
	var wCor mat.VecDense
	wCor.AddScaledVec(wen, 2, wie)
	vOld := mat.NewVecDense(3, []float64{vn, ve, vd})
	var cor mat.VecDense
	cor.MulVec(Skew(&wCor), vOld)
	var acc mat.VecDense
	acc.AddVec(&fn, GravityNED(lat, hei))
	acc.SubVec(&acc, &cor)
	var vNew mat.VecDense
	vNew.AddScaledVec(vOld, dt, &acc)
	vnNew, veNew, vdNew := vNew.AtVec(0), vNew.AtVec(1), vNew.AtVec(2)

	// Trapezoidal position update. Both latitude terms use the meridian
	// radius at the OLD latitude (standard in the literature; keep as is)
	heiNew := hei - 0.5*dt*(vd+vdNew)
	latNew := lat + 0.5*dt*(vn/(rnOld+hei)+vnNew/(rnOld+heiNew))
	rnNew, reNew := CurvatureRadii(latNew)
	lonNew := lon + 0.5*dt*(ve/((reOld+hei)*math.Cos(lat))+veNew/((reNew+heiNew)*math.Cos(latNew)))

	// Attitude update: body rotation applied to the old DCM, with the
	// averaged navigation-frame rotation removed
	wenNew := TransportRate(latNew, heiNew, vnNew, veNew, rnNew, reNew)
	var wenAvg mat.VecDense
	wenAvg.AddVec(wen, wenNew)
	var wNav mat.VecDense
	wNav.AddScaledVec(wie, 0.5, &wenAvg)
	var navRot mat.Dense
	navRot.Scale(dt, Skew(&wNav))
	var upd mat.Dense
	upd.Sub(Eye3(), &navRot)
	var cNew mat.Dense
	cNew.Mul(&upd, oldC)
	cNew.Mul(&cNew, RotExact(alpha))

	// Renormalize: the update is a first/second-order approximation, so
	// the determinant drifts from 1; rescale by det^(-1/3) every step
	det := mat.Det(&cNew)
	if math.IsNaN(det) || det <= 0 {
		return nil, fmt.Errorf("%w: attitude determinant %g", ErrNumInstability, det)
	}
	cNew.Scale(1/math.Cbrt(det), &cNew)

	return &NavSol{
		Pos: PosLLH{Lat: latNew, Lon: lonNew, Hei: heiNew},
		Vel: VelNED{N: vnNew, E: veNew, D: vdNew},
		Att: CTM{Mat: &cNew, From: FrameBody, To: FrameNED},
	}, nil
}
