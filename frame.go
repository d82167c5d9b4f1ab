// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

// Reference frame tags, the tagged direction cosine matrix, and the full
// navigation state propagated by CalcNav.

package goins

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Type representing a reference frame
type FrameType byte

const (
	FrameBody FrameType = 'B' // Vehicle body frame (x forward, y right, z down)
	FrameNED  FrameType = 'N' // Local-level north/east/down frame
	FrameECEF FrameType = 'E' // Earth-centered earth-fixed frame
	FrameECI  FrameType = 'I' // Earth-centered inertial frame
)

// Check validity of frame type
func (p *FrameType) IsValid() bool {
	return *p == FrameBody || *p == FrameNED || *p == FrameECEF || *p == FrameECI
}

func (p FrameType) String() string {
	switch p {
	case FrameBody:
		return "BODY"
	case FrameNED:
		return "NED"
	case FrameECEF:
		return "ECEF"
	case FrameECI:
		return "ECI"
	default:
		return "UNKNOWN!"
	}
}

//-------------------------------------------------------------------
// CTM
//-------------------------------------------------------------------

// Coordinate transformation matrix: a 3x3 DCM paired with the declared
// source and destination frames. Mapping a source-frame vector v to the
// destination frame is Mat * v.
type CTM struct {
	Mat  *mat.Dense
	From FrameType
	To   FrameType
}

// NewCTM wraps a 3x3 matrix with its frame roles
// The matrix shape is checked here; orthonormality is not (the
// mechanization restores it every step)
func NewCTM(m *mat.Dense, from, to FrameType) (*CTM, error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return nil, fmt.Errorf("CTM must be 3x3, got %dx%d", r, c)
	}
	if !from.IsValid() || !to.IsValid() {
		return nil, fmt.Errorf("invalid frame tag (%c -> %c)", byte(from), byte(to))
	}
	return &CTM{Mat: m, From: from, To: to}, nil
}

// IsValidBodyToNED reports whether the declared frame roles are
// (BODY -> NED). This checks the tags only, not the matrix values.
func IsValidBodyToNED(ctm *CTM) bool {
	return ctm != nil && ctm.Mat != nil && ctm.From == FrameBody && ctm.To == FrameNED
}

// Copy returns a deep copy (fresh matrix, same tags)
func (p *CTM) Copy() *CTM {
	return &CTM{Mat: mat.DenseCopyOf(p.Mat), From: p.From, To: p.To}
}

// EulerToCTM builds the body-to-NED DCM from roll/pitch/yaw [rad]
func EulerToCTM(roll, pitch, yaw float64) *CTM {
	sp, cp := math.Sin(roll), math.Cos(roll)
	st, ct := math.Sin(pitch), math.Cos(pitch)
	ss, cs := math.Sin(yaw), math.Cos(yaw)
	m := mat.NewDense(3, 3, []float64{
		ct * cs, -cp*ss + sp*st*cs, sp*ss + cp*st*cs,
		ct * ss, cp*cs + sp*st*ss, -sp*cs + cp*st*ss,
		-st, sp * ct, cp * ct,
	})
	return &CTM{Mat: m, From: FrameBody, To: FrameNED}
}

// ToEuler extracts roll/pitch/yaw [rad] from a body-to-NED DCM
func (p *CTM) ToEuler() (roll, pitch, yaw float64) {
	roll = math.Atan2(p.Mat.At(2, 1), p.Mat.At(2, 2))
	pitch = -math.Asin(p.Mat.At(2, 0))
	yaw = math.Atan2(p.Mat.At(1, 0), p.Mat.At(0, 0))
	return
}

//-------------------------------------------------------------------
// NavSol
//-------------------------------------------------------------------

// NavSol is the full kinematic state for one epoch: geodetic position,
// NED velocity and body-to-NED attitude. Each mechanization step consumes
// one NavSol and returns a fresh one; the input is never modified.
type NavSol struct {
	Pos PosLLH  // Geodetic position
	Vel VelNED  // NED velocity [m/s]
	Att CTM     // Body-to-NED attitude
	Tow float64 // Time of the epoch [s] (carried through, not used by the kernel)
}

// NewNavSol assembles a state after checking the attitude tag. States
// built here always carry a (BODY -> NED) attitude, so the internal
// mechanization path never re-checks it.
func NewNavSol(pos PosLLH, vel VelNED, att *CTM) (*NavSol, error) {
	if att == nil || att.Mat == nil {
		return nil, fmt.Errorf("%w: no attitude matrix", ErrFrameTag)
	}
	if !IsValidBodyToNED(att) {
		return nil, fmt.Errorf("%w: attitude tagged (%s -> %s), want (BODY -> NED)", ErrFrameTag, att.From, att.To)
	}
	return &NavSol{Pos: pos, Vel: vel, Att: *att.Copy()}, nil
}
