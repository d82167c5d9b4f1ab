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

func TestIsValidBodyToNED(t *testing.T) {
	tests := []struct {
		name     string
		from, to FrameType
		want     bool
	}{
		{"body to ned", FrameBody, FrameNED, true},
		{"ned to body", FrameNED, FrameBody, false},
		{"body to ecef", FrameBody, FrameECEF, false},
		{"eci to ned", FrameECI, FrameNED, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctm := &CTM{Mat: Eye3(), From: tt.from, To: tt.to}
			if got := IsValidBodyToNED(ctm); got != tt.want {
				t.Errorf("IsValidBodyToNED(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}

	if IsValidBodyToNED(nil) {
		t.Errorf("IsValidBodyToNED(nil) = true")
	}
	if IsValidBodyToNED(&CTM{From: FrameBody, To: FrameNED}) {
		t.Errorf("IsValidBodyToNED with nil matrix = true")
	}
}

func TestNewCTMShape(t *testing.T) {
	if _, err := NewCTM(Eye3(), FrameBody, FrameNED); err != nil {
		t.Errorf("NewCTM(3x3) failed: %v", err)
	}
	if _, err := NewCTM(Eye3(), FrameType('Q'), FrameNED); err == nil {
		t.Errorf("NewCTM accepted an unknown frame tag")
	}
}

func TestEulerRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		roll, pitch, yaw float64
	}{
		{"level north", 0, 0, 0},
		{"level east", 0, 0, ToRad(90)},
		{"banked climb", ToRad(20), ToRad(5), ToRad(-45)},
		{"inverted-ish", ToRad(150), ToRad(-60), ToRad(170)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctm := EulerToCTM(tt.roll, tt.pitch, tt.yaw)
			if e := orthoErr(ctm.Mat); e > 1e-14 {
				t.Errorf("EulerToCTM not orthonormal: %.2e", e)
			}
			r, p, y := ctm.ToEuler()
			if !scalar.EqualWithinAbs(r, tt.roll, 1e-12) ||
				!scalar.EqualWithinAbs(p, tt.pitch, 1e-12) ||
				!scalar.EqualWithinAbs(y, tt.yaw, 1e-12) {
				t.Errorf("round trip = (%g, %g, %g), want (%g, %g, %g)", r, p, y, tt.roll, tt.pitch, tt.yaw)
			}
		})
	}
}

func TestEulerToCTMHeading(t *testing.T) {
	// Yaw 90 deg maps body x (forward) to east
	ctm := EulerToCTM(0, 0, math.Pi/2)
	if !scalar.EqualWithinAbs(ctm.Mat.At(1, 0), 1, 1e-15) {
		t.Errorf("east component of body x = %g, want 1", ctm.Mat.At(1, 0))
	}
	if !scalar.EqualWithinAbs(ctm.Mat.At(0, 0), 0, 1e-15) {
		t.Errorf("north component of body x = %g, want 0", ctm.Mat.At(0, 0))
	}
}
