// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

package goins

import (
	"strings"
	"testing"
)

func TestReadImu(t *testing.T) {
	in := `# sample log
0.00  0.1 0.2 -9.8  0.001 -0.002 0.003

0.01  0.1 0.2 -9.8  0.001 -0.002 0.003
0.02  0.2 0.1 -9.7  0.002 -0.001 0.004
`
	imu, err := ReadImu(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(imu.DatE) != 3 {
		t.Fatalf("got %d epochs, want 3", len(imu.DatE))
	}
	if imu.DatE[0].Tow != 0 || imu.DatE[2].Tow != 0.02 {
		t.Errorf("tow = %g ... %g, want 0 ... 0.02", imu.DatE[0].Tow, imu.DatE[2].Tow)
	}
	if imu.DatE[2].Dat.F[2] != -9.7 || imu.DatE[2].Dat.W[2] != 0.004 {
		t.Errorf("last sample = %+v", imu.DatE[2].Dat)
	}
}

func TestReadImuErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", "# only a comment\n"},
		{"bad field count", "0.0 1 2 3 4 5\n"},
		{"non-numeric", "0.0 a 2 3 4 5 6\n"},
		{"non-monotonic", "0.02 0 0 -9.8 0 0 0\n0.01 0 0 -9.8 0 0 0\n"},
		{"duplicate epoch", "0.01 0 0 -9.8 0 0 0\n0.01 0 0 -9.8 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadImu(strings.NewReader(tt.in)); err == nil {
				t.Errorf("ReadImu accepted %q", tt.in)
			}
		})
	}
}
