// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

package goins

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Structure to store IMU output for one epoch: specific force and angular
// rate in body axes, both averaged over the sampling interval
type ImuS struct {
	F [3]float64 // Specific force [m/s^2]
	W [3]float64 // Angular rate [rad/s]
}

func NewImuS(fx, fy, fz, wx, wy, wz float64) *ImuS {
	return &ImuS{
		F: [3]float64{fx, fy, fz},
		W: [3]float64{wx, wy, wz},
	}
}

// One timestamped IMU epoch
type ImuE struct {
	Tow float64 // Time of the sample [s]
	Dat ImuS    // Averaged specific force and angular rate
}

// Structure to store IMU data for all epochs
type Imu struct {
	DatE []*ImuE // Sample for each time (sorted by time in ascending order)
}

// Display IMU data overview
func (p *Imu) String() string {
	if len(p.DatE) == 0 {
		return "NO DATA"
	}
	st := p.DatE[0].Tow
	et := p.DatE[len(p.DatE)-1].Tow
	return fmt.Sprintf("tow: %.3f - %.3f (%d samples)", st, et, len(p.DatE))
}

// ReadImu reads a whitespace-separated IMU log:
//
//	tow fx fy fz wx wy wz
//
// with time in seconds, specific force in m/s^2 and angular rate in rad/s.
// Lines starting with '#' and blank lines are skipped. Epochs must be in
// strictly ascending time order.
func ReadImu(r io.Reader) (*Imu, error) {
	imu := &Imu{DatE: []*ImuE{}}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 7 {
			return nil, fmt.Errorf("line %d: need 7 fields (tow fx fy fz wx wy wz), got %d", ln, len(f))
		}
		v := [7]float64{}
		for i, s := range f {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
			v[i] = x
		}
		imu.DatE = append(imu.DatE, &ImuE{
			Tow: v[0],
			Dat: *NewImuS(v[1], v[2], v[3], v[4], v[5], v[6]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(imu.DatE) == 0 {
		return nil, fmt.Errorf("no IMU epochs found")
	}
	if !slices.IsSortedFunc(imu.DatE, func(a, b *ImuE) int {
		switch {
		case a.Tow < b.Tow:
			return -1
		case a.Tow > b.Tow:
			return 1
		default:
			return 0
		}
	}) {
		return nil, fmt.Errorf("IMU epochs are not in ascending time order")
	}
	for i := 1; i < len(imu.DatE); i++ {
		if imu.DatE[i].Tow == imu.DatE[i-1].Tow {
			return nil, fmt.Errorf("duplicate IMU epoch at tow=%.6f", imu.DatE[i].Tow)
		}
	}
	return imu, nil
}
