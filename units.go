// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

// Named unit conversions to the kernel's SI-double form. IMU data sheets
// quote rates in deg/h or deg/s and accelerations in g or mGal; convert
// explicitly at the edge instead of carrying wrapper types.

package goins

// DpsToRps converts an angular rate from deg/s to rad/s
func DpsToRps(dps float64) float64 {
	return dps * PI / 180.0
}

// DphToRps converts an angular rate from deg/h to rad/s (gyro bias convention)
func DphToRps(dph float64) float64 {
	return dph * PI / 180.0 / 3600.0
}

// GToMs2 converts an acceleration from standard gravities to m/s^2
func GToMs2(g float64) float64 {
	return g * 9.80665
}

// MilliGToMs2 converts an acceleration from milli-g to m/s^2 (accelerometer bias convention)
func MilliGToMs2(mg float64) float64 {
	return mg * 9.80665e-3
}

// FtToM converts a distance from feet to meters
func FtToM(ft float64) float64 {
	return ft * 0.3048
}

// KtToMs converts a speed from knots to m/s
func KtToMs(kt float64) float64 {
	return kt * 1852.0 / 3600.0
}
