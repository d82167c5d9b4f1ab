// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	m "github.com/mkhts/goins"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Load IMU log
	imu, err := readImu(args.imuFn)
	if err != nil {
		return fmt.Errorf("failed to read IMU file: %w", err)
	}

	m.PrintD(1, "--- imu data (%s) ---\n", filepath.Base(args.imuFn))
	m.PrintD(1, "%s\n", imu)

	// Prepare output file
	pos, err := prepareOutput(args)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(pos)

	// Build the initial state
	sol, err := initialState(args)
	if err != nil {
		return fmt.Errorf("failed to build initial state: %w", err)
	}

	// Print header
	if !args.noPosHeader {
		printPosHeader(pos, os.Args[0], args, imu)
	}

	// Process epochs
	return processEpochs(args, imu, sol, pos)
}

// Read IMU log file
func readImu(fn string) (*m.Imu, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	imu, err := m.ReadImu(f)
	if err != nil {
		return nil, err
	}
	return imu, nil
}

// Prepare output file
func prepareOutput(args cmdOpt) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(args.posFn) == 0 {
		return &nopCloser{os.Stdout}, nil
	}

	// Create output file
	posf, err := os.Create(args.posFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return posf, nil
}

// Close output file
func closeOutput(pos io.WriteCloser) {
	if pos != nil {
		pos.Close()
	}
}

// Build the initial state from command line arguments
func initialState(args cmdOpt) (*m.NavSol, error) {
	att := m.EulerToCTM(m.ToRad(args.att[0]), m.ToRad(args.att[1]), m.ToRad(args.att[2]))
	sol, err := m.NewNavSol(args.initPos, args.initVel, att)
	if err != nil {
		return nil, err
	}
	m.PrintD(1, "initial pos(llh): %14.9f %14.9f %10.4f\n", m.ToDeg(sol.Pos.Lat), m.ToDeg(sol.Pos.Lon), sol.Pos.Hei)
	m.PrintD(1, "initial vel(ned): %s\n", sol.Vel.String())
	m.PrintD(1, "initial att(rpy): %9.4f %9.4f %9.4f\n", args.att[0], args.att[1], args.att[2])
	if m.DBG_ >= 2 {
		m.PrintA("initial att(dcm): ")
		m.PrintMat(sol.Att.Mat)
	}
	return sol, nil
}

// Process epochs
func processEpochs(args cmdOpt, imu *m.Imu, sol *m.NavSol, pos io.Writer) error {

	sol.Tow = imu.DatE[0].Tow
	for i, imue := range imu.DatE {

		// The first epoch fixes the initial time; mechanization starts
		// from the second
		if i == 0 {
			if args.printFirst {
				printPos(args, sol, pos)
			}
			continue
		}

		dt := imue.Tow - sol.Tow
		next, err := m.CalcNav(dt, sol, &imue.Dat)
		if err != nil {
			// Numerical failure is deterministic; treat it as fatal for
			// this trajectory rather than retrying
			return fmt.Errorf("epoch tow=%.6f: %w", imue.Tow, err)
		}
		next.Tow = imue.Tow
		sol = next

		// Skip output for epochs outside the window or interval
		if !shouldPrintEpoch(imue.Tow, args) {
			continue
		}
		printPos(args, sol, pos)
	}

	return nil
}

// Filter output epochs
func shouldPrintEpoch(tow float64, args cmdOpt) bool {

	// Skip epochs before output start time
	if args.ts > 0 && tow < args.ts {
		return false
	}

	// Stop after output end time
	if args.te > 0 && tow > args.te {
		return false
	}

	// Skip epochs that are not on the specified output interval grid
	// (small slack absorbs floating-point time stamps)
	if args.ti > 0 && math.Abs(math.Remainder(tow, float64(args.ti))) > 1e-6 {
		return false
	}

	return true
}

// nopCloser - WriteCloser that ignores close operations
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Structure to hold command line argument information
type cmdOpt struct {
	imuFn       string
	posFn       string
	initPos     m.PosLLH
	initVel     m.VelNED
	att         [3]float64 // roll, pitch, yaw [deg]
	ts, te      float64
	ti          int
	noPosHeader bool
	printFirst  bool
	withXyz     bool
}

// Parse command line arguments
func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options] -l "lat lon hei" imu_file.imu

[Options]
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Var(&a.initPos, "l", "Initial latitude/longitude/ellipsoidal height. Enclose in quotes like -l \"35.73101206 139.7396917 80.33\"")
	flag.Var(&a.initVel, "v", "Initial NED velocity [m/s]. Enclose in quotes like -v \"0 0 0\"")
	var attStr string
	flag.StringVar(&attStr, "a", "0 0 0", "Initial attitude roll/pitch/yaw [deg]. Enclose in quotes like -a \"0 0 90\"")
	flag.StringVar(&a.posFn, "o", "", "Output pos file path. If not specified, output to stdout.")
	flag.Float64Var(&a.ts, "ts", 0, "Output start time [s]. 0 outputs from the first epoch.")
	flag.Float64Var(&a.te, "te", 0, "Output end time [s]. 0 outputs to the last epoch. This epoch is also included.")
	flag.IntVar(&a.ti, "ti", 0, "Output interval. Records are output when the epoch's second value is divisible by the specified value. Integer only. Omit or set to 0 to output all epochs.")
	flag.BoolVar(&a.noPosHeader, "nh", false, "Do not output header section of pos file.")
	flag.BoolVar(&a.printFirst, "p0", false, "Also output the initial state as the first record.")
	flag.BoolVar(&a.withXyz, "xyz", false, "Append ECEF coordinates to each output record.")
	var dbg int
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display)")
	flag.Parse()
	if flag.NArg() != 1 {
		return a, fmt.Errorf("too less or many arguments")
	}
	a.imuFn = flag.Arg(0)
	if _, e := fmt.Sscan(attStr, &a.att[0], &a.att[1], &a.att[2]); e != nil {
		return a, fmt.Errorf("invalid attitude: %w", e)
	}
	m.DBG_ = dbg
	return
}

// Print pos file header
func printPosHeader(pos io.Writer, cmd string, args cmdOpt, imu *m.Imu) {
	fmt.Fprintf(pos, "%% program   : %s\n", filepath.Base(cmd))
	fmt.Fprintf(pos, "%% inp file  : %s\n", args.imuFn)
	fmt.Fprintf(pos, "%% imu start : %.6f s\n", imu.DatE[0].Tow)
	fmt.Fprintf(pos, "%% imu end   : %.6f s\n", imu.DatE[len(imu.DatE)-1].Tow)
	fmt.Fprintf(pos, "%% ini pos   : %.8f %.8f %.3f\n", m.ToDeg(args.initPos.Lat), m.ToDeg(args.initPos.Lon), args.initPos.Hei)
	hdr := "%       tow  latitude(deg) longitude(deg)  height(m)      vn(m/s)      ve(m/s)      vd(m/s)  roll(deg) pitch(deg)   yaw(deg)"
	if args.withXyz {
		hdr += "           x(m)           y(m)           z(m)"
	}
	fmt.Fprintln(pos, hdr)
}

// Output one trajectory record
func printPos(args cmdOpt, sol *m.NavSol, pos io.Writer) {
	roll, pitch, yaw := sol.Att.ToEuler()
	fmt.Fprintf(pos, "%11.4f %14.9f %14.9f %10.4f %12.6f %12.6f %12.6f %10.4f %10.4f %10.4f",
		sol.Tow, m.ToDeg(sol.Pos.Lat), m.ToDeg(sol.Pos.Lon), sol.Pos.Hei,
		sol.Vel.N, sol.Vel.E, sol.Vel.D,
		m.ToDeg(roll), m.ToDeg(pitch), m.ToDeg(yaw))
	if args.withXyz {
		xyz := sol.Pos.ToXYZ()
		fmt.Fprintf(pos, " %14.4f %14.4f %14.4f", xyz.X, xyz.Y, xyz.Z)
	}
	fmt.Fprintln(pos)
}
