// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.26
//

package goins

const (
	PI     = 3.1415926535897932  // Pi
	Re0    = 6378137.0           // Earth's equatorial radius (WGS84 semi-major axis) [m]
	Fe     = 1.0 / 298.257223563 // Earth's flattening (WGS84)
	OmegaE = 7.292115e-5         // Earth's rotation rate [rad/s]
	MuE    = 3.986004418e14      // Earth's gravitational constant [m^3/s^2]

	// Rotation-vector magnitudes at or below this threshold use the
	// linearized Rodrigues branches to avoid 0/0 cancellation
	AlphaMin = 1e-8
)
