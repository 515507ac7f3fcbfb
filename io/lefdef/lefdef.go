// Package lefdef implements a minimal LEF/DEF reader and writer: just
// enough of each format's grammar to round-trip a chip database's
// technology library, cell library and component placement through
// text, built around a line-oriented reader that parses one LEF/DEF
// statement per line.
package lefdef

import "github.com/sarchlab/zeonplace/geom"

// orientationToDEF and defToOrientation implement the DEF orientation
// token mapping: R0<->N, R90<->W, R180<->S, R270<->E, MX<->FS, MY<->FN,
// MX90<->FW, MY90<->FE.
var orientationToDEF = map[geom.Orientation]string{
	geom.R0:   "N",
	geom.R90:  "W",
	geom.R180: "S",
	geom.R270: "E",
	geom.MX:   "FS",
	geom.MY:   "FN",
	geom.MX90: "FW",
	geom.MY90: "FE",
}

var defToOrientation = map[string]geom.Orientation{
	"N":  geom.R0,
	"W":  geom.R90,
	"S":  geom.R180,
	"E":  geom.R270,
	"FS": geom.MX,
	"FN": geom.MY,
	"FW": geom.MX90,
	"FE": geom.MY90,
}
