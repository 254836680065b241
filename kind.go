// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package crswkt

// Kind identifies the construct a node describes. For recognized keywords it
// is one of the constants below; any other keyword yields a Kind equal to
// the raw keyword and the node falls back to generic handling.
type Kind string

const (
	KindGeogCS     Kind = "GEOGCS"
	KindProjCS     Kind = "PROJCS"
	KindGeocCS     Kind = "GEOCCS"
	KindCompdCS    Kind = "COMPD_CS"
	KindVertCS     Kind = "VERT_CS"
	KindLocalCS    Kind = "LOCAL_CS"
	KindDatum      Kind = "DATUM"
	KindVertDatum  Kind = "VERT_DATUM"
	KindLocalDatum Kind = "LOCAL_DATUM"
	KindSpheroid   Kind = "SPHEROID"
	KindPrimeM     Kind = "PRIMEM"
	KindUnit       Kind = "UNIT"
	KindProjection Kind = "PROJECTION"
	KindParameter  Kind = "PARAMETER"
	KindAxis       Kind = "AXIS"
	KindAuthority  Kind = "AUTHORITY"
	KindToWGS84    Kind = "TOWGS84"
)

var knownKinds = map[Kind]bool{
	KindGeogCS:     true,
	KindProjCS:     true,
	KindGeocCS:     true,
	KindCompdCS:    true,
	KindVertCS:     true,
	KindLocalCS:    true,
	KindDatum:      true,
	KindVertDatum:  true,
	KindLocalDatum: true,
	KindSpheroid:   true,
	KindPrimeM:     true,
	KindUnit:       true,
	KindProjection: true,
	KindParameter:  true,
	KindAxis:       true,
	KindAuthority:  true,
	KindToWGS84:    true,
}

// rootKinds are the kinds accepted as the root of a complete document.
// Anything else is still parseable as a sub-fragment but gets flagged by the
// validator.
var rootKinds = map[Kind]bool{
	KindCompdCS: true,
	KindProjCS:  true,
	KindGeogCS:  true,
	KindGeocCS:  true,
	KindVertCS:  true,
	KindLocalCS: true,
}

// crsKinds are the kinds that describe a coordinate system of their own and
// may appear as a component of a COMPD_CS.
var crsKinds = map[Kind]bool{
	KindProjCS:  true,
	KindGeogCS:  true,
	KindGeocCS:  true,
	KindVertCS:  true,
	KindLocalCS: true,
}

// Known reports whether the kind is part of the recognized keyword set.
func (k Kind) Known() bool {
	return knownKinds[k]
}

// Direction is the orientation of a coordinate axis.
type Direction string

const (
	North Direction = "NORTH"
	South Direction = "SOUTH"
	East  Direction = "EAST"
	West  Direction = "WEST"
	Up    Direction = "UP"
	Down  Direction = "DOWN"
	Other Direction = "OTHER"
)

// Known reports whether the direction is one of the compass values the WKT
// grammar defines.
func (d Direction) Known() bool {
	switch d {
	case North, South, East, West, Up, Down, Other:
		return true
	default:
		return false
	}
}
