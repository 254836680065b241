// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geodesic-go/crswkt"
)

const projText = `PROJCS [
	"OSGB 1936 / British National Grid",
	GEOGCS ["OSGB 1936",
		DATUM ["OSGB 1936",
			SPHEROID ["Airy 1830", 6377563.396, 299.3249646],
			TOWGS84 [375, -111, 431, 0, 0, 0, 0]
		],
		PRIMEM ["Greenwich", 0],
		UNIT ["degree", 0.0174532925199433]
	],
	PROJECTION ["Transverse Mercator"],
	PARAMETER ["False easting", 400000],
	PARAMETER ["Latitude", 49.0],
	UNIT ["metre", 1.0, AUTHORITY ["EPSG", "9001"]],
	AXIS ["N", NORTH],
	AXIS ["E", EAST],
	AUTHORITY ["EPSG", "27700"]
]`

func parseProj(t *testing.T) *crswkt.Node {
	t.Helper()

	root, diags, err := crswkt.Parse(projText, crswkt.Options{})
	require.NoError(t, err)
	require.Empty(t, diags)

	return root
}

func TestDocument(t *testing.T) {
	doc := Document(parseProj(t))
	require.Len(t, doc, 1)

	proj, ok := doc["PROJCS"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "OSGB 1936 / British National Grid", proj["name"])

	auth, ok := proj["AUTHORITY"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "EPSG", auth["name"])
	require.Equal(t, "27700", auth["code"])

	params, ok := proj["param_list"].([]any)
	require.True(t, ok)
	require.Len(t, params, 2)

	easting := params[0].(map[string]any)["PARAMETER"].(map[string]any)
	require.Equal(t, "False easting", easting["name"])
	// integer literals stay integers
	require.Equal(t, int64(400000), easting["value"])

	lat := params[1].(map[string]any)["PARAMETER"].(map[string]any)
	require.Equal(t, 49.0, lat["value"])

	axes, ok := proj["axis_list"].([]any)
	require.True(t, ok)
	require.Len(t, axes, 2)

	north := axes[0].(map[string]any)["AXIS"].(map[string]any)
	require.Equal(t, "N", north["name"])
	require.Equal(t, "NORTH", north["direction"])

	unit, ok := proj["UNIT"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "metre", unit["name"])
	require.Equal(t, 1.0, unit["conversion_factor"])

	geog, ok := proj["GEOGCS"].(map[string]any)
	require.True(t, ok)

	datum := geog["DATUM"].(map[string]any)
	spheroid := datum["SPHEROID"].(map[string]any)
	require.Equal(t, 6377563.396, spheroid["semi_major_axis"])
	require.Equal(t, 299.3249646, spheroid["inverse_flattening"])

	towgs84 := datum["TOWGS84"].(map[string]any)
	require.Equal(t, map[string]any{
		"dx": 375.0, "dy": -111.0, "dz": 431.0,
		"ex": 0.0, "ey": 0.0, "ez": 0.0, "ppm": 0.0,
	}, towgs84)

	primem := geog["PRIMEM"].(map[string]any)
	require.Equal(t, 0.0, primem["longitude"])
}

func TestDocumentVertDatum(t *testing.T) {
	root, _, err := crswkt.Parse(
		`VERT_CS["Newlyn", VERT_DATUM["Ordnance Datum Newlyn", 2005], UNIT["metre", 1], AXIS["Up", UP]]`,
		crswkt.Options{})
	require.NoError(t, err)

	vert := Document(root)["VERT_CS"].(map[string]any)
	vd := vert["VERT_DATUM"].(map[string]any)
	require.Equal(t, 2005, vd["datum_type"])

	axes := vert["axis_list"].([]any)
	up := axes[0].(map[string]any)["AXIS"].(map[string]any)
	require.Equal(t, "UP", up["direction"])
}

func TestDocumentUnknownKind(t *testing.T) {
	root, _, err := crswkt.Parse(
		`FUTURE_CS["tomorrow", 1, 2, SIDEWAYS]`,
		crswkt.Options{Lenient: true})
	require.NoError(t, err)

	doc := Document(root)
	fut := doc["FUTURE_CS"].(map[string]any)
	require.Equal(t, "tomorrow", fut["name"])
	require.Equal(t, []float64{1, 2}, fut["values"])
	require.Equal(t, []string{"SIDEWAYS"}, fut["symbols"])
}

func TestJSON(t *testing.T) {
	buf, err := JSON(parseProj(t))
	require.NoError(t, err)

	var round map[string]any
	require.NoError(t, json.Unmarshal(buf, &round))

	proj := round["PROJCS"].(map[string]any)
	require.Equal(t, "OSGB 1936 / British National Grid", proj["name"])

	// json numbers decode as float64
	params := proj["param_list"].([]any)
	easting := params[0].(map[string]any)["PARAMETER"].(map[string]any)
	require.Equal(t, 400000.0, easting["value"])
}

func TestYAML(t *testing.T) {
	buf, err := YAML(parseProj(t))
	require.NoError(t, err)

	require.Contains(t, string(buf), "PROJCS:")
	require.Contains(t, string(buf), "name: OSGB 1936 / British National Grid")
	require.Contains(t, string(buf), "direction: NORTH")
}

func TestDocumentDuplicateKeys(t *testing.T) {
	// duplicate children of the same kind collapse into a list; the
	// validator flags this, so parse leniently
	root, _, err := crswkt.Parse(
		`LOCAL_CS["l", LOCAL_DATUM["a", 0], LOCAL_DATUM["b", 1], UNIT["metre", 1], AXIS["x", EAST]]`,
		crswkt.Options{Lenient: true})
	require.NoError(t, err)

	local := Document(root)["LOCAL_CS"].(map[string]any)
	datums, ok := local["LOCAL_DATUM"].([]any)
	require.True(t, ok)
	require.Len(t, datums, 2)
	require.Equal(t, "a", datums[0].(map[string]any)["name"])
	require.Equal(t, "b", datums[1].(map[string]any)["name"])
}
