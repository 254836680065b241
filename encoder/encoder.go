// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

// Package encoder renders a classified CRS tree as a JSON or YAML document.
// The document shape keys every node by its WKT keyword, with repeated
// PARAMETER and AXIS children collected into param_list and axis_list.
package encoder

import (
	"encoding/json"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/geodesic-go/crswkt"
)

// towgs84Fields names the seven shift parameters in their WKT order.
var towgs84Fields = []string{"dx", "dy", "dz", "ex", "ey", "ez", "ppm"}

// Document returns the tree as a nested map with the root kind as the
// single top-level key.
func Document(n *crswkt.Node) map[string]any {
	return map[string]any{string(n.Kind()): body(n)}
}

// JSON renders the tree as an indented JSON document.
func JSON(n *crswkt.Node) ([]byte, error) {
	return json.MarshalIndent(Document(n), "", "  ")
}

// YAML renders the tree as a YAML document.
func YAML(n *crswkt.Node) ([]byte, error) {
	return yaml.Marshal(Document(n))
}

func body(n *crswkt.Node) map[string]any {
	out := map[string]any{}

	switch n.Kind() {
	case crswkt.KindAuthority:
		if auth, ok := parentFreeAuthority(n); ok {
			out["name"] = auth.Namespace
			out["code"] = auth.Code
		}

		return out
	case crswkt.KindToWGS84:
		for i, v := range n.Numbers() {
			if i >= len(towgs84Fields) {
				break
			}

			out[towgs84Fields[i]] = v
		}

		return out
	case crswkt.KindSpheroid:
		if nums := n.Numbers(); len(nums) >= 2 {
			out["semi_major_axis"] = nums[0]
			out["inverse_flattening"] = nums[1]
		}
	case crswkt.KindPrimeM:
		if v, ok := n.Value(); ok {
			out["longitude"] = v
		}
	case crswkt.KindUnit:
		if v, ok := n.Value(); ok {
			out["conversion_factor"] = v
		}
	case crswkt.KindParameter:
		if v, ok := n.Value(); ok {
			out["value"] = intIfIntegral(n, 0, v)
		}
	case crswkt.KindVertDatum, crswkt.KindLocalDatum:
		if t, ok := n.DatumType(); ok {
			out["datum_type"] = t
		}
	case crswkt.KindAxis:
		if d, ok := n.Direction(); ok {
			out["direction"] = string(d)
		}
	default:
		if !n.Known() {
			if nums := n.Numbers(); len(nums) > 0 {
				out["values"] = nums
			}

			if syms := n.Symbols(); len(syms) > 0 {
				out["symbols"] = syms
			}
		}
	}

	if name := n.Name(); name != "" {
		out["name"] = name
	}

	var axes, params []any

	for _, c := range n.Children() {
		switch c.Kind() {
		case crswkt.KindAxis:
			axes = append(axes, map[string]any{"AXIS": body(c)})
		case crswkt.KindParameter:
			params = append(params, map[string]any{"PARAMETER": body(c)})
		default:
			key := string(c.Kind())

			switch existing := out[key].(type) {
			case nil:
				out[key] = body(c)
			case []any:
				// third and further duplicate, keep appending
				out[key] = append(existing, body(c))
			default:
				out[key] = []any{existing, body(c)}
			}
		}
	}

	if len(axes) > 0 {
		out["axis_list"] = axes
	}

	if len(params) > 0 {
		out["param_list"] = params
	}

	return out
}

// parentFreeAuthority decodes an AUTHORITY node without going through its
// parent.
func parentFreeAuthority(n *crswkt.Node) (crswkt.Authority, bool) {
	auth := crswkt.Authority{Namespace: n.Name()}

	switch {
	case len(n.Strings()) > 1:
		auth.Code = n.Strings()[1]
	case len(n.NumberLiterals()) > 0:
		auth.Code = n.NumberLiterals()[0]
	default:
		return auth, auth.Namespace != ""
	}

	return auth, auth.Namespace != ""
}

// intIfIntegral renders the i-th numeric argument as an int when its source
// spelling is an integer literal, the way values like a false easting of
// 400000 are usually written and read.
func intIfIntegral(n *crswkt.Node, i int, v float64) any {
	lits := n.NumberLiterals()
	if i < len(lits) {
		if iv, err := strconv.ParseInt(lits[i], 10, 64); err == nil {
			return iv
		}
	}

	return v
}
