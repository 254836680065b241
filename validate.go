// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package crswkt

import "fmt"

// contract is the structural requirement for a node kind: which children
// must, may and may repeatedly occur, and how many flat numeric arguments
// the node carries itself.
type contract struct {
	// named requires a leading quoted name.
	named bool
	// numbers is the exact count of flat numeric arguments, 0 if the kind
	// carries none.
	numbers int
	// required kinds must occur exactly once.
	required []Kind
	// optional kinds may occur at most once.
	optional []Kind
	// repeated kinds may occur any number of times.
	repeated []Kind
	// axisCounts lists the permitted numbers of AXIS children; nil means
	// unconstrained.
	axisCounts []int
}

var contracts = map[Kind]contract{
	KindGeogCS: {
		named:      true,
		required:   []Kind{KindDatum, KindPrimeM, KindUnit},
		optional:   []Kind{KindAuthority},
		repeated:   []Kind{KindAxis},
		axisCounts: []int{0, 2},
	},
	KindGeocCS: {
		named:      true,
		required:   []Kind{KindDatum, KindPrimeM, KindUnit},
		optional:   []Kind{KindAuthority},
		repeated:   []Kind{KindAxis},
		axisCounts: []int{0, 3},
	},
	KindProjCS: {
		named:      true,
		required:   []Kind{KindGeogCS, KindProjection, KindUnit},
		optional:   []Kind{KindAuthority},
		repeated:   []Kind{KindParameter, KindAxis},
		axisCounts: []int{0, 2},
	},
	KindVertCS: {
		named:      true,
		required:   []Kind{KindVertDatum, KindUnit},
		optional:   []Kind{KindAuthority},
		repeated:   []Kind{KindAxis},
		axisCounts: []int{0, 1},
	},
	KindLocalCS: {
		named:      true,
		required:   []Kind{KindLocalDatum, KindUnit},
		optional:   []Kind{KindAuthority},
		repeated:   []Kind{KindAxis},
		axisCounts: []int{1, 2},
	},
	KindCompdCS: {
		named:    true,
		optional: []Kind{KindAuthority},
	},
	KindDatum: {
		named:    true,
		required: []Kind{KindSpheroid},
		optional: []Kind{KindToWGS84, KindAuthority},
	},
	KindVertDatum: {
		named:    true,
		numbers:  1,
		optional: []Kind{KindAuthority},
	},
	KindLocalDatum: {
		named:    true,
		numbers:  1,
		optional: []Kind{KindAuthority},
	},
	KindSpheroid: {
		named:    true,
		numbers:  2,
		optional: []Kind{KindAuthority},
	},
	KindPrimeM: {
		named:    true,
		numbers:  1,
		optional: []Kind{KindAuthority},
	},
	KindUnit: {
		named:    true,
		numbers:  1,
		optional: []Kind{KindAuthority},
	},
	KindProjection: {
		named:    true,
		optional: []Kind{KindAuthority},
	},
	KindParameter: {
		named:   true,
		numbers: 1,
	},
	KindAxis: {
		named: true,
	},
	KindAuthority: {},
	KindToWGS84:  {},
}

// Validate checks every node of a classified tree against the structural
// contract for its kind and returns the violations. The tree is never
// mutated; callers decide what to do with the diagnostics.
//
// rootSeverity is the severity attached to an unsupported root kind: a
// caller that wants to parse a bare sub-fragment passes SeverityWarning.
func Validate(root *Node, rootSeverity Severity) []Diagnostic {
	var diags []Diagnostic

	if !rootKinds[root.Kind()] {
		diags = append(diags, Diagnostic{
			Severity: rootSeverity,
			Err:      ErrUnsupportedRootKind,
			Message:  fmt.Sprintf("%s is not a coordinate system root", root.Kind()),
			Node:     root,
		})
	}

	validateNode(root, &diags)

	return diags
}

func validateNode(n *Node, diags *[]Diagnostic) {
	for _, c := range n.children {
		validateNode(c, diags)
	}

	if n.kind == KindToWGS84 {
		if len(n.numbers) != 7 {
			*diags = append(*diags, Diagnostic{
				Severity: SeverityError,
				Err:      ErrMalformedTowgs84,
				Message:  fmt.Sprintf("TOWGS84 expects 7 shift parameters, got %d", len(n.numbers)),
				Node:     n,
			})
		}

		return
	}

	if n.kind == KindAuthority {
		validateAuthority(n, diags)

		return
	}

	c, known := contracts[n.kind]
	if !known {
		// fallback node, nothing enforced
		return
	}

	if c.named && len(n.strings) == 0 {
		*diags = append(*diags, Diagnostic{
			Severity: SeverityError,
			Err:      ErrMissingRequiredChild,
			Message:  fmt.Sprintf("%s is missing its name", n.kind),
			Node:     n,
		})
	}

	switch {
	case len(n.numbers) < c.numbers:
		*diags = append(*diags, Diagnostic{
			Severity: SeverityError,
			Err:      ErrMissingRequiredChild,
			Message: fmt.Sprintf("%s expects %d numeric arguments, got %d",
				n.kind, c.numbers, len(n.numbers)),
			Node: n,
		})
	case len(n.numbers) > c.numbers && c.numbers > 0:
		*diags = append(*diags, Diagnostic{
			Severity: SeverityError,
			Err:      ErrDuplicateChild,
			Message: fmt.Sprintf("%s expects %d numeric arguments, got %d",
				n.kind, c.numbers, len(n.numbers)),
			Node: n,
		})
	}

	for _, kind := range c.required {
		switch count := len(n.FindAll(kind)); {
		case count == 0:
			*diags = append(*diags, Diagnostic{
				Severity: SeverityError,
				Err:      ErrMissingRequiredChild,
				Message:  fmt.Sprintf("%s requires a %s child", n.kind, kind),
				Node:     n,
			})
		case count > 1:
			*diags = append(*diags, Diagnostic{
				Severity: SeverityError,
				Err:      ErrDuplicateChild,
				Message:  fmt.Sprintf("%s permits only one %s child, got %d", n.kind, kind, count),
				Node:     n,
			})
		}
	}

	for _, kind := range c.optional {
		if count := len(n.FindAll(kind)); count > 1 {
			*diags = append(*diags, Diagnostic{
				Severity: SeverityError,
				Err:      ErrDuplicateChild,
				Message:  fmt.Sprintf("%s permits only one %s child, got %d", n.kind, kind, count),
				Node:     n,
			})
		}
	}

	if c.axisCounts != nil {
		validateAxisCount(n, c.axisCounts, diags)
	}

	if n.kind == KindAxis && len(n.symbols) == 0 {
		*diags = append(*diags, Diagnostic{
			Severity: SeverityError,
			Err:      ErrMissingRequiredChild,
			Message:  "AXIS is missing its direction",
			Node:     n,
		})
	}

	if n.kind == KindCompdCS {
		validateCompound(n, diags)
	}
}

func validateAuthority(n *Node, diags *[]Diagnostic) {
	hasNamespace := len(n.strings) > 0
	hasCode := len(n.strings) > 1 || len(n.numbers) > 0

	if !hasNamespace || !hasCode {
		*diags = append(*diags, Diagnostic{
			Severity: SeverityError,
			Err:      ErrMissingRequiredChild,
			Message:  "AUTHORITY requires a namespace and a code",
			Node:     n,
		})
	}
}

func validateAxisCount(n *Node, allowed []int, diags *[]Diagnostic) {
	count := len(n.FindAll(KindAxis))

	for _, a := range allowed {
		if count == a {
			return
		}
	}

	*diags = append(*diags, Diagnostic{
		Severity: SeverityError,
		Err:      ErrInvalidAxisCount,
		Message:  fmt.Sprintf("%s accepts %v axes, %d defined", n.kind, allowed, count),
		Node:     n,
	})
}

func validateCompound(n *Node, diags *[]Diagnostic) {
	switch count := len(n.CoordinateSystems()); {
	case count < 2:
		*diags = append(*diags, Diagnostic{
			Severity: SeverityError,
			Err:      ErrMissingRequiredChild,
			Message:  fmt.Sprintf("COMPD_CS requires two nested coordinate systems, got %d", count),
			Node:     n,
		})
	case count > 2:
		*diags = append(*diags, Diagnostic{
			Severity: SeverityError,
			Err:      ErrDuplicateChild,
			Message:  fmt.Sprintf("COMPD_CS permits two nested coordinate systems, got %d", count),
			Node:     n,
		})
	}
}
