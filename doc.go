// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

// Package crswkt parses coordinate reference system descriptions encoded in
// OGC well-known text format, a.k.a. CRS WKT or OGC WKT, into a typed,
// navigable tree.
//
// Parsing happens in three passes. The lexer (package token) turns the text
// into tokens, skipping '#' comments and whitespace. The generic parser
// (package parser) reads the uniform grammar
//
//	node := SYMBOL '[' arglist ']'
//
// without knowing any keyword. Classification and validation then happen in
// this package, which is the only place with per-keyword knowledge.
//
// The basic usage idiom is:
//
//	cs, diags, err := crswkt.Parse(wkt, crswkt.Options{})
//	if err != nil {
//		// handle
//	}
//	fmt.Println(cs.Kind(), cs.Name())
//
// Nodes are queried by kind rather than by position, so documents with
// children in non-canonical order behave like canonical ones:
//
//	if auth, ok := cs.Authority(); ok {
//		fmt.Println(auth.Namespace, auth.Code)
//	}
//	for _, p := range cs.Parameters() {
//		fmt.Println(p.Name, p.Value)
//	}
//	geog := cs.Find(crswkt.KindGeogCS)
//
// The parser does not judge geodetic plausibility of parameter values, does
// not convert units and does not resolve authority codes against a
// registry; it records what the document says.
package crswkt
