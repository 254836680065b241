// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/geodesic-go/crswkt/cmd/crswkt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
