// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/geodesic-go/crswkt"
	"github.com/geodesic-go/crswkt/encoder"
	"github.com/geodesic-go/crswkt/token"
)

var (
	lenient    bool
	maxDepth   int
	delimiters string
	format     string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a WKT file and print its structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&lenient, "lenient", false,
		"return the best-effort tree instead of failing on semantic errors")
	parseCmd.Flags().IntVar(&maxDepth, "max-depth", 0,
		"defensive nesting bound (0 = default)")
	parseCmd.Flags().StringVar(&delimiters, "delimiters", "either",
		"accepted bracket style: either, square or paren")
	parseCmd.Flags().StringVarP(&format, "format", "f", "json",
		"output format: json or yaml")
}

func runParse(cmd *cobra.Command, args []string) error {
	style, err := delimiterStyle(delimiters)
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	opts := crswkt.Options{
		Lenient:    lenient,
		MaxDepth:   maxDepth,
		Delimiters: style,
	}

	root, diags, err := crswkt.ParseReader(args[0], bytes.NewReader(buf), opts)

	printDiagnostics(diags)

	if err != nil {
		var posErr *token.PosError
		if errors.As(err, &posErr) {
			fmt.Fprint(os.Stderr, posErr.Explain(string(buf)))
		}

		return err
	}

	var out []byte

	switch format {
	case "json":
		out, err = encoder.JSON(root)
	case "yaml":
		out, err = encoder.YAML(root)
	default:
		return fmt.Errorf("unknown format %q, expected json or yaml", format)
	}

	if err != nil {
		return err
	}

	cmd.Println(string(out))

	return nil
}

func delimiterStyle(name string) (token.DelimiterStyle, error) {
	switch name {
	case "either", "":
		return token.DelimitersEither, nil
	case "square":
		return token.DelimitersSquareOnly, nil
	case "paren":
		return token.DelimitersParenOnly, nil
	default:
		return 0, fmt.Errorf("unknown delimiter style %q, expected either, square or paren", name)
	}
}

func printDiagnostics(diags []crswkt.Diagnostic) {
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed)

	for _, d := range diags {
		c := warn
		if d.Severity == crswkt.SeverityError {
			c = fail
		}

		c.Fprintln(os.Stderr, d.String())
	}
}
