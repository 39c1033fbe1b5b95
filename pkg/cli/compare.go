/*
Copyright © 2025 The vocab Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	vpkg "github.com/mchmarny/vocab/pkg/version"
)

// comparisonResult is the document produced by the compare command.
type comparisonResult struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two version-like strings",
		ArgsUsage:             "A B",
		Description: `Compare two version-like strings using segment-aware ordering:
numeric runs compare by magnitude, everything else by code point.

Unlike plain string comparison, "1.10" orders after "1.2" because the
numeric runs 10 and 2 compare as numbers. Alphabetic runs still compare
lexically, so "1.2a" orders before "1.2q".

The result is -1, 0, or 1 when A orders before, the same as, or after B.

# Examples

  vocab compare 1.2 1.10
  vocab compare --format json 1.2a 1.2q`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("compare requires exactly two arguments, got %d", len(args))
			}

			res := vpkg.Compare(args[0], args[1])
			return writeResult(ctx, cmd, comparisonResult{
				A:        args[0],
				B:        args[1],
				Result:   res,
				Relation: relation(res),
			})
		},
	}
}

func relation(res int) string {
	switch {
	case res < 0:
		return "older"
	case res > 0:
		return "newer"
	default:
		return "equal"
	}
}
