/*
Copyright © 2025 The vocab Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	vpkg "github.com/mchmarny/vocab/pkg/version"
)

// sortResult is the document produced by the sort command.
type sortResult struct {
	Versions []string `json:"versions" yaml:"versions"`
	Latest   string   `json:"latest" yaml:"latest"`
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort version-like strings in ascending order",
		ArgsUsage:             "[VERSION ...]",
		Description: `Sort version-like strings using segment-aware ordering, ascending.

Versions are taken from the arguments, or read one per line from stdin
when no arguments are given (blank lines are skipped).

# Examples

  vocab sort 1.2q 1.10 1.2a
  git tag | vocab sort --latest --format table`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "latest",
				Usage: "Output only the highest-ordering version",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			versions := cmd.Args().Slice()
			if len(versions) == 0 {
				var err error
				if versions, err = readLines(os.Stdin); err != nil {
					return fmt.Errorf("failed to read versions from stdin: %w", err)
				}
			}
			if len(versions) == 0 {
				return fmt.Errorf("no versions to sort")
			}

			vpkg.Sort(versions)
			latest := versions[len(versions)-1]

			if cmd.Bool("latest") {
				return writeResult(ctx, cmd, sortResult{Latest: latest})
			}
			return writeResult(ctx, cmd, sortResult{Versions: versions, Latest: latest})
		},
	}
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
