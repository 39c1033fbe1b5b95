/*
Copyright © 2025 The vocab Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/vocab/pkg/loader"
	"github.com/mchmarny/vocab/pkg/merge"
	"github.com/mchmarny/vocab/pkg/serializer"
)

func mergeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "merge",
		EnableShellCompletion: true,
		Usage:                 "Recursively overlay JSON/YAML documents",
		ArgsUsage:             "FILE FILE ...",
		Description: `Overlay two or more JSON or YAML documents in argument order, later
files winning. Nested maps are merged recursively instead of replaced.

Input formats are detected from file extensions. Each file is loaded
independently: when several inputs are broken, all of them are reported,
not just the first. Each file may appear only once.

# Examples

  vocab merge base.yaml region.yaml overrides.json
  vocab merge defaults.yaml site.yaml --format json --output merged.json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) < 2 {
				return fmt.Errorf("merge requires at least two input files, got %d", len(paths))
			}

			// load all inputs independently, collecting every failure
			layers := make([]map[string]any, len(paths))
			units := make([]loader.Unit, len(paths))
			for i, path := range paths {
				units[i] = loader.Unit{
					Name: path,
					Load: func(_ context.Context) error {
						doc, err := serializer.FromFile[map[string]any](path)
						if err != nil {
							return err
						}
						layers[i] = *doc
						return nil
					},
				}
			}

			l := loader.New(loader.WithConcurrency(len(units)))
			report, err := l.Load(ctx, units...)
			if err != nil {
				return err
			}
			for _, f := range report.Failed() {
				slog.Error("failed to load input", "file", f.Unit, "error", f.Err)
			}
			if err := report.Err(); err != nil {
				return err
			}

			return writeResult(ctx, cmd, merge.Overlay(layers...))
		},
	}
}
