/*
Copyright © 2025 The vocab Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/vocab/pkg/slug"
)

// slugResult is the document produced by the slug command.
type slugResult struct {
	Input string `json:"input" yaml:"input"`
	Slug  string `json:"slug" yaml:"slug"`
}

func slugCmd() *cli.Command {
	return &cli.Command{
		Name:                  "slug",
		EnableShellCompletion: true,
		Usage:                 "Convert text into a URL- and file-safe identifier",
		ArgsUsage:             "TEXT ...",
		Description: `Convert free-form text into a slug: lowercase, accents folded to
their base characters, and every separator run (including '/' and '\')
collapsed into a single hyphen.

# Examples

  vocab slug "Release Notes/2025 Q1"
  vocab slug --format json Café au Lait`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("slug requires at least one argument")
			}

			input := strings.Join(cmd.Args().Slice(), " ")
			return writeResult(ctx, cmd, slugResult{
				Input: input,
				Slug:  slug.Slugify(input),
			})
		},
	}
}
