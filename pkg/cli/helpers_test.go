// Copyright (c) 2025, The vocab Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/vocab/pkg/defaults"
	"github.com/mchmarny/vocab/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{format: "yaml", want: serializer.FormatYAML},
		{format: "json", want: serializer.FormatJSON},
		{format: "table", want: serializer.FormatTable},
		{format: "xml", wantErr: true},
		{format: "csv", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{&cli.StringFlag{Name: "format", Value: tt.format}},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.want {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.want)
					}
					return nil
				},
			}
			if err := cmd.Run(context.Background(), []string{"helper"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestFormatFlagUsageListsSupportedFormats(t *testing.T) {
	for _, want := range serializer.SupportedFormats() {
		if !strings.Contains(formatFlag.Usage, want) {
			t.Errorf("format flag usage missing %q: %s", want, formatFlag.Usage)
		}
	}
}

func TestWriteResult(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "result.json")
	doc := slugResult{Input: "Café au Lait", Slug: "cafe-au-lait"}

	cmd := &cli.Command{
		Flags: []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, c *cli.Command) error {
			return writeResult(ctx, c, doc)
		},
	}
	args := []string{"helper", "--format", "json", "--output", outPath}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("writeResult failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	var got slugResult
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got != doc {
		t.Errorf("round trip = %+v, want %+v", got, doc)
	}
}

func TestWriteResultRejectsUnknownFormat(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, c *cli.Command) error {
			return writeResult(ctx, c, slugResult{})
		},
	}
	err := cmd.Run(context.Background(), []string{"helper", "--format", "xml"})
	if err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestCommandContextCarriesDeadline(t *testing.T) {
	ctx, cancel := commandContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("command context has no deadline")
	}
	want := time.Now().Add(defaults.CLICommandTimeout)
	if diff := deadline.Sub(want); diff < -time.Second || diff > time.Second {
		t.Errorf("deadline = %v, want ~%v", deadline, want)
	}
}
