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

package serializer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// vocabDoc is a vocabulary definition as it arrives from disk: a named
// closed set of (value, label) choices.
type vocabDoc struct {
	Name    string `json:"name" yaml:"name"`
	Choices []struct {
		Value string `json:"value" yaml:"value"`
		Label string `json:"label" yaml:"label"`
	} `json:"choices" yaml:"choices"`
}

const (
	vocabJSON = `{"name":"severity","choices":[{"value":"warn","label":"Warning"},{"value":"err","label":"Error"}]}`
	vocabYAML = "name: severity\nchoices:\n  - value: warn\n    label: Warning\n  - value: err\n    label: Error\n"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func checkVocabDoc(t *testing.T, doc vocabDoc) {
	t.Helper()
	if doc.Name != "severity" {
		t.Errorf("name = %q, want %q", doc.Name, "severity")
	}
	if len(doc.Choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(doc.Choices))
	}
	if doc.Choices[1].Value != "err" || doc.Choices[1].Label != "Error" {
		t.Errorf("choices[1] = %+v, want value=err label=Error", doc.Choices[1])
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "vocab.json", want: FormatJSON},
		{path: "vocab.yaml", want: FormatYAML},
		{path: "vocab.yml", want: FormatYAML},
		{path: "report.table", want: FormatTable},
		{path: "report.txt", want: FormatTable},
		{path: "VOCAB.JSON", want: FormatJSON},
		{path: "dir/with.yaml/nested.json", want: FormatJSON},
		{path: "vocab.xml", want: FormatJSON},
		{path: "no-extension", want: FormatJSON},
		{path: "", want: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReaderRejectsBadFormats(t *testing.T) {
	if _, err := NewReader(Format("xml"), strings.NewReader("{}")); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := NewReader(FormatTable, strings.NewReader("FIELD VALUE")); err == nil {
		t.Error("expected error for table format, which is write-only")
	}
}

func TestDeserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
	}{
		{name: "json", format: FormatJSON, content: vocabJSON},
		{name: "yaml", format: FormatYAML, content: vocabYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var doc vocabDoc
			if err := r.Deserialize(&doc); err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			checkVocabDoc(t, doc)
		})
	}
}

func TestDeserializeErrors(t *testing.T) {
	var doc vocabDoc

	var nilReader *Reader
	if err := nilReader.Deserialize(&doc); err == nil {
		t.Error("expected error from nil reader")
	}

	noInput := &Reader{format: FormatJSON}
	if err := noInput.Deserialize(&doc); err == nil {
		t.Error("expected error from nil input source")
	}

	r, err := NewReader(FormatJSON, strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if err := r.Deserialize(&doc); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestNewFileReader(t *testing.T) {
	path := writeTempFile(t, "vocab.yaml", vocabYAML)

	r, err := NewFileReader(FormatYAML, path)
	if err != nil {
		t.Fatalf("NewFileReader failed: %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	}()

	var doc vocabDoc
	if err := r.Deserialize(&doc); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	checkVocabDoc(t, doc)
}

func TestNewFileReaderErrors(t *testing.T) {
	if _, err := NewFileReader(FormatYAML, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := NewFileReader(Format("xml"), "vocab.xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := NewFileReader(FormatTable, "report.txt"); err == nil {
		t.Error("expected error for table format")
	}
}

func TestNewFileReaderAuto(t *testing.T) {
	path := writeTempFile(t, "vocab.json", vocabJSON)

	r, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}
	defer r.Close()

	var doc vocabDoc
	if err := r.Deserialize(&doc); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	checkVocabDoc(t, doc)
}

// countingCloser records how many times Close was called.
type countingCloser struct {
	io.Reader
	closed int
}

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func TestReaderClose(t *testing.T) {
	var nilReader *Reader
	if err := nilReader.Close(); err != nil {
		t.Errorf("Close on nil reader should be a no-op, got: %v", err)
	}

	src := &countingCloser{Reader: strings.NewReader(vocabJSON)}
	r, err := NewReader(FormatJSON, src)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got: %v", err)
	}
	if src.closed != 1 {
		t.Errorf("underlying source closed %d times, want 1", src.closed)
	}
}

func TestFromFile(t *testing.T) {
	t.Run("yaml into struct", func(t *testing.T) {
		path := writeTempFile(t, "vocab.yaml", vocabYAML)
		doc, err := FromFile[vocabDoc](path)
		if err != nil {
			t.Fatalf("FromFile failed: %v", err)
		}
		checkVocabDoc(t, *doc)
	})

	t.Run("json into map", func(t *testing.T) {
		path := writeTempFile(t, "vocab.json", vocabJSON)
		doc, err := FromFile[map[string]any](path)
		if err != nil {
			t.Fatalf("FromFile failed: %v", err)
		}
		if (*doc)["name"] != "severity" {
			t.Errorf("name = %v, want severity", (*doc)["name"])
		}
	})

	t.Run("unknown extension treated as json", func(t *testing.T) {
		path := writeTempFile(t, "vocab.data", vocabJSON)
		doc, err := FromFile[vocabDoc](path)
		if err != nil {
			t.Fatalf("FromFile failed: %v", err)
		}
		checkVocabDoc(t, *doc)
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := FromFile[vocabDoc](filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		path := writeTempFile(t, "broken.yaml", "name: [unclosed")
		if _, err := FromFile[vocabDoc](path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}
