// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package instrument

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/perma-check/survey"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if c.Len() != 10 {
		t.Errorf("Len() = %d, want 10", c.Len())
	}
	if c.Maximum() != 40 {
		t.Errorf("Maximum() = %d, want 40", c.Maximum())
	}

	domains := c.Domains()
	want := []string{"Positive Emotion", "Engagement", "Relationships", "Meaning", "Accomplishment"}
	for i, name := range want {
		if domains[i].Name != name || len(domains[i].Items) != 2 {
			t.Errorf("domain %d = %s with %d items, want %s with 2", i, domains[i].Name, len(domains[i].Items), name)
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantLen int
		wantMax int
		wantErr error
	}{
		{
			name: "yaml",
			doc: `
scale: {min: 1, max: 7}
domains:
  - name: Sleep
    items:
      - {id: s1, text: I slept well}
  - name: Energy
    items:
      - {id: n1, text: I had energy}
      - {id: n2, text: I recovered quickly}
`,
			wantLen: 3,
			wantMax: 21,
		},
		{
			name:    "json",
			doc:     `{"scale":{"min":0,"max":4},"domains":[{"name":"A","items":[{"id":"a1","text":"x"}]}]}`,
			wantLen: 1,
			wantMax: 4,
		},
		{
			name:    "no domains",
			doc:     `scale: {min: 0, max: 4}`,
			wantErr: survey.ErrDegenerateMaximum,
		},
		{
			name:    "duplicate ids",
			doc:     `{"scale":{"min":0,"max":4},"domains":[{"name":"A","items":[{"id":"x"}]},{"name":"B","items":[{"id":"x"}]}]}`,
			wantErr: survey.ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if c.Len() != tt.wantLen || c.Maximum() != tt.wantMax {
				t.Errorf("Load() = %d items max %d, want %d items max %d", c.Len(), c.Maximum(), tt.wantLen, tt.wantMax)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	if _, err := Load(strings.NewReader("domains: [")); err == nil {
		t.Error("Load() should fail on malformed input")
	}
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("")
	if err != nil || c.Len() != 10 {
		t.Fatalf("LoadFile(\"\") = %v, %v; want default catalog", c, err)
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "scale: {min: 0, max: 2}\ndomains:\n  - name: Only\n    items:\n      - {id: o1, text: one}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Len() != 1 || c.Scale().Max != 2 {
		t.Errorf("LoadFile() = %d items scale max %d", c.Len(), c.Scale().Max)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() should fail for a missing file")
	}
}
