// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package instrument

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/perma-check/survey"
)

// PERMAScale is the 0..4 response scale of the reference instrument.
var PERMAScale = survey.Scale{Min: 0, Max: 4}

// PERMADomains are placeholder items in PERMA-Profiler structure.
// Replace with licensed items for production use.
func PERMADomains() []survey.Domain {
	return []survey.Domain{
		{
			Name: "Positive Emotion",
			Items: []survey.Item{
				{ID: "p1", Text: "I felt cheerful and content"},
				{ID: "p2", Text: "I experienced positive feelings recently"},
			},
		},
		{
			Name: "Engagement",
			Items: []survey.Item{
				{ID: "e1", Text: "I was absorbed in activities I enjoy"},
				{ID: "e2", Text: "I felt interested and focused"},
			},
		},
		{
			Name: "Relationships",
			Items: []survey.Item{
				{ID: "r1", Text: "I felt close to others"},
				{ID: "r2", Text: "I had supportive social connections"},
			},
		},
		{
			Name: "Meaning",
			Items: []survey.Item{
				{ID: "m1", Text: "My life felt meaningful"},
				{ID: "m2", Text: "I felt that what I do matters"},
			},
		},
		{
			Name: "Accomplishment",
			Items: []survey.Item{
				{ID: "a1", Text: "I achieved things that are important to me"},
				{ID: "a2", Text: "I felt capable and competent"},
			},
		},
	}
}

// Default builds the reference PERMA catalog.
func Default() (*survey.Catalog, error) {
	return survey.NewCatalog(PERMAScale, PERMADomains()...)
}

// File is the on-disk catalog layout. JSON documents parse as well since
// the decoder is YAML.
type File struct {
	Scale   survey.Scale `yaml:"scale"`
	Domains []FileDomain `yaml:"domains"`
}

type FileDomain struct {
	Name  string     `yaml:"name"`
	Items []FileItem `yaml:"items"`
}

type FileItem struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// Load decodes a catalog definition and validates it.
func Load(r io.Reader) (*survey.Catalog, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	domains := make([]survey.Domain, 0, len(f.Domains))
	for _, d := range f.Domains {
		items := make([]survey.Item, 0, len(d.Items))
		for _, it := range d.Items {
			items = append(items, survey.Item{ID: it.ID, Text: it.Text})
		}
		domains = append(domains, survey.Domain{Name: d.Name, Items: items})
	}

	return survey.NewCatalog(f.Scale, domains...)
}

// LoadFile reads a catalog from path. An empty path yields Default.
func LoadFile(path string) (*survey.Catalog, error) {
	if path == "" {
		return Default()
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer fh.Close()

	return Load(fh)
}
