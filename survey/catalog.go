// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "fmt"

// Scale is the closed ordinal range an answer must fall in.
type Scale struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether v is a member of the scale.
func (s Scale) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Values lists every member of the scale in ascending order
func (s Scale) Values() []int {
	if s.Max < s.Min {
		return nil
	}
	values := make([]int, 0, s.Max-s.Min+1)
	for v := s.Min; v <= s.Max; v++ {
		values = append(values, v)
	}
	return values
}

// Item is a single survey question.
type Item struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Domain string `json:"domain"`
}

// Domain is a named, ordered group of items.
type Domain struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Catalog is the immutable instrument definition. The flat item sequence
// is built once in NewCatalog and is the canonical navigation order.
type Catalog struct {
	scale   Scale
	domains []Domain
	flat    []Item
	index   map[string]int
}

// NewCatalog validates the domains and flattens them in domain order, then
// item order within each domain. Item Domain fields are overwritten with the
// owning domain's name.
func NewCatalog(scale Scale, domains ...Domain) (*Catalog, error) {
	if len(domains) == 0 || scale.Max == 0 {
		return nil, ErrDegenerateMaximum
	}
	if scale.Min < 0 || scale.Max <= scale.Min {
		return nil, fmt.Errorf("%w: scale %d..%d", ErrInvalidCatalog, scale.Min, scale.Max)
	}

	c := &Catalog{
		scale: scale,
		index: make(map[string]int),
	}

	seenDomain := make(map[string]bool)
	for _, d := range domains {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: domain without a name", ErrInvalidCatalog)
		}
		if seenDomain[d.Name] {
			return nil, fmt.Errorf("%w: duplicate domain %q", ErrInvalidCatalog, d.Name)
		}
		seenDomain[d.Name] = true

		if len(d.Items) == 0 {
			return nil, fmt.Errorf("%w: domain %q has no items", ErrInvalidCatalog, d.Name)
		}

		owned := Domain{Name: d.Name, Items: make([]Item, len(d.Items))}
		for i, it := range d.Items {
			if it.ID == "" {
				return nil, fmt.Errorf("%w: item without an id in %q", ErrInvalidCatalog, d.Name)
			}
			if _, dup := c.index[it.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate item id %q", ErrInvalidCatalog, it.ID)
			}
			it.Domain = d.Name
			owned.Items[i] = it
			c.index[it.ID] = len(c.flat)
			c.flat = append(c.flat, it)
		}
		c.domains = append(c.domains, owned)
	}

	return c, nil
}

// Scale returns the answer scale.
func (c *Catalog) Scale() Scale { return c.scale }

// Len returns the number of items in the flat sequence.
func (c *Catalog) Len() int { return len(c.flat) }

// Maximum is the highest possible total: item count times scale max.
func (c *Catalog) Maximum() int { return len(c.flat) * c.scale.Max }

// Domains returns a copy of the domains in catalog order.
func (c *Catalog) Domains() []Domain {
	out := make([]Domain, len(c.domains))
	for i, d := range c.domains {
		out[i] = Domain{Name: d.Name, Items: append([]Item(nil), d.Items...)}
	}
	return out
}

// Items returns a copy of the flat sequence.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.flat...)
}

// ItemAt returns the item at position i of the flat sequence.
func (c *Catalog) ItemAt(i int) (Item, error) {
	if i < 0 || i >= len(c.flat) {
		return Item{}, fmt.Errorf("%w: position %d", ErrUnknownItem, i)
	}
	return c.flat[i], nil
}

// Lookup returns the item with the given id and its flat position.
func (c *Catalog) Lookup(id string) (Item, int, error) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, -1, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return c.flat[i], i, nil
}
