package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"skillio/internal/domain/entity"
)

// Catalog is the seed data for a fresh deployment plus the owner's direct cleaning menu.
type Catalog struct {
	Services  []*entity.Service     `yaml:"services"`
	Profile   *entity.UserProfile   `yaml:"-"`
	Tiers     []entity.CleaningTier `yaml:"tiers"`
	AddOns    []entity.AddOn        `yaml:"addOns"`
	TimeSlots []string              `yaml:"timeSlots"`
}

// Load reads a YAML catalog from path. An empty path returns the built-in defaults,
// and sections missing from the file keep their defaults.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := Default()
	if file.Services != nil {
		c.Services = file.Services
	}
	if file.Tiers != nil {
		c.Tiers = file.Tiers
	}
	if file.AddOns != nil {
		c.AddOns = file.AddOns
	}
	if file.TimeSlots != nil {
		c.TimeSlots = file.TimeSlots
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool)
	for _, s := range c.Services {
		if s.ID == "" || seen[s.ID] {
			return fmt.Errorf("catalog: service ids must be unique and non-empty (%q)", s.ID)
		}
		seen[s.ID] = true
		if !s.Category.Valid() {
			return fmt.Errorf("catalog: service %s has unknown category %q", s.ID, s.Category)
		}
	}
	for _, t := range c.Tiers {
		if t.Price < 0 {
			return fmt.Errorf("catalog: tier %s has a negative price", t.ID)
		}
	}
	for _, a := range c.AddOns {
		if a.Price < 0 {
			return fmt.Errorf("catalog: add-on %s has a negative price", a.ID)
		}
	}
	return nil
}

func (c *Catalog) Tier(id string) (*entity.CleaningTier, bool) {
	for i := range c.Tiers {
		if c.Tiers[i].ID == id {
			return &c.Tiers[i], true
		}
	}
	return nil, false
}

// SelectAddOns resolves ids in the order given, ignoring duplicates. Unknown ids are reported.
func (c *Catalog) SelectAddOns(ids []string) ([]entity.AddOn, error) {
	selected := make([]entity.AddOn, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		found := false
		for _, a := range c.AddOns {
			if a.ID == id {
				selected = append(selected, a)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown add-on %q", id)
		}
	}
	return selected, nil
}
