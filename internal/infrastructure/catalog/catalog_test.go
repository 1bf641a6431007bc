package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Len(t, c.Services, 2)
	assert.Len(t, c.Tiers, 3)
	assert.Len(t, c.AddOns, 5)
	assert.Equal(t, "09:00", c.TimeSlots[0])
	assert.Equal(t, "17:00", c.TimeSlots[len(c.TimeSlots)-1])

	full, ok := c.Tier("full")
	require.True(t, ok)
	assert.Equal(t, int64(2500), full.Price)
}

func TestLoad_FileOverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tiers:
  - id: deep
    title: Deep Clean
    price: 3000
    desc: Everything, twice.
timeSlots: ["08:00", "10:00"]
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	require.Len(t, c.Tiers, 1)
	assert.Equal(t, "Everything, twice.", c.Tiers[0].Description)
	assert.Equal(t, []string{"08:00", "10:00"}, c.TimeSlots)
	assert.Len(t, c.AddOns, 5, "untouched sections keep defaults")
}

func TestParse_RejectsUnknownCategory(t *testing.T) {
	_, err := Parse([]byte(`
services:
  - id: x
    title: Mystery
    category: Astrology
`))
	assert.Error(t, err)
}

func TestSelectAddOns(t *testing.T) {
	c := Default()

	picked, err := c.SelectAddOns([]string{"car", "yard", "car"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "Car Washing", picked[0].Name)

	_, err = c.SelectAddOns([]string{"pool"})
	assert.Error(t, err)

	none, err := c.SelectAddOns(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
