package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The resolver trusts the table at runtime; consistency is enforced here
// instead. Every category id a table entry can return must be a leaf:
// parent (region) categories are rejected by eBay for new listings.
func TestCountryTable_LeafOnly(t *testing.T) {
	t.Parallel()

	parents := map[int]bool{rootCategoryID: true}
	for _, id := range regionCategoryIDs {
		parents[id] = true
	}

	for _, e := range countryTable {
		if e.categoryID == 0 {
			continue
		}
		assert.Falsef(t, parents[e.categoryID],
			"entry %q returns parent category %d", e.label, e.categoryID)
	}
}

func TestCountryTable_Consistency(t *testing.T) {
	t.Parallel()

	seenIDs := map[int]string{}

	for _, e := range countryTable {
		require.NotEmptyf(t, e.patterns, "entry %q has no patterns", e.label)
		_, knownRegion := regionCategoryIDs[e.region]
		assert.Truef(t, knownRegion, "entry %q has unknown region %q", e.label, e.region)

		for _, p := range e.patterns {
			assert.NotEmptyf(t, p, "entry %q has an empty pattern", e.label)
		}

		if e.categoryID != 0 {
			assert.NotEmptyf(t, e.label, "entry with category %d has no label", e.categoryID)
			prev, dup := seenIDs[e.categoryID]
			assert.Falsef(t, dup, "category %d assigned to both %q and %q", e.categoryID, prev, e.label)
			seenIDs[e.categoryID] = e.label
			continue
		}

		// Region-only entries are exactly the sub-graded countries.
		assert.Emptyf(t, e.label, "region-only entry %q must not carry a label", e.label)
		assert.Containsf(t, []string{RegionUS, RegionCanada, RegionGB}, e.region,
			"region-only entry with patterns %v must be US, CA, or GB", e.patterns)
	}
}

// Pattern order is behavior: earlier entries must not be shadowed by a
// broader pattern appearing before them.
func TestCountryTable_PriorityPairs(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		input     string
		wantLabel string
	}{
		{"CEYLON", "Sri Lanka"},
		{"ROMANIA", "Romania"},           // not Oman via OMAN substring
		{"SOUTH AFRICA", "South Africa"}, // not the Africa fallback
		{"NORTH KOREA", "North Korea"},   // not South Korea
		{"PAPUA NEW GUINEA", "Papua New Guinea"},
		{"SOLOMON ISLANDS", "Solomon Islands"}, // not Iceland
	}

	for _, p := range pairs {
		sel := Resolve(p.input)
		assert.Equalf(t, p.wantLabel, sel.CountryLabel, "input %q", p.input)
	}
}
