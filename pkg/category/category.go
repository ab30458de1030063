// Package category maps free-text country names to eBay stamp category
// selections. Resolution is a pure function over a static, ordered pattern
// table; there is no network access and no state.
package category

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PostcardCategoryID is the fixed eBay category used for postcard listings.
// Postcards are not filed under the per-country stamp hierarchy.
const PostcardCategoryID = 914

// Selection is the result of resolving a country string. A zero Selection
// means the text was not recognized at all.
type Selection struct {
	// RegionCode is the two-letter region code, empty when unrecognized.
	RegionCode string `json:"region_code,omitempty"`
	// CountryLabel is the canonical country name. Empty with a non-empty
	// RegionCode means the caller must collect additional input (era,
	// grade, monarch) before a leaf category exists.
	CountryLabel string `json:"country_label,omitempty"`
	// CategoryID is the numeric leaf category id, zero when absent.
	CategoryID int `json:"category_id,omitempty"`
}

// Resolved reports whether the selection carries a submittable leaf category.
func (s Selection) Resolved() bool {
	return s.CategoryID != 0
}

// NeedsInput reports whether the country was recognized but requires
// further disambiguation from the caller (United States, Canada, and
// Great Britain have sub-grades that pick the leaf).
func (s Selection) NeedsInput() bool {
	return s.RegionCode != "" && s.CategoryID == 0
}

// Resolve matches country text against the static table and returns the
// category selection. Matching is first-match-wins over the table order,
// so pattern priority is encoded by position (CEYLON hits Sri Lanka before
// any generic Asia fallback). Unrecognized text returns the zero Selection.
func Resolve(countryText string) Selection {
	text := Normalize(countryText)
	if text == "" {
		return Selection{}
	}

	for _, e := range normalizedTable() {
		for _, p := range e.patterns {
			if strings.Contains(text, p) {
				return Selection{
					RegionCode:   e.region,
					CountryLabel: e.label,
					CategoryID:   e.categoryID,
				}
			}
		}
	}

	return Selection{}
}

// normalizedTable returns the country table with every pattern passed
// through Normalize, so native-script aliases with combining marks match
// normalized input.
var normalizedTable = sync.OnceValue(func() []entry {
	out := make([]entry, len(countryTable))
	for i, e := range countryTable {
		ne := e
		ne.patterns = make([]string, len(e.patterns))
		for j, p := range e.patterns {
			ne.patterns[j] = Normalize(p)
		}
		out[i] = ne
	}
	return out
})

// Normalize uppercases, trims, and strips diacritics so that inputs like
// "ROMÂNIA" or "Türkiye" match their plain-ASCII patterns. Non-Latin
// scripts pass through unchanged; the table carries native-script aliases
// for those.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(strings.TrimSpace(folded))
}
