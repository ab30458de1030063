// Package condition maps free-text philatelic grades to the marketplace
// condition code.
//
// This mapping is a business-rule workaround, not a taxonomy: eBay's
// fine-grained stamp condition ids trigger validation errors for
// cross-border sellers, so every recognized grade deliberately collapses
// to the single USED code. Keep the collapse centralized here; spreading
// per-grade condition ids through the builder reintroduces the listing
// failures this exists to avoid.
package condition

import "strings"

// Code is the marketplace condition code attached to a listing.
type Code string

// Condition codes.
const (
	// CodeUsed is the only condition submitted for recognized grades.
	CodeUsed Code = "USED"
	// CodeUnspecified is returned for unrecognized input. No guess is
	// made; the caller decides whether to proceed without a condition.
	CodeUnspecified Code = "UNSPECIFIED"
)

// usedConditionID is the eBay numeric condition id the USED code maps to
// on the wire.
const usedConditionID = 3000

// knownGrades is the recognized grade vocabulary. Values are all CodeUsed
// on purpose; see the package comment before adding finer-grained codes.
var knownGrades = map[string]Code{
	"mnh":                 CodeUsed, // mint never hinged
	"mint never hinged":   CodeUsed,
	"mh":                  CodeUsed, // mint hinged
	"mint hinged":         CodeUsed,
	"mlh":                 CodeUsed, // mint lightly hinged
	"mint lightly hinged": CodeUsed,
	"mint":                CodeUsed,
	"mng":                 CodeUsed, // mint no gum
	"mint no gum":         CodeUsed,
	"used":                CodeUsed,
	"unused":              CodeUsed,
	"new":                 CodeUsed,
	"fine":                CodeUsed,
	"very fine":           CodeUsed,
	"good":                CodeUsed,
	"very good":           CodeUsed,
	"excellent":           CodeUsed,
	"postally used":       CodeUsed,
	"cto":                 CodeUsed, // cancelled to order
	"cancelled to order":  CodeUsed,
	"og":                  CodeUsed, // original gum
	"original gum":        CodeUsed,
	"no gum":              CodeUsed,
	"hinged":              CodeUsed,
	"unhinged":            CodeUsed,
}

// Map returns the condition code for a free-text grade. Matching is
// case-insensitive on the trimmed input; unrecognized grades map to
// CodeUnspecified rather than guessing.
func Map(gradeText string) Code {
	grade := strings.ToLower(strings.TrimSpace(gradeText))
	if grade == "" {
		return CodeUnspecified
	}

	if c, ok := knownGrades[grade]; ok {
		return c
	}

	return CodeUnspecified
}

// ConditionID returns the numeric eBay condition id for the code and
// whether one should be emitted at all. Unspecified conditions omit the
// node entirely.
func (c Code) ConditionID() (int, bool) {
	if c == CodeUsed {
		return usedConditionID, true
	}
	return 0, false
}
