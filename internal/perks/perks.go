// Package perks holds the add-on catalog and the cross-line selection rules
// used by the quote calculator.
package perks

// Category groups perks for selection rules and presentation.
type Category string

const (
	// CategoryEntertainment perks are exclusive across all lines of a quote.
	CategoryEntertainment Category = "entertainment"
	// CategoryService perks can be added to any number of lines.
	CategoryService Category = "service"
	// CategoryOther covers perks outside the two main groups.
	CategoryOther Category = "other"
)

// Definition describes a selectable add-on.
type Definition struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
}

// Catalog lists every perk offered with the current plan lineup. All perks
// are flat-priced at $10/mo.
var Catalog = []Definition{
	{ID: "apple_music", Label: "Apple Music", Category: CategoryEntertainment, Price: 10},
	{ID: "apple_one", Label: "Apple One", Category: CategoryEntertainment, Price: 10},
	{ID: "disney", Label: "Disney Bundle", Category: CategoryEntertainment, Price: 10},
	{ID: "google", Label: "Google One", Category: CategoryService, Price: 10},
	{ID: "netflix", Label: "Netflix & Max (with Ads)", Category: CategoryEntertainment, Price: 10},
	{ID: "cloud", Label: "Cloud", Category: CategoryService, Price: 10},
	{ID: "youtube", Label: "YouTube", Category: CategoryEntertainment, Price: 10},
	{ID: "hotspot", Label: "Hotspot", Category: CategoryService, Price: 10},
	{ID: "travelpass", Label: "TravelPass", Category: CategoryService, Price: 10},
}

// exclusivePerks is the fixed set of perks capped at one active instance
// across a whole quote. Note apple_one is catalogued as entertainment but
// is not part of the exclusivity set.
var exclusivePerks = map[string]struct{}{
	"disney":      {},
	"netflix":     {},
	"apple_music": {},
	"youtube":     {},
}

// ByID looks up a perk definition by identifier.
func ByID(id string) (Definition, bool) {
	for _, p := range Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Definition{}, false
}

// IsExclusive reports whether a perk may be active on at most one line.
func IsExclusive(id string) bool {
	_, ok := exclusivePerks[id]
	return ok
}

// IsSelectionValid reports whether candidate may be added to the line whose
// current perks are currentLine, given every perk already selected across
// the quote. allSelected is expected to include the current line's own
// perks, so re-confirming a perk the line already holds stays valid.
func IsSelectionValid(allSelected, currentLine []string, candidate string) bool {
	if !IsExclusive(candidate) || contains(currentLine, candidate) {
		return true
	}
	return !contains(allSelected, candidate)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
