package pricing

import "strings"

// Dollars represents a monetary value in whole USD, unformatted.
type Dollars = float64

// AutopayDiscount is the flat per-line reduction applied when autopay is on.
const AutopayDiscount Dollars = 10

// PerkPrice is the flat monthly price charged for every add-on perk.
const PerkPrice Dollars = 10

// tierCeiling caps line-count tiers at "5 or more" pricing.
const tierCeiling = 5

// Family identifies the pricing-tier family a plan belongs to.
type Family int

const (
	// FamilyUnknown marks plans outside every known family; they price at 0.
	FamilyUnknown Family = iota
	// FamilyUltimate is the top tier.
	FamilyUltimate
	// FamilyPlus is the middle tier.
	FamilyPlus
	// FamilyWelcome is the entry tier.
	FamilyWelcome
)

// String returns the lowercase family token.
func (f Family) String() string {
	switch f {
	case FamilyUltimate:
		return "ultimate"
	case FamilyPlus:
		return "plus"
	case FamilyWelcome:
		return "welcome"
	default:
		return "unknown"
	}
}

// perLineByTier maps a family to its per-line price for tiers 1..5+.
var perLineByTier = map[Family][tierCeiling]Dollars{
	FamilyUltimate: {90, 80, 65, 55, 52},
	FamilyPlus:     {80, 70, 55, 45, 42},
	FamilyWelcome:  {65, 55, 40, 30, 27},
}

// ParseFamily resolves a plan name to its pricing family. Matching is
// case-insensitive substring containment; a name holding more than one
// token resolves to the first in ultimate, plus, welcome order.
func ParseFamily(planName string) Family {
	name := strings.ToLower(planName)
	switch {
	case strings.Contains(name, "ultimate"):
		return FamilyUltimate
	case strings.Contains(name, "plus"):
		return FamilyPlus
	case strings.Contains(name, "welcome"):
		return FamilyWelcome
	default:
		return FamilyUnknown
	}
}

// ResolvePrice returns the per-line monthly price for a family when the
// quote carries lineCount lines. Line counts past 5 use "5 or more"
// pricing. Unknown families and non-positive counts yield 0.
func ResolvePrice(family Family, lineCount int) Dollars {
	if lineCount <= 0 {
		return 0
	}
	tiers, ok := perLineByTier[family]
	if !ok {
		return 0
	}
	tier := lineCount
	if tier > tierCeiling {
		tier = tierCeiling
	}
	return tiers[tier-1]
}

// ResolvePriceByName prices a line directly from the plan name.
func ResolvePriceByName(planName string, lineCount int) Dollars {
	if planName == "" {
		return 0
	}
	return ResolvePrice(ParseFamily(planName), lineCount)
}

// Breakdown summarises the with/without-autopay cost split for a quote.
type Breakdown struct {
	Subtotal         Dollars `json:"subtotal"`
	Discount         Dollars `json:"discount"`
	Total            Dollars `json:"total"`
	StreamingSavings Dollars `json:"streamingSavings"`
	AnnualSavings    Dollars `json:"annualSavings"`
}

// ComputeBreakdown derives the savings breakdown for a quote priced at
// baseLinePrice per line. Subtotal is the without-autopay figure, total the
// with-autopay one; discount == subtotal - total always holds. Negative
// inputs are not rejected and propagate arithmetically.
func ComputeBreakdown(baseLinePrice Dollars, lineCount, perkCount int, streamingCost Dollars) Breakdown {
	perksValue := Dollars(perkCount) * PerkPrice
	subtotal := baseLinePrice*Dollars(lineCount) + AutopayDiscount*Dollars(lineCount) + perksValue
	total := baseLinePrice*Dollars(lineCount) + perksValue
	discount := subtotal - total
	annual := (streamingCost + perksValue + discount) * 12
	return Breakdown{
		Subtotal:         subtotal,
		Discount:         discount,
		Total:            total,
		StreamingSavings: streamingCost,
		AnnualSavings:    annual,
	}
}
