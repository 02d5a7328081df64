// Package analysis compares a customer's current bill against the plan
// catalog and reports the potential savings of switching.
package analysis

import (
	"github.com/carrierdesk/backend-carrier/internal/catalog"
	"github.com/carrierdesk/backend-carrier/internal/pricing"
)

// Bill is the already-structured summary of a customer's current bill.
type Bill struct {
	MonthlyTotal  pricing.Dollars `json:"monthlyTotal"`
	LineCount     int             `json:"lineCount"`
	StreamingCost pricing.Dollars `json:"streamingCost"`
}

// Option is one catalog plan evaluated against the bill.
type Option struct {
	PlanID        string          `json:"planId"`
	PlanName      string          `json:"planName"`
	LinePrice     pricing.Dollars `json:"linePrice"`
	MonthlyTotal  pricing.Dollars `json:"monthlyTotal"`
	AnnualSavings pricing.Dollars `json:"annualSavings"`
}

// Comparison holds every evaluated option plus the best one with its
// full savings breakdown.
type Comparison struct {
	Options   []Option           `json:"options"`
	Best      *Option            `json:"best,omitempty"`
	Breakdown *pricing.Breakdown `json:"breakdown,omitempty"`
}

// CompareBill evaluates the bill against every plan whose family the pricing
// engine recognizes. Plans with unknown names are skipped. A bill with no
// lines yields an empty comparison rather than an error.
func CompareBill(bill Bill, plans []catalog.Plan) Comparison {
	if bill.LineCount <= 0 {
		return Comparison{Options: []Option{}}
	}

	options := make([]Option, 0, len(plans))
	best := -1
	for _, plan := range plans {
		family := pricing.ParseFamily(plan.Name)
		if family == pricing.FamilyUnknown {
			continue
		}
		linePrice := pricing.ResolvePrice(family, bill.LineCount)
		monthly := linePrice * pricing.Dollars(bill.LineCount)
		savings := (bill.MonthlyTotal - monthly) * 12
		if savings < 0 {
			savings = 0
		}
		options = append(options, Option{
			PlanID:        plan.ID,
			PlanName:      plan.Name,
			LinePrice:     linePrice,
			MonthlyTotal:  monthly,
			AnnualSavings: savings,
		})
		if best < 0 || savings > options[best].AnnualSavings {
			best = len(options) - 1
		}
	}

	cmp := Comparison{Options: options}
	if best >= 0 {
		opt := options[best]
		breakdown := pricing.ComputeBreakdown(opt.LinePrice, bill.LineCount, 0, bill.StreamingCost)
		cmp.Best = &opt
		cmp.Breakdown = &breakdown
	}
	return cmp
}
