// Package quote owns the in-progress quote state and derives totals from
// the pricing engine and perk catalog.
package quote

import (
	"github.com/carrierdesk/backend-carrier/internal/catalog"
	"github.com/carrierdesk/backend-carrier/internal/pricing"
)

// MaxLines bounds how many lines a single quote may carry.
const MaxLines = 12

// LineSelection is one row of the quote: a plan reference plus the perks
// chosen for that line. An empty PlanID means the rep has not picked a plan
// for the line yet.
type LineSelection struct {
	PlanID string   `json:"planId"`
	Perks  []string `json:"perks"`
}

// LinePrice is the priced form of a selected line.
type LinePrice struct {
	Plan  string          `json:"plan"`
	Price pricing.Dollars `json:"price"`
	Perks []string        `json:"perks"`
}

// Result is the computed quote handed back to presentation layers.
type Result struct {
	LinePrices    []LinePrice       `json:"linePrices"`
	Total         pricing.Dollars   `json:"total"`
	HasDiscount   bool              `json:"hasDiscount"`
	SelectedPerks []string          `json:"selectedPerks"`
	AnnualSavings pricing.Dollars   `json:"annualSavings"`
	Breakdown     pricing.Breakdown `json:"breakdown"`
}

// Quote aggregates line selections for one rep session. It performs no I/O
// and is not safe for concurrent use; each UI session owns its own Quote.
type Quote struct {
	lines []LineSelection
}

// New returns a quote seeded with a single empty line.
func New() *Quote {
	return &Quote{lines: []LineSelection{{}}}
}

// Lines returns a copy of the current line selections.
func (q *Quote) Lines() []LineSelection {
	out := make([]LineSelection, len(q.lines))
	copy(out, q.lines)
	return out
}

// LineCount reports how many lines the quote holds, selected or not.
func (q *Quote) LineCount() int {
	return len(q.lines)
}

// AddLine appends an empty line. At MaxLines the call is a no-op and
// reports false.
func (q *Quote) AddLine() bool {
	if len(q.lines) >= MaxLines {
		return false
	}
	q.lines = append(q.lines, LineSelection{})
	return true
}

// RemoveLine drops the line at index. Out-of-range indexes are ignored; the
// aggregator enforces no lower bound, leaving "keep at least one line" to
// the UI.
func (q *Quote) RemoveLine(index int) {
	if index < 0 || index >= len(q.lines) {
		return
	}
	q.lines = append(q.lines[:index], q.lines[index+1:]...)
}

// UpdateLinePlan replaces the plan reference for one line. Perks on the
// line are left untouched even if the new plan would invalidate them.
func (q *Quote) UpdateLinePlan(index int, planID string) {
	if index < 0 || index >= len(q.lines) {
		return
	}
	q.lines[index].PlanID = planID
}

// UpdateLinePerks replaces the perk set for one line wholesale. Callers are
// expected to have filtered the set through perks.IsSelectionValid; no
// re-validation happens here.
func (q *Quote) UpdateLinePerks(index int, perkIDs []string) {
	if index < 0 || index >= len(q.lines) {
		return
	}
	q.lines[index].Perks = append([]string(nil), perkIDs...)
}

// Reset returns the quote to a single empty line.
func (q *Quote) Reset() {
	q.lines = []LineSelection{{}}
}

// AllSelectedPerks flattens the perk ids across every line, selected or not.
func (q *Quote) AllSelectedPerks() []string {
	var all []string
	for _, line := range q.lines {
		all = append(all, line.Perks...)
	}
	return all
}

// Compute derives the quote from the given catalog snapshot. Lines without
// a plan (or whose plan is missing from the snapshot) are excluded
// entirely; when nothing is selected the result is nil. The breakdown uses
// the first selected line's resolved price as the representative base for
// every line, mirroring the single-price assumption in the tier table.
func (q *Quote) Compute(plans []catalog.Plan, streamingCost pricing.Dollars) *Result {
	type selected struct {
		plan  catalog.Plan
		perks []string
	}
	var sel []selected
	for _, line := range q.lines {
		if line.PlanID == "" {
			continue
		}
		plan, ok := catalog.PlanByID(plans, line.PlanID)
		if !ok {
			continue
		}
		sel = append(sel, selected{plan: plan, perks: line.Perks})
	}
	if len(sel) == 0 {
		return nil
	}

	totalLines := len(sel)
	totalPerks := 0
	linePrices := make([]LinePrice, 0, totalLines)
	for _, s := range sel {
		base := pricing.ResolvePriceByName(s.plan.Name, totalLines)
		perksPrice := pricing.PerkPrice * pricing.Dollars(len(s.perks))
		totalPerks += len(s.perks)
		linePrices = append(linePrices, LinePrice{
			Plan:  s.plan.Name,
			Price: base + perksPrice,
			Perks: append([]string(nil), s.perks...),
		})
	}

	baseLinePrice := pricing.ResolvePriceByName(sel[0].plan.Name, totalLines)
	breakdown := pricing.ComputeBreakdown(baseLinePrice, totalLines, totalPerks, streamingCost)

	return &Result{
		LinePrices:    linePrices,
		Total:         breakdown.Total,
		HasDiscount:   breakdown.Discount > 0,
		SelectedPerks: q.AllSelectedPerks(),
		AnnualSavings: breakdown.AnnualSavings,
		Breakdown:     breakdown,
	}
}

// ComputeFromSelections builds a one-shot quote from raw selections. It is
// the stateless entry point used by the HTTP layer.
func ComputeFromSelections(lines []LineSelection, plans []catalog.Plan, streamingCost pricing.Dollars) *Result {
	q := &Quote{lines: append([]LineSelection(nil), lines...)}
	return q.Compute(plans, streamingCost)
}
