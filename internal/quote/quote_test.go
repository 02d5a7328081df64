package quote

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carrierdesk/backend-carrier/internal/catalog"
)

func testPlans() []catalog.Plan {
	return []catalog.Plan{
		{ID: "unlimited-ultimate", Name: "Unlimited Ultimate", Type: catalog.PlanTypeConsumer},
		{ID: "unlimited-plus", Name: "Unlimited Plus", Type: catalog.PlanTypeConsumer},
		{ID: "unlimited-welcome", Name: "Unlimited Welcome", Type: catalog.PlanTypeConsumer},
	}
}

func TestComputeNoSelection(t *testing.T) {
	q := New()
	require.Nil(t, q.Compute(testPlans(), 25), "empty quote should yield no result")

	// A line exists but no plan is chosen for it.
	q.UpdateLinePerks(0, []string{"disney"})
	require.Nil(t, q.Compute(testPlans(), 25), "unselected line should be ignored entirely")
}

func TestComputeUnknownPlanIgnored(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "no-such-plan")
	require.Nil(t, q.Compute(testPlans(), 0))
}

func TestComputeSingleLine(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "unlimited-ultimate")
	res := q.Compute(testPlans(), 0)
	require.NotNil(t, res)
	require.Len(t, res.LinePrices, 1)
	require.Equal(t, float64(90), res.LinePrices[0].Price)
	require.Equal(t, float64(90), res.Total)
	require.Equal(t, float64(100), res.Breakdown.Subtotal)
	require.Equal(t, float64(10), res.Breakdown.Discount)
	require.True(t, res.HasDiscount)
	require.Equal(t, float64(120), res.AnnualSavings)
}

func TestComputePerksPricedPerLine(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "unlimited-plus")
	q.UpdateLinePerks(0, []string{"disney", "hotspot"})
	res := q.Compute(testPlans(), 0)
	require.NotNil(t, res)
	// One line of Plus at tier 1 is 80, plus two $10 perks.
	require.Equal(t, float64(100), res.LinePrices[0].Price)
	require.Equal(t, float64(100), res.Total)
	require.ElementsMatch(t, []string{"disney", "hotspot"}, res.SelectedPerks)
}

func TestComputeTierFollowsSelectedCount(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "unlimited-welcome")
	q.AddLine()
	q.AddLine()
	q.UpdateLinePlan(1, "unlimited-welcome")
	q.UpdateLinePlan(2, "unlimited-welcome")
	res := q.Compute(testPlans(), 0)
	require.NotNil(t, res)
	require.Len(t, res.LinePrices, 3)
	for _, lp := range res.LinePrices {
		require.Equal(t, float64(40), lp.Price, "welcome at 3 lines is 40/line")
	}
	require.Equal(t, float64(120), res.Total)
}

func TestComputeExcludesEmptyLinesFromTier(t *testing.T) {
	// Two lines exist but only one carries a plan: tier pricing must treat
	// the quote as a single-line quote.
	q := New()
	q.UpdateLinePlan(0, "unlimited-ultimate")
	q.AddLine()
	res := q.Compute(testPlans(), 0)
	require.NotNil(t, res)
	require.Len(t, res.LinePrices, 1)
	require.Equal(t, float64(90), res.LinePrices[0].Price)
}

func TestComputeMixedFamiliesUsesFirstLineBase(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "unlimited-ultimate")
	q.AddLine()
	q.UpdateLinePlan(1, "unlimited-welcome")
	res := q.Compute(testPlans(), 0)
	require.NotNil(t, res)
	// Each line prices from its own family at the 2-line tier.
	require.Equal(t, float64(80), res.LinePrices[0].Price)
	require.Equal(t, float64(55), res.LinePrices[1].Price)
	// The breakdown uses the first line's base for both lines.
	require.Equal(t, float64(80*2), res.Breakdown.Total)
	require.Equal(t, float64(20), res.Breakdown.Discount)
}

func TestComputeSeedBreakdown(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "unlimited-welcome")
	q.AddLine()
	q.AddLine()
	q.UpdateLinePlan(1, "unlimited-welcome")
	q.UpdateLinePlan(2, "unlimited-welcome")
	q.UpdateLinePerks(0, []string{"disney", "netflix"})
	q.UpdateLinePerks(1, []string{"apple_music", "youtube"})
	q.UpdateLinePerks(2, []string{"hotspot", "cloud"})
	res := q.Compute(testPlans(), 20)
	require.NotNil(t, res)
	// Welcome at 3 lines is 40/line; 6 perks at $10 across the quote.
	require.Equal(t, float64(40*3+60), res.Total)
	require.Equal(t, float64(40*3+30+60), res.Breakdown.Subtotal)
	require.Equal(t, float64(30), res.Breakdown.Discount)
	require.Equal(t, float64((20+60+30)*12), res.AnnualSavings)
	require.Equal(t, float64(20), res.Breakdown.StreamingSavings)
}

func TestAddLineBound(t *testing.T) {
	q := New()
	for i := 0; i < MaxLines+5; i++ {
		q.AddLine()
	}
	require.Equal(t, MaxLines, q.LineCount())
	require.False(t, q.AddLine())
	require.Equal(t, MaxLines, q.LineCount())
}

func TestRemoveLine(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "unlimited-plus")
	q.AddLine()
	q.UpdateLinePlan(1, "unlimited-welcome")
	q.RemoveLine(0)
	require.Equal(t, 1, q.LineCount())
	require.Equal(t, "unlimited-welcome", q.Lines()[0].PlanID)

	// Out-of-range indexes are ignored.
	q.RemoveLine(5)
	q.RemoveLine(-1)
	require.Equal(t, 1, q.LineCount())
}

func TestUpdatePlanKeepsPerks(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "unlimited-ultimate")
	q.UpdateLinePerks(0, []string{"disney"})
	q.UpdateLinePlan(0, "unlimited-welcome")
	require.Equal(t, []string{"disney"}, q.Lines()[0].Perks)
}

func TestReset(t *testing.T) {
	q := New()
	q.UpdateLinePlan(0, "unlimited-plus")
	q.AddLine()
	q.Reset()
	require.Equal(t, 1, q.LineCount())
	require.Empty(t, q.Lines()[0].PlanID)
	require.Empty(t, q.Lines()[0].Perks)
}

func TestComputeFromSelections(t *testing.T) {
	res := ComputeFromSelections([]LineSelection{
		{PlanID: "unlimited-plus", Perks: []string{"netflix"}},
		{PlanID: "unlimited-plus"},
	}, testPlans(), 15)
	require.NotNil(t, res)
	require.Equal(t, float64(70+10+70), res.Total)
	require.Nil(t, ComputeFromSelections(nil, testPlans(), 15))
	require.Nil(t, ComputeFromSelections([]LineSelection{{PlanID: ""}}, testPlans(), 15))
}
