package pricing

import "testing"

func TestResolvePriceTiers(t *testing.T) {
	cases := []struct {
		name  string
		plan  string
		lines int
		want  Dollars
	}{
		{"ultimate single line", "ultimate unlimited", 1, 90},
		{"ultimate three lines", "ultimate unlimited", 3, 65},
		{"plus two lines", "plus plan", 2, 70},
		{"plus five lines", "plus plan", 5, 42},
		{"welcome four lines", "welcome", 4, 30},
		{"welcome six lines", "welcome unlimited", 6, 27},
		{"welcome ten lines", "welcome unlimited", 10, 27},
		{"unknown plan", "unknown plan", 1, 0},
		{"empty name", "", 3, 0},
		{"zero lines", "ultimate", 0, 0},
		{"negative lines", "plus", -2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolvePriceByName(tc.plan, tc.lines); got != tc.want {
				t.Fatalf("ResolvePriceByName(%q, %d) = %v, want %v", tc.plan, tc.lines, got, tc.want)
			}
		})
	}
}

func TestResolvePriceClampsAtFiveLines(t *testing.T) {
	for _, fam := range []Family{FamilyUltimate, FamilyPlus, FamilyWelcome} {
		base := ResolvePrice(fam, 5)
		for lines := 6; lines <= 12; lines++ {
			if got := ResolvePrice(fam, lines); got != base {
				t.Fatalf("family %s at %d lines = %v, want %v", fam, lines, got, base)
			}
		}
	}
}

func TestParseFamilyPrecedence(t *testing.T) {
	// "ultimate" is tested before "plus"; a name carrying both resolves to ultimate.
	if got := ResolvePriceByName("Unlimited Ultimate Plus", 1); got != 90 {
		t.Fatalf("expected ultimate precedence price 90, got %v", got)
	}
	if ParseFamily("Unlimited Plus") != FamilyPlus {
		t.Fatal("expected plus family for Unlimited Plus")
	}
}

func TestParseFamilyCaseInsensitive(t *testing.T) {
	if ResolvePriceByName("ULTIMATE", 1) != ResolvePriceByName("ultimate", 1) {
		t.Fatal("family matching should ignore case")
	}
	if got := ResolvePriceByName("ULTIMATE", 1); got != 90 {
		t.Fatalf("expected 90, got %v", got)
	}
	if got := ResolvePriceByName("Plus", 1); got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}
}

func TestComputeBreakdownSingleLine(t *testing.T) {
	b := ComputeBreakdown(90, 1, 0, 0)
	if b.Subtotal != 100 {
		t.Fatalf("subtotal = %v, want 100", b.Subtotal)
	}
	if b.Total != 90 {
		t.Fatalf("total = %v, want 90", b.Total)
	}
	if b.Discount != 10 {
		t.Fatalf("discount = %v, want 10", b.Discount)
	}
	if b.AnnualSavings != 120 {
		t.Fatalf("annualSavings = %v, want 120", b.AnnualSavings)
	}
}

func TestComputeBreakdownMultiLineWithPerks(t *testing.T) {
	b := ComputeBreakdown(65, 3, 6, 20)
	if b.Subtotal != 285 {
		t.Fatalf("subtotal = %v, want 285", b.Subtotal)
	}
	if b.Total != 255 {
		t.Fatalf("total = %v, want 255", b.Total)
	}
	if b.Discount != 30 {
		t.Fatalf("discount = %v, want 30", b.Discount)
	}
	if b.AnnualSavings != 1320 {
		t.Fatalf("annualSavings = %v, want 1320", b.AnnualSavings)
	}
}

func TestComputeBreakdownZeroStreaming(t *testing.T) {
	b := ComputeBreakdown(80, 2, 2, 0)
	if b.StreamingSavings != 0 {
		t.Fatalf("streamingSavings = %v, want 0", b.StreamingSavings)
	}
	if b.AnnualSavings != 600 {
		t.Fatalf("annualSavings = %v, want 600", b.AnnualSavings)
	}
}

func TestBreakdownDiscountIdentity(t *testing.T) {
	for lines := 1; lines <= 12; lines++ {
		for _, perks := range []int{0, 1, 4, 9} {
			b := ComputeBreakdown(52, lines, perks, 15)
			if b.Discount != b.Subtotal-b.Total {
				t.Fatalf("discount %v != subtotal-total %v", b.Discount, b.Subtotal-b.Total)
			}
			if want := AutopayDiscount * Dollars(lines); b.Discount != want {
				t.Fatalf("discount = %v, want %v", b.Discount, want)
			}
		}
	}
}
