// Package catalog supplies the plan and promotion records consumed by the
// quote, analysis, and presentation layers. Access goes through the
// Repository interface so callers never touch a process-wide singleton;
// caching and request de-duplication are layered on as a decorator.
package catalog

import "context"

// PlanType distinguishes consumer from business plans.
type PlanType string

const (
	// PlanTypeConsumer marks retail plans.
	PlanTypeConsumer PlanType = "consumer"
	// PlanTypeBusiness marks business plans.
	PlanTypeBusiness PlanType = "business"
)

// DataAllowance describes a plan's data terms.
type DataAllowance struct {
	Premium string  `json:"premium"`
	Hotspot float64 `json:"hotspot,omitempty"`
}

// Plan is one catalog pricing record. PricePerLine keys are line counts
// 1..5; the quote engine derives prices from the plan name's family
// instead, so these columns serve presentation only.
type Plan struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          PlanType        `json:"type"`
	PricePerLine  map[int]float64 `json:"pricePerLine"`
	DataAllowance DataAllowance   `json:"dataAllowance"`
	Features      []string        `json:"features,omitempty"`
}

// Promotion is a current sales promotion shown to reps.
type Promotion struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	StartDate   string   `json:"startDate"`
	KeyPoints   []string `json:"keyPoints"`
	Eligibility []string `json:"eligibility"`
	PartnerType string   `json:"partnerType"`
	PromoType   string   `json:"promoType"`
}

// Repository reads the plan and promotion catalogs. Implementations must
// return data consistent for the duration of one call; no staleness
// guarantee beyond that is offered.
type Repository interface {
	Plans(ctx context.Context) ([]Plan, error)
	Promotions(ctx context.Context) ([]Promotion, error)
}

// PlanByID returns the plan with the given identifier from a snapshot.
func PlanByID(plans []Plan, id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
