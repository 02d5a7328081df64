package analysis

import (
	"context"
	"fmt"

	"github.com/carrierdesk/backend-carrier/internal/catalog"
	"github.com/carrierdesk/backend-carrier/internal/obs"
)

// Service loads the plan catalog and runs bill comparisons against it.
type Service struct {
	Repo catalog.Repository
}

// Compare evaluates the bill against the current catalog.
func (s *Service) Compare(ctx context.Context, bill Bill) (Comparison, error) {
	plans, err := s.Repo.Plans(ctx)
	if err != nil {
		return Comparison{}, fmt.Errorf("load plans: %w", err)
	}
	cmp := CompareBill(bill, plans)
	if cmp.Best != nil {
		obs.ObserveAnalysis("compared")
	} else {
		obs.ObserveAnalysis("empty")
	}
	return cmp, nil
}
