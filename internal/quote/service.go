package quote

import (
	"context"
	"fmt"

	"github.com/carrierdesk/backend-carrier/internal/catalog"
	"github.com/carrierdesk/backend-carrier/internal/obs"
	"github.com/carrierdesk/backend-carrier/internal/pricing"
)

// Service computes quotes against the injected catalog repository.
type Service struct {
	Repo catalog.Repository
}

// Compute prices the given selections against the current catalog snapshot.
// A nil result with nil error means no line had a plan selected.
func (s *Service) Compute(ctx context.Context, lines []LineSelection, streamingCost pricing.Dollars) (*Result, error) {
	if s == nil || s.Repo == nil {
		return nil, fmt.Errorf("quote service not configured")
	}
	plans, err := s.Repo.Plans(ctx)
	if err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}
	res := ComputeFromSelections(lines, plans, streamingCost)
	if res == nil {
		obs.ObserveQuoteCompute("empty")
	} else {
		obs.ObserveQuoteCompute("computed")
	}
	return res, nil
}
