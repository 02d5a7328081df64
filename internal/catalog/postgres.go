package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository reads the catalog from Postgres.
type PostgresRepository struct {
	Pool *pgxpool.Pool
}

// Plans returns every plan ordered by single-line price.
func (r *PostgresRepository) Plans(ctx context.Context) ([]Plan, error) {
	if r == nil || r.Pool == nil {
		return nil, fmt.Errorf("catalog: pool not configured")
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT id, name, type,
		       price_1, price_2, price_3, price_4, price_5,
		       data_premium, data_hotspot, features
		FROM plans
		ORDER BY price_1, id`)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var (
			p        Plan
			planType string
			prices   [5]float64
		)
		if err := rows.Scan(&p.ID, &p.Name, &planType,
			&prices[0], &prices[1], &prices[2], &prices[3], &prices[4],
			&p.DataAllowance.Premium, &p.DataAllowance.Hotspot, &p.Features); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		p.Type = PlanType(planType)
		p.PricePerLine = make(map[int]float64, len(prices))
		for i, price := range prices {
			p.PricePerLine[i+1] = price
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return plans, nil
}

// Promotions returns every active promotion, newest first.
func (r *PostgresRepository) Promotions(ctx context.Context) ([]Promotion, error) {
	if r == nil || r.Pool == nil {
		return nil, fmt.Errorf("catalog: pool not configured")
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT id, title, start_date, key_points, eligibility, partner_type, promo_type
		FROM promotions
		ORDER BY start_date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query promotions: %w", err)
	}
	defer rows.Close()

	var promos []Promotion
	for rows.Next() {
		var p Promotion
		if err := rows.Scan(&p.ID, &p.Title, &p.StartDate, &p.KeyPoints,
			&p.Eligibility, &p.PartnerType, &p.PromoType); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		promos = append(promos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promotions: %w", err)
	}
	return promos, nil
}
