package commission

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier loads the payout catalogs.
type Querier interface {
	Devices(ctx context.Context) ([]DeviceContribution, error)
	Services(ctx context.Context) ([]ServiceContribution, error)
}

// PostgresQuerier reads the contribution tables from Postgres.
type PostgresQuerier struct {
	Pool *pgxpool.Pool
}

func (q PostgresQuerier) Devices(ctx context.Context) ([]DeviceContribution, error) {
	rows, err := q.Pool.Query(ctx, `
		SELECT id, device_name, manufacturer, dpp_price, base_spiff,
		       welcome_unlimited_new, plus_ultimate_new,
		       welcome_unlimited_upgrade, plus_ultimate_upgrade
		FROM device_contributions
		ORDER BY manufacturer, device_name`)
	if err != nil {
		return nil, fmt.Errorf("query device contributions: %w", err)
	}
	defer rows.Close()

	var devices []DeviceContribution
	for rows.Next() {
		var d DeviceContribution
		if err := rows.Scan(&d.ID, &d.DeviceName, &d.Manufacturer, &d.DPPPrice, &d.BaseSpiff,
			&d.WelcomeUnlimitedNew, &d.PlusUltimateNew,
			&d.WelcomeUnlimitedUpgrade, &d.PlusUltimateUpgrade); err != nil {
			return nil, fmt.Errorf("scan device contribution: %w", err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate device contributions: %w", err)
	}
	return devices, nil
}

func (q PostgresQuerier) Services(ctx context.Context) ([]ServiceContribution, error) {
	rows, err := q.Pool.Query(ctx, `
		SELECT id, name, category, contribution, spiff, total_contribution
		FROM service_contributions
		ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("query service contributions: %w", err)
	}
	defer rows.Close()

	var services []ServiceContribution
	for rows.Next() {
		var s ServiceContribution
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Contribution, &s.Spiff, &s.TotalContribution); err != nil {
			return nil, fmt.Errorf("scan service contribution: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service contributions: %w", err)
	}
	return services, nil
}
