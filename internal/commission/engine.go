// Package commission estimates rep payout for a sale built from device
// upgrades/activations and attached services.
package commission

import "github.com/carrierdesk/backend-carrier/internal/pricing"

// PlanType selects which contribution column applies to a device sale.
type PlanType string

const (
	PlanWelcomeNew      PlanType = "welcome_unlimited_new"
	PlanUltimateNew     PlanType = "ultimate_new"
	PlanWelcomeUpgrade  PlanType = "welcome_unlimited_upgrade"
	PlanUltimateUpgrade PlanType = "ultimate_upgrade"
)

// DeviceContribution is one row of the device payout table.
type DeviceContribution struct {
	ID                      string          `json:"id"`
	DeviceName              string          `json:"deviceName"`
	Manufacturer            string          `json:"manufacturer"`
	DPPPrice                pricing.Dollars `json:"dppPrice"`
	BaseSpiff               pricing.Dollars `json:"baseSpiff"`
	WelcomeUnlimitedNew     pricing.Dollars `json:"welcomeUnlimitedNew"`
	PlusUltimateNew         pricing.Dollars `json:"plusUltimateNew"`
	WelcomeUnlimitedUpgrade pricing.Dollars `json:"welcomeUnlimitedUpgrade"`
	PlusUltimateUpgrade     pricing.Dollars `json:"plusUltimateUpgrade"`
}

// ServiceContribution is one row of the service payout table.
type ServiceContribution struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Contribution      pricing.Dollars `json:"contribution"`
	Spiff             pricing.Dollars `json:"spiff"`
	TotalContribution pricing.Dollars `json:"totalContribution"`
}

// DeviceSelection pairs a device with the plan context it was sold under.
type DeviceSelection struct {
	DeviceID string   `json:"deviceId"`
	PlanType PlanType `json:"planType"`
}

// planAmount picks the contribution column matching the plan type.
func (d DeviceContribution) planAmount(pt PlanType) pricing.Dollars {
	switch pt {
	case PlanWelcomeNew:
		return d.WelcomeUnlimitedNew
	case PlanUltimateNew:
		return d.PlusUltimateNew
	case PlanWelcomeUpgrade:
		return d.WelcomeUnlimitedUpgrade
	default:
		return d.PlusUltimateUpgrade
	}
}

// Estimate totals the payout for the selected devices and services.
// Unknown device or service IDs contribute nothing.
func Estimate(devices []DeviceSelection, serviceIDs []string, deviceCatalog []DeviceContribution, serviceCatalog []ServiceContribution) pricing.Dollars {
	byDevice := make(map[string]DeviceContribution, len(deviceCatalog))
	for _, d := range deviceCatalog {
		byDevice[d.ID] = d
	}
	byService := make(map[string]ServiceContribution, len(serviceCatalog))
	for _, s := range serviceCatalog {
		byService[s.ID] = s
	}

	var total pricing.Dollars
	for _, sel := range devices {
		device, ok := byDevice[sel.DeviceID]
		if !ok {
			continue
		}
		total += device.planAmount(sel.PlanType) + device.BaseSpiff
	}
	for _, id := range serviceIDs {
		if service, ok := byService[id]; ok {
			total += service.TotalContribution
		}
	}
	return total
}
