package billing

import (
	"github.com/google/uuid"

	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// PricingEngine turns ship attributes and requested port services into
// invoice amounts. All computations are pure functions of the tariff and
// the inputs, so a stored invoice can always be recomputed for audit.
type PricingEngine struct {
	tariff Tariff
	clock  shared.Clock
}

// NewPricingEngine creates a pricing engine over a rate table.
// The clock parameter is optional - if nil, defaults to RealClock
func NewPricingEngine(tariff Tariff, clock shared.Clock) *PricingEngine {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &PricingEngine{tariff: tariff, clock: clock}
}

// ComputeDockingFee returns base fee x size multiplier x type multiplier.
// Multiplier lookups fall back to 1.0 when no tier matches.
func (p *PricingEngine) ComputeDockingFee(ship *fleet.Ship) float64 {
	fee := p.tariff.BaseDockingFee *
		p.tariff.SizeMultiplier(ship.Length()) *
		p.tariff.TypeMultiplier(ship.Type())
	return clampNonNegative(fee)
}

// ComputeServiceCost dispatches to the service variant's cost formula
func (p *PricingEngine) ComputeServiceCost(service PortService, ship *fleet.Ship) float64 {
	cost := service.CalculateCost(ship, p.ComputeDockingFee(ship))
	return clampNonNegative(cost)
}

// ComputeInvoiceTotal returns docking fee plus the sum of service costs
func (p *PricingEngine) ComputeInvoiceTotal(ship *fleet.Ship, services []PortService) float64 {
	total := p.ComputeDockingFee(ship)
	for _, service := range services {
		total += p.ComputeServiceCost(service, ship)
	}
	return total
}

// BuildInvoice itemizes the docking fee and each service into an unpaid
// invoice for the request.
func (p *PricingEngine) BuildInvoice(requestID string, ship *fleet.Ship, services []PortService) (*Invoice, error) {
	lines := make([]LineItem, 0, len(services)+1)
	lines = append(lines, LineItem{
		Description: "Docking fee",
		Amount:      p.ComputeDockingFee(ship),
	})
	for _, service := range services {
		lines = append(lines, LineItem{
			Description: service.Describe(),
			Amount:      p.ComputeServiceCost(service, ship),
		})
	}

	return NewInvoice(uuid.NewString(), requestID, ship.ID(), lines, p.clock.Now())
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
