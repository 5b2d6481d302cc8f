package billing

import (
	"fmt"

	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// ServiceKind identifies one of the closed set of port service variants.
type ServiceKind string

const (
	ServiceKindDocking       ServiceKind = "DOCKING"
	ServiceKindCargoHandling ServiceKind = "CARGO_HANDLING"
	ServiceKindMaintenance   ServiceKind = "MAINTENANCE"
	ServiceKindRefueling     ServiceKind = "REFUELING"
)

// MaintenanceTypeEmergency doubles the whole maintenance cost
const MaintenanceTypeEmergency = "EMERGENCY"

// PortService is the shared capability of the four service variants. It is
// a closed set: the pricing pipeline dispatches through this interface and
// expects no implementations beyond the ones in this package.
type PortService interface {
	Kind() ServiceKind
	Describe() string

	// CalculateCost computes the service cost for the ship. dockingFee is
	// the ship's computed docking fee; only the Docking variant uses it.
	CalculateCost(ship *fleet.Ship, dockingFee float64) float64
}

// DockingService covers berth occupation itself: the ship's docking fee
// plus hourly charges, with an optional shore-power surcharge.
type DockingService struct {
	durationHours float64
	includesPower bool
}

func NewDockingService(durationHours float64, includesPower bool) (*DockingService, error) {
	if durationHours <= 0 {
		return nil, shared.NewValidationError("durationHours", "docking duration must be positive")
	}
	return &DockingService{durationHours: durationHours, includesPower: includesPower}, nil
}

func (s *DockingService) Kind() ServiceKind { return ServiceKindDocking }

func (s *DockingService) Describe() string {
	if s.includesPower {
		return fmt.Sprintf("Docking for %.1fh with shore power", s.durationHours)
	}
	return fmt.Sprintf("Docking for %.1fh", s.durationHours)
}

func (s *DockingService) CalculateCost(_ *fleet.Ship, dockingFee float64) float64 {
	cost := dockingFee + s.durationHours*50
	if s.includesPower {
		cost += s.durationHours * 25
	}
	return cost
}

// CargoHandlingService covers loading/unloading. Cargo ships pay a
// capacity component; hazardous cargo and special handling compound as
// surcharges, hazardous first.
type CargoHandlingService struct {
	baseCost        float64
	cargoWeight     float64
	hazardous       bool
	specialHandling bool
}

func NewCargoHandlingService(baseCost, cargoWeight float64, hazardous, specialHandling bool) (*CargoHandlingService, error) {
	if baseCost < 0 {
		return nil, shared.NewValidationError("baseCost", "base cost cannot be negative")
	}
	if cargoWeight < 0 {
		return nil, shared.NewValidationError("cargoWeight", "cargo weight cannot be negative")
	}
	return &CargoHandlingService{
		baseCost:        baseCost,
		cargoWeight:     cargoWeight,
		hazardous:       hazardous,
		specialHandling: specialHandling,
	}, nil
}

func (s *CargoHandlingService) Kind() ServiceKind { return ServiceKindCargoHandling }

func (s *CargoHandlingService) Describe() string {
	desc := fmt.Sprintf("Cargo handling, %.0ft", s.cargoWeight)
	if s.hazardous {
		desc += ", hazardous"
	}
	if s.specialHandling {
		desc += ", special handling"
	}
	return desc
}

func (s *CargoHandlingService) CalculateCost(ship *fleet.Ship, _ float64) float64 {
	cost := s.baseCost + s.cargoWeight*0.5
	if ship.IsCargoShip() {
		cost += ship.Capacity() * 0.2
	}
	if s.hazardous {
		cost *= 1.5
	}
	if s.specialHandling {
		cost *= 1.3
	}
	return cost
}

// MaintenanceService covers in-port repair work billed per estimated day,
// tonnage and work item. Emergency work doubles the whole amount.
type MaintenanceService struct {
	baseCostPerDay  float64
	estimatedDays   int
	workItems       []string
	maintenanceType string
}

func NewMaintenanceService(baseCostPerDay float64, estimatedDays int, workItems []string, maintenanceType string) (*MaintenanceService, error) {
	if baseCostPerDay < 0 {
		return nil, shared.NewValidationError("baseCostPerDay", "base cost cannot be negative")
	}
	if estimatedDays <= 0 {
		return nil, shared.NewValidationError("estimatedDays", "estimated days must be positive")
	}
	return &MaintenanceService{
		baseCostPerDay:  baseCostPerDay,
		estimatedDays:   estimatedDays,
		workItems:       workItems,
		maintenanceType: maintenanceType,
	}, nil
}

func (s *MaintenanceService) Kind() ServiceKind { return ServiceKindMaintenance }

func (s *MaintenanceService) Describe() string {
	return fmt.Sprintf("%s maintenance, %d days, %d work items",
		s.maintenanceType, s.estimatedDays, len(s.workItems))
}

func (s *MaintenanceService) CalculateCost(ship *fleet.Ship, _ float64) float64 {
	cost := s.baseCostPerDay*float64(s.estimatedDays) +
		ship.Tonnage()*0.1 +
		float64(len(s.workItems))*500
	if s.maintenanceType == MaintenanceTypeEmergency {
		cost *= 2.0
	}
	return cost
}

// RefuelingService bills fuel volume at a per-liter price with a tonnage
// volume discount, plus a flat service fee. The discount applies to the
// fuel cost only, never to the fee.
type RefuelingService struct {
	fuelAmountLiters float64
	pricePerLiter    float64
	serviceFee       float64
}

func NewRefuelingService(fuelAmountLiters, pricePerLiter, serviceFee float64) (*RefuelingService, error) {
	if fuelAmountLiters <= 0 {
		return nil, shared.NewValidationError("fuelAmountLiters", "fuel amount must be positive")
	}
	if pricePerLiter < 0 {
		return nil, shared.NewValidationError("pricePerLiter", "price per liter cannot be negative")
	}
	if serviceFee < 0 {
		return nil, shared.NewValidationError("serviceFee", "service fee cannot be negative")
	}
	return &RefuelingService{
		fuelAmountLiters: fuelAmountLiters,
		pricePerLiter:    pricePerLiter,
		serviceFee:       serviceFee,
	}, nil
}

func (s *RefuelingService) Kind() ServiceKind { return ServiceKindRefueling }

func (s *RefuelingService) Describe() string {
	return fmt.Sprintf("Refueling %.0fL", s.fuelAmountLiters)
}

func (s *RefuelingService) CalculateCost(ship *fleet.Ship, _ float64) float64 {
	fuelCost := s.fuelAmountLiters * s.pricePerLiter
	switch {
	case ship.Tonnage() > 100000:
		fuelCost *= 0.95
	case ship.Tonnage() > 50000:
		fuelCost *= 0.98
	}
	return fuelCost + s.serviceFee
}
