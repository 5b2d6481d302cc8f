package fleet

import (
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// ShipType tags a registered vessel for tariff and service-cost purposes.
type ShipType string

const (
	ShipTypeCargo     ShipType = "CARGO"
	ShipTypeTanker    ShipType = "TANKER"
	ShipTypePassenger ShipType = "PASSENGER"
	ShipTypeFishing   ShipType = "FISHING"
	ShipTypeTug       ShipType = "TUG"
)

// Ship is a registered vessel. Immutable once registered except through
// UpdateParticulars; dimension fields drive berth fit and pricing.
type Ship struct {
	id       string
	name     string
	shipType ShipType
	length   float64
	draft    float64
	tonnage  float64
	capacity float64
	ownerID  string
}

// NewShip creates a ship, validating physical particulars
func NewShip(id, name string, shipType ShipType, length, draft, tonnage, capacity float64, ownerID string) (*Ship, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "ship ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewValidationError("name", "ship name cannot be empty")
	}
	if length <= 0 {
		return nil, shared.NewValidationError("length", "ship length must be positive")
	}
	if draft <= 0 {
		return nil, shared.NewValidationError("draft", "ship draft must be positive")
	}
	if tonnage < 0 {
		return nil, shared.NewValidationError("tonnage", "ship tonnage cannot be negative")
	}
	if capacity < 0 {
		return nil, shared.NewValidationError("capacity", "ship capacity cannot be negative")
	}
	if ownerID == "" {
		return nil, shared.NewValidationError("ownerID", "ship owner cannot be empty")
	}

	return &Ship{
		id:       id,
		name:     name,
		shipType: shipType,
		length:   length,
		draft:    draft,
		tonnage:  tonnage,
		capacity: capacity,
		ownerID:  ownerID,
	}, nil
}

func (s *Ship) ID() string        { return s.id }
func (s *Ship) Name() string      { return s.name }
func (s *Ship) Type() ShipType    { return s.shipType }
func (s *Ship) Length() float64   { return s.length }
func (s *Ship) Draft() float64    { return s.draft }
func (s *Ship) Tonnage() float64  { return s.tonnage }
func (s *Ship) Capacity() float64 { return s.capacity }
func (s *Ship) OwnerID() string   { return s.ownerID }
func (s *Ship) IsCargoShip() bool { return s.shipType == ShipTypeCargo }

// UpdateParticulars is the only mutation path after registration.
// The same dimension rules apply as at registration time.
func (s *Ship) UpdateParticulars(name string, length, draft, tonnage, capacity float64) error {
	if name == "" {
		return shared.NewValidationError("name", "ship name cannot be empty")
	}
	if length <= 0 {
		return shared.NewValidationError("length", "ship length must be positive")
	}
	if draft <= 0 {
		return shared.NewValidationError("draft", "ship draft must be positive")
	}
	if tonnage < 0 {
		return shared.NewValidationError("tonnage", "ship tonnage cannot be negative")
	}
	if capacity < 0 {
		return shared.NewValidationError("capacity", "ship capacity cannot be negative")
	}

	s.name = name
	s.length = length
	s.draft = draft
	s.tonnage = tonnage
	s.capacity = capacity
	return nil
}
