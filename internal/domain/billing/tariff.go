package billing

import (
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// SizeMultiplierTier maps a length bucket [MinLength, MaxLength) to a
// docking-fee multiplier. Tiers are expected to be non-overlapping and to
// cover the length domain together.
type SizeMultiplierTier struct {
	MinLength  float64
	MaxLength  float64
	Multiplier float64
}

// Matches reports whether the length falls inside [MinLength, MaxLength)
func (t SizeMultiplierTier) Matches(length float64) bool {
	return length >= t.MinLength && length < t.MaxLength
}

// Tariff is the rate table driving docking fees. Lookups never return a
// negative or undefined multiplier: a length or type with no matching
// entry, or a non-positive stored multiplier, yields 1.0.
type Tariff struct {
	BaseDockingFee  float64
	SizeTiers       []SizeMultiplierTier
	TypeMultipliers map[fleet.ShipType]float64
}

// NewTariff creates a tariff with a validated base fee
func NewTariff(baseDockingFee float64, sizeTiers []SizeMultiplierTier, typeMultipliers map[fleet.ShipType]float64) (Tariff, error) {
	if baseDockingFee < 0 {
		return Tariff{}, shared.NewValidationError("baseDockingFee", "base docking fee cannot be negative")
	}
	return Tariff{
		BaseDockingFee:  baseDockingFee,
		SizeTiers:       sizeTiers,
		TypeMultipliers: typeMultipliers,
	}, nil
}

// SizeMultiplier returns the multiplier for the first tier matching the
// length, or 1.0 when no tier matches.
func (t Tariff) SizeMultiplier(length float64) float64 {
	for _, tier := range t.SizeTiers {
		if tier.Matches(length) {
			if tier.Multiplier <= 0 {
				return 1.0
			}
			return tier.Multiplier
		}
	}
	return 1.0
}

// TypeMultiplier returns the multiplier for the ship type, or 1.0 when the
// type has no entry.
func (t Tariff) TypeMultiplier(shipType fleet.ShipType) float64 {
	m, ok := t.TypeMultipliers[shipType]
	if !ok || m <= 0 {
		return 1.0
	}
	return m
}

// DefaultTariff is the seed rate table used when the store carries none
func DefaultTariff() Tariff {
	return Tariff{
		BaseDockingFee: 500,
		SizeTiers: []SizeMultiplierTier{
			{MinLength: 0, MaxLength: 100, Multiplier: 1.0},
			{MinLength: 100, MaxLength: 200, Multiplier: 1.5},
			{MinLength: 200, MaxLength: 300, Multiplier: 2.0},
			{MinLength: 300, MaxLength: 500, Multiplier: 3.0},
		},
		TypeMultipliers: map[fleet.ShipType]float64{
			fleet.ShipTypeCargo:     1.2,
			fleet.ShipTypeTanker:    1.5,
			fleet.ShipTypePassenger: 1.3,
			fleet.ShipTypeFishing:   0.8,
			fleet.ShipTypeTug:       0.7,
		},
	}
}
