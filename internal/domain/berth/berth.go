package berth

import (
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// Berth is a physical docking location with hard capacity limits.
// Owned by the harbor; only allocation and release mutate its state.
type Berth struct {
	id        string
	name      string
	maxLength float64
	maxDraft  float64
	available bool
}

// NewBerth creates a berth with validated capacity limits
func NewBerth(id, name string, maxLength, maxDraft float64, available bool) (*Berth, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "berth ID cannot be empty")
	}
	if maxLength <= 0 {
		return nil, shared.NewValidationError("maxLength", "berth max length must be positive")
	}
	if maxDraft <= 0 {
		return nil, shared.NewValidationError("maxDraft", "berth max draft must be positive")
	}

	return &Berth{
		id:        id,
		name:      name,
		maxLength: maxLength,
		maxDraft:  maxDraft,
		available: available,
	}, nil
}

func (b *Berth) ID() string         { return b.id }
func (b *Berth) Name() string       { return b.name }
func (b *Berth) MaxLength() float64 { return b.maxLength }
func (b *Berth) MaxDraft() float64  { return b.maxDraft }
func (b *Berth) Available() bool    { return b.available }

// CanFit reports whether a ship with the given dimensions physically fits.
// This check is never bypassed, not even by an allocation override.
func (b *Berth) CanFit(shipLength, shipDraft float64) bool {
	return b.available && b.maxLength >= shipLength && b.maxDraft >= shipDraft
}

// SetAvailable flips the availability flag (maintenance closures etc.)
func (b *Berth) SetAvailable(available bool) {
	b.available = available
}
