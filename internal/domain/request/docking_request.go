package request

import (
	"fmt"
	"time"

	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// Status tracks a docking request through its lifecycle. Pending is the
// only non-terminal state: Approved, Rejected and Cancelled accept no
// further transitions.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// DockingRequest is a ship owner's application for a berth window.
// Mutated only through the transition methods below.
type DockingRequest struct {
	id                  string
	shipID              string
	ownerID             string
	window              berth.Window
	cargoType           string
	specialRequirements string
	status              Status
	rejectionReason     string
	submittedAt         time.Time
	processedAt         *time.Time
	clock               shared.Clock
}

// NewDockingRequest creates a Pending request owned by the submitting owner.
// The clock parameter is optional - if nil, defaults to RealClock
func NewDockingRequest(id, shipID, ownerID string, window berth.Window, cargoType, specialRequirements string, clock shared.Clock) (*DockingRequest, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "request ID cannot be empty")
	}
	if shipID == "" {
		return nil, shared.NewValidationError("shipID", "ship ID cannot be empty")
	}
	if ownerID == "" {
		return nil, shared.NewValidationError("ownerID", "owner ID cannot be empty")
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &DockingRequest{
		id:                  id,
		shipID:              shipID,
		ownerID:             ownerID,
		window:              window,
		cargoType:           cargoType,
		specialRequirements: specialRequirements,
		status:              StatusPending,
		submittedAt:         clock.Now(),
		clock:               clock,
	}, nil
}

func (r *DockingRequest) ID() string                  { return r.id }
func (r *DockingRequest) ShipID() string              { return r.shipID }
func (r *DockingRequest) OwnerID() string             { return r.ownerID }
func (r *DockingRequest) Window() berth.Window        { return r.window }
func (r *DockingRequest) CargoType() string           { return r.cargoType }
func (r *DockingRequest) SpecialRequirements() string { return r.specialRequirements }
func (r *DockingRequest) Status() Status              { return r.status }
func (r *DockingRequest) RejectionReason() string     { return r.rejectionReason }
func (r *DockingRequest) SubmittedAt() time.Time      { return r.submittedAt }
func (r *DockingRequest) ProcessedAt() *time.Time     { return r.processedAt }

// IsPending reports whether the request can still be processed
func (r *DockingRequest) IsPending() bool {
	return r.status == StatusPending
}

// IsOwnedBy reports whether the user owns this request
func (r *DockingRequest) IsOwnedBy(userID string) bool {
	return r.ownerID == userID
}

// Approve transitions Pending -> Approved
func (r *DockingRequest) Approve() error {
	if r.status != StatusPending {
		return fmt.Errorf("cannot approve request in %s status", r.status)
	}
	now := r.clock.Now()
	r.status = StatusApproved
	r.processedAt = &now
	return nil
}

// Reject transitions Pending -> Rejected with a mandatory reason,
// stored verbatim.
func (r *DockingRequest) Reject(reason string) error {
	if r.status != StatusPending {
		return fmt.Errorf("cannot reject request in %s status", r.status)
	}
	if reason == "" {
		return shared.NewValidationError("reason", "rejection reason cannot be empty")
	}
	now := r.clock.Now()
	r.status = StatusRejected
	r.rejectionReason = reason
	r.processedAt = &now
	return nil
}

// Cancel transitions Pending -> Cancelled
func (r *DockingRequest) Cancel() error {
	if r.status != StatusPending {
		return fmt.Errorf("cannot cancel request in %s status", r.status)
	}
	now := r.clock.Now()
	r.status = StatusCancelled
	r.processedAt = &now
	return nil
}

// RecoverStatus restores lifecycle state during reconstruction from storage.
// Only repository converters should call this.
func (r *DockingRequest) RecoverStatus(status Status, rejectionReason string, submittedAt time.Time, processedAt *time.Time) {
	r.status = status
	r.rejectionReason = rejectionReason
	r.submittedAt = submittedAt
	r.processedAt = processedAt
}
