package billing

import (
	"fmt"
	"time"

	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// PaymentStatus tracks whether an invoice has been settled.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// LineItem is a single charge on an invoice.
type LineItem struct {
	Description string
	Amount      float64
}

// Invoice itemizes the charges of one docking engagement. Totals are
// reproducible from the stored line items for audit recomputation.
type Invoice struct {
	id        string
	requestID string
	shipID    string
	lines     []LineItem
	total     float64
	status    PaymentStatus
	issuedAt  time.Time
}

// NewInvoice creates an unpaid invoice from itemized lines
func NewInvoice(id, requestID, shipID string, lines []LineItem, issuedAt time.Time) (*Invoice, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "invoice ID cannot be empty")
	}
	if shipID == "" {
		return nil, shared.NewValidationError("shipID", "ship ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("lines", "invoice must have at least one line item")
	}

	var total float64
	for _, line := range lines {
		if line.Amount < 0 {
			return nil, shared.NewValidationError("lines", "line item amount cannot be negative")
		}
		total += line.Amount
	}

	return &Invoice{
		id:        id,
		requestID: requestID,
		shipID:    shipID,
		lines:     lines,
		total:     total,
		status:    PaymentStatusUnpaid,
		issuedAt:  issuedAt,
	}, nil
}

func (i *Invoice) ID() string            { return i.id }
func (i *Invoice) RequestID() string     { return i.requestID }
func (i *Invoice) ShipID() string        { return i.shipID }
func (i *Invoice) Total() float64        { return i.total }
func (i *Invoice) Status() PaymentStatus { return i.status }
func (i *Invoice) IssuedAt() time.Time   { return i.issuedAt }

// Lines returns a copy of the line items
func (i *Invoice) Lines() []LineItem {
	lines := make([]LineItem, len(i.lines))
	copy(lines, i.lines)
	return lines
}

// MarkPaid settles the invoice
func (i *Invoice) MarkPaid() error {
	if i.status == PaymentStatusPaid {
		return fmt.Errorf("invoice %s is already paid", i.id)
	}
	i.status = PaymentStatusPaid
	return nil
}

// RecoverStatus restores payment status during reconstruction from storage.
// Only repository converters should call this.
func (i *Invoice) RecoverStatus(status PaymentStatus) {
	i.status = status
}
