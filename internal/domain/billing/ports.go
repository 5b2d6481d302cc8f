package billing

import "context"

// InvoiceRepository defines the interface for invoice persistence operations
type InvoiceRepository interface {
	FindByID(ctx context.Context, invoiceID string) (*Invoice, error)
	FindByRequest(ctx context.Context, requestID string) (*Invoice, error)
	FindByShip(ctx context.Context, shipID string) ([]*Invoice, error)
	Add(ctx context.Context, invoice *Invoice) error
	Save(ctx context.Context, invoice *Invoice) error

	// Delete exists only for approval compensation; settled invoices are
	// never removed
	Delete(ctx context.Context, invoiceID string) error
}

// TariffRepository loads and stores the rate tables. Load is called per
// pricing decision so rate changes take effect without restarts.
type TariffRepository interface {
	Load(ctx context.Context) (Tariff, error)
	Save(ctx context.Context, tariff Tariff) error
}
