package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harborops/harbormaster-go/internal/domain/billing"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// invoiceLine is the JSON shape of one stored line item
type invoiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID retrieves an invoice by ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, invoiceID string) (*billing.Invoice, error) {
	var model InvoiceModel
	err := execWithRetry(ctx, "invoice.FindByID", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", invoiceID).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("invoice", invoiceID)
		}
		return nil, err
	}
	return r.modelToEntity(&model)
}

// FindByRequest retrieves the invoice issued for a docking request
func (r *GormInvoiceRepository) FindByRequest(ctx context.Context, requestID string) (*billing.Invoice, error) {
	var model InvoiceModel
	err := execWithRetry(ctx, "invoice.FindByRequest", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("invoice for request", requestID)
		}
		return nil, err
	}
	return r.modelToEntity(&model)
}

// FindByShip retrieves all invoices issued for a ship
func (r *GormInvoiceRepository) FindByShip(ctx context.Context, shipID string) ([]*billing.Invoice, error) {
	var models []InvoiceModel
	err := execWithRetry(ctx, "invoice.FindByShip", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("ship_id = ?", shipID).Order("issued_at").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]*billing.Invoice, 0, len(models))
	for i := range models {
		invoice, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert invoice %s: %w", models[i].ID, err)
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

// Add inserts a new invoice row
func (r *GormInvoiceRepository) Add(ctx context.Context, invoice *billing.Invoice) error {
	model, err := r.entityToModel(invoice)
	if err != nil {
		return err
	}
	return execWithRetry(ctx, "invoice.Add", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(model).Error
	})
}

// Save updates an existing invoice row
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model, err := r.entityToModel(invoice)
	if err != nil {
		return err
	}
	return execWithRetry(ctx, "invoice.Save", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(model).Error
	})
}

// Delete removes an invoice row (approval compensation only)
func (r *GormInvoiceRepository) Delete(ctx context.Context, invoiceID string) error {
	return execWithRetry(ctx, "invoice.Delete", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Delete(&InvoiceModel{}, "id = ?", invoiceID).Error
	})
}

func (r *GormInvoiceRepository) modelToEntity(model *InvoiceModel) (*billing.Invoice, error) {
	var storedLines []invoiceLine
	if err := json.Unmarshal([]byte(model.LinesJSON), &storedLines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invoice lines: %w", err)
	}

	lines := make([]billing.LineItem, 0, len(storedLines))
	for _, line := range storedLines {
		lines = append(lines, billing.LineItem{Description: line.Description, Amount: line.Amount})
	}

	invoice, err := billing.NewInvoice(model.ID, model.RequestID, model.ShipID, lines, model.IssuedAt)
	if err != nil {
		return nil, err
	}

	invoice.RecoverStatus(billing.PaymentStatus(model.Status))
	return invoice, nil
}

func (r *GormInvoiceRepository) entityToModel(invoice *billing.Invoice) (*InvoiceModel, error) {
	lines := invoice.Lines()
	storedLines := make([]invoiceLine, 0, len(lines))
	for _, line := range lines {
		storedLines = append(storedLines, invoiceLine{Description: line.Description, Amount: line.Amount})
	}

	linesJSON, err := json.Marshal(storedLines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice lines: %w", err)
	}

	return &InvoiceModel{
		ID:        invoice.ID(),
		RequestID: invoice.RequestID(),
		ShipID:    invoice.ShipID(),
		LinesJSON: string(linesJSON),
		Total:     invoice.Total(),
		Status:    string(invoice.Status()),
		IssuedAt:  invoice.IssuedAt(),
	}, nil
}
