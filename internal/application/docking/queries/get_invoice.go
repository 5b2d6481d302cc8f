package queries

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/billing"
)

// GetInvoiceQuery fetches the invoice issued for a docking request
type GetInvoiceQuery struct {
	RequestID string
}

// GetInvoiceResponse carries the invoice
type GetInvoiceResponse struct {
	Invoice *billing.Invoice
}

// GetInvoiceHandler answers invoice lookups
type GetInvoiceHandler struct {
	invoices billing.InvoiceRepository
}

// NewGetInvoiceHandler creates a new get invoice handler
func NewGetInvoiceHandler(invoices billing.InvoiceRepository) *GetInvoiceHandler {
	return &GetInvoiceHandler{invoices: invoices}
}

// Handle executes the get invoice query
func (h *GetInvoiceHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	query, ok := req.(*GetInvoiceQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	invoice, err := h.invoices.FindByRequest(ctx, query.RequestID)
	if err != nil {
		return nil, err
	}

	return &GetInvoiceResponse{Invoice: invoice}, nil
}
