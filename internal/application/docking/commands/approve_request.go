package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/billing"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// ApproveDockingRequestCommand approves a pending request, allocating a
// berth and issuing an invoice for the attached services.
type ApproveDockingRequestCommand struct {
	ActorID   string
	RequestID string
	Services  []billing.PortService
}

// ApproveDockingRequestResponse carries the committed allocation and invoice
type ApproveDockingRequestResponse struct {
	Request    *request.DockingRequest
	Assignment *berth.Assignment
	Invoice    *billing.Invoice
}

// ApproveDockingRequestHandler orchestrates approval: role gate, berth
// allocation, invoice generation, request transition. On any failure the
// request stays Pending and no partial allocation or invoice survives.
type ApproveDockingRequestHandler struct {
	users     auth.UserRepository
	ships     fleet.ShipRepository
	requests  request.DockingRequestRepository
	invoices  billing.InvoiceRepository
	tariffs   billing.TariffRepository
	allocator *berth.AllocationEngine
	clock     shared.Clock
}

// NewApproveDockingRequestHandler creates a new approve handler
func NewApproveDockingRequestHandler(
	users auth.UserRepository,
	ships fleet.ShipRepository,
	requests request.DockingRequestRepository,
	invoices billing.InvoiceRepository,
	tariffs billing.TariffRepository,
	allocator *berth.AllocationEngine,
	clock shared.Clock,
) *ApproveDockingRequestHandler {
	return &ApproveDockingRequestHandler{
		users:     users,
		ships:     ships,
		requests:  requests,
		invoices:  invoices,
		tariffs:   tariffs,
		allocator: allocator,
		clock:     clock,
	}
}

// Handle executes the approve docking request command
func (h *ApproveDockingRequestHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*ApproveDockingRequestCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(auth.CapabilityApproveRequest) {
		return nil, shared.NewPermissionError(actor.ID(), "approve docking requests")
	}

	dockingRequest, err := h.requests.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if !dockingRequest.IsPending() {
		return nil, fmt.Errorf("cannot approve request in %s status", dockingRequest.Status())
	}

	ship, err := h.ships.FindByID(ctx, dockingRequest.ShipID())
	if err != nil {
		return nil, err
	}

	// Override is decided here, once, from the permission table; the
	// engine only sees the explicit flag.
	override := actor.Can(auth.CapabilityOverrideAllocation)

	window := dockingRequest.Window()
	assignment, err := h.allocator.TryAllocate(ctx, ship, window.ETA(), window.ETD(), override)
	if err != nil {
		// Conflict or store failure: the request stays Pending.
		return nil, err
	}

	invoice, err := h.issueInvoice(ctx, dockingRequest, ship, cmd.Services)
	if err != nil {
		h.compensateAllocation(ctx, assignment)
		return nil, err
	}

	if err := dockingRequest.Approve(); err != nil {
		h.compensateInvoice(ctx, invoice)
		h.compensateAllocation(ctx, assignment)
		return nil, err
	}
	if err := h.requests.Save(ctx, dockingRequest); err != nil {
		h.compensateInvoice(ctx, invoice)
		h.compensateAllocation(ctx, assignment)
		return nil, err
	}

	return &ApproveDockingRequestResponse{
		Request:    dockingRequest,
		Assignment: assignment,
		Invoice:    invoice,
	}, nil
}

func (h *ApproveDockingRequestHandler) issueInvoice(
	ctx context.Context,
	dockingRequest *request.DockingRequest,
	ship *fleet.Ship,
	services []billing.PortService,
) (*billing.Invoice, error) {
	tariff, err := h.tariffs.Load(ctx)
	if err != nil {
		return nil, err
	}

	pricing := billing.NewPricingEngine(tariff, h.clock)
	invoice, err := pricing.BuildInvoice(dockingRequest.ID(), ship, services)
	if err != nil {
		return nil, err
	}

	if err := h.invoices.Add(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// compensateAllocation releases a committed assignment after a downstream
// failure so no berth stays booked for a request that was never approved.
func (h *ApproveDockingRequestHandler) compensateAllocation(ctx context.Context, assignment *berth.Assignment) {
	if _, err := h.allocator.Release(ctx, assignment.BerthID(), assignment.ShipID()); err != nil {
		logger := common.LoggerFromContext(ctx)
		logger.Log("ERROR", "failed to release assignment after approval failure", map[string]interface{}{
			"assignment_id": assignment.ID(),
			"berth_id":      assignment.BerthID(),
			"error":         err.Error(),
		})
	}
}

func (h *ApproveDockingRequestHandler) compensateInvoice(ctx context.Context, invoice *billing.Invoice) {
	if err := h.invoices.Delete(ctx, invoice.ID()); err != nil {
		logger := common.LoggerFromContext(ctx)
		logger.Log("ERROR", "failed to remove invoice after approval failure", map[string]interface{}{
			"invoice_id": invoice.ID(),
			"error":      err.Error(),
		})
	}
}
