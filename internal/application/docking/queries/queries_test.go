package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/harbormaster-go/internal/adapters/persistence"
	"github.com/harborops/harbormaster-go/internal/application/docking/queries"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/billing"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
	"github.com/harborops/harbormaster-go/test/helpers"
)

func TestFindSuitableBerths(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	berths := persistence.NewGormBerthRepository(db)
	assignments := persistence.NewGormAssignmentRepository(db, nil)

	for _, tc := range []struct {
		id        string
		maxLength float64
		maxDraft  float64
	}{
		{"B1", 150, 8},
		{"B2", 200, 10},
		{"B3", 300, 15},
	} {
		b, err := berth.NewBerth(tc.id, "Berth "+tc.id, tc.maxLength, tc.maxDraft, true)
		require.NoError(t, err)
		require.NoError(t, berths.Save(context.Background(), b))
	}

	allocator := berth.NewAllocationEngine(berths, assignments, nil)
	handler := queries.NewFindSuitableBerthsHandler(allocator)

	// Act
	response, err := handler.Handle(context.Background(), &queries.FindSuitableBerthsQuery{
		ShipLength: 180,
		ShipDraft:  9,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.FindSuitableBerthsResponse)
	require.Len(t, result.Berths, 2)
	assert.Equal(t, "B2", result.Berths[0].ID())
	assert.Equal(t, "B3", result.Berths[1].ID())
}

func TestListDockingRequests(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	requests := persistence.NewGormDockingRequestRepository(db, nil)

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	window, err := berth.NewWindow(eta, eta.Add(48*time.Hour))
	require.NoError(t, err)

	for _, tc := range []struct {
		id      string
		ownerID string
		reject  bool
	}{
		{"req-1", "owner-1", false},
		{"req-2", "owner-1", true},
		{"req-3", "owner-2", false},
	} {
		dr, err := request.NewDockingRequest(tc.id, "ship-"+tc.id, tc.ownerID, window, "", "", nil)
		require.NoError(t, err)
		if tc.reject {
			require.NoError(t, dr.Reject("no capacity"))
		}
		require.NoError(t, requests.Add(context.Background(), dr))
	}

	handler := queries.NewListDockingRequestsHandler(requests)

	// Act / Assert - owner filter
	response, err := handler.Handle(context.Background(), &queries.ListDockingRequestsQuery{OwnerID: "owner-1"})
	require.NoError(t, err)
	assert.Len(t, response.(*queries.ListDockingRequestsResponse).Requests, 2)

	// Owner and status combined
	response, err = handler.Handle(context.Background(), &queries.ListDockingRequestsQuery{
		OwnerID: "owner-1",
		Status:  request.StatusPending,
	})
	require.NoError(t, err)
	assert.Len(t, response.(*queries.ListDockingRequestsResponse).Requests, 1)

	// Status only
	response, err = handler.Handle(context.Background(), &queries.ListDockingRequestsQuery{Status: request.StatusPending})
	require.NoError(t, err)
	assert.Len(t, response.(*queries.ListDockingRequestsResponse).Requests, 2)

	// No filter at all is refused
	_, err = handler.Handle(context.Background(), &queries.ListDockingRequestsQuery{})
	assert.Error(t, err)
}

func TestGetInvoice(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	invoices := persistence.NewGormInvoiceRepository(db)

	invoice, err := billing.NewInvoice("inv-1", "req-1", "ship-1",
		[]billing.LineItem{{Description: "Docking fee", Amount: 900}},
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, invoices.Add(context.Background(), invoice))

	handler := queries.NewGetInvoiceHandler(invoices)

	// Act
	response, err := handler.Handle(context.Background(), &queries.GetInvoiceQuery{RequestID: "req-1"})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.GetInvoiceResponse)
	assert.Equal(t, "inv-1", result.Invoice.ID())

	_, err = handler.Handle(context.Background(), &queries.GetInvoiceQuery{RequestID: "req-2"})
	assert.True(t, shared.IsNotFound(err))
}
