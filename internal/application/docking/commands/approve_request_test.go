package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/billing"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

func TestApproveDockingRequest_AllocatesBerthAndIssuesInvoice(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	env.addBerth(t, "B1", 200, 10)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	eta, etd := defaultWindow()
	requestID := env.submit(t, "owner-1", "ship-1", eta, etd)

	docking, err := billing.NewDockingService(48, false)
	require.NoError(t, err)

	// Act
	response, err := env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "operator-1",
		RequestID: requestID,
		Services:  []billing.PortService{docking},
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.ApproveDockingRequestResponse)
	assert.Equal(t, request.StatusApproved, result.Request.Status())
	assert.Equal(t, "B1", result.Assignment.BerthID())
	assert.Equal(t, berth.AssignmentStatusScheduled, result.Assignment.Status())

	// Invoice covers the docking fee line plus the requested service
	require.Len(t, result.Invoice.Lines(), 2)
	assert.Equal(t, "Docking fee", result.Invoice.Lines()[0].Description)
	assert.Positive(t, result.Invoice.Total())

	// Everything is committed
	stored, err := env.requests.FindByID(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, stored.Status())

	invoice, err := env.invoices.FindByRequest(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, result.Invoice.ID(), invoice.ID())

	active, err := env.assignments.FindActiveByBerthAndShip(context.Background(), "B1", "ship-1")
	require.NoError(t, err)
	assert.Equal(t, result.Assignment.ID(), active.ID())
}

func TestApproveDockingRequest_ShipOwnerMayNotApprove(t *testing.T) {
	env := newTestEnv(t)
	env.addBerth(t, "B1", 200, 10)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	eta, etd := defaultWindow()
	requestID := env.submit(t, "owner-1", "ship-1", eta, etd)

	_, err := env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "owner-1",
		RequestID: requestID,
	})

	assert.True(t, shared.IsPermission(err))
}

func TestApproveDockingRequest_ConflictLeavesRequestPending(t *testing.T) {
	// Arrange - one berth, two requests over the same window
	env := newTestEnv(t)
	env.addBerth(t, "B1", 200, 10)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	env.addShip(t, "ship-2", "owner-2", 170, 8)
	eta, etd := defaultWindow()

	firstID := env.submit(t, "owner-1", "ship-1", eta, etd)
	secondID := env.submit(t, "owner-2", "ship-2", eta, etd)

	_, err := env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "operator-1",
		RequestID: firstID,
	})
	require.NoError(t, err)

	// Act - operator has no override capability
	_, err = env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "operator-1",
		RequestID: secondID,
	})

	// Assert - conflict surfaced, request untouched, no invoice written
	assert.True(t, shared.IsConflict(err))

	stored, err := env.requests.FindByID(context.Background(), secondID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, stored.Status())

	_, err = env.invoices.FindByRequest(context.Background(), secondID)
	assert.True(t, shared.IsNotFound(err))
}

func TestApproveDockingRequest_HarborMasterOverridesCollision(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	env.addBerth(t, "B1", 200, 10)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	env.addShip(t, "ship-2", "owner-2", 170, 8)
	eta, etd := defaultWindow()

	firstID := env.submit(t, "owner-1", "ship-1", eta, etd)
	secondID := env.submit(t, "owner-2", "ship-2", eta, etd)

	_, err := env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "operator-1",
		RequestID: firstID,
	})
	require.NoError(t, err)

	// Act
	response, err := env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "master-1",
		RequestID: secondID,
	})

	// Assert - forced onto the occupied berth
	require.NoError(t, err)
	result := response.(*commands.ApproveDockingRequestResponse)
	assert.Equal(t, request.StatusApproved, result.Request.Status())
	assert.Equal(t, "B1", result.Assignment.BerthID())
}

func TestApproveDockingRequest_OverrideNeverForcesUndersizedBerth(t *testing.T) {
	env := newTestEnv(t)
	env.addBerth(t, "B1", 100, 5)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	eta, etd := defaultWindow()
	requestID := env.submit(t, "owner-1", "ship-1", eta, etd)

	_, err := env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "master-1",
		RequestID: requestID,
	})

	assert.True(t, shared.IsConflict(err))

	stored, err := env.requests.FindByID(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, stored.Status())
}

func TestApproveDockingRequest_AlreadyProcessedRequest(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	env.addBerth(t, "B1", 200, 10)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	eta, etd := defaultWindow()
	requestID := env.submit(t, "owner-1", "ship-1", eta, etd)

	_, err := env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "operator-1",
		RequestID: requestID,
	})
	require.NoError(t, err)

	// Act - second approval of the same request
	_, err = env.approveHandler().Handle(context.Background(), &commands.ApproveDockingRequestCommand{
		ActorID:   "operator-1",
		RequestID: requestID,
	})

	// Assert
	assert.Error(t, err)
}
