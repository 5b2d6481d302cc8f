package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

func TestRejectDockingRequest_StoresReason(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	eta, etd := defaultWindow()
	requestID := env.submit(t, "owner-1", "ship-1", eta, etd)

	handler := commands.NewRejectDockingRequestHandler(env.users, env.requests)
	reason := "quay crane out of service for the requested window"

	// Act
	response, err := handler.Handle(context.Background(), &commands.RejectDockingRequestCommand{
		ActorID:   "operator-1",
		RequestID: requestID,
		Reason:    reason,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.RejectDockingRequestResponse)
	assert.Equal(t, request.StatusRejected, result.Request.Status())
	assert.Equal(t, reason, result.Request.RejectionReason())

	stored, err := env.requests.FindByID(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, reason, stored.RejectionReason())
}

func TestRejectDockingRequest_RequiresReason(t *testing.T) {
	env := newTestEnv(t)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	eta, etd := defaultWindow()
	requestID := env.submit(t, "owner-1", "ship-1", eta, etd)

	handler := commands.NewRejectDockingRequestHandler(env.users, env.requests)

	_, err := handler.Handle(context.Background(), &commands.RejectDockingRequestCommand{
		ActorID:   "operator-1",
		RequestID: requestID,
	})

	assert.True(t, shared.IsValidation(err))

	stored, err := env.requests.FindByID(context.Background(), requestID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, stored.Status())
}

func TestRejectDockingRequest_ShipOwnerMayNotReject(t *testing.T) {
	env := newTestEnv(t)
	env.addShip(t, "ship-1", "owner-1", 180, 9)
	eta, etd := defaultWindow()
	requestID := env.submit(t, "owner-1", "ship-1", eta, etd)

	handler := commands.NewRejectDockingRequestHandler(env.users, env.requests)

	_, err := handler.Handle(context.Background(), &commands.RejectDockingRequestCommand{
		ActorID:   "owner-1",
		RequestID: requestID,
		Reason:    "trying to reject my own request",
	})

	assert.True(t, shared.IsPermission(err))
}
