package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

func TestRegisterBerth_HarborMasterOnly(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	handler := commands.NewRegisterBerthHandler(env.users, env.berths)

	cmd := &commands.RegisterBerthCommand{
		ActorID:   "master-1",
		BerthID:   "B1",
		Name:      "North Quay 1",
		MaxLength: 200,
		MaxDraft:  10,
		Available: true,
	}

	// Act
	response, err := handler.Handle(context.Background(), cmd)

	// Assert
	require.NoError(t, err)
	result := response.(*commands.RegisterBerthResponse)
	assert.Equal(t, "B1", result.Berth.ID())

	stored, err := env.berths.FindByID(context.Background(), "B1")
	require.NoError(t, err)
	assert.Equal(t, "North Quay 1", stored.Name())

	// Operators cannot touch the physical catalog
	cmd.ActorID = "operator-1"
	cmd.BerthID = "B2"
	_, err = handler.Handle(context.Background(), cmd)
	assert.True(t, shared.IsPermission(err))
}

func TestRegisterBerth_RejectsInvalidCapacity(t *testing.T) {
	env := newTestEnv(t)
	handler := commands.NewRegisterBerthHandler(env.users, env.berths)

	_, err := handler.Handle(context.Background(), &commands.RegisterBerthCommand{
		ActorID:   "master-1",
		BerthID:   "B1",
		MaxLength: -5,
		MaxDraft:  10,
	})

	assert.True(t, shared.IsValidation(err))
}

func TestRegisterShip_OwnedByTheActor(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	handler := commands.NewRegisterShipHandler(env.users, env.ships)

	// Act
	response, err := handler.Handle(context.Background(), &commands.RegisterShipCommand{
		ActorID:  "owner-1",
		ShipID:   "ship-1",
		Name:     "MV Aurora",
		ShipType: fleet.ShipTypeCargo,
		Length:   180,
		Draft:    9,
		Tonnage:  20000,
		Capacity: 800,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.RegisterShipResponse)
	assert.Equal(t, "owner-1", result.Ship.OwnerID())

	stored, err := env.ships.FindByID(context.Background(), "ship-1")
	require.NoError(t, err)
	assert.Equal(t, "MV Aurora", stored.Name())
}

func TestRegisterUser_HarborMasterOnly(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	handler := commands.NewRegisterUserHandler(env.users)

	// Act
	response, err := handler.Handle(context.Background(), &commands.RegisterUserCommand{
		ActorID: "master-1",
		UserID:  "op-2",
		Name:    "Second Operator",
		Role:    auth.RoleOperator,
	})

	// Assert
	require.NoError(t, err)
	result := response.(*commands.RegisterUserResponse)
	assert.Equal(t, auth.RoleOperator, result.User.Role())

	_, err = handler.Handle(context.Background(), &commands.RegisterUserCommand{
		ActorID: "operator-1",
		UserID:  "op-3",
		Name:    "Third Operator",
		Role:    auth.RoleOperator,
	})
	assert.True(t, shared.IsPermission(err))
}
