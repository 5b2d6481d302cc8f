package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/harbormaster-go/internal/adapters/persistence"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
	"github.com/harborops/harbormaster-go/test/helpers"
)

func addRequest(t *testing.T, repo *persistence.GormDockingRequestRepository, id, shipID, ownerID string) *request.DockingRequest {
	t.Helper()
	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	window, err := berth.NewWindow(eta, eta.Add(48*time.Hour))
	require.NoError(t, err)

	dr, err := request.NewDockingRequest(id, shipID, ownerID, window, "grain", "reefer plug", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), dr))
	return dr
}

func TestDockingRequestRepository_AddAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormDockingRequestRepository(db, nil)

	addRequest(t, repo, "req-1", "ship-1", "owner-1")

	// Act
	found, err := repo.FindByID(context.Background(), "req-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ship-1", found.ShipID())
	assert.Equal(t, "owner-1", found.OwnerID())
	assert.Equal(t, "grain", found.CargoType())
	assert.Equal(t, "reefer plug", found.SpecialRequirements())
	assert.Equal(t, request.StatusPending, found.Status())
	assert.Nil(t, found.ProcessedAt())
}

func TestDockingRequestRepository_FindByID_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormDockingRequestRepository(db, nil)

	_, err := repo.FindByID(context.Background(), "missing")

	assert.True(t, shared.IsNotFound(err))
}

func TestDockingRequestRepository_SavePersistsRejection(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormDockingRequestRepository(db, nil)
	dr := addRequest(t, repo, "req-1", "ship-1", "owner-1")

	reason := "berth closed for dredging until Sep 15"
	require.NoError(t, dr.Reject(reason))

	// Act
	require.NoError(t, repo.Save(context.Background(), dr))

	// Assert - status, reason and processed timestamp survive the round trip
	found, err := repo.FindByID(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, request.StatusRejected, found.Status())
	assert.Equal(t, reason, found.RejectionReason())
	assert.NotNil(t, found.ProcessedAt())
}

func TestDockingRequestRepository_FindByOwner(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormDockingRequestRepository(db, nil)

	addRequest(t, repo, "req-1", "ship-1", "owner-1")
	addRequest(t, repo, "req-2", "ship-2", "owner-1")
	addRequest(t, repo, "req-3", "ship-3", "owner-2")

	found, err := repo.FindByOwner(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestDockingRequestRepository_FindByStatus(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormDockingRequestRepository(db, nil)

	addRequest(t, repo, "req-1", "ship-1", "owner-1")
	approved := addRequest(t, repo, "req-2", "ship-2", "owner-1")
	require.NoError(t, approved.Approve())
	require.NoError(t, repo.Save(context.Background(), approved))

	// Act
	pending, err := repo.FindByStatus(context.Background(), request.StatusPending)

	// Assert
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "req-1", pending[0].ID())
}
