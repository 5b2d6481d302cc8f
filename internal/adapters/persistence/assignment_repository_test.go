package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/harbormaster-go/internal/adapters/persistence"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
	"github.com/harborops/harbormaster-go/test/helpers"
)

func addAssignment(t *testing.T, repo *persistence.GormAssignmentRepository, id, berthID, shipID string, eta, etd time.Time) *berth.Assignment {
	t.Helper()
	window, err := berth.NewWindow(eta, etd)
	require.NoError(t, err)
	assignment, err := berth.NewAssignment(id, berthID, shipID, window, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), assignment))
	return assignment
}

func TestAssignmentRepository_AddAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormAssignmentRepository(db, nil)

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	addAssignment(t, repo, "assign-1", "B1", "ship-1", eta, eta.Add(48*time.Hour))

	// Act
	found, err := repo.FindByID(context.Background(), "assign-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "B1", found.BerthID())
	assert.Equal(t, "ship-1", found.ShipID())
	assert.Equal(t, berth.AssignmentStatusScheduled, found.Status())
	assert.True(t, found.Window().ETA().Equal(eta))
}

func TestAssignmentRepository_FindByID_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormAssignmentRepository(db, nil)

	_, err := repo.FindByID(context.Background(), "missing")

	assert.True(t, shared.IsNotFound(err))
}

func TestAssignmentRepository_FindOverlapping(t *testing.T) {
	// Arrange - booked [08:00 Sep 1, 08:00 Sep 3)
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormAssignmentRepository(db, nil)

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	etd := eta.Add(48 * time.Hour)
	addAssignment(t, repo, "assign-1", "B1", "ship-1", eta, etd)

	tests := []struct {
		name    string
		eta     time.Time
		etd     time.Time
		matches int
	}{
		{"same window", eta, etd, 1},
		{"starts inside", eta.Add(24 * time.Hour), etd.Add(24 * time.Hour), 1},
		{"contains booked", eta.Add(-24 * time.Hour), etd.Add(24 * time.Hour), 1},
		{"starts exactly at booked etd", etd, etd.Add(24 * time.Hour), 0},
		{"ends exactly at booked eta", eta.Add(-24 * time.Hour), eta, 0},
		{"entirely before", eta.Add(-72 * time.Hour), eta.Add(-48 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			overlapping, err := repo.FindOverlapping(context.Background(), "B1", tt.eta, tt.etd)

			// Assert
			require.NoError(t, err)
			assert.Len(t, overlapping, tt.matches)
		})
	}
}

func TestAssignmentRepository_FindOverlapping_IgnoresInactiveRows(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormAssignmentRepository(db, nil)

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	etd := eta.Add(48 * time.Hour)
	assignment := addAssignment(t, repo, "assign-1", "B1", "ship-1", eta, etd)

	require.NoError(t, assignment.Cancel())
	require.NoError(t, repo.Save(context.Background(), assignment))

	// Act
	overlapping, err := repo.FindOverlapping(context.Background(), "B1", eta, etd)

	// Assert - cancelled rows stay as history but free the window
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	_, err = repo.FindByID(context.Background(), "assign-1")
	assert.NoError(t, err)
}

func TestAssignmentRepository_FindOverlapping_ScopedToBerth(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormAssignmentRepository(db, nil)

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	etd := eta.Add(48 * time.Hour)
	addAssignment(t, repo, "assign-1", "B1", "ship-1", eta, etd)

	overlapping, err := repo.FindOverlapping(context.Background(), "B2", eta, etd)

	require.NoError(t, err)
	assert.Empty(t, overlapping)
}

func TestAssignmentRepository_FindActiveByShip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormAssignmentRepository(db, nil)

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	addAssignment(t, repo, "assign-1", "B1", "ship-1", eta, eta.Add(48*time.Hour))
	addAssignment(t, repo, "assign-2", "B2", "ship-1", eta.Add(96*time.Hour), eta.Add(120*time.Hour))
	addAssignment(t, repo, "assign-3", "B3", "ship-2", eta, eta.Add(48*time.Hour))

	departed := addAssignment(t, repo, "assign-4", "B4", "ship-1", eta.Add(200*time.Hour), eta.Add(220*time.Hour))
	require.NoError(t, departed.RecordArrival())
	require.NoError(t, departed.RecordDeparture())
	require.NoError(t, repo.Save(context.Background(), departed))

	// Act
	active, err := repo.FindActiveByShip(context.Background(), "ship-1")

	// Assert - ordered by eta, departed row excluded
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "assign-1", active[0].ID())
	assert.Equal(t, "assign-2", active[1].ID())
}

func TestAssignmentRepository_FindActiveByBerthAndShip(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormAssignmentRepository(db, nil)

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	addAssignment(t, repo, "assign-1", "B1", "ship-1", eta, eta.Add(48*time.Hour))

	found, err := repo.FindActiveByBerthAndShip(context.Background(), "B1", "ship-1")
	require.NoError(t, err)
	assert.Equal(t, "assign-1", found.ID())

	_, err = repo.FindActiveByBerthAndShip(context.Background(), "B1", "ship-2")
	assert.True(t, shared.IsNotFound(err))
}

func TestAssignmentRepository_SavePersistsStatusProgression(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormAssignmentRepository(db, nil)

	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	assignment := addAssignment(t, repo, "assign-1", "B1", "ship-1", eta, eta.Add(48*time.Hour))

	// Act
	require.NoError(t, assignment.RecordArrival())
	require.NoError(t, repo.Save(context.Background(), assignment))

	// Assert
	found, err := repo.FindByID(context.Background(), "assign-1")
	require.NoError(t, err)
	assert.Equal(t, berth.AssignmentStatusDocked, found.Status())
}
