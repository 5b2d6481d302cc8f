package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harborops/harbormaster-go/internal/adapters/persistence"
	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
	"github.com/harborops/harbormaster-go/test/helpers"
)

// testEnv wires the full command stack over an in-memory store.
type testEnv struct {
	users       *persistence.GormUserRepository
	ships       *persistence.GormShipRepository
	berths      *persistence.GormBerthRepository
	assignments *persistence.GormAssignmentRepository
	requests    *persistence.GormDockingRequestRepository
	invoices    *persistence.GormInvoiceRepository
	tariffs     *persistence.GormTariffRepository
	allocator   *berth.AllocationEngine
	clock       *shared.MockClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))

	env := &testEnv{
		users:       persistence.NewGormUserRepository(db),
		ships:       persistence.NewGormShipRepository(db),
		berths:      persistence.NewGormBerthRepository(db),
		assignments: persistence.NewGormAssignmentRepository(db, clock),
		requests:    persistence.NewGormDockingRequestRepository(db, clock),
		invoices:    persistence.NewGormInvoiceRepository(db),
		tariffs:     persistence.NewGormTariffRepository(db),
		clock:       clock,
	}
	env.allocator = berth.NewAllocationEngine(env.berths, env.assignments, clock)

	env.addUser(t, "owner-1", auth.RoleShipOwner)
	env.addUser(t, "owner-2", auth.RoleShipOwner)
	env.addUser(t, "operator-1", auth.RoleOperator)
	env.addUser(t, "master-1", auth.RoleHarborMaster)

	return env
}

func (env *testEnv) addUser(t *testing.T, id string, role auth.Role) {
	t.Helper()
	user, err := auth.NewUser(id, id, role)
	require.NoError(t, err)
	require.NoError(t, env.users.Save(context.Background(), user))
}

func (env *testEnv) addShip(t *testing.T, id, ownerID string, length, draft float64) *fleet.Ship {
	t.Helper()
	ship, err := fleet.NewShip(id, "MV "+id, fleet.ShipTypeCargo, length, draft, 20000, 800, ownerID)
	require.NoError(t, err)
	require.NoError(t, env.ships.Save(context.Background(), ship))
	return ship
}

func (env *testEnv) addBerth(t *testing.T, id string, maxLength, maxDraft float64) {
	t.Helper()
	b, err := berth.NewBerth(id, "Berth "+id, maxLength, maxDraft, true)
	require.NoError(t, err)
	require.NoError(t, env.berths.Save(context.Background(), b))
}

// submit creates a Pending request through the submit handler and returns
// its ID.
func (env *testEnv) submit(t *testing.T, ownerID, shipID string, eta, etd time.Time) string {
	t.Helper()
	handler := commands.NewSubmitDockingRequestHandler(env.users, env.ships, env.requests, env.clock)

	response, err := handler.Handle(context.Background(), &commands.SubmitDockingRequestCommand{
		ActorID: ownerID,
		ShipID:  shipID,
		ETA:     eta,
		ETD:     etd,
	})
	require.NoError(t, err)
	return response.(*commands.SubmitDockingRequestResponse).Request.ID()
}

func (env *testEnv) approveHandler() *commands.ApproveDockingRequestHandler {
	return commands.NewApproveDockingRequestHandler(
		env.users, env.ships, env.requests, env.invoices, env.tariffs, env.allocator, env.clock)
}

func defaultWindow() (time.Time, time.Time) {
	eta := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	return eta, eta.Add(48 * time.Hour)
}
