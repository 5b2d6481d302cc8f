package main

import (
	"context"
	"fmt"
	"os"

	"github.com/harborops/harbormaster-go/internal/adapters/cli"
	"github.com/harborops/harbormaster-go/internal/adapters/persistence"
	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/application/docking/queries"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/billing"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
	"github.com/harborops/harbormaster-go/internal/infrastructure/config"
	"github.com/harborops/harbormaster-go/internal/infrastructure/database"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.MustLoadConfig("")

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	persistence.ConfigureRetry(cfg.Store.OpTimeout, cfg.Store.RetryBackoff)

	clock := shared.NewRealClock()

	users := persistence.NewGormUserRepository(db)
	ships := persistence.NewGormShipRepository(db)
	berths := persistence.NewGormBerthRepository(db)
	assignments := persistence.NewGormAssignmentRepository(db, clock)
	requests := persistence.NewGormDockingRequestRepository(db, clock)
	invoices := persistence.NewGormInvoiceRepository(db)
	tariffs := persistence.NewGormTariffRepository(db)

	ctx := context.Background()
	if err := seed(ctx, users, tariffs, cfg); err != nil {
		return fmt.Errorf("failed to seed initial data: %w", err)
	}

	allocator := berth.NewAllocationEngine(berths, assignments, clock)

	mediator, err := buildMediator(users, ships, berths, requests, invoices, tariffs, allocator, clock)
	if err != nil {
		return fmt.Errorf("failed to wire handlers: %w", err)
	}

	rootCmd := cli.NewRootCommand(&cli.Deps{Mediator: mediator})
	return rootCmd.ExecuteContext(ctx)
}

func buildMediator(
	users auth.UserRepository,
	ships fleet.ShipRepository,
	berths berth.BerthRepository,
	requests request.DockingRequestRepository,
	invoices billing.InvoiceRepository,
	tariffs billing.TariffRepository,
	allocator *berth.AllocationEngine,
	clock shared.Clock,
) (common.Mediator, error) {
	m := common.NewMediator()

	registrations := []error{
		common.RegisterHandler[*commands.RegisterUserCommand](m, commands.NewRegisterUserHandler(users)),
		common.RegisterHandler[*commands.RegisterShipCommand](m, commands.NewRegisterShipHandler(users, ships)),
		common.RegisterHandler[*commands.RegisterBerthCommand](m, commands.NewRegisterBerthHandler(users, berths)),
		common.RegisterHandler[*commands.SubmitDockingRequestCommand](m, commands.NewSubmitDockingRequestHandler(users, ships, requests, clock)),
		common.RegisterHandler[*commands.ApproveDockingRequestCommand](m, commands.NewApproveDockingRequestHandler(users, ships, requests, invoices, tariffs, allocator, clock)),
		common.RegisterHandler[*commands.RejectDockingRequestCommand](m, commands.NewRejectDockingRequestHandler(users, requests)),
		common.RegisterHandler[*commands.CancelDockingRequestCommand](m, commands.NewCancelDockingRequestHandler(users, requests)),
		common.RegisterHandler[*commands.RecordArrivalCommand](m, commands.NewRecordArrivalHandler(users, allocator)),
		common.RegisterHandler[*commands.ReleaseBerthCommand](m, commands.NewReleaseBerthHandler(users, allocator)),
		common.RegisterHandler[*commands.DecommissionShipCommand](m, commands.NewDecommissionShipHandler(users, ships, requests, allocator)),
		common.RegisterHandler[*queries.FindSuitableBerthsQuery](m, queries.NewFindSuitableBerthsHandler(allocator)),
		common.RegisterHandler[*queries.ListDockingRequestsQuery](m, queries.NewListDockingRequestsHandler(requests)),
		common.RegisterHandler[*queries.GetInvoiceQuery](m, queries.NewGetInvoiceHandler(invoices)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// seed creates the bootstrap HarborMaster account and the rate table on a
// fresh store. Without an initial HarborMaster no account could ever be
// created.
func seed(ctx context.Context, users auth.UserRepository, tariffs billing.TariffRepository, cfg *config.Config) error {
	existing, err := users.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	master, err := auth.NewUser("harbormaster", "Harbor Master", auth.RoleHarborMaster)
	if err != nil {
		return err
	}
	if err := users.Save(ctx, master); err != nil {
		return err
	}

	tariff := billing.DefaultTariff()
	if cfg.Billing.BaseDockingFee > 0 {
		tariff.BaseDockingFee = cfg.Billing.BaseDockingFee
	}
	return tariffs.Save(ctx, tariff)
}
