package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/application/docking/queries"
	"github.com/harborops/harbormaster-go/internal/domain/billing"
	"github.com/harborops/harbormaster-go/internal/domain/request"
)

// NewRequestCommand creates the request command group
func NewRequestCommand(deps *Deps) *cobra.Command {
	requestCmd := &cobra.Command{
		Use:   "request",
		Short: "Manage docking requests",
	}

	requestCmd.AddCommand(newRequestSubmitCommand(deps))
	requestCmd.AddCommand(newRequestApproveCommand(deps))
	requestCmd.AddCommand(newRequestRejectCommand(deps))
	requestCmd.AddCommand(newRequestCancelCommand(deps))
	requestCmd.AddCommand(newRequestListCommand(deps))

	return requestCmd
}

func newRequestSubmitCommand(deps *Deps) *cobra.Command {
	var (
		shipID    string
		etaRaw    string
		etdRaw    string
		cargoType string
		special   string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a docking request for a ship you own",
		RunE: func(cmd *cobra.Command, args []string) error {
			eta, err := time.Parse(time.RFC3339, etaRaw)
			if err != nil {
				return fmt.Errorf("invalid --eta: %w", err)
			}
			etd, err := time.Parse(time.RFC3339, etdRaw)
			if err != nil {
				return fmt.Errorf("invalid --etd: %w", err)
			}

			response, err := deps.Mediator.Send(cmd.Context(), &commands.SubmitDockingRequestCommand{
				ActorID:             actorID,
				ShipID:              shipID,
				ETA:                 eta,
				ETD:                 etd,
				CargoType:           cargoType,
				SpecialRequirements: special,
			})
			if err != nil {
				return err
			}

			result := response.(*commands.SubmitDockingRequestResponse)
			fmt.Printf("Submitted request %s (%s)\n", result.Request.ID(), result.Request.Status())
			return nil
		},
	}

	cmd.Flags().StringVar(&shipID, "ship", "", "Ship ID")
	cmd.Flags().StringVar(&etaRaw, "eta", "", "Estimated arrival (RFC3339)")
	cmd.Flags().StringVar(&etdRaw, "etd", "", "Estimated departure (RFC3339)")
	cmd.Flags().StringVar(&cargoType, "cargo", "", "Cargo type")
	cmd.Flags().StringVar(&special, "special", "", "Special requirements")
	_ = cmd.MarkFlagRequired("ship")
	_ = cmd.MarkFlagRequired("eta")
	_ = cmd.MarkFlagRequired("etd")

	return cmd
}

func newRequestApproveCommand(deps *Deps) *cobra.Command {
	var (
		dockingHours float64
		withPower    bool
	)

	cmd := &cobra.Command{
		Use:   "approve <request-id>",
		Short: "Approve a pending request, allocating a berth and issuing an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var services []billing.PortService
			if dockingHours > 0 {
				docking, err := billing.NewDockingService(dockingHours, withPower)
				if err != nil {
					return err
				}
				services = append(services, docking)
			}

			response, err := deps.Mediator.Send(cmd.Context(), &commands.ApproveDockingRequestCommand{
				ActorID:   actorID,
				RequestID: args[0],
				Services:  services,
			})
			if err != nil {
				return err
			}

			result := response.(*commands.ApproveDockingRequestResponse)
			fmt.Printf("Approved request %s: berth %s, invoice %s (%.2f)\n",
				result.Request.ID(), result.Assignment.BerthID(), result.Invoice.ID(), result.Invoice.Total())
			return nil
		},
	}

	cmd.Flags().Float64Var(&dockingHours, "docking-hours", 0, "Attach a docking service for this many hours")
	cmd.Flags().BoolVar(&withPower, "with-power", false, "Include shore power in the docking service")

	return cmd
}

func newRequestRejectCommand(deps *Deps) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject a pending request with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &commands.RejectDockingRequestCommand{
				ActorID:   actorID,
				RequestID: args[0],
				Reason:    reason,
			})
			if err != nil {
				return err
			}

			result := response.(*commands.RejectDockingRequestResponse)
			fmt.Printf("Rejected request %s: %s\n", result.Request.ID(), result.Request.RejectionReason())
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newRequestCancelCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <request-id>",
		Short: "Cancel your own pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &commands.CancelDockingRequestCommand{
				ActorID:   actorID,
				RequestID: args[0],
			})
			if err != nil {
				return err
			}

			result := response.(*commands.CancelDockingRequestResponse)
			fmt.Printf("Cancelled request %s\n", result.Request.ID())
			return nil
		},
	}

	return cmd
}

func newRequestListCommand(deps *Deps) *cobra.Command {
	var (
		ownerID string
		status  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List docking requests by owner or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &queries.ListDockingRequestsQuery{
				OwnerID: ownerID,
				Status:  request.Status(status),
			})
			if err != nil {
				return err
			}

			result := response.(*queries.ListDockingRequestsResponse)
			if len(result.Requests) == 0 {
				fmt.Println("No requests")
				return nil
			}
			for _, r := range result.Requests {
				fmt.Printf("%s  ship=%s  [%s, %s)  %s\n",
					r.ID(), r.ShipID(),
					r.Window().ETA().Format(time.RFC3339),
					r.Window().ETD().Format(time.RFC3339),
					r.Status())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "Filter by owner ID")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (PENDING, APPROVED, REJECTED, CANCELLED)")

	return cmd
}
