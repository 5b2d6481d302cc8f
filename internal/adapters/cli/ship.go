package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
)

// NewShipCommand creates the ship command group
func NewShipCommand(deps *Deps) *cobra.Command {
	shipCmd := &cobra.Command{
		Use:   "ship",
		Short: "Manage the ship registry",
	}

	shipCmd.AddCommand(newShipRegisterCommand(deps))
	shipCmd.AddCommand(newShipDecommissionCommand(deps))

	return shipCmd
}

func newShipRegisterCommand(deps *Deps) *cobra.Command {
	var (
		shipID   string
		name     string
		shipType string
		length   float64
		draft    float64
		tonnage  float64
		capacity float64
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a ship owned by the acting user",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &commands.RegisterShipCommand{
				ActorID:  actorID,
				ShipID:   shipID,
				Name:     name,
				ShipType: fleet.ShipType(shipType),
				Length:   length,
				Draft:    draft,
				Tonnage:  tonnage,
				Capacity: capacity,
			})
			if err != nil {
				return err
			}

			result := response.(*commands.RegisterShipResponse)
			fmt.Printf("Registered ship %s (%s, %.1fm)\n", result.Ship.ID(), result.Ship.Type(), result.Ship.Length())
			return nil
		},
	}

	cmd.Flags().StringVar(&shipID, "id", "", "Ship ID")
	cmd.Flags().StringVar(&name, "name", "", "Ship name")
	cmd.Flags().StringVar(&shipType, "type", string(fleet.ShipTypeCargo), "Ship type (CARGO, TANKER, PASSENGER, FISHING, TUG)")
	cmd.Flags().Float64Var(&length, "length", 0, "Length in meters")
	cmd.Flags().Float64Var(&draft, "draft", 0, "Draft in meters")
	cmd.Flags().Float64Var(&tonnage, "tonnage", 0, "Gross tonnage")
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "Cargo capacity")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("draft")

	return cmd
}

func newShipDecommissionCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decommission <ship-id>",
		Short: "Remove a ship, cancelling its pending requests and releasing its berths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &commands.DecommissionShipCommand{
				ActorID: actorID,
				ShipID:  args[0],
			})
			if err != nil {
				return err
			}

			result := response.(*commands.DecommissionShipResponse)
			fmt.Printf("Decommissioned %s: %d requests cancelled, %d berths released\n",
				args[0], result.CancelledRequests, result.ReleasedBerths)
			return nil
		},
	}

	return cmd
}
