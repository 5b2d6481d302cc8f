package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/application/docking/queries"
)

// NewBerthCommand creates the berth command group
func NewBerthCommand(deps *Deps) *cobra.Command {
	berthCmd := &cobra.Command{
		Use:   "berth",
		Short: "Manage the berth catalog",
	}

	berthCmd.AddCommand(newBerthRegisterCommand(deps))
	berthCmd.AddCommand(newBerthSuitableCommand(deps))
	berthCmd.AddCommand(newBerthArriveCommand(deps))
	berthCmd.AddCommand(newBerthReleaseCommand(deps))

	return berthCmd
}

func newBerthRegisterCommand(deps *Deps) *cobra.Command {
	var (
		berthID   string
		name      string
		maxLength float64
		maxDraft  float64
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a berth (harbor master only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &commands.RegisterBerthCommand{
				ActorID:   actorID,
				BerthID:   berthID,
				Name:      name,
				MaxLength: maxLength,
				MaxDraft:  maxDraft,
				Available: true,
			})
			if err != nil {
				return err
			}

			result := response.(*commands.RegisterBerthResponse)
			fmt.Printf("Registered berth %s (max length %.1fm, max draft %.1fm)\n",
				result.Berth.ID(), result.Berth.MaxLength(), result.Berth.MaxDraft())
			return nil
		},
	}

	cmd.Flags().StringVar(&berthID, "id", "", "Berth ID")
	cmd.Flags().StringVar(&name, "name", "", "Berth name")
	cmd.Flags().Float64Var(&maxLength, "max-length", 0, "Maximum ship length in meters")
	cmd.Flags().Float64Var(&maxDraft, "max-draft", 0, "Maximum ship draft in meters")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("max-length")
	_ = cmd.MarkFlagRequired("max-draft")

	return cmd
}

func newBerthSuitableCommand(deps *Deps) *cobra.Command {
	var (
		length float64
		draft  float64
	)

	cmd := &cobra.Command{
		Use:   "suitable",
		Short: "List berths that can take a ship of the given dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &queries.FindSuitableBerthsQuery{
				ShipLength: length,
				ShipDraft:  draft,
			})
			if err != nil {
				return err
			}

			result := response.(*queries.FindSuitableBerthsResponse)
			if len(result.Berths) == 0 {
				fmt.Println("No suitable berths")
				return nil
			}
			for _, b := range result.Berths {
				fmt.Printf("%s  max length %.1fm  max draft %.1fm\n", b.ID(), b.MaxLength(), b.MaxDraft())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&length, "length", 0, "Ship length in meters")
	cmd.Flags().Float64Var(&draft, "draft", 0, "Ship draft in meters")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("draft")

	return cmd
}

func newBerthArriveCommand(deps *Deps) *cobra.Command {
	var (
		berthID string
		shipID  string
	)

	cmd := &cobra.Command{
		Use:   "arrive",
		Short: "Record that a scheduled ship has docked",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &commands.RecordArrivalCommand{
				ActorID: actorID,
				BerthID: berthID,
				ShipID:  shipID,
			})
			if err != nil {
				return err
			}

			result := response.(*commands.RecordArrivalResponse)
			fmt.Printf("Assignment %s is now %s\n", result.Assignment.ID(), result.Assignment.Status())
			return nil
		},
	}

	cmd.Flags().StringVar(&berthID, "berth", "", "Berth ID")
	cmd.Flags().StringVar(&shipID, "ship", "", "Ship ID")
	_ = cmd.MarkFlagRequired("berth")
	_ = cmd.MarkFlagRequired("ship")

	return cmd
}

func newBerthReleaseCommand(deps *Deps) *cobra.Command {
	var (
		berthID string
		shipID  string
	)

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release a ship's active assignment on a berth",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &commands.ReleaseBerthCommand{
				ActorID: actorID,
				BerthID: berthID,
				ShipID:  shipID,
			})
			if err != nil {
				return err
			}

			result := response.(*commands.ReleaseBerthResponse)
			fmt.Printf("Assignment %s is now %s\n", result.Assignment.ID(), result.Assignment.Status())
			return nil
		},
	}

	cmd.Flags().StringVar(&berthID, "berth", "", "Berth ID")
	cmd.Flags().StringVar(&shipID, "ship", "", "Ship ID")
	_ = cmd.MarkFlagRequired("berth")
	_ = cmd.MarkFlagRequired("ship")

	return cmd
}
