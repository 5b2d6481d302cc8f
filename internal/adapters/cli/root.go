package cli

import (
	"github.com/spf13/cobra"

	"github.com/harborops/harbormaster-go/internal/application/common"
)

var (
	// Global flags
	actorID string
)

// Deps carries the wired application surface into the command tree
type Deps struct {
	Mediator common.Mediator
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand(deps *Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "harbormaster",
		Short: "Harbormaster CLI - berth allocation and docking billing",
		Long: `Harbormaster manages berth assignments and docking invoices.

Examples:
  harbormaster berth register --id B1 --max-length 200 --max-draft 10
  harbormaster berth suitable --length 180 --draft 8
  harbormaster request submit --ship MV-AURORA --eta 2026-09-01T08:00:00Z --etd 2026-09-03T08:00:00Z
  harbormaster request approve <request-id> --docking-hours 48
  harbormaster request reject <request-id> --reason "insufficient documentation"
  harbormaster invoice show <request-id>`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&actorID, "actor", "",
		"ID of the acting user (required for mutations)")

	rootCmd.AddCommand(NewBerthCommand(deps))
	rootCmd.AddCommand(NewShipCommand(deps))
	rootCmd.AddCommand(NewRequestCommand(deps))
	rootCmd.AddCommand(NewInvoiceCommand(deps))
	rootCmd.AddCommand(NewUserCommand(deps))

	return rootCmd
}
