package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborops/harbormaster-go/internal/application/docking/queries"
)

// NewInvoiceCommand creates the invoice command group
func NewInvoiceCommand(deps *Deps) *cobra.Command {
	invoiceCmd := &cobra.Command{
		Use:   "invoice",
		Short: "Inspect docking invoices",
	}

	invoiceCmd.AddCommand(newInvoiceShowCommand(deps))

	return invoiceCmd
}

func newInvoiceShowCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <request-id>",
		Short: "Show the invoice issued for a docking request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &queries.GetInvoiceQuery{
				RequestID: args[0],
			})
			if err != nil {
				return err
			}

			result := response.(*queries.GetInvoiceResponse)
			invoice := result.Invoice
			fmt.Printf("Invoice %s for ship %s (%s)\n", invoice.ID(), invoice.ShipID(), invoice.Status())
			for _, line := range invoice.Lines() {
				fmt.Printf("  %-45s %10.2f\n", line.Description, line.Amount)
			}
			fmt.Printf("  %-45s %10.2f\n", "Total", invoice.Total())
			return nil
		},
	}

	return cmd
}
