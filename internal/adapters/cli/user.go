package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborops/harbormaster-go/internal/application/docking/commands"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
)

// NewUserCommand creates the user command group
func NewUserCommand(deps *Deps) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage harbor user accounts",
	}

	userCmd.AddCommand(newUserAddCommand(deps))

	return userCmd
}

func newUserAddCommand(deps *Deps) *cobra.Command {
	var (
		userID string
		name   string
		role   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account (harbor master only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := deps.Mediator.Send(cmd.Context(), &commands.RegisterUserCommand{
				ActorID: actorID,
				UserID:  userID,
				Name:    name,
				Role:    auth.Role(role),
			})
			if err != nil {
				return err
			}

			result := response.(*commands.RegisterUserResponse)
			fmt.Printf("Created user %s (%s, %s)\n", result.User.ID(), result.User.Name(), result.User.Role())
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "id", "", "User ID")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "", "Role (SHIP_OWNER, OPERATOR, HARBOR_MASTER)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}
