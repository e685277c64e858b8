package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user", "u"},
		Short:   "Manage users",
		Long:    "Look up and delete users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersDeleteCommand())
	cmd.AddCommand(newUsersMeCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			users, err := client.Users().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), users, func(table *tablewriter.Table) {
				table.Header("ID", "Username", "Email", "Admin")

				for _, user := range users {
					_ = table.Append(string(user.ID), string(user.Username), user.Email, strconv.FormatBool(user.Admin))
				}
			})
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USERNAME",
		Short: "Get user details",
		Long:  "Display detailed information about a user, looked up by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			user, err := client.Users().Get(ctx, dispatch.Username(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return renderUser(cmd, user)
		},
	}
}

func newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Long:  "Delete a user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			err = client.Users().Remove(ctx, dispatch.UserID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])

			return nil
		},
	}
}

func newUsersMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current user",
		Long:  "Display the user the configured token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			user, err := client.Users().Me(ctx)
			if err != nil {
				if dispatch.IsUnauthorized(err) {
					return constants.ErrNotAuthenticated
				}

				return fmt.Errorf("failed to get current user: %w", err)
			}

			return renderUser(cmd, user)
		},
	}
}

func renderUser(cmd *cobra.Command, user *dispatch.User) error {
	return renderOutput(cmd.OutOrStdout(), user, func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append("ID", string(user.ID))
		_ = table.Append("Username", string(user.Username))
		_ = table.Append("Email", valueOrNA(user.Email))
		_ = table.Append("Display Name", valueOrNA(user.DisplayName))
		_ = table.Append("Admin", strconv.FormatBool(user.Admin))
		_ = table.Append("Created", user.CreatedAt.Format(constants.DateTimeFormat))
	})
}
