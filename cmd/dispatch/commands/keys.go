package commands

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// NewKeysCommand creates the API keys command group.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"key", "api-keys"},
		Short:   "Manage API keys",
		Long:    "Create and revoke API keys",
	}

	cmd.AddCommand(newKeysCreateCommand())
	cmd.AddCommand(newKeysDeleteCommand())

	return cmd
}

func newKeysCreateCommand() *cobra.Command {
	var (
		name      string
		expiresIn time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API key",
		Long:  "Create an API key. The secret is shown once and cannot be retrieved later.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &dispatch.APIKeyCreateRequest{Name: name}

			if expiresIn > 0 {
				expiresAt := time.Now().Add(expiresIn).UTC()
				request.ExpiresAt = &expiresAt
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			key, err := client.APIKeys().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create API key: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), key, func(table *tablewriter.Table) {
				expires := NotAvailable
				if key.ExpiresAt != nil {
					expires = key.ExpiresAt.Format(constants.DateTimeFormat)
				}

				table.Header("Property", "Value")
				_ = table.Append("ID", string(key.ID))
				_ = table.Append("Name", key.Name)
				_ = table.Append("Secret", valueOrNA(key.Secret))
				_ = table.Append("Expires", expires)
				_ = table.Append("Created", key.CreatedAt.Format(constants.DateTimeFormat))
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "key name")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "key lifetime, e.g. 720h (default never)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newKeysDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY_ID",
		Short: "Revoke an API key",
		Long:  "Revoke an API key by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			err = client.APIKeys().Remove(ctx, dispatch.APIKeyID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to delete API key: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted API key %s\n", args[0])

			return nil
		},
	}
}
