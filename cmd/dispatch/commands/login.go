package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/dispatch/internal/constants"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the Dispatch API",
		Long:  "Verify an API token against the API and save it for later commands. The token is prompted for unless --token is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("api") == "" {
				return constants.ErrNoAPIConfigured
			}

			var token string
			if flag := cmd.Flags().Lookup("token"); flag != nil && flag.Changed {
				token = flag.Value.String()
			}

			if token == "" {
				prompted, err := promptToken(cmd)
				if err != nil {
					return err
				}

				token = prompted
			}

			if token == "" {
				return constants.ErrEmptyToken
			}

			viper.Set("token", token)

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			ctx, cancelTimeout := context.WithTimeout(ctx, constants.ShortHTTPTimeout)
			defer cancelTimeout()

			user, err := client.Users().Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}

			err = saveConfig(loadConfig())
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", viper.GetString("api"), user.Username)

			return nil
		},
	}

	return cmd
}

// promptToken reads a token without echo when stdin is a terminal, or a
// single line otherwise.
func promptToken(cmd *cobra.Command) (string, error) {
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Token: ")

		secret, err := term.ReadPassword(int(os.Stdin.Fd()))

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", constants.ErrEmptyToken
	}

	return strings.TrimSpace(line), nil
}
