package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the dispatch command tree with its global flags
// bound to viper.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Dispatch API CLI",
		Long: `A command-line interface for the Dispatch API.

Manage projects, users, API keys and files from the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := InitConfig(viper.GetString("config"))
			if err != nil {
				return err
			}

			if viper.GetBool("verbose") && viper.ConfigFileUsed() != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
			}

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.dispatch/config.yml)")
	flags.StringP("api", "a", "", "API base URL")
	flags.StringP("token", "t", "", "API token")
	flags.StringP("output", "o", "table", "output format (table, json, yaml)")
	flags.Duration("timeout", 0, "per-request timeout (default 30s)")
	flags.BoolP("verbose", "v", false, "log HTTP requests to stderr")
	flags.Bool("insecure", false, "allow plain http API URLs")

	for _, name := range []string{"config", "api", "token", "output", "timeout", "verbose", "insecure"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewProjectsCommand())
	rootCmd.AddCommand(NewUsersCommand())
	rootCmd.AddCommand(NewKeysCommand())
	rootCmd.AddCommand(NewFilesCommand())

	return rootCmd
}
