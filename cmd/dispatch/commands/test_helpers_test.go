package commands_test

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/dispatch/cmd/dispatch/commands"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// newConfigFile returns a config path inside a per-test directory.
func newConfigFile(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "config.yml")
}

// runCommand executes the root command with args against configFile and
// returns everything written to stdout and stderr.
func runCommand(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()

	return runCommandWithInput(t, configFile, strings.NewReader(""), args...)
}

// runCommandWithInput is runCommand with stdin replaced by input.
func runCommandWithInput(t *testing.T, configFile string, input io.Reader, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	root := commands.NewRootCommand("test", "abc123", "2026-01-01")

	var out bytes.Buffer

	root.SetIn(input)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", configFile}, args...))

	err := root.Execute()

	return out.String(), err
}
