package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dispatch/internal/constants"
)

// Config represents the persisted CLI configuration.
type Config struct {
	API      string `json:"api,omitempty"      yaml:"api,omitempty"`
	Token    string `json:"token,omitempty"    yaml:"token,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
	Timeout  string `json:"timeout,omitempty"  yaml:"timeout,omitempty"`
	Insecure bool   `json:"insecure,omitempty" yaml:"insecure,omitempty"`
}

// InitConfig points viper at cfgFile, or at $HOME/.dispatch/config.yml when
// cfgFile is empty, and reads it when present. DISPATCH_* environment
// variables override file values.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName), nil
}

func loadConfig() *Config {
	config := &Config{
		API:      viper.GetString("api"),
		Token:    viper.GetString("token"),
		Output:   viper.GetString("output"),
		Insecure: viper.GetBool("insecure"),
	}

	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		config.Timeout = timeout.String()
	}

	return config
}

// configFilePath returns the file config writes go to.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	if configFile = viper.GetString("config"); configFile != "" {
		return configFile, nil
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.Set("api", config.API)
	viper.Set("token", config.Token)
	viper.Set("output", config.Output)
	viper.Set("timeout", config.Timeout)
	viper.Set("insecure", config.Insecure)

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the Dispatch CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token != "" {
				config.Token = constants.MaskedValue
			}

			return renderOutput(cmd.OutOrStdout(), config, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("API", valueOrNA(config.API))
				_ = table.Append("Token", valueOrNA(config.Token))
				_ = table.Append("Output", valueOrNA(config.Output))
				_ = table.Append("Timeout", valueOrNA(config.Timeout))
				_ = table.Append("Insecure", strconv.FormatBool(config.Insecure))
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: api, token, output, timeout, insecure",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "token":
		config.Token = value
	case "output":
		switch value {
		case constants.OutputFormatTable, constants.OutputFormatJSON, constants.OutputFormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, value)
		}
	case "timeout":
		_, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		config.Timeout = value
	case "insecure":
		insecure, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid insecure value %q: %w", value, err)
		}

		config.Insecure = insecure
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}
