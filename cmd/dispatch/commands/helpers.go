package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
	"github.com/fivetwenty-io/dispatch/pkg/dispatchclient"
)

// NotAvailable is shown in tables for empty values.
const NotAvailable = "N/A"

// stderrLogger prints client logs for --verbose.
type stderrLogger struct {
	out io.Writer
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var line strings.Builder

	fmt.Fprintf(&line, "[%s] %s", level, msg)

	for _, key := range keys {
		fmt.Fprintf(&line, " %s=%v", key, fields[key])
	}

	_, _ = fmt.Fprintln(l.out, line.String())
}

// newClient builds an API client from the effective configuration.
func newClient(cmd *cobra.Command) (dispatch.Client, error) {
	api := viper.GetString("api")
	if api == "" {
		return nil, constants.ErrNoAPIConfigured
	}

	config := &dispatch.Config{
		BaseURL:       api,
		Token:         viper.GetString("token"),
		Timeout:       viper.GetDuration("timeout"),
		AllowInsecure: viper.GetBool("insecure"),
	}

	if version := cmd.Root().Version; version != "" {
		config.UserAgent = "dispatch-cli/" + version
	}

	if viper.GetBool("verbose") {
		config.Logger = &stderrLogger{out: cmd.ErrOrStderr()}
		config.Debug = true
	}

	client, err := dispatchclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// commandContext returns the command's context, canceled with
// constants.ErrInterrupted when the process receives an interrupt.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	ctx, cancel := context.WithCancelCause(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	go func() {
		select {
		case <-signals:
			cancel(constants.ErrInterrupted)
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(signals)
		cancel(context.Canceled)
	}
}

// renderOutput writes value in the selected output format. renderTable fills
// the table for the table format.
func renderOutput(out io.Writer, value interface{}, renderTable func(table *tablewriter.Table)) error {
	format := viper.GetString("output")

	switch format {
	case constants.OutputFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value)
	case constants.OutputFormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return encoder.Close()
	case constants.OutputFormatTable, "":
		table := tablewriter.NewWriter(out)
		renderTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}
}

// parseLabels turns KEY=VALUE pairs into a map.
func parseLabels(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	labels := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidKeyValue, pair)
		}

		labels[key] = value
	}

	return labels, nil
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return NotAvailable
	}

	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+labels[key])
	}

	return strings.Join(pairs, ", ")
}

func valueOrNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
