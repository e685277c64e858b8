package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// NewFilesCommand creates the files command group.
func NewFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Aliases: []string{"file", "f"},
		Short:   "Manage files",
		Long:    "List, upload and delete project files",
	}

	cmd.AddCommand(newFilesListCommand())
	cmd.AddCommand(newFilesUploadCommand())
	cmd.AddCommand(newFilesDeleteCommand())

	return cmd
}

func newFilesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List files",
		Long:  "List all uploaded files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			files, err := client.Files().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list files: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), files, func(table *tablewriter.Table) {
				table.Header("ID", "Project", "Name", "Size", "Created")

				for _, file := range files {
					_ = table.Append(
						string(file.ID),
						string(file.ProjectID),
						file.Name,
						strconv.FormatInt(file.Size, 10),
						file.CreatedAt.Format(constants.DateTimeFormat),
					)
				}
			})
		},
	}
}

func newFilesUploadCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "upload PROJECT_ID PATH",
		Short: "Upload a file",
		Long:  "Upload a local file to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Clean(args[1])

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to stat file: %w", err)
			}

			if !info.Mode().IsRegular() {
				return fmt.Errorf("%w: %s", constants.ErrNotRegularFile, path)
			}

			if name == "" {
				name = filepath.Base(path)
			}

			// #nosec G304 -- path is supplied by the user on purpose
			content, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}

			defer func() { _ = content.Close() }()

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			file, err := client.Files().Upload(ctx, &dispatch.FileUploadRequest{
				ProjectID: dispatch.ProjectID(args[0]),
				Name:      name,
				Content:   content,
			})
			if err != nil {
				return fmt.Errorf("failed to upload file: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), file, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", string(file.ID))
				_ = table.Append("Project", string(file.ProjectID))
				_ = table.Append("Name", file.Name)
				_ = table.Append("Content Type", valueOrNA(file.ContentType))
				_ = table.Append("Size", strconv.FormatInt(file.Size, 10))
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "stored file name (default is the base name of PATH)")

	return cmd
}

func newFilesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete FILE_ID",
		Short: "Delete a file",
		Long:  "Delete an uploaded file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			err = client.Files().Remove(ctx, dispatch.FileID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to delete file: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted file %s\n", args[0])

			return nil
		},
	}
}
