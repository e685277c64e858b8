package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "p"},
		Short:   "Manage projects",
		Long:    "List, inspect, create, update, search, archive and delete projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsUpdateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())
	cmd.AddCommand(newProjectsSearchCommand())
	cmd.AddCommand(newProjectsArchiveCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects visible to the current token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			projects, err := client.Projects().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			return renderProjects(cmd, projects)
		},
	}
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a specific project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			project, err := client.Projects().Get(ctx, dispatch.ProjectID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			return renderProject(cmd, project)
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Long:  "Create a new project owned by the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedLabels, err := parseLabels(labels)
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			project, err := client.Projects().Create(ctx, &dispatch.ProjectCreateRequest{
				Name:        name,
				Description: description,
				Labels:      parsedLabels,
			})
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			return renderProject(cmd, project)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "project name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "project description")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "label as KEY=VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "update PROJECT_ID",
		Short: "Update a project",
		Long:  "Update the name, description or labels of an existing project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &dispatch.ProjectUpdateRequest{ID: dispatch.ProjectID(args[0])}

			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			parsedLabels, err := parseLabels(labels)
			if err != nil {
				return err
			}

			request.Labels = parsedLabels

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			project, err := client.Projects().Update(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}

			return renderProject(cmd, project)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new project name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new project description")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "label as KEY=VALUE (repeatable)")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Permanently delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			err = client.Projects().Remove(ctx, dispatch.ProjectID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])

			return nil
		},
	}
}

func newProjectsSearchCommand() *cobra.Command {
	filter := &dispatch.ProjectSearch{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search projects",
		Long:  "Search projects by name, owner, label or archive state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			projects, err := client.Projects().Search(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to search projects: %w", err)
			}

			return renderProjects(cmd, projects)
		},
	}

	cmd.Flags().StringVarP(&filter.Name, "name", "n", "", "match project name")
	cmd.Flags().StringVar(&filter.OwnerID, "owner", "", "match owner ID")
	cmd.Flags().StringVarP(&filter.Label, "label", "l", "", "match label KEY=VALUE")
	cmd.Flags().BoolVar(&filter.Archived, "archived", false, "only archived projects")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "maximum number of results")

	return cmd
}

func newProjectsArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive PROJECT_ID",
		Short: "Archive a project",
		Long:  "Mark a project as archived",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			err = client.Projects().Archive(ctx, dispatch.ProjectID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to archive project: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Archived project %s\n", args[0])

			return nil
		},
	}
}

func renderProjects(cmd *cobra.Command, projects []dispatch.Project) error {
	return renderOutput(cmd.OutOrStdout(), projects, func(table *tablewriter.Table) {
		table.Header("ID", "Name", "Owner", "Archived", "Created")

		for _, project := range projects {
			_ = table.Append(
				string(project.ID),
				project.Name,
				string(project.OwnerID),
				strconv.FormatBool(project.Archived),
				project.CreatedAt.Format(constants.DateTimeFormat),
			)
		}
	})
}

func renderProject(cmd *cobra.Command, project *dispatch.Project) error {
	return renderOutput(cmd.OutOrStdout(), project, func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append("ID", string(project.ID))
		_ = table.Append("Name", project.Name)
		_ = table.Append("Description", valueOrNA(project.Description))
		_ = table.Append("Owner", string(project.OwnerID))
		_ = table.Append("Archived", strconv.FormatBool(project.Archived))
		_ = table.Append("Labels", formatLabels(project.Labels))
		_ = table.Append("Created", project.CreatedAt.Format(constants.DateTimeFormat))
		_ = table.Append("Updated", project.UpdatedAt.Format(constants.DateTimeFormat))
	})
}
