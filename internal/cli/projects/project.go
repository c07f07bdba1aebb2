package projects

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/ritual/internal/cli"
	"github.com/julianstephens/ritual/internal/models"
)

type ProjectCmd struct {
	Add    ProjectAddCmd    `cmd:"" help:"Add a project."`
	List   ProjectListCmd   `cmd:"" help:"List projects."`
	Done   ProjectDoneCmd   `cmd:"" help:"Mark a project done."`
	Delete ProjectDeleteCmd `cmd:"" help:"Delete a project."`
}

type ProjectAddCmd struct {
	Title       string `arg:"" help:"Project title."`
	Description string `help:"Optional description." default:""`
	Priority    string `help:"Priority: high, medium, low." default:"medium"`
}

func (c *ProjectAddCmd) Run(ctx *cli.Context) error {
	priority, err := cli.ParsePriority(c.Priority)
	if err != nil {
		return err
	}

	project := models.Project{
		ID:          uuid.New().String(),
		Text:        c.Title,
		Description: c.Description,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}

	if err := ctx.Store.AddProject(project); err != nil {
		return err
	}

	fmt.Printf("Added project: %s\n", c.Title)
	return nil
}

type ProjectListCmd struct {
	All bool `help:"Include completed projects."`
}

func (c *ProjectListCmd) Run(ctx *cli.Context) error {
	projects, err := ctx.Store.GetProjects(!c.All)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	for _, p := range projects {
		status := "[ ]"
		if p.Completed {
			status = "[x]"
		}
		fmt.Printf("%s %s (%s)\n", status, p.Text, p.Priority)
		if p.Description != "" {
			fmt.Printf("    %s\n", p.Description)
		}
	}

	return nil
}

type ProjectDoneCmd struct {
	Title string `arg:"" help:"Project title to mark done."`
}

func (c *ProjectDoneCmd) Run(ctx *cli.Context) error {
	p, err := findProject(ctx, c.Title, true)
	if err != nil {
		return err
	}

	if err := ctx.Store.CompleteProject(p.ID); err != nil {
		return err
	}

	fmt.Printf("Completed project: %s\n", p.Text)
	return nil
}

type ProjectDeleteCmd struct {
	Title string `arg:"" help:"Project title to delete."`
}

func (c *ProjectDeleteCmd) Run(ctx *cli.Context) error {
	p, err := findProject(ctx, c.Title, false)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteProject(p.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted project: %s\n", p.Text)
	return nil
}

func findProject(ctx *cli.Context, title string, pendingOnly bool) (models.Project, error) {
	projects, err := ctx.Store.GetProjects(pendingOnly)
	if err != nil {
		return models.Project{}, err
	}
	for _, p := range projects {
		if p.Text == title {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("project %q not found", title)
}
