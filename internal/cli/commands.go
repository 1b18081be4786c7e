package cli

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"task-management/internal/task"
)

func listFlags(fs *pflag.FlagSet) {
	fs.StringP("status", "s", "", "only tasks with this status")
}

func runList(ctx context.Context, a *App, uc task.UseCase, fs *pflag.FlagSet) error {
	if fs.NArg() != 0 {
		return usageError{"list: unexpected arguments"}
	}
	status, _ := fs.GetString("status")

	out, err := uc.List(ctx, task.ListInput{Status: status})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, renderTasks(out.Tasks))
	return nil
}

func runGet(ctx context.Context, a *App, uc task.UseCase, fs *pflag.FlagSet) error {
	id, err := parseID(fs)
	if err != nil {
		return err
	}

	t, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, renderTask(t))
	return nil
}

func createFlags(fs *pflag.FlagSet) {
	fs.StringP("title", "t", "", "task title (required)")
	fs.StringP("description", "d", "", "task description")
	fs.StringP("status", "s", "", "task status (default TO_DO)")
}

func runCreate(ctx context.Context, a *App, uc task.UseCase, fs *pflag.FlagSet) error {
	if fs.NArg() != 0 {
		return usageError{"create: unexpected arguments"}
	}
	title, _ := fs.GetString("title")
	description, _ := fs.GetString("description")
	status, _ := fs.GetString("status")

	created, err := uc.Create(ctx, task.CreateInput{
		Title:       title,
		Description: description,
		Status:      status,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, successStyle.Render(fmt.Sprintf("Created task #%d", created.ID)))
	fmt.Fprintln(a.stdout, renderTask(created))
	return nil
}

func updateFlags(fs *pflag.FlagSet) {
	fs.StringP("title", "t", "", "new title")
	fs.StringP("description", "d", "", "new description")
	fs.StringP("status", "s", "", "new status")
}

// runUpdate loads the task, overlays the flags that were given and submits
// the full record.
func runUpdate(ctx context.Context, a *App, uc task.UseCase, fs *pflag.FlagSet) error {
	id, err := parseID(fs)
	if err != nil {
		return err
	}
	if !fs.Changed("title") && !fs.Changed("description") && !fs.Changed("status") {
		return usageError{"update: nothing to change, pass --title, --description or --status"}
	}

	current, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}

	input := task.UpdateInput{
		ID:          id,
		Title:       current.Title,
		Description: current.Description,
		Status:      string(current.Status),
	}
	if fs.Changed("title") {
		input.Title, _ = fs.GetString("title")
	}
	if fs.Changed("description") {
		input.Description, _ = fs.GetString("description")
	}
	if fs.Changed("status") {
		input.Status, _ = fs.GetString("status")
	}

	updated, err := uc.Update(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, successStyle.Render(fmt.Sprintf("Updated task #%d", updated.ID)))
	fmt.Fprintln(a.stdout, renderTask(updated))
	return nil
}

func runDelete(ctx context.Context, a *App, uc task.UseCase, fs *pflag.FlagSet) error {
	id, err := parseID(fs)
	if err != nil {
		return err
	}

	if err := uc.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, successStyle.Render(fmt.Sprintf("Deleted task #%d", id)))
	return nil
}

func runTUI(ctx context.Context, a *App, uc task.UseCase, fs *pflag.FlagSet) error {
	if fs.NArg() != 0 {
		return usageError{"tui: unexpected arguments"}
	}
	return a.runTUI(ctx, uc)
}
