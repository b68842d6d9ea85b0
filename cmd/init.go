package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/taskdeck/internal/appdir"
	"github.com/nibzard/taskdeck/internal/config"
	"github.com/nibzard/taskdeck/internal/todo"
)

// initCommand creates the tasks file and a project config, keeping any that exist.
func (a *app) initCommand(args []string) error {
	fs := newFlagSet("init")
	force := fs.Bool("force", false, "Overwrite an existing taskdeck.toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tasksPath := a.cfg.TasksFile
	if _, err := os.Stat(tasksPath); err == nil {
		fmt.Fprintf(stdout, "Tasks file exists: %s\n", tasksPath)
	} else if os.IsNotExist(err) {
		if err := todo.WriteFile(tasksPath, nil); err != nil {
			return fmt.Errorf("creating tasks file: %w", err)
		}
		fmt.Fprintf(stdout, "Created %s\n", tasksPath)
	} else {
		return fmt.Errorf("checking tasks file: %w", err)
	}

	configPath := filepath.Join(a.cfg.ProjectRoot, appdir.DefaultConfigFile)
	if _, err := os.Stat(configPath); err == nil && !*force {
		fmt.Fprintf(stdout, "Config file exists: %s\n", configPath)
		return nil
	}
	if err := os.WriteFile(configPath, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	fmt.Fprintf(stdout, "Created %s\n", configPath)
	return nil
}
