package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/taskdeck/internal/todo"
)

// exportCommand writes the task sequence as JSON or YAML.
func (a *app) exportCommand(args []string) error {
	fs := newFlagSet("export")
	format := fs.String("format", "json", "Output format (json, yaml)")
	output := fs.String("o", "", "Write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	store := a.openStore()
	data, err := encodeTasks(store.Tasks(), *format)
	if err != nil {
		return err
	}

	if *output == "" || *output == "-" {
		_, err := stdout.Write(data)
		return err
	}
	path := *output
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.cfg.ProjectRoot, path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Fprintf(stdout, "Exported %d tasks to %s\n", len(store.Tasks()), path)
	return nil
}

func encodeTasks(tasks []todo.Task, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return todo.Marshal(tasks)
	case "yaml", "yml":
		if tasks == nil {
			tasks = []todo.Task{}
		}
		data, err := yaml.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown export format %q (expected json or yaml)", format)
}
