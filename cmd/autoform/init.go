package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/autoform/internal/config"
	"github.com/vango-dev/autoform/internal/errors"
)

const exampleSchema = `title: Example
groups:
  - title: Contact
    fields:
      - {type: text, name: name, label: Name, required: true}
      - {type: email, name: email, label: Email, required: true}
      - {type: text, name: message, label: Message, component: textarea}
`

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create autoform.json and an example schema",
		Long: `Write a default autoform.json to dir (default: the working
directory) and an example schema to its forms directory.

An existing autoform.json is kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing autoform.json")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	out := cmd.OutOrStdout()

	if config.Exists(dir) {
		if !force {
			return errors.New("E142").
				WithDetail("autoform.json already exists in " + dir).
				WithSuggestion("Pass --force to overwrite it")
		}
		warn(out, "Overwriting %s", filepath.Join(dir, config.ConfigFileName))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}
	success(out, "Created %s", cfg.Path())

	example := filepath.Join(cfg.FormsURI(), "example.yaml")
	if _, err := os.Stat(example); err == nil {
		info(out, "Keeping existing %s", example)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(example), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(example, []byte(exampleSchema), 0644); err != nil {
		return err
	}
	success(out, "Created %s", example)
	fmt.Fprintln(out)
	info(out, "Next: autoform serve")
	return nil
}
