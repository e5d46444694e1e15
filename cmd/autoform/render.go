package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/autoform"
	"github.com/vango-dev/autoform/pkg/render"
	"github.com/vango-dev/autoform/pkg/schema"
)

type renderOptions struct {
	pretty bool
	page   bool
	output string
}

func renderCmd(global *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <schema>",
		Short: "Render a schema to HTML",
		Long: `Render a JSON or YAML schema to HTML.

The schema format is taken from the file extension, or detected
from the content when reading standard input ("-").

Examples:
  autoform render forms/signup.yaml
  autoform render forms/signup.yaml --page -o signup.html
  cat signup.json | autoform render - --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), global, opts, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the output (default from autoform.json)")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the form in a complete HTML document")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to file instead of standard output")

	return cmd
}

func runRender(ctx context.Context, global *globalOptions, opts *renderOptions, ref string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}

	doc, err := readSchema(ref, stdin)
	if err != nil {
		return err
	}

	reg, err := autoform.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	node, err := schema.NewBuilder(reg).Build(ctx, doc)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty: opts.pretty || cfg.Render.Pretty,
		Indent: cfg.Render.Indent,
	})

	var buf bytes.Buffer
	if opts.page {
		err = renderer.RenderPage(&buf, render.PageData{
			Body:        node,
			Title:       doc.Title,
			StyleSheets: cfg.Server.Stylesheets,
		})
	} else {
		err = renderer.RenderToWriter(&buf, node)
		if err == nil && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			buf.WriteByte('\n')
		}
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
		return err
	}
	success(stdout, "Wrote %s (%d bytes)", opts.output, buf.Len())
	return nil
}

func readSchema(ref string, stdin io.Reader) (*schema.Document, error) {
	if ref != "-" {
		return schema.DecodeFile(ref)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading standard input: %w", err)
	}
	return schema.Parse(data)
}
