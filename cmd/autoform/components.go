package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/autoform"
	"github.com/vango-dev/autoform/pkg/server"
)

func componentsCmd(global *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List registered components",
		Long: `List the field, group and root components of the registry,
with the defaults from autoform.json applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			reg, err := autoform.NewWithConfig(cfg)
			if err != nil {
				return err
			}

			resp := server.Components(reg)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			return printComponents(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

func printComponents(out io.Writer, resp server.ComponentsResponse) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "TYPE\tDEFINITIONS\tDEFAULT")
	for _, t := range resp.Types {
		def := t.Default
		if def == "" {
			def = "(first)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Type, t.Count, def)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Fields:\t%s\n", strings.Join(resp.Fields, ", "))
	fmt.Fprintf(tw, "Groups:\t%s\t(default %s)\n", strings.Join(resp.Groups, ", "), resp.DefaultGroup)
	fmt.Fprintf(tw, "Roots:\t%s\t(current %s)\n", strings.Join(resp.Roots, ", "), resp.CurrentRoot)

	return tw.Flush()
}
