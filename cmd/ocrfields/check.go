package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/ocrfields/template"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check TEMPLATE",
		Short: "Validate a zone template",
		Long:  "Load a zone template, list its fields and report regular expressions that do not compile.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.Load(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tFORMAT\tKIND\tX\tY\tCLUSTER")
			for _, z := range tmpl.Zones {
				cluster := "-"
				if c := z.Cluster; c != nil {
					cluster = fmt.Sprintf("%s/%s/%s", c.Axis, c.Select, c.Tolerance)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.3f-%.3f\t%.3f-%.3f\t%s\n",
					z.Name, z.Format, z.Kind,
					z.Region.X.Min, z.Region.X.Max, z.Region.Y.Min, z.Region.Y.Max,
					cluster)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			issues := tmpl.CheckPatterns()
			for _, issue := range issues {
				a.logger.Debug("invalid pattern", zap.String("field", issue.Field), zap.String("key", issue.Key))
				fmt.Fprintf(cmd.OutOrStdout(), "invalid %s\n", issue.Error())
			}
			if len(issues) > 0 {
				return fmt.Errorf("%s: %d invalid patterns", args[0], len(issues))
			}
			return nil
		},
	}
}
