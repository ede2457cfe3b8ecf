package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events [pattern]",
		Short: "List the events the relay forwards and their parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := rtcrelay.MustPattern("*")
			if len(args) == 1 {
				var err error
				if pattern, err = rtcrelay.NewPattern(args[0]); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range rtcrelay.EventNames() {
				if !pattern.Match(name) {
					continue
				}
				spec, _ := rtcrelay.LookupEvent(name)
				params := make([]string, len(spec.Params))
				for i, param := range spec.Params {
					kind := param.Kind.String()
					if param.Type != nil {
						kind = param.Type.Name()
						if param.Kind == rtcrelay.RecordListParam {
							kind = "[]" + kind
						}
					}
					params[i] = param.Name + " " + kind
				}
				fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(params, ", "))
			}
			return w.Flush()
		},
	}
}
