package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/skdltmxn/cxxmangle/itanium"
	"github.com/spf13/cobra"
)

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the scalar and C type code tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.output, 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "SCALAR\tC TYPE\tCODE")
			for st := range itanium.ScalarTypes() {
				cname, _ := st.CName()
				code, _ := itanium.CTypeCode(cname)
				fmt.Fprintf(w, "%s\t%s\t%s\n", st, cname, code)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "C TYPE\tCODE")
			for cname, code := range itanium.CTypeCodes() {
				fmt.Fprintf(w, "%s\t%s\n", cname, code)
			}
			return w.Flush()
		},
	}
}
