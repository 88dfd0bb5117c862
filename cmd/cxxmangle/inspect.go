package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/skdltmxn/cxxmangle/itanium"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <mangled>...",
		Short: "Show the name segments of mangled symbols",
		Long: `Show how the name at the front of each mangled symbol is laid out:
its length-prefixed segments, the template block and ABI tags attached to
it, and the remaining argument encodings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, mangled := range args {
				if i > 0 {
					fmt.Fprintln(a.output)
				}
				l, err := itanium.Inspect(mangled)
				if err != nil {
					return err
				}
				a.log.WithField("mangled", mangled).Debugf("%d segment(s)", len(l.Segments))
				printLayout(a, mangled, l)
			}
			return nil
		},
	}
}

func printLayout(a *app, mangled string, l *itanium.Layout) {
	name := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(a.output, "Symbol: %s\n", mangled)
	fmt.Fprintf(a.output, "  Nested: %v\n", l.Nested)
	fmt.Fprintf(a.output, "  Segments:\n")
	for i, s := range l.Segments {
		fmt.Fprintf(a.output, "    [%d] %s %s\n", i, dim(fmt.Sprintf("@%d len=%d", s.Offset, s.Length)), name(s.Text))
	}
	if l.Extras != "" {
		fmt.Fprintf(a.output, "  Extras: %s\n", l.Extras)
	}
	if l.Tail != "" {
		fmt.Fprintf(a.output, "  Arguments: %s\n", l.Tail)
	}
}
