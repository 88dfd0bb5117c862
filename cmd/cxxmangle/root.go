package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds state shared by every subcommand.
type app struct {
	outputFile string
	verbose    bool
	noColor    bool

	output io.Writer
	log    *logrus.Logger
}

func newApp() *app {
	return &app{log: logrus.New()}
}

// execute runs the command line args and releases the output file whether or
// not the command succeeds.
func (a *app) execute(args []string, stdout, stderr io.Writer) error {
	defer a.closeOutput()

	cmd := newRootCmd(a)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (a *app) closeOutput() {
	if f, ok := a.output.(*os.File); ok && f != os.Stdout {
		f.Close()
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cxxmangle",
		Short: "Itanium C++ ABI symbol name mangler",
		Long: `cxxmangle builds linker-compatible Itanium C++ ABI symbol names for
generated kernels and rewrites existing ones.

Argument types are written in descriptor form, for example:
  int32  *float32  *[1]float32  array<float64, 1, C>`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetLevel(logrus.WarnLevel)
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
			if a.noColor {
				color.NoColor = true
			}

			if a.outputFile != "" {
				f, err := os.Create(a.outputFile)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				a.output = f
			} else {
				a.output = cmd.OutOrStdout()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug information to stderr")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newMangleCmd(a))
	rootCmd.AddCommand(newMangleCCmd(a))
	rootCmd.AddCommand(newPrependCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newTablesCmd(a))

	return rootCmd
}
