package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/skdltmxn/cxxmangle/itanium"
	"github.com/spf13/cobra"
)

func newMangleCmd(a *app) *cobra.Command {
	var (
		tags      []string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "mangle <identifier> [type...]",
		Short: "Mangle an identifier with argument type descriptors",
		Long: `Mangle a dotted identifier taking the given argument types.

Each type is a descriptor:
  *T            pointer to T
  *[N]T         pointer to T in address space N
  int32         scalar (void bool int8 uint8 int16 uint16 int32 uint32
                int64 uint64 float16 float32 float64)
  name<P, ...>  templated type
  42            integer literal
  ident         identifier value`,
		Example: `  cxxmangle mangle foo int32
  cxxmangle mangle mod.kernel '*[1]float32' 'array<float64, 1, C>' -t tag`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ident := args[0]
			descs, err := itanium.ParseDescriptors(args[1:])
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"identifier": ident,
				"args":       descs,
				"tags":       tags,
			}).Debug("mangling")

			name, err := itanium.Mangle(ident, descs, tags...)
			if err != nil {
				return err
			}
			if namespace != "" {
				name, err = itanium.PrependNamespace(name, namespace)
				if err != nil {
					return err
				}
			}

			a.log.WithField("symbol", name).Debug("mangled")
			fmt.Fprintln(a.output, name)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "attach an ABI tag (repeatable, order is kept)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "wrap the result in this namespace")
	return cmd
}

func newMangleCCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mangle-c <identifier> [c-type...]",
		Short: "Mangle an identifier with C type names",
		Long: `Mangle a dotted identifier taking arguments given as C type names,
such as "int", "unsigned long long" or "half". Names without a builtin code
are encoded as identifiers.`,
		Example: `  cxxmangle mangle-c ns.foo int 'unsigned long long'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.WithFields(logrus.Fields{
				"identifier": args[0],
				"ctypes":     args[1:],
			}).Debug("mangling C signature")

			fmt.Fprintln(a.output, itanium.MangleC(args[0], args[1:]))
			return nil
		},
	}
}

func newPrependCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "prepend <mangled> <namespace>",
		Short:   "Wrap a mangled name in an outer namespace",
		Example: `  cxxmangle prepend _Z3fooi ns`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.WithFields(logrus.Fields{
				"mangled":   args[0],
				"namespace": args[1],
			}).Debug("prepending namespace")

			name, err := itanium.PrependNamespace(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.output, name)
			return nil
		},
	}
}
