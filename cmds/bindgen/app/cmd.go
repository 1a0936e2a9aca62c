package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/pkg/hierarchy"
	"github.com/mandelsoft/drivebind/pkg/metadata"
	"github.com/mandelsoft/drivebind/pkg/utils"
)

type Options struct {
	metadata string
	level    string
	fs       vfs.FileSystem
}

func (o *Options) Model() (*metadata.Model, error) {
	if o.metadata == "" {
		return nil, fmt.Errorf("metadata file required")
	}
	return metadata.Load(o.metadata, o.fs)
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs:    utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
		level: "info",
	}

	maincmd := &cobra.Command{
		Use:   "bindgen <options> <cmd> <args>",
		Short: "generate Go bindings for a native object model",
		Long: `
This command validates native type metadata, shows the derived
cast tables and generates the wrapper packages.
`,
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.ParseLevel(opts.level)
			if err != nil {
				return err
			}
			logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("drivebind")))
			return nil
		},
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.metadata, "metadata", "m", "", "metadata file")
	flags.StringVarP(&opts.level, "log-level", "L", opts.level, "log level")

	maincmd.AddCommand(NewValidate(opts))
	maincmd.AddCommand(NewCasts(opts))
	maincmd.AddCommand(NewDigest(opts))
	maincmd.AddCommand(NewGenerate(opts))
	maincmd.AddCommand(NewCheck(opts))
	return maincmd
}

func NewValidate(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <options>",
		Short: "validate metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.Model()
			if err != nil {
				return err
			}
			g, err := hierarchy.NewGraph(m)
			if err != nil {
				return err
			}
			depth := 0
			for _, n := range g.Types() {
				depth = max(depth, g.Depth(n))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d types in %d packages, maximum depth %d\n", m.Name, len(m.Types), len(m.Packages()), depth)
			return nil
		},
	}
}

func NewCasts(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "casts {<type>} <options>",
		Short: "show the cast tables (default: all types)",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.Model()
			if err != nil {
				return err
			}
			g, err := hierarchy.NewGraph(m)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				g.Dump(cmd.OutOrStdout())
				return nil
			}
			for _, n := range args {
				e := g.Entry(n)
				if e == nil {
					return fmt.Errorf("unknown type %q", n)
				}
				printEntry(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
}

func printEntry(w io.Writer, e *hierarchy.Entry) {
	fmt.Fprintf(w, "%s\n", e.Name)
	fmt.Fprintf(w, "  ancestors:   %s\n", strings.Join(e.Ancestors, ", "))
	fmt.Fprintf(w, "  descendants: %s\n", strings.Join(e.Descendants, ", "))
}

func NewDigest(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "digest <options>",
		Short: "show the metadata digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.Model()
			if err != nil {
				return err
			}
			d, err := metadata.Digest(m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", d)
			return nil
		},
	}
}
