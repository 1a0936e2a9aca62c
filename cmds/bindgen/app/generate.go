package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/pkg/generator"
)

type Generate struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	base     string
	check    bool
}

func NewGenerate(opts *Options) *cobra.Command {
	return newGenerate(opts, false)
}

func NewCheck(opts *Options) *cobra.Command {
	return newGenerate(opts, true)
}

func newGenerate(opts *Options, check bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <options>",
		Short: "generate wrapper packages",
	}
	if check {
		cmd.Use = "check <options>"
		cmd.Short = "check generated wrapper packages for being up to date"
	}

	c := &Generate{
		cmd:      cmd,
		mainopts: opts,
		check:    check,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", ".", "output directory")
	flags.StringVarP(&c.base, "base", "b", "", "import path of the output directory")
	return cmd
}

func (c *Generate) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}
	if c.base == "" {
		return fmt.Errorf("import path of output directory required")
	}
	m, err := c.mainopts.Model()
	if err != nil {
		return err
	}
	g, err := generator.New(m, c.base, c.mainopts.fs)
	if err != nil {
		return err
	}
	if c.check {
		err = g.Check(c.output)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "bindings up to date (%s)\n", g.Digest())
		return nil
	}
	log.Info("generating {{packages}} into {{dir}}", "packages", m.Packages(), "dir", c.output)
	err = g.Generate(c.output)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "generated %d types in %d packages\n", len(m.Types), len(m.Packages()))
	return nil
}
