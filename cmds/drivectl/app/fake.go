package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/pkg/native/memory/random"
)

type Fake struct {
	cmd *cobra.Command

	mainopts *Options
	file     string
	opts     random.Options
}

func NewFake(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fake <options>",
		Short: "create an object space with random content",
	}

	c := &Fake{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.file, "output", "o", "", "object space file (default: --space)")
	c.opts.AddFlags(flags)
	return cmd
}

func (c *Fake) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}
	file := c.file
	if file == "" {
		file = c.mainopts.space
	}
	if file == "" {
		return fmt.Errorf("output file required")
	}

	s, err := random.Generate(c.mainopts.model, c.opts)
	if err != nil {
		return err
	}
	err = s.Save(file, c.mainopts.fs)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "created %d objects in %s\n", len(s.Objects()), file)
	return nil
}
