package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/drivebind/pkg/binding"
)

type Cast struct {
	cmd *cobra.Command

	mainopts *Options
	declared string
}

func NewCast(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cast <object id> <type> {<type>} <options>",
		Short: "cast a view of an object along a chain of types",
		Long: `
The object is wrapped into a view of its most specific wrapper type
(or the type given by --as) and then cast to the given types one after
the other. Every cast uses the cast table of the type reached so far.
`,
	}

	c := &Cast{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.declared, "as", "a", "", "declared type of the initial view")
	return cmd
}

func (c *Cast) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("object id and at least one target type required")
	}

	space, release, err := c.mainopts.Open(c.cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	h, err := space.Lookup(args[0])
	if err != nil {
		return err
	}

	var o binding.Object
	if c.declared != "" {
		r := c.mainopts.Registry(c.declared)
		if r == nil {
			return fmt.Errorf("unknown type %q", c.declared)
		}
		o, err = binding.New(r, c.declared, h)
	} else {
		o, err = c.mainopts.Wrap(h)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", ref(o))
	for _, t := range args[1:] {
		o, err = binding.Cast(o, t)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "-> %s\n", ref(o))
	}
	return nil
}
